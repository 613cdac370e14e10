package repository

import (
	"github.com/behrang/sqlbatch"
	"github.com/gagliardetto/solana-go"

	"github.com/abkGami/star-damm-honorary-fee/domain"
)

const (
	sqlProgressInsertIfNotExists = `
	insert into progresses as g (
			vault, window_start_ts, day_complete, cursor, claimed_this_window,
			investor_budget_this_window, distributed_to_investors, locked_total_this_window, carry_over, bump
		)
		values (
			$1, 0, true, 0, 0, 0, 0, 0, 0, $2
		)
	on conflict (vault) do nothing
`

	sqlProgressFind = `
	select
		vault, window_start_ts, day_complete, cursor, claimed_this_window,
		investor_budget_this_window, distributed_to_investors, locked_total_this_window, carry_over, bump
	from progresses
	where vault = $1
`

	sqlProgressUpdate = `
	update progresses set
		window_start_ts = $2, day_complete = $3, cursor = $4, claimed_this_window = $5,
		investor_budget_this_window = $6, distributed_to_investors = $7, locked_total_this_window = $8, carry_over = $9
	where vault = $1
`
)

// ProgressRepository persists the mutable per-vault distribution state.
// Every update happens inside a serializable transaction so a concurrent
// crank racing the same page observes the already-advanced cursor rather
// than a lost update.
type ProgressRepository struct {
	batchHandler BatchHandler
}

func NewProgressRepository(db BatchHandler) *ProgressRepository {
	return &ProgressRepository{batchHandler: db}
}

func readProgress(scan func(...interface{}) error) (interface{}, error) {
	p := domain.Progress{}
	var vault string
	err := scan(&vault, &p.WindowStartTS, &p.DayComplete, &p.Cursor, &p.ClaimedThisWindow,
		&p.InvestorBudgetThisWindow, &p.DistributedToInvestors, &p.LockedTotalThisWindow, &p.CarryOver, &p.Bump)
	if err != nil {
		return &p, err
	}
	p.Vault, err = solana.PublicKeyFromBase58(vault)
	return &p, err
}

func (repo *ProgressRepository) InsertIfNotExists(vault solana.PublicKey, bump uint8) error {
	_, err := repo.batchHandler.Batch(&BatchOptionSerializable, []sqlbatch.Command{
		{
			Query:  sqlProgressInsertIfNotExists,
			Args:   []interface{}{vault.String(), bump},
			Affect: 1,
		},
	})
	return err
}

func (repo *ProgressRepository) Find(vault solana.PublicKey) (*domain.Progress, error) {
	results, err := repo.batchHandler.Batch(&BatchOptionNormalReadOnly, []sqlbatch.Command{
		{
			Query:   sqlProgressFind,
			Args:    []interface{}{vault.String()},
			ReadOne: readProgress,
		},
	})
	if err != nil {
		return nil, err
	}
	result, _ := results[0].(*domain.Progress)
	if result == nil || result.Vault.IsZero() {
		return nil, domain.ErrProgressNotFound
	}
	return result, nil
}

// Save persists progress's full state as one atomic write, under
// Serializable isolation. Find and Save run as separate transactions, so
// a concurrent crank racing the same vault is not locked out between the
// two; it is instead caught at commit time by Postgres's serialization
// check, and DBHandler.Batch retries on the resulting 40001.
func (repo *ProgressRepository) Save(progress domain.Progress) error {
	_, err := repo.batchHandler.Batch(&BatchOptionSerializable, []sqlbatch.Command{
		{
			Query: sqlProgressUpdate,
			Args: []interface{}{
				progress.Vault.String(), progress.WindowStartTS, progress.DayComplete, progress.Cursor,
				progress.ClaimedThisWindow, progress.InvestorBudgetThisWindow, progress.DistributedToInvestors,
				progress.LockedTotalThisWindow, progress.CarryOver,
			},
			Affect: 1,
		},
	})
	return err
}
