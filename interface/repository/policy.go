package repository

import (
	"github.com/behrang/sqlbatch"
	"github.com/gagliardetto/solana-go"

	"github.com/abkGami/star-damm-honorary-fee/domain"
)

const (
	sqlPolicyInsertIfNotExists = `
	insert into policies as p (
			vault, investor_share_bps, daily_cap, min_payout, y0, quote_asset, creator_account, bump, create_time
		)
		values (
			$1, $2, $3, $4, $5, $6, $7, $8, now()
		)
	on conflict (vault) do nothing
`

	sqlPolicyFind = `
	select
		vault, investor_share_bps, daily_cap, min_payout, y0, quote_asset, creator_account, bump
	from policies
	where vault = $1
`
)

// PolicyRepository persists the immutable-after-init policy record for a
// vault.
type PolicyRepository struct {
	batchHandler BatchHandler
}

func NewPolicyRepository(db BatchHandler) *PolicyRepository {
	return &PolicyRepository{batchHandler: db}
}

func readPolicy(scan func(...interface{}) error) (interface{}, error) {
	p := domain.Policy{}
	var vault, quoteAsset, creatorAccount string
	err := scan(&vault, &p.InvestorShareBps, &p.DailyCap, &p.MinPayout, &p.Y0, &quoteAsset, &creatorAccount, &p.Bump)
	if err != nil {
		return &p, err
	}
	if p.Vault, err = solana.PublicKeyFromBase58(vault); err != nil {
		return &p, err
	}
	if p.QuoteAsset, err = solana.PublicKeyFromBase58(quoteAsset); err != nil {
		return &p, err
	}
	p.CreatorAccount, err = solana.PublicKeyFromBase58(creatorAccount)
	return &p, err
}

// InsertIfNotExists persists policy, returning domain.ErrPolicyAlreadyExists
// if a policy row already exists for its vault. The insert's "on conflict
// do nothing" clause affects zero rows in that case, and the required
// Affect: 1 turns that into a batch error.
func (repo *PolicyRepository) InsertIfNotExists(policy domain.Policy) error {
	_, err := repo.batchHandler.Batch(&BatchOptionSerializable, []sqlbatch.Command{
		{
			Query: sqlPolicyInsertIfNotExists,
			Args: []interface{}{
				policy.Vault.String(), policy.InvestorShareBps, policy.DailyCap, policy.MinPayout,
				policy.Y0, policy.QuoteAsset.String(), policy.CreatorAccount.String(), policy.Bump,
			},
			Affect: 1,
		},
	})
	if err != nil {
		return domain.ErrPolicyAlreadyExists
	}
	return nil
}

func (repo *PolicyRepository) Find(vault solana.PublicKey) (*domain.Policy, error) {
	results, err := repo.batchHandler.Batch(&BatchOptionNormalReadOnly, []sqlbatch.Command{
		{
			Query:   sqlPolicyFind,
			Args:    []interface{}{vault.String()},
			ReadOne: readPolicy,
		},
	})
	if err != nil {
		return nil, err
	}
	result, _ := results[0].(*domain.Policy)
	if result == nil || result.Vault.IsZero() {
		return nil, domain.ErrPolicyNotFound
	}
	return result, nil
}
