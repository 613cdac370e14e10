package usecase

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"

	"github.com/abkGami/star-damm-honorary-fee/domain"
	"github.com/abkGami/star-damm-honorary-fee/domain/kernel"
	"github.com/abkGami/star-damm-honorary-fee/interface/token"
)

// PolicyReader is the read-only policy lookup the distribution engine
// needs. *repository.PolicyRepository satisfies it against Postgres; tests
// use an in-memory fake.
type PolicyReader interface {
	Find(vault solana.PublicKey) (*domain.Policy, error)
}

// ProgressStore is the progress read/write capability the distribution
// engine needs. *repository.ProgressRepository satisfies it against
// Postgres; tests use an in-memory fake.
type ProgressStore interface {
	Find(vault solana.PublicKey) (*domain.Progress, error)
	Save(progress domain.Progress) error
}

// DistributionInteractor is the crank's entry point: it drives the
// window/claim controller, prices and pays one page of the investor
// cohort, and finalizes the day on its final page.
type DistributionInteractor struct {
	programID solana.PublicKey

	policyRepo   PolicyReader
	progressRepo ProgressStore

	window       *WindowController
	lockedReader *LockedAmountInteractor
	transferer   token.Transferer
	emitter      *EventEmitter
}

func NewDistributionInteractor(
	programID solana.PublicKey,
	policyRepo PolicyReader,
	progressRepo ProgressStore,
	window *WindowController,
	lockedReader *LockedAmountInteractor,
	transferer token.Transferer,
	emitter *EventEmitter,
) *DistributionInteractor {
	return &DistributionInteractor{
		programID:    programID,
		policyRepo:   policyRepo,
		progressRepo: progressRepo,
		window:       window,
		lockedReader: lockedReader,
		transferer:   transferer,
		emitter:      emitter,
	}
}

// DistributePageParams is the caller-supplied input to a single distribute()
// call: a contiguous slice of the cohort starting at ExpectedCursor, or,
// on a call that opens a new window, the whole cohort from index 0 (with
// ExpectedCursor still equal to the cursor stored by the prior day).
type DistributePageParams struct {
	Vault          solana.PublicKey
	Position       solana.PublicKey
	Pairs          []domain.CohortEntry
	ExpectedCursor uint64
	CohortSize     uint64
	Now            time.Time
}

// DistributePageResult summarizes the page just applied.
type DistributePageResult struct {
	InvestorsPaid uint64
	PageTotal     uint64
	WindowOpened  bool
	DayClosed     bool
	CreatorAmount uint64
}

// Distribute applies one page of the cohort against a vault's current
// window, per §4.6. Every path either commits the full page or returns an
// error with no persisted state change.
func (d *DistributionInteractor) Distribute(ctx context.Context, params DistributePageParams) (DistributePageResult, error) {
	policy, err := d.policyRepo.Find(params.Vault)
	if err != nil {
		return DistributePageResult{}, err
	}

	progress, err := d.progressRepo.Find(params.Vault)
	if err != nil {
		return DistributePageResult{}, err
	}

	if params.ExpectedCursor != progress.Cursor {
		return DistributePageResult{}, domain.ErrInvalidPaginationCursor
	}

	now := params.Now.Unix()

	if progress.DayComplete && progress.WindowStartTS != 0 && !progress.WindowElapsed(now) {
		return DistributePageResult{}, domain.ErrCooldownNotElapsed
	}

	positionOwnerPDA, _, err := domain.PositionOwnerPDA(params.Vault, d.programID)
	if err != nil {
		return DistributePageResult{}, err
	}
	treasury, _, err := domain.TreasuryPDA(params.Vault, policy.QuoteAsset, d.programID)
	if err != nil {
		return DistributePageResult{}, err
	}

	result := DistributePageResult{}

	if Due(*progress, now) {
		if uint64(len(params.Pairs)) != params.CohortSize {
			return DistributePageResult{}, domain.ErrInvalidPaginationCursor
		}

		opened, err := d.window.OpenWindow(ctx, *policy, *progress, now, params.Position, treasury, params.Pairs)
		if err != nil {
			return DistributePageResult{}, err
		}
		*progress = opened
		result.WindowOpened = true

		d.emitter.Emit(params.Vault, domain.QuoteFeesClaimed{
			Vault:      params.Vault,
			Amount:     progress.ClaimedThisWindow,
			QuoteAsset: policy.QuoteAsset,
			Timestamp:  now,
		})
	}

	pendingDustThisPage := uint64(0)
	pageTotal := uint64(0)
	investorsPaid := uint64(0)
	pageStart := progress.Cursor

	for _, pair := range params.Pairs {
		locked, err := d.lockedReader.LockedOf(ctx, pair.StreamRef, policy.QuoteAsset)
		if err != nil {
			return DistributePageResult{}, err
		}

		payout := uint64(0)
		if progress.LockedTotalThisWindow > 0 {
			payout, err = kernel.Weighted(progress.InvestorBudgetThisWindow, locked, progress.LockedTotalThisWindow)
			if err != nil {
				return DistributePageResult{}, err
			}
		}

		remainingCap := progress.RemainingDailyCap(policy.DailyCap)
		if payout > remainingCap {
			payout = remainingCap
		}

		if payout < policy.MinPayout {
			pendingDustThisPage, err = kernel.SafeAdd(pendingDustThisPage, payout)
			if err != nil {
				return DistributePageResult{}, err
			}
		} else {
			if err := d.transferer.Transfer(ctx, treasury, pair.Recipient, positionOwnerPDA, payout); err != nil {
				return DistributePageResult{}, err
			}
			progress.DistributedToInvestors, err = kernel.SafeAdd(progress.DistributedToInvestors, payout)
			if err != nil {
				return DistributePageResult{}, err
			}
			pageTotal, err = kernel.SafeAdd(pageTotal, payout)
			if err != nil {
				return DistributePageResult{}, err
			}
			investorsPaid++
		}

		progress.Cursor++
	}

	result.InvestorsPaid = investorsPaid
	result.PageTotal = pageTotal

	if progress.Cursor == params.CohortSize {
		creatorAmount, err := kernel.SafeSub(progress.ClaimedThisWindow, progress.DistributedToInvestors)
		if err != nil {
			return DistributePageResult{}, err
		}

		if creatorAmount > 0 {
			if err := d.transferer.Transfer(ctx, treasury, policy.CreatorAccount, positionOwnerPDA, creatorAmount); err != nil {
				return DistributePageResult{}, err
			}
		}

		progress.CarryOver, err = kernel.SafeAdd(progress.CarryOver, pendingDustThisPage)
		if err != nil {
			return DistributePageResult{}, err
		}
		progress.DayComplete = true

		result.DayClosed = true
		result.CreatorAmount = creatorAmount

		d.emitter.Emit(params.Vault, domain.CreatorPayoutDayClosed{
			Vault:                       params.Vault,
			CreatorAmount:               creatorAmount,
			TotalClaimed:                progress.ClaimedThisWindow,
			TotalDistributedToInvestors: progress.DistributedToInvestors,
			Timestamp:                   now,
		})
	}

	if err := d.progressRepo.Save(*progress); err != nil {
		return DistributePageResult{}, err
	}

	d.emitter.Emit(params.Vault, domain.InvestorPayoutPage{
		Vault:         params.Vault,
		PageStart:     pageStart,
		PageEnd:       progress.Cursor,
		PageTotal:     pageTotal,
		InvestorsPaid: investorsPaid,
		Timestamp:     now,
	})

	return result, nil
}
