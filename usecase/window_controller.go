package usecase

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/abkGami/star-damm-honorary-fee/domain"
	"github.com/abkGami/star-damm-honorary-fee/domain/kernel"
	"github.com/abkGami/star-damm-honorary-fee/interface/amm"
)

// WindowController decides when a vault's 24-hour distribution window
// rolls over, and performs the at-most-once-per-window claim that opens
// the new one.
type WindowController struct {
	feeClaimer   amm.FeeClaimer
	lockedReader *LockedAmountInteractor
}

func NewWindowController(feeClaimer amm.FeeClaimer, lockedReader *LockedAmountInteractor) *WindowController {
	return &WindowController{feeClaimer: feeClaimer, lockedReader: lockedReader}
}

// Due reports whether the next distribute() call for progress must open a
// new window before paying anyone. A window in progress (day_complete ==
// false) is never expired by the 24h boundary — the next call still
// finishes the current day; only a new claim is gated on elapsed time.
func Due(progress domain.Progress, now int64) bool {
	return progress.WindowStartTS == 0 || (progress.DayComplete && progress.WindowElapsed(now))
}

// OpenWindow performs the Closed -> Open transition: claims fees into the
// treasury, computes the eligible investor share from the full cohort's
// locked total, and returns the progress record for window zero of the new
// day. firstPage must be the entire cohort — the caller enforces this
// before calling OpenWindow, since only it knows the true cohort size.
func (w *WindowController) OpenWindow(ctx context.Context, policy domain.Policy, progress domain.Progress, now int64, position, treasury solana.PublicKey, firstPage []domain.CohortEntry) (domain.Progress, error) {
	_, lockedTotal, err := w.lockedReader.LockedTotal(ctx, firstPage, policy.QuoteAsset)
	if err != nil {
		return progress, err
	}

	claim, err := w.feeClaimer.ClaimFees(ctx, position, treasury)
	if err != nil {
		return progress, err
	}
	if claim.BaseAmount != 0 {
		return progress, domain.ErrBaseFeesInClaim
	}

	eligibleShareBps, err := eligibleShareBps(policy, lockedTotal)
	if err != nil {
		return progress, err
	}

	investorBudget, err := kernel.BpsApply(claim.QuoteAmount, eligibleShareBps)
	if err != nil {
		return progress, err
	}

	progress.WindowStartTS = now
	progress.DayComplete = false
	progress.Cursor = 0
	progress.ClaimedThisWindow = claim.QuoteAmount
	progress.InvestorBudgetThisWindow = investorBudget
	progress.DistributedToInvestors = 0
	progress.LockedTotalThisWindow = lockedTotal

	return progress, nil
}

// eligibleShareBps computes floor(lockedTotal * 10000 / y0), capped at
// 10000, then capped again by the policy's own share ceiling.
func eligibleShareBps(policy domain.Policy, lockedTotal uint64) (uint64, error) {
	fLockedBps, err := kernel.Weighted(lockedTotal, kernel.BasisPointDenominator, policy.Y0)
	if err != nil {
		return 0, err
	}
	if fLockedBps > kernel.BasisPointDenominator {
		fLockedBps = kernel.BasisPointDenominator
	}

	eligible := fLockedBps
	if uint64(policy.InvestorShareBps) < eligible {
		eligible = uint64(policy.InvestorShareBps)
	}
	return eligible, nil
}
