package usecase

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/abkGami/star-damm-honorary-fee/domain"
	"github.com/abkGami/star-damm-honorary-fee/domain/kernel"
	"github.com/abkGami/star-damm-honorary-fee/interface/vesting"
)

// LockedAmountInteractor is the pure function of external vesting state
// that the window controller and distribution engine rely on: it turns a
// cohort of stream references into locked amounts, and sums them.
type LockedAmountInteractor struct {
	reader vesting.LockedReader
}

func NewLockedAmountInteractor(reader vesting.LockedReader) *LockedAmountInteractor {
	return &LockedAmountInteractor{reader: reader}
}

// LockedOf reads the currently-locked amount for a single stream.
func (i *LockedAmountInteractor) LockedOf(ctx context.Context, streamRef, quoteAsset solana.PublicKey) (uint64, error) {
	return i.reader.LockedOf(ctx, streamRef, quoteAsset)
}

// LockedTotal reads every entry in the page and returns the per-entry
// locked amounts alongside their checked sum.
func (i *LockedAmountInteractor) LockedTotal(ctx context.Context, entries []domain.CohortEntry, quoteAsset solana.PublicKey) ([]domain.LockedEntry, uint64, error) {
	locked := make([]domain.LockedEntry, 0, len(entries))
	total := uint64(0)

	for _, entry := range entries {
		amount, err := i.reader.LockedOf(ctx, entry.StreamRef, quoteAsset)
		if err != nil {
			return nil, 0, err
		}
		total, err = kernel.SafeAdd(total, amount)
		if err != nil {
			return nil, 0, err
		}
		locked = append(locked, domain.LockedEntry{CohortEntry: entry, Locked: amount})
	}

	return locked, total, nil
}
