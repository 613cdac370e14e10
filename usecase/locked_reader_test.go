package usecase

import (
	"context"
	"testing"

	"github.com/gagliardetto/solana-go"

	"github.com/abkGami/star-damm-honorary-fee/domain"
	"github.com/abkGami/star-damm-honorary-fee/interface/vesting"
)

func TestLockedAmountInteractor_LockedTotal(t *testing.T) {
	reader := vesting.NewFakeReader()
	quoteAsset := solana.NewWallet().PublicKey()
	entries := make([]domain.CohortEntry, 3)
	locked := []uint64{100, 200, 300}
	for i := range entries {
		stream := solana.NewWallet().PublicKey()
		reader.Set(stream, locked[i])
		entries[i] = domain.CohortEntry{StreamRef: stream}
	}

	interactor := NewLockedAmountInteractor(reader)
	perEntry, total, err := interactor.LockedTotal(context.Background(), entries, quoteAsset)
	if err != nil {
		t.Fatalf("LockedTotal: %v", err)
	}
	if total != 600 {
		t.Fatalf("total = %d, want 600", total)
	}
	for i, e := range perEntry {
		if e.Locked != locked[i] {
			t.Errorf("entry %d locked = %d, want %d", i, e.Locked, locked[i])
		}
	}
}

func TestLockedAmountInteractor_InvalidStream(t *testing.T) {
	reader := vesting.NewFakeReader()
	quoteAsset := solana.NewWallet().PublicKey()
	stream := solana.NewWallet().PublicKey()
	reader.Set(stream, 100).MarkInvalid(stream)

	interactor := NewLockedAmountInteractor(reader)
	_, _, err := interactor.LockedTotal(context.Background(), []domain.CohortEntry{{StreamRef: stream}}, quoteAsset)
	if err != domain.ErrInvalidStreamAccount {
		t.Fatalf("err = %v, want ErrInvalidStreamAccount", err)
	}
}
