package usecase

import (
	"context"
	"testing"

	"github.com/gagliardetto/solana-go"

	"github.com/abkGami/star-damm-honorary-fee/domain"
	"github.com/abkGami/star-damm-honorary-fee/interface/amm"
	"github.com/abkGami/star-damm-honorary-fee/interface/vesting"
)

func TestWindowController_OpenWindow_ComputesEligibleShare(t *testing.T) {
	reader := vesting.NewFakeReader()
	stream := solana.NewWallet().PublicKey()
	reader.Set(stream, 4_000_000)

	claimer := amm.NewFakeClaimer(amm.ClaimResult{QuoteAmount: 1_000_000})
	window := NewWindowController(claimer, NewLockedAmountInteractor(reader))

	policy := domain.Policy{InvestorShareBps: 7500, Y0: 8_000_000}
	progress := domain.NewProgress(solana.NewWallet().PublicKey(), 255)

	updated, err := window.OpenWindow(context.Background(), policy, progress, 1_700_000_000,
		solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey(),
		[]domain.CohortEntry{{StreamRef: stream}})
	if err != nil {
		t.Fatalf("OpenWindow: %v", err)
	}

	// f_locked_bps = floor(4_000_000 * 10000 / 8_000_000) = 5000, below the
	// 7500 policy ceiling, so eligible share is 5000 and investor budget is
	// floor(1_000_000 * 5000 / 10000) = 500_000.
	if updated.InvestorBudgetThisWindow != 500_000 {
		t.Fatalf("investor budget = %d, want 500000", updated.InvestorBudgetThisWindow)
	}
	if updated.LockedTotalThisWindow != 4_000_000 {
		t.Fatalf("locked total = %d, want 4000000", updated.LockedTotalThisWindow)
	}
	if updated.DayComplete {
		t.Fatalf("day should be open after OpenWindow")
	}
}

func TestWindowController_OpenWindow_RejectsBaseFees(t *testing.T) {
	claimer := amm.NewFakeClaimer(amm.ClaimResult{QuoteAmount: 1_000_000, BaseAmount: 1})
	window := NewWindowController(claimer, NewLockedAmountInteractor(vesting.NewFakeReader()))

	policy := domain.Policy{InvestorShareBps: 7500, Y0: 1}
	progress := domain.NewProgress(solana.NewWallet().PublicKey(), 255)

	_, err := window.OpenWindow(context.Background(), policy, progress, 1_700_000_000,
		solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey(), nil)
	if err != domain.ErrBaseFeesInClaim {
		t.Fatalf("err = %v, want ErrBaseFeesInClaim", err)
	}
}

func TestWindowController_Due(t *testing.T) {
	progress := domain.NewProgress(solana.NewWallet().PublicKey(), 255)
	if !Due(progress, 1_700_000_000) {
		t.Fatalf("a never-opened window must be due")
	}

	progress.WindowStartTS = 1_700_000_000
	if Due(progress, 1_700_000_000+3600) {
		t.Fatalf("window should not be due before 24h elapses")
	}
	if !Due(progress, 1_700_000_000+86400) {
		t.Fatalf("window should be due exactly at the 24h boundary")
	}
}
