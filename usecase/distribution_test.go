package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"

	"github.com/abkGami/star-damm-honorary-fee/domain"
	"github.com/abkGami/star-damm-honorary-fee/interface/amm"
	"github.com/abkGami/star-damm-honorary-fee/interface/token"
	"github.com/abkGami/star-damm-honorary-fee/interface/vesting"
)

type cohortFixture struct {
	entries    []domain.CohortEntry
	recipients []solana.PublicKey
}

func makeCohort(n int, reader *vesting.FakeReader, locked []uint64) cohortFixture {
	fixture := cohortFixture{}
	for i := 0; i < n; i++ {
		stream := solana.NewWallet().PublicKey()
		recipient := solana.NewWallet().PublicKey()
		reader.Set(stream, locked[i])
		fixture.entries = append(fixture.entries, domain.CohortEntry{StreamRef: stream, Recipient: recipient})
		fixture.recipients = append(fixture.recipients, recipient)
	}
	return fixture
}

func newHarness(claim amm.ClaimResult, locked []uint64) (*DistributionInteractor, *fakePolicyStore, *fakeProgressStore, *token.FakeTransferer, cohortFixture, solana.PublicKey) {
	programID := solana.NewWallet().PublicKey()
	vault := solana.NewWallet().PublicKey()

	reader := vesting.NewFakeReader()
	cohort := makeCohort(len(locked), reader, locked)

	policyStore := newFakePolicyStore()
	progressStore := newFakeProgressStore()
	transferer := token.NewFakeTransferer()

	policy := domain.Policy{
		Vault:            vault,
		InvestorShareBps: 7500,
		DailyCap:         0,
		MinPayout:        1000,
		Y0:               10_000_000,
		QuoteAsset:       solana.NewWallet().PublicKey(),
		CreatorAccount:   solana.NewWallet().PublicKey(),
	}
	policyStore.byVault[vault] = policy
	progressStore.byVault[vault] = domain.NewProgress(vault, 255)

	lockedReader := NewLockedAmountInteractor(reader)
	window := NewWindowController(amm.NewFakeClaimer(claim), lockedReader)
	interactor := NewDistributionInteractor(programID, policyStore, progressStore, window, lockedReader, transferer, NewEventEmitter(nil))

	return interactor, policyStore, progressStore, transferer, cohort, vault
}

func TestDistribute_HappyPathOnePage(t *testing.T) {
	interactor, _, progressStore, transferer, cohort, vault := newHarness(
		amm.ClaimResult{QuoteAmount: 2_000_000},
		[]uint64{5_000_000, 3_000_000, 2_000_000},
	)

	result, err := interactor.Distribute(context.Background(), DistributePageParams{
		Vault:          vault,
		Pairs:          cohort.entries,
		ExpectedCursor: 0,
		CohortSize:     3,
		Now:            time.Unix(1_700_000_000, 0),
	})
	if err != nil {
		t.Fatalf("Distribute: %v", err)
	}
	if !result.DayClosed {
		t.Fatalf("expected day to close in a single full-cohort page")
	}
	if result.CreatorAmount != 500_000 {
		t.Fatalf("creator amount = %d, want 500000", result.CreatorAmount)
	}
	if got := transferer.TotalTransferred(); got != 2_000_000 {
		t.Fatalf("total transferred = %d, want 2000000 (conservation)", got)
	}

	want := []uint64{750_000, 450_000, 300_000}
	for i, call := range transferer.Calls[:3] {
		if call.Amount != want[i] {
			t.Errorf("investor %d payout = %d, want %d", i, call.Amount, want[i])
		}
	}

	progress, _ := progressStore.Find(vault)
	if progress.CarryOver != 0 {
		t.Errorf("carry over = %d, want 0", progress.CarryOver)
	}
}

func TestDistribute_DustCarry(t *testing.T) {
	interactor, policyStore, progressStore, transferer, cohort, vault := newHarness(
		amm.ClaimResult{QuoteAmount: 2_000_000},
		[]uint64{5_000_000, 3_000_000, 2_000_000},
	)
	policy, _ := policyStore.Find(vault)
	policy.MinPayout = 500_000
	policyStore.byVault[vault] = *policy

	result, err := interactor.Distribute(context.Background(), DistributePageParams{
		Vault:          vault,
		Pairs:          cohort.entries,
		ExpectedCursor: 0,
		CohortSize:     3,
		Now:            time.Unix(1_700_000_000, 0),
	})
	if err != nil {
		t.Fatalf("Distribute: %v", err)
	}
	if result.CreatorAmount != 1_250_000 {
		t.Fatalf("creator amount = %d, want 1250000", result.CreatorAmount)
	}
	if got := transferer.TotalTransferred(); got != 750_000+1_250_000 {
		t.Fatalf("total transferred = %d", got)
	}

	progress, _ := progressStore.Find(vault)
	if progress.CarryOver != 750_000 {
		t.Errorf("carry over = %d, want 750000", progress.CarryOver)
	}
	if progress.DistributedToInvestors != 750_000 {
		t.Errorf("distributed = %d, want 750000", progress.DistributedToInvestors)
	}
}

func TestDistribute_DailyCapTruncation(t *testing.T) {
	interactor, policyStore, _, transferer, cohort, vault := newHarness(
		amm.ClaimResult{QuoteAmount: 2_000_000},
		[]uint64{5_000_000, 3_000_000, 2_000_000},
	)
	policy, _ := policyStore.Find(vault)
	policy.DailyCap = 1_000_000
	policyStore.byVault[vault] = *policy

	result, err := interactor.Distribute(context.Background(), DistributePageParams{
		Vault:          vault,
		Pairs:          cohort.entries,
		ExpectedCursor: 0,
		CohortSize:     3,
		Now:            time.Unix(1_700_000_000, 0),
	})
	if err != nil {
		t.Fatalf("Distribute: %v", err)
	}
	if result.CreatorAmount != 1_000_000 {
		t.Fatalf("creator amount = %d, want 1000000", result.CreatorAmount)
	}

	want := []uint64{750_000, 250_000}
	for i, w := range want {
		if transferer.Calls[i].Amount != w {
			t.Errorf("investor %d payout = %d, want %d", i, transferer.Calls[i].Amount, w)
		}
	}
	// Third investor's capped payout is 0, below min_payout, so no transfer
	// is issued for it: only two investor transfers plus the creator's.
	if len(transferer.Calls) != 3 {
		t.Fatalf("expected 2 investor transfers + 1 creator transfer, got %d", len(transferer.Calls))
	}
}

func TestDistribute_ZeroLocked(t *testing.T) {
	interactor, _, _, transferer, cohort, vault := newHarness(
		amm.ClaimResult{QuoteAmount: 2_000_000},
		[]uint64{0, 0, 0},
	)

	result, err := interactor.Distribute(context.Background(), DistributePageParams{
		Vault:          vault,
		Pairs:          cohort.entries,
		ExpectedCursor: 0,
		CohortSize:     3,
		Now:            time.Unix(1_700_000_000, 0),
	})
	if err != nil {
		t.Fatalf("Distribute: %v", err)
	}
	if result.CreatorAmount != 2_000_000 {
		t.Fatalf("creator amount = %d, want 2000000", result.CreatorAmount)
	}
	if len(transferer.Calls) != 1 {
		t.Fatalf("expected only the creator transfer, got %d calls", len(transferer.Calls))
	}
}

func TestDistribute_CooldownNotElapsed(t *testing.T) {
	interactor, _, _, _, cohort, vault := newHarness(
		amm.ClaimResult{QuoteAmount: 2_000_000},
		[]uint64{5_000_000, 3_000_000, 2_000_000},
	)

	windowOpen := time.Unix(1_700_000_000, 0)
	if _, err := interactor.Distribute(context.Background(), DistributePageParams{
		Vault:          vault,
		Pairs:          cohort.entries,
		ExpectedCursor: 0,
		CohortSize:     3,
		Now:            windowOpen,
	}); err != nil {
		t.Fatalf("first Distribute: %v", err)
	}

	_, err := interactor.Distribute(context.Background(), DistributePageParams{
		Vault:          vault,
		Pairs:          cohort.entries,
		ExpectedCursor: 3,
		CohortSize:     3,
		Now:            windowOpen.Add(1 * time.Hour),
	})
	if err != domain.ErrCooldownNotElapsed {
		t.Fatalf("err = %v, want ErrCooldownNotElapsed", err)
	}
}

func TestDistribute_PaginationResumeAndStaleCursorRejected(t *testing.T) {
	interactor, _, progressStore, _, cohort, vault := newHarness(
		amm.ClaimResult{QuoteAmount: 1000},
		[]uint64{0, 0, 0, 0, 0},
	)

	// Seed an already-open window so this test isolates cursor mechanics
	// from window-open's full-cohort requirement.
	progress, _ := progressStore.Find(vault)
	progress.WindowStartTS = 1_700_000_000
	progress.DayComplete = false
	progress.ClaimedThisWindow = 1000
	progressStore.Save(*progress)

	now := time.Unix(1_700_000_100, 0)

	if _, err := interactor.Distribute(context.Background(), DistributePageParams{
		Vault: vault, Pairs: cohort.entries[0:2], ExpectedCursor: 0, CohortSize: 5, Now: now,
	}); err != nil {
		t.Fatalf("page 1: %v", err)
	}

	result2, err := interactor.Distribute(context.Background(), DistributePageParams{
		Vault: vault, Pairs: cohort.entries[2:4], ExpectedCursor: 2, CohortSize: 5, Now: now,
	})
	if err != nil {
		t.Fatalf("page 2: %v", err)
	}
	if result2.DayClosed {
		t.Fatalf("page 2 should not close the day")
	}

	// A concurrent duplicate of page 2 with the now-stale cursor must be
	// rejected without mutating state.
	if _, err := interactor.Distribute(context.Background(), DistributePageParams{
		Vault: vault, Pairs: cohort.entries[2:4], ExpectedCursor: 2, CohortSize: 5, Now: now,
	}); err != domain.ErrInvalidPaginationCursor {
		t.Fatalf("stale replay err = %v, want ErrInvalidPaginationCursor", err)
	}

	result3, err := interactor.Distribute(context.Background(), DistributePageParams{
		Vault: vault, Pairs: cohort.entries[4:5], ExpectedCursor: 4, CohortSize: 5, Now: now,
	})
	if err != nil {
		t.Fatalf("page 3: %v", err)
	}
	if !result3.DayClosed {
		t.Fatalf("final page should close the day")
	}
	if result3.CreatorAmount != 1000 {
		t.Fatalf("creator amount = %d, want 1000", result3.CreatorAmount)
	}

	progress, _ = progressStore.Find(vault)
	if progress.Cursor != 5 {
		t.Fatalf("cursor = %d, want 5", progress.Cursor)
	}
}
