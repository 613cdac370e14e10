package amm

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// FakeClaimer is an in-memory FeeClaimer for tests. Each call to ClaimFees
// pops the next queued result.
type FakeClaimer struct {
	Results []ClaimResult
	calls   int
}

func NewFakeClaimer(results ...ClaimResult) *FakeClaimer {
	return &FakeClaimer{Results: results}
}

func (f *FakeClaimer) ClaimFees(ctx context.Context, position, treasury solana.PublicKey) (ClaimResult, error) {
	if f.calls >= len(f.Results) {
		return ClaimResult{}, nil
	}
	result := f.Results[f.calls]
	f.calls++
	return result, nil
}

// Calls reports how many times ClaimFees has been invoked.
func (f *FakeClaimer) Calls() int { return f.calls }
