// Package amm models the AMM pool as an external collaborator: the engine
// only needs its fee-claim primitive, `claim_fees(position, treasury) ->
// (quote_amount, base_amount)`. The pool's own mechanics (how the honorary
// position is made to accrue quote-only fees) are out of scope.
package amm

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// ClaimResult is the outcome of a fee claim: the quote-asset amount moved
// into the treasury, and the base-asset amount (which must be zero).
type ClaimResult struct {
	QuoteAmount uint64
	BaseAmount  uint64
}

// FeeClaimer claims accumulated fees from an honorary position into a
// program-owned treasury.
type FeeClaimer interface {
	ClaimFees(ctx context.Context, position, treasury solana.PublicKey) (ClaimResult, error)
}
