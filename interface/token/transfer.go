// Package token models the token-transfer primitive as a black box:
// transfer(from, to, amount) either succeeds atomically or fails. Rent,
// account creation and signature verification are runtime primitives of
// the host ledger and out of scope.
package token

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// Transferer moves amount of the quote asset from one token account to
// another, signed by authority.
type Transferer interface {
	Transfer(ctx context.Context, from, to, authority solana.PublicKey, amount uint64) error
}
