// Package vesting models the external streaming-vesting protocol as a
// read-only oracle: given a stream account reference, it returns how much
// of the original allocation is still locked. The protocol itself is out
// of scope; only this capability interface is specified.
package vesting

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/abkGami/star-damm-honorary-fee/domain"
)

// LockedReader is the read-only oracle interface consumed by the
// distribution engine's locked-amount reader usecase.
type LockedReader interface {
	// LockedOf returns the amount still locked in streamRef as of now. It
	// fails with domain.ErrInvalidStreamAccount if the account is missing,
	// does not decode as a stream account, or references the wrong quote
	// asset. It does not check that the stream belongs to the vault's
	// cohort.
	LockedOf(ctx context.Context, streamRef solana.PublicKey, quoteAsset solana.PublicKey) (uint64, error)
}

// StreamAccount is the subset of a Streamflow-shaped stream account this
// crank needs to validate and read.
type StreamAccount struct {
	Mint          solana.PublicKey
	Recipient     solana.PublicKey
	DepositedAmount uint64
	WithdrawnAmount uint64
}

// Locked returns the amount of the deposit not yet withdrawn. The stream's
// unlock schedule is not read, so amounts that have vested but have not
// been withdrawn are counted as locked.
func (s StreamAccount) Locked() uint64 {
	if s.WithdrawnAmount >= s.DepositedAmount {
		return 0
	}
	return s.DepositedAmount - s.WithdrawnAmount
}

// Validate checks the stream belongs to the expected quote asset.
func (s StreamAccount) Validate(quoteAsset solana.PublicKey) error {
	if !s.Mint.Equals(quoteAsset) {
		return domain.ErrInvalidStreamAccount
	}
	return nil
}
