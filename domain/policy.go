package domain

import "github.com/gagliardetto/solana-go"

// Policy is the immutable-after-init configuration for a vault's honorary
// position. It is created once by initialize() and read-only thereafter.
type Policy struct {
	Vault             solana.PublicKey
	InvestorShareBps  uint16
	DailyCap          uint64
	MinPayout         uint64
	Y0                uint64
	QuoteAsset        solana.PublicKey
	CreatorAccount    solana.PublicKey
	Bump              uint8
}

// Validate checks the invariants that must hold before a policy is
// persisted: the investor share is a legal basis-point value and Y0, the
// denominator of the locked-fraction calculation, is non-zero.
func (p Policy) Validate() error {
	if p.InvestorShareBps > 10000 {
		return ErrInvalidShareBps
	}
	if p.Y0 == 0 {
		return ErrInvalidY0
	}
	return nil
}
