package domain

import "github.com/gagliardetto/solana-go"

// CohortEntry is a single (stream, recipient) pair supplied by the caller
// as call input. Cohort ordering is an external responsibility: the engine
// trusts the crank to supply the same ordering across every page of a
// single window.
type CohortEntry struct {
	StreamRef solana.PublicKey
	Recipient solana.PublicKey
}

// LockedEntry pairs a cohort entry with the locked amount the vesting
// oracle reported for it, after validation.
type LockedEntry struct {
	CohortEntry
	Locked uint64
}
