package domain

import "github.com/gagliardetto/solana-go"

// Progress is the mutable per-vault distribution state. It is created once
// at init with a completed, empty window and is thereafter mutated only by
// the distribution engine.
type Progress struct {
	Vault                     solana.PublicKey
	WindowStartTS             int64
	DayComplete               bool
	Cursor                    uint64
	ClaimedThisWindow         uint64
	InvestorBudgetThisWindow  uint64
	DistributedToInvestors    uint64
	LockedTotalThisWindow     uint64
	CarryOver                 uint64
	Bump                      uint8
}

// NewProgress returns the zero-value progress record for a freshly
// initialized vault: no window has ever opened, and the (nonexistent)
// current day is considered complete so the first distribute() call is free
// to open window zero.
func NewProgress(vault solana.PublicKey, bump uint8) Progress {
	return Progress{
		Vault:       vault,
		DayComplete: true,
		Bump:        bump,
	}
}

// WindowElapsed reports whether 24 hours have passed since the current
// window opened.
func (p Progress) WindowElapsed(now int64) bool {
	return now >= p.WindowStartTS+86400
}

// RemainingDailyCap returns how much more may be paid to investors this
// window given policy's daily cap. An uncapped policy (dailyCap == 0)
// returns the max uint64 so callers can treat it as "unbounded".
func (p Progress) RemainingDailyCap(dailyCap uint64) uint64 {
	if dailyCap == 0 {
		return ^uint64(0)
	}
	if p.DistributedToInvestors >= dailyCap {
		return 0
	}
	return dailyCap - p.DistributedToInvestors
}
