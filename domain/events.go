package domain

import "github.com/gagliardetto/solana-go"

// Events are append-only structured records emitted at each lifecycle edge.
// Field names follow the honorary-fee program's original event definitions.

type HonoraryPositionInitialized struct {
	Vault            solana.PublicKey
	PositionOwnerPDA solana.PublicKey
	QuoteAsset       solana.PublicKey
	Position         solana.PublicKey
	Timestamp        int64
}

type QuoteFeesClaimed struct {
	Vault      solana.PublicKey
	Amount     uint64
	QuoteAsset solana.PublicKey
	Timestamp  int64
}

type InvestorPayoutPage struct {
	Vault           solana.PublicKey
	PageStart       uint64
	PageEnd         uint64
	PageTotal       uint64
	InvestorsPaid   uint64
	Timestamp       int64
}

type CreatorPayoutDayClosed struct {
	Vault                      solana.PublicKey
	CreatorAmount              uint64
	TotalClaimed               uint64
	TotalDistributedToInvestors uint64
	Timestamp                  int64
}

// Event is implemented by every event kind above, so the emitter and its
// repository can treat them uniformly for logging/storage.
type Event interface {
	eventKind() string
}

func (HonoraryPositionInitialized) eventKind() string { return "HonoraryPositionInitialized" }
func (QuoteFeesClaimed) eventKind() string            { return "QuoteFeesClaimed" }
func (InvestorPayoutPage) eventKind() string          { return "InvestorPayoutPage" }
func (CreatorPayoutDayClosed) eventKind() string      { return "CreatorPayoutDayClosed" }

// Kind returns the human-readable event name, used for logging and storage.
func Kind(e Event) string { return e.eventKind() }
