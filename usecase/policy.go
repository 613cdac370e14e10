package usecase

import (
	"github.com/gagliardetto/solana-go"

	"github.com/abkGami/star-damm-honorary-fee/domain"
)

// PolicyWriter creates the one-time immutable policy record for a vault.
type PolicyWriter interface {
	InsertIfNotExists(policy domain.Policy) error
}

// ProgressInitializer creates the zeroed progress record for a vault.
type ProgressInitializer interface {
	InsertIfNotExists(vault solana.PublicKey, bump uint8) error
}

// PolicyInteractor drives the one-time initialize() operation: it validates
// the pool's quote-only shape, persists the immutable policy and the
// zeroed progress record, and emits the initialization event.
type PolicyInteractor struct {
	programID    solana.PublicKey
	policyRepo   PolicyWriter
	progressRepo ProgressInitializer
	emitter      *EventEmitter
}

func NewPolicyInteractor(programID solana.PublicKey, policyRepo PolicyWriter, progressRepo ProgressInitializer, emitter *EventEmitter) *PolicyInteractor {
	return &PolicyInteractor{programID: programID, policyRepo: policyRepo, progressRepo: progressRepo, emitter: emitter}
}

// InitializeParams mirrors the on-chain initialize() instruction's
// arguments plus the base-asset hint used for the quote-only preflight
// check the original program's PoolValidator performs.
type InitializeParams struct {
	Vault            solana.PublicKey
	InvestorShareBps uint16
	DailyCap         uint64
	MinPayout        uint64
	Y0               uint64
	QuoteAsset       solana.PublicKey
	CreatorAccount   solana.PublicKey
	BaseAssetHint    solana.PublicKey
	Position         solana.PublicKey
	PolicyBump       uint8
	ProgressBump     uint8
	Now              int64
}

// Initialize validates and persists a vault's policy and initial progress
// record. It fails with domain.ErrPolicyAlreadyExists if the vault was
// already initialized.
func (i *PolicyInteractor) Initialize(params InitializeParams) error {
	if params.QuoteAsset.Equals(params.BaseAssetHint) {
		return domain.ErrInvalidQuoteMint
	}

	positionOwnerPDA, _, err := domain.PositionOwnerPDA(params.Vault, i.programID)
	if err != nil {
		return err
	}

	policy := domain.Policy{
		Vault:            params.Vault,
		InvestorShareBps: params.InvestorShareBps,
		DailyCap:         params.DailyCap,
		MinPayout:        params.MinPayout,
		Y0:               params.Y0,
		QuoteAsset:       params.QuoteAsset,
		CreatorAccount:   params.CreatorAccount,
		Bump:             params.PolicyBump,
	}
	if err := policy.Validate(); err != nil {
		return err
	}

	if err := i.policyRepo.InsertIfNotExists(policy); err != nil {
		return err
	}
	if err := i.progressRepo.InsertIfNotExists(params.Vault, params.ProgressBump); err != nil {
		return err
	}

	i.emitter.Emit(params.Vault, domain.HonoraryPositionInitialized{
		Vault:            params.Vault,
		PositionOwnerPDA: positionOwnerPDA,
		QuoteAsset:       params.QuoteAsset,
		Position:         params.Position,
		Timestamp:        params.Now,
	})

	return nil
}
