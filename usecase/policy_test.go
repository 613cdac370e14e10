package usecase

import (
	"testing"

	"github.com/gagliardetto/solana-go"

	"github.com/abkGami/star-damm-honorary-fee/domain"
)

func TestPolicyInteractor_Initialize(t *testing.T) {
	programID := solana.NewWallet().PublicKey()
	vault := solana.NewWallet().PublicKey()
	quoteAsset := solana.NewWallet().PublicKey()
	baseAsset := solana.NewWallet().PublicKey()

	policyStore := newFakePolicyStore()
	progressStore := newFakeProgressStore()
	interactor := NewPolicyInteractor(programID, policyStore, progressStore, NewEventEmitter(nil))

	err := interactor.Initialize(InitializeParams{
		Vault:            vault,
		InvestorShareBps: 7500,
		DailyCap:         0,
		MinPayout:        1000,
		Y0:               10_000_000,
		QuoteAsset:       quoteAsset,
		CreatorAccount:   solana.NewWallet().PublicKey(),
		BaseAssetHint:    baseAsset,
		Now:              1_700_000_000,
	})
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	if _, err := policyStore.Find(vault); err != nil {
		t.Fatalf("policy not persisted: %v", err)
	}
	if _, err := progressStore.Find(vault); err != nil {
		t.Fatalf("progress not persisted: %v", err)
	}

	if err := interactor.Initialize(InitializeParams{
		Vault: vault, Y0: 1, QuoteAsset: quoteAsset, BaseAssetHint: baseAsset,
	}); err != domain.ErrPolicyAlreadyExists {
		t.Fatalf("second Initialize err = %v, want ErrPolicyAlreadyExists", err)
	}
}

func TestPolicyInteractor_RejectsQuoteEqualsBaseHint(t *testing.T) {
	programID := solana.NewWallet().PublicKey()
	sameMint := solana.NewWallet().PublicKey()

	interactor := NewPolicyInteractor(programID, newFakePolicyStore(), newFakeProgressStore(), NewEventEmitter(nil))

	err := interactor.Initialize(InitializeParams{
		Vault:      solana.NewWallet().PublicKey(),
		Y0:         1,
		QuoteAsset: sameMint,
		BaseAssetHint: sameMint,
	})
	if err != domain.ErrInvalidQuoteMint {
		t.Fatalf("err = %v, want ErrInvalidQuoteMint", err)
	}
}

func TestPolicyInteractor_RejectsInvalidShareBps(t *testing.T) {
	interactor := NewPolicyInteractor(solana.NewWallet().PublicKey(), newFakePolicyStore(), newFakeProgressStore(), NewEventEmitter(nil))

	err := interactor.Initialize(InitializeParams{
		Vault:            solana.NewWallet().PublicKey(),
		InvestorShareBps: 10001,
		Y0:               1,
		QuoteAsset:       solana.NewWallet().PublicKey(),
		BaseAssetHint:    solana.NewWallet().PublicKey(),
	})
	if err != domain.ErrInvalidShareBps {
		t.Fatalf("err = %v, want ErrInvalidShareBps", err)
	}
}
