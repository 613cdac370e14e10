package usecase

import (
	"github.com/gagliardetto/solana-go"

	"github.com/abkGami/star-damm-honorary-fee/domain"
)

// fakePolicyStore is an in-memory PolicyReader/PolicyWriter for tests.
type fakePolicyStore struct {
	byVault map[solana.PublicKey]domain.Policy
}

func newFakePolicyStore() *fakePolicyStore {
	return &fakePolicyStore{byVault: make(map[solana.PublicKey]domain.Policy)}
}

func (s *fakePolicyStore) InsertIfNotExists(policy domain.Policy) error {
	if _, exists := s.byVault[policy.Vault]; exists {
		return domain.ErrPolicyAlreadyExists
	}
	s.byVault[policy.Vault] = policy
	return nil
}

func (s *fakePolicyStore) Find(vault solana.PublicKey) (*domain.Policy, error) {
	policy, exists := s.byVault[vault]
	if !exists {
		return nil, domain.ErrPolicyNotFound
	}
	return &policy, nil
}

// fakeProgressStore is an in-memory ProgressStore/ProgressInitializer for
// tests.
type fakeProgressStore struct {
	byVault map[solana.PublicKey]domain.Progress
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{byVault: make(map[solana.PublicKey]domain.Progress)}
}

func (s *fakeProgressStore) InsertIfNotExists(vault solana.PublicKey, bump uint8) error {
	if _, exists := s.byVault[vault]; exists {
		return nil
	}
	s.byVault[vault] = domain.NewProgress(vault, bump)
	return nil
}

func (s *fakeProgressStore) Find(vault solana.PublicKey) (*domain.Progress, error) {
	progress, exists := s.byVault[vault]
	if !exists {
		return nil, domain.ErrProgressNotFound
	}
	return &progress, nil
}

func (s *fakeProgressStore) Save(progress domain.Progress) error {
	s.byVault[progress.Vault] = progress
	return nil
}
