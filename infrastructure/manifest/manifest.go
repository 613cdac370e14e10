// Package manifest reads the crank's cohort file: the ordered list of
// (stream, recipient) pairs the distribution engine trusts the caller to
// supply consistently across every page of a window. Deriving this
// ordering from an indexer or an on-chain registry is outside this
// system's scope; a flat file is the simplest caller contract that
// satisfies §4.5's fixed-ordering requirement.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gagliardetto/solana-go"

	"github.com/abkGami/star-damm-honorary-fee/domain"
)

type entry struct {
	StreamRef string `json:"stream_ref"`
	Recipient string `json:"recipient"`
}

// LoadCohort reads and decodes the cohort manifest at path, preserving the
// file's ordering.
func LoadCohort(path string) ([]domain.CohortEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: reading %s: %w", path, err)
	}

	var entries []entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("manifest: decoding %s: %w", path, err)
	}

	cohort := make([]domain.CohortEntry, 0, len(entries))
	for i, e := range entries {
		streamRef, err := solana.PublicKeyFromBase58(e.StreamRef)
		if err != nil {
			return nil, fmt.Errorf("manifest: entry %d: invalid stream_ref: %w", i, err)
		}
		recipient, err := solana.PublicKeyFromBase58(e.Recipient)
		if err != nil {
			return nil, fmt.Errorf("manifest: entry %d: invalid recipient: %w", i, err)
		}
		cohort = append(cohort, domain.CohortEntry{StreamRef: streamRef, Recipient: recipient})
	}

	return cohort, nil
}
