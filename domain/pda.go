package domain

import (
	"github.com/gagliardetto/solana-go"
)

// Seeds for PDA derivation, carried over from the honorary-fee program's
// account layout (star_vault / investor_fee_pos_owner / policy / progress /
// treasury) so the off-chain crank derives the exact same addresses the
// on-chain program would.
var (
	VaultSeed                = []byte("star_vault")
	InvestorFeePosOwnerSeed  = []byte("investor_fee_pos_owner")
	PolicySeed               = []byte("policy")
	ProgressSeed             = []byte("progress")
	TreasurySeed             = []byte("treasury")
)

// PositionOwnerPDA derives the PDA that owns the honorary position and
// signs its outbound transfers, for a given vault under the given program.
func PositionOwnerPDA(vault, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(
		[][]byte{VaultSeed, vault.Bytes(), InvestorFeePosOwnerSeed},
		programID,
	)
}

// PolicyPDA derives the address of a vault's policy account.
func PolicyPDA(vault, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(
		[][]byte{VaultSeed, vault.Bytes(), PolicySeed},
		programID,
	)
}

// ProgressPDA derives the address of a vault's progress account.
func ProgressPDA(vault, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(
		[][]byte{VaultSeed, vault.Bytes(), ProgressSeed},
		programID,
	)
}

// TreasuryPDA derives the address of a vault's quote-asset treasury.
func TreasuryPDA(vault, quoteMint, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(
		[][]byte{VaultSeed, vault.Bytes(), TreasurySeed, quoteMint.Bytes()},
		programID,
	)
}
