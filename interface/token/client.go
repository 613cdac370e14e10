package token

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/gagliardetto/solana-go/rpc"
)

// Sender is the minimal transaction-submission capability the treasury
// authority needs: build, sign and send a transaction, then wait for its
// outcome. Signing and account/rent bookkeeping are runtime primitives of
// the host ledger and live behind this interface rather than in this
// package.
type Sender interface {
	SendAndConfirm(ctx context.Context, instructions []solana.Instruction, signers []solana.PrivateKey) (solana.Signature, error)
}

// Client transfers SPL tokens by building and submitting a standard SPL
// Token `Transfer` instruction that names the given authority; the
// transaction is signed only with the client's authoritySigner key.
type Client struct {
	sender     Sender
	authoritySigner solana.PrivateKey
}

func NewClient(sender Sender, authoritySigner solana.PrivateKey) *Client {
	return &Client{sender: sender, authoritySigner: authoritySigner}
}

func (c *Client) Transfer(ctx context.Context, from, to, authority solana.PublicKey, amount uint64) error {
	ix := token.NewTransferInstruction(amount, from, to, authority, nil).Build()

	sig, err := c.sender.SendAndConfirm(ctx, []solana.Instruction{ix}, []solana.PrivateKey{c.authoritySigner})
	if err != nil {
		return fmt.Errorf("token: transfer %d from %s to %s: %w", amount, from, to, err)
	}
	fmt.Printf("✅ transfer %d from %s to %s - %s\n", amount, from, to, sig)
	return nil
}

// RPCSender is a Sender backed directly by an RPC client, for wiring the
// crank's cmd package without introducing a heavier transaction builder
// than this service needs. SendAndConfirm returns as soon as the
// transaction is submitted; it does not wait for confirmation.
type RPCSender struct {
	rpc *rpc.Client
}

func NewRPCSender(rpcClient *rpc.Client) *RPCSender {
	return &RPCSender{rpc: rpcClient}
}

func (s *RPCSender) SendAndConfirm(ctx context.Context, instructions []solana.Instruction, signers []solana.PrivateKey) (solana.Signature, error) {
	recent, err := s.rpc.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Signature{}, err
	}

	tx, err := solana.NewTransaction(instructions, recent.Value.Blockhash)
	if err != nil {
		return solana.Signature{}, err
	}

	signerByKey := make(map[solana.PublicKey]solana.PrivateKey, len(signers))
	for _, signer := range signers {
		signerByKey[signer.PublicKey()] = signer
	}

	if _, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if pk, ok := signerByKey[key]; ok {
			return &pk
		}
		return nil
	}); err != nil {
		return solana.Signature{}, err
	}

	return s.rpc.SendTransaction(ctx, tx)
}
