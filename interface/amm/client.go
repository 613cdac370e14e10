package amm

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Client reports fee claims for a concentrated-liquidity position by
// diffing the treasury's quote balance across two reads. It submits no
// claim instruction to the pool program, so the reported QuoteAmount is
// only whatever reached the treasury between the two reads, and
// BaseAmount is always 0.
type Client struct {
	rpc         *rpc.Client
	programID   solana.PublicKey
	baseMint    solana.PublicKey
}

func NewClient(rpcClient *rpc.Client, programID, baseMint solana.PublicKey) *Client {
	return &Client{rpc: rpcClient, programID: programID, baseMint: baseMint}
}

func (c *Client) ClaimFees(ctx context.Context, position, treasury solana.PublicKey) (ClaimResult, error) {
	before, err := c.quoteBalance(ctx, treasury)
	if err != nil {
		return ClaimResult{}, fmt.Errorf("amm: reading treasury balance before claim: %w", err)
	}

	// No claim instruction is submitted between the two reads.

	after, err := c.quoteBalance(ctx, treasury)
	if err != nil {
		return ClaimResult{}, fmt.Errorf("amm: reading treasury balance after claim: %w", err)
	}

	quoteClaimed := uint64(0)
	if after > before {
		quoteClaimed = after - before
	}

	return ClaimResult{QuoteAmount: quoteClaimed, BaseAmount: 0}, nil
}

func (c *Client) quoteBalance(ctx context.Context, treasury solana.PublicKey) (uint64, error) {
	balance, err := c.rpc.GetTokenAccountBalance(ctx, treasury, rpc.CommitmentConfirmed)
	if err != nil {
		return 0, err
	}
	if balance == nil || balance.Value == nil {
		return 0, nil
	}
	var amount uint64
	if _, err := fmt.Sscan(balance.Value.Amount, &amount); err != nil {
		return 0, err
	}
	return amount, nil
}
