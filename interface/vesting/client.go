package vesting

import (
	"context"
	"fmt"

	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/abkGami/star-damm-honorary-fee/domain"
)

// Client reads Streamflow-shaped stream accounts over Solana RPC. It is the
// production implementation of LockedReader; construction takes an
// *rpc.Client the same way the teacher wraps *liteapi.Client behind its
// ContractInteractor.
type Client struct {
	rpc *rpc.Client
}

func NewClient(rpcClient *rpc.Client) *Client {
	return &Client{rpc: rpcClient}
}

func (c *Client) LockedOf(ctx context.Context, streamRef solana.PublicKey, quoteAsset solana.PublicKey) (uint64, error) {
	info, err := c.rpc.GetAccountInfo(ctx, streamRef)
	if err != nil {
		return 0, fmt.Errorf("vesting: fetching stream account %s: %w", streamRef, err)
	}
	if info == nil || info.Value == nil {
		return 0, domain.ErrInvalidStreamAccount
	}

	var account StreamAccount
	decoder := binary.NewBorshDecoder(info.Value.Data.GetBinary())
	if err := decoder.Decode(&account); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidStreamAccount, err)
	}

	if err := account.Validate(quoteAsset); err != nil {
		return 0, err
	}

	return account.Locked(), nil
}
