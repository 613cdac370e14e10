package vesting

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/abkGami/star-damm-honorary-fee/domain"
)

// FakeReader is an in-memory LockedReader for tests, keyed by stream
// reference. It lets callers simulate a schema-mismatched or wrong-quote
// stream by omitting an entry or marking one invalid.
type FakeReader struct {
	Locked  map[solana.PublicKey]uint64
	Invalid map[solana.PublicKey]bool
}

func NewFakeReader() *FakeReader {
	return &FakeReader{
		Locked:  make(map[solana.PublicKey]uint64),
		Invalid: make(map[solana.PublicKey]bool),
	}
}

func (f *FakeReader) Set(streamRef solana.PublicKey, locked uint64) *FakeReader {
	f.Locked[streamRef] = locked
	return f
}

func (f *FakeReader) MarkInvalid(streamRef solana.PublicKey) *FakeReader {
	f.Invalid[streamRef] = true
	return f
}

func (f *FakeReader) LockedOf(ctx context.Context, streamRef solana.PublicKey, quoteAsset solana.PublicKey) (uint64, error) {
	if f.Invalid[streamRef] {
		return 0, domain.ErrInvalidStreamAccount
	}
	locked, ok := f.Locked[streamRef]
	if !ok {
		return 0, domain.ErrInvalidStreamAccount
	}
	return locked, nil
}
