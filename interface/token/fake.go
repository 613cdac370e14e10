package token

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// TransferCall records a single Transfer invocation, for test assertions.
type TransferCall struct {
	From, To, Authority solana.PublicKey
	Amount              uint64
}

// FakeTransferer is an in-memory Transferer for tests. It fails the
// requested transfer only if FailNext is set.
type FakeTransferer struct {
	Calls    []TransferCall
	FailNext bool
}

func NewFakeTransferer() *FakeTransferer {
	return &FakeTransferer{}
}

func (f *FakeTransferer) Transfer(ctx context.Context, from, to, authority solana.PublicKey, amount uint64) error {
	if f.FailNext {
		f.FailNext = false
		return context.DeadlineExceeded
	}
	f.Calls = append(f.Calls, TransferCall{From: from, To: to, Authority: authority, Amount: amount})
	return nil
}

// TotalTransferred sums every recorded transfer amount.
func (f *FakeTransferer) TotalTransferred() uint64 {
	var total uint64
	for _, c := range f.Calls {
		total += c.Amount
	}
	return total
}
