// Package util holds small formatting helpers shared by the CLI and the
// crank's log lines.
package util

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

// QuoteAmountString renders a raw quote-asset amount (native units, no
// decimals applied) with thousands separators for operator-facing output.
func QuoteAmountString(amount uint64) string {
	return fmt.Sprintf("%v quote units", humanize.Comma(int64(amount)))
}

// BpsString renders a basis-point value as a percentage string.
func BpsString(bps uint16) string {
	return fmt.Sprintf("%.2f%%", float64(bps)/100.0)
}

// ShortAddress renders the first and last few characters of an account
// address for compact log lines, re-encoding through base58 directly
// rather than going through solana.PublicKey.String.
func ShortAddress(addr solana.PublicKey) string {
	full := base58.Encode(addr.Bytes())
	if len(full) <= 12 {
		return full
	}
	return full[:6] + ".." + full[len(full)-6:]
}
