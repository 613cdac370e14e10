package domain

import "errors"

// Error taxonomy for the distribution engine. Every distribute/initialize
// call either succeeds and commits all of its state changes, or fails with
// one of these and leaves stored state untouched.
var (
	ErrBaseFeesInClaim        = errors.New("base token fees detected during claim")
	ErrCooldownNotElapsed     = errors.New("24 hour cooldown not yet elapsed")
	ErrInvalidPaginationCursor = errors.New("invalid pagination cursor")
	ErrInvalidStreamAccount   = errors.New("invalid streamflow stream account")
	ErrInvalidQuoteMint       = errors.New("invalid quote mint for this vault")
	ErrInvalidTreasury        = errors.New("treasury or recipient ATA not denominated in quote asset")
	ErrArithmeticOverflow     = errors.New("arithmetic overflow")
	ErrDistributionComplete   = errors.New("distribution already complete for this day")
	ErrInvalidShareBps        = errors.New("investor fee share bps must be within [0, 10000]")
	ErrPolicyAlreadyExists    = errors.New("policy already initialized for this vault")
	ErrPolicyNotFound         = errors.New("no policy found for this vault")
	ErrProgressNotFound       = errors.New("no progress found for this vault")
	ErrInvalidY0              = errors.New("y0 (total investor allocation) must be non-zero")
)
