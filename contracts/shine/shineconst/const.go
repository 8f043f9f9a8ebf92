/*
Package shineconst contains constants shared by the Shine contract and the code
interacting with it.
*/
package shineconst

import "github.com/shinetoken/shine-contract/common"

// Panic messages produced by the contract. Off-chain code can match FAULT
// exceptions against them.
const (
	ErrAlreadyInitialized   = "already initialized"
	ErrNotInitialized       = "contract is not initialized"
	ErrNotOwner             = common.ErrOwnerWitnessFailed
	ErrPaused               = "contract is paused"
	ErrSenderDenylisted     = "sender is denylisted"
	ErrTimelocked           = "balance is timelocked"
	ErrInsufficientBalance  = "insufficient available balance"
	ErrInvalidAddress       = "invalid address"
	ErrNegativeAmount       = "negative amount"
	ErrInvalidSupply        = "invalid total supply"
	ErrInvalidLockPeriod    = "invalid lock period"
	ErrEmptyRecipients      = "empty recipient list"
	ErrUnknownBeneficiary   = "unknown beneficiary"
	ErrUnsupportedByVersion = "method is not supported by this version"
	ErrVersionMismatch      = common.ErrVersionMismatch
	ErrAlreadyUpdated       = common.ErrAlreadyUpdated
)

// Beneficiary kinds of the fee schedule.
const (
	Charity = iota
	Marketing
	Liquidity
	// Treasury fee is always paid to the current owner.
	Treasury
)

// Fee schedule variants. Each upgrade moves the contract to a strictly greater
// variant.
const (
	VariantA = 1
	VariantB = 2

	LatestVariant = VariantB
)

// Version tags reported by the `version` method.
const (
	VersionA = "v0.1.0"
	VersionB = "v1.0.0"
)

const (
	// BasisPoints is the denominator of fee rates.
	BasisPoints = 10000

	// DayMs is the length of a lock day in block timestamp units.
	DayMs = 24 * 60 * 60 * 1000
)
