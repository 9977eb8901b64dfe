package model

import "errors"

var (
	// ErrMissingField is returned when a required input is absent or cannot be parsed.
	ErrMissingField = errors.New("missing field")
	// ErrInsufficientData is returned when fewer than MinProducts are available to compare.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrInvalidInput is returned when a value would make a ratio undefined (zero quantity, zero mean price).
	ErrInvalidInput = errors.New("invalid input")
)

// MinProducts is the smallest ledger that can be compared.
const MinProducts = 2

// ErrorKind is the presentation-neutral classification of a user-correctable failure.
type ErrorKind string

const (
	KindNone             ErrorKind = ""
	KindMissingField     ErrorKind = "MISSING_FIELD"
	KindInsufficientData ErrorKind = "INSUFFICIENT_DATA"
	KindInvalidInput     ErrorKind = "INVALID_INPUT"
	KindInternal         ErrorKind = "INTERNAL_ERROR"
)

// KindOf classifies err by the sentinel it wraps.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrMissingField):
		return KindMissingField
	case errors.Is(err, ErrInsufficientData):
		return KindInsufficientData
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	default:
		return KindInternal
	}
}
