package exchange

import (
	"errors"
	"fmt"
)

// Common errors for conversion operations
var (
	// ErrInvalidAmount indicates the amount could not be parsed as a number
	ErrInvalidAmount = errors.New("invalid amount (must be a number)")

	// ErrNegativeAmount indicates a negative amount was provided
	ErrNegativeAmount = errors.New("amount must be non-negative")

	// ErrMissingCurrency indicates one or both currency codes were empty
	ErrMissingCurrency = errors.New("both currencies must be chosen")

	// ErrSourceUnavailable indicates all rate endpoints failed
	ErrSourceUnavailable = errors.New("could not download rates from any source")

	// ErrPairUnavailable indicates no rate could be resolved for the pair
	ErrPairUnavailable = errors.New("currency pair not available")
)

// PairError reports a conversion pair that could be resolved neither from
// the cached base table nor by a direct fetch.
type PairError struct {
	From string
	To   string
}

func (e *PairError) Error() string {
	return fmt.Sprintf("pair not available: %s -> %s", e.From, e.To)
}

func (e *PairError) Unwrap() error {
	return ErrPairUnavailable
}
