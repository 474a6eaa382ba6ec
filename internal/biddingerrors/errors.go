package biddingerrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Repository-level errors
var (
	ErrLotNotFound      = errors.New("lot not found")
	ErrConflict         = errors.New("current bid changed since it was read")
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

// business logic errors
var (
	ErrInvalidBid      = errors.New("invalid bid")
	ErrNotRegistered   = errors.New("participant is not registered")
	ErrStaleRequest    = errors.New("no pending bid request")
	ErrMalformedAmount = errors.New("malformed amount")
	ErrBelowMinimum    = errors.New("bid amount below minimum")
	ErrContended       = errors.New("lot is contended, resubmit the bid")
)

// ErrPersistence marks a failure to save or load the durable snapshot.
// It is the only class that is not recoverable by retrying the bid flow.
var ErrPersistence = errors.New("persistence failure")

// BelowMinimumError carries the minimum amount the lot accepted at judgement time
type BelowMinimumError struct {
	Minimum decimal.Decimal
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("%s: minimum is %s", ErrBelowMinimum, e.Minimum.StringFixed(2))
}

func (e *BelowMinimumError) Unwrap() error {
	return ErrBelowMinimum
}

// IsRecoverable reports whether the caller can recover by re-prompting the participant
func IsRecoverable(err error) bool {
	if err == nil || errors.Is(err, ErrPersistence) {
		return false
	}
	for _, target := range []error{
		ErrNotRegistered,
		ErrLotNotFound,
		ErrStaleRequest,
		ErrMalformedAmount,
		ErrBelowMinimum,
		ErrContended,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
