package fraction

import (
	"errors"
	"fmt"
)

// ErrIllFormed is matched by every error returned when a fraction cannot be
// built. Use errors.Is to test for it.
var ErrIllFormed = errors.New("ill formed fraction, should be of the form Z/Z")

// IllFormedError describes a rejected construction. A new value is created at
// each failure site.
type IllFormedError struct {
	Numerator   string
	Denominator string
	Reason      string
}

func illFormed(numerator, denominator any, reason string) error {
	return &IllFormedError{
		Numerator:   fmt.Sprint(numerator),
		Denominator: fmt.Sprint(denominator),
		Reason:      reason,
	}
}

func (e *IllFormedError) Error() string {
	return fmt.Sprintf("%v: %s/%s: %s", ErrIllFormed, e.Numerator, e.Denominator, e.Reason)
}

func (e *IllFormedError) Unwrap() error {
	return ErrIllFormed
}
