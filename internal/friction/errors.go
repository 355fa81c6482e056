package friction

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain matches every *DomainError
	ErrDomain = errors.New("domain failure")

	// ErrMissingInput is returned when a correlation lacks a required value
	ErrMissingInput = errors.New("missing input")

	// ErrUnknownEquation is returned by ParseEquation
	ErrUnknownEquation = errors.New("unknown friction equation")
)

// DomainError reports a formula evaluated outside its mathematical domain,
// such as the logarithm of a non-positive value or a zero divisor.
type DomainError struct {
	Equation Equation
	Reason   string
	Err      error // underlying arithmetic error, may be nil
}

func (e *DomainError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Equation, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is makes errors.Is(err, ErrDomain) true
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func domainError(eq Equation, err error, format string, args ...any) *DomainError {
	return &DomainError{
		Equation: eq,
		Reason:   fmt.Sprintf(format, args...),
		Err:      err,
	}
}
