package base32

import (
	"errors"
)

var (
	// ErrInvalidDigit is returned when text contains a character outside
	// the accepted digit set.
	ErrInvalidDigit = errors.New("invalid base32 digit")
)
