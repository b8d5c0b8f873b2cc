package base32

import (
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

var log = logger.GetGoI2PLogger()

// Code is an immutable sequence of canonical Base32 digits. The zero
// value is the empty code. Because a Code wraps a single canonical
// string, == compares two Codes by the textual equality of their
// digit sequences.
type Code struct {
	digits string
}

// NewCode canonicalizes str and returns it as a Code. Construction
// fails with ErrInvalidDigit if any character of str is outside the
// accepted set; no partial Code is produced.
func NewCode(str string) (code Code, err error) {
	canonical := make([]byte, len(str))
	for i := 0; i < len(str); i++ {
		digit := Canonical(str[i])
		if digit == InvalidDigit {
			log.WithFields(logger.Fields{
				"at":       "NewCode",
				"position": i,
				"reason":   "character outside alphabet",
			}).Error("cannot construct Base32 code")
			err = oops.With("position", i).
				Wrapf(ErrInvalidDigit, "character %q at position %d", str[i], i)
			return
		}
		canonical[i] = digit
	}
	code = Code{digits: string(canonical)}
	return
}

// String returns the canonical text of the code.
func (code Code) String() string {
	return code.digits
}

// Len returns the number of digits in the code.
func (code Code) Len() int {
	return len(code.digits)
}

// DecodedLen returns the number of bytes Decode writes for this code.
func (code Code) DecodedLen() int {
	return DecodedLen(len(code.digits))
}

// Equal reports whether the canonical digit sequences of both codes
// match.
func (code Code) Equal(other Code) bool {
	return code.digits == other.digits
}
