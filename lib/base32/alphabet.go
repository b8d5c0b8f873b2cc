// Package base32 implements a Base32 codec using a human-friendly,
// ambiguity-resistant alphabet.
//
// The 32 canonical digits are "0123456789ABCDEFGHJKMNPQRSTVWXYZ".
// 'I', 'L', 'O' and 'U' are not canonical digits: 'o'/'O' read as '0',
// 'i'/'I'/'l'/'L' read as '1', and lowercase letters read as their
// uppercase form, so codes survive being read aloud or retyped.
// 'u'/'U' is rejected outright.
package base32

// Digits is the canonical digit set in ascending order of value.
const Digits = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// Bit widths of one digit and one payload byte.
const (
	DigitBits = 5
	CharBits  = 8
)

// Sentinels reported for characters and values outside the alphabet.
const (
	InvalidDigit byte = 0
	InvalidValue int  = -1
)

const digitMask = 1<<DigitBits - 1

// canonicalTable maps any input byte to its canonical digit or
// InvalidDigit; valueTable maps any input byte to its digit value or
// InvalidValue. Both are built once during init and never mutated, so
// unsynchronized concurrent reads are safe.
var (
	canonicalTable [256]byte
	valueTable     [256]int
)

func init() {
	for i := range valueTable {
		valueTable[i] = InvalidValue
	}
	for value := 0; value < len(Digits); value++ {
		digit := Digits[value]
		canonicalTable[digit] = digit
		valueTable[digit] = value
		if digit >= 'A' && digit <= 'Z' {
			lower := digit - 'A' + 'a'
			canonicalTable[lower] = digit
			valueTable[lower] = value
		}
	}
	// Confusable letters read as the digit they resemble.
	for _, alias := range []byte{'o', 'O'} {
		canonicalTable[alias] = '0'
		valueTable[alias] = 0
	}
	for _, alias := range []byte{'i', 'I', 'l', 'L'} {
		canonicalTable[alias] = '1'
		valueTable[alias] = 1
	}
}

// Canonical returns the canonical form of digit, or InvalidDigit if
// digit is not part of the accepted character set.
func Canonical(digit byte) byte {
	return canonicalTable[digit]
}

// IsValid reports whether digit is an accepted Base32 digit, canonical
// or not.
func IsValid(digit byte) bool {
	return canonicalTable[digit] != InvalidDigit
}

// IsValidString reports whether every character of str is an accepted
// digit. The empty string is valid.
func IsValidString(str string) bool {
	for i := 0; i < len(str); i++ {
		if !IsValid(str[i]) {
			return false
		}
	}
	return true
}

// Value returns the numeric value of digit in [0,31], canonicalizing
// first, or InvalidValue if digit is not accepted.
func Value(digit byte) int {
	return valueTable[digit]
}

// Digit returns the canonical digit for value, or InvalidDigit if
// value is outside [0,31].
func Digit(value int) byte {
	if value < 0 || value >= len(Digits) {
		return InvalidDigit
	}
	return Digits[value]
}
