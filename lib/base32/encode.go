package base32

import (
	"io"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

// EncodedLen returns the number of digits produced by encoding n
// bytes: ceil(8n/5).
func EncodedLen(n int) int {
	return (n*CharBits + DigitBits - 1) / DigitBits
}

// Encode packs data five bits at a time, MSB first: the highest bits
// of the first byte become the first digit. The result holds exactly
// EncodedLen(len(data)) digits. When 8*len(data) is not a multiple of
// DigitBits, the low bits of the final digit are zero padding.
func Encode(data []byte) Code {
	if len(data) == 0 {
		return Code{}
	}

	digits := make([]byte, 0, EncodedLen(len(data)))
	var acc uint16
	shift := -DigitBits

	for _, b := range data {
		acc = acc<<CharBits | uint16(b)
		shift += CharBits
		for {
			digits = append(digits, Digit(int(acc>>uint(shift))&digitMask))
			shift -= DigitBits
			if shift <= 0 {
				break
			}
		}
	}

	// 1 to 5 bits are still buffered. Left-align them into one last
	// digit, zero filling the low bits.
	acc <<= uint(-shift)
	digits = append(digits, Digit(int(acc)&digitMask))

	log.WithFields(logger.Fields{
		"input_length": len(data),
		"digit_count":  len(digits),
	}).Debug("encoded bytes to Base32 code")

	return Code{digits: string(digits)}
}

// EncodeFrom reads r until io.EOF and encodes everything read, using
// the same packing as Encode. Any other read error aborts the encode.
func EncodeFrom(r io.ByteReader) (Code, error) {
	var data []byte
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Code{}, oops.Wrapf(err, "reading bytes to encode")
		}
		data = append(data, b)
	}
	return Encode(data), nil
}
