package base32

import (
	"io"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

// DecodedLen returns the number of bytes produced by decoding a code
// of the given digit count: ceil(5*digits/8).
func DecodedLen(digits int) int {
	return (digits*DigitBits + CharBits - 1) / CharBits
}

// Decode unpacks the code into dst, which must hold at least
// DecodedLen() bytes, and returns the number of bytes written. The
// first digit of the code lands in the highest bits of the first
// byte.
//
// 1 to 4 bits left over after the last full byte are left-aligned
// into one final zero-padded byte. Padding bits are not validated: a
// code whose final digit carries non-zero padding decodes without
// error, and the codec does not report how many padding bits were
// used. Callers that need the original byte length must track it
// themselves.
func (code Code) Decode(dst []byte) (n int, err error) {
	size := code.DecodedLen()
	if len(dst) < size {
		err = oops.With("need", size).With("have", len(dst)).
			Errorf("output buffer too small for decoded code")
		return
	}

	n = code.decode(dst)

	log.WithFields(logger.Fields{
		"digit_count":   code.Len(),
		"output_length": n,
	}).Debug("decoded Base32 code to bytes")

	return
}

// DecodeBytes decodes the code into a freshly allocated slice of
// exactly DecodedLen() bytes.
func (code Code) DecodeBytes() []byte {
	dst := make([]byte, code.DecodedLen())
	code.decode(dst)
	return dst
}

// DecodeTo writes the decoded bytes to w one byte at a time.
func (code Code) DecodeTo(w io.ByteWriter) error {
	for _, b := range code.DecodeBytes() {
		if err := w.WriteByte(b); err != nil {
			return oops.Wrapf(err, "writing decoded bytes")
		}
	}
	return nil
}

// decode is the unpacking engine shared by Decode and DecodeBytes.
// dst is known to be large enough. Digits are canonical by
// construction, so Value never reports InvalidValue here.
func (code Code) decode(dst []byte) (n int) {
	var acc uint16
	shift := 0

	for i := 0; i < len(code.digits); i++ {
		acc = acc<<DigitBits | uint16(Value(code.digits[i]))
		shift += DigitBits
		if shift >= CharBits {
			shift -= CharBits
			dst[n] = byte(acc >> uint(shift))
			n++
		}
	}

	if shift > 0 {
		acc <<= uint(CharBits - shift)
		dst[n] = byte(acc)
		n++
	}

	return
}
