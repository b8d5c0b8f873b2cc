package base32

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCodeCanonicalizes(t *testing.T) {
	assert := assert.New(t)

	code, err := NewCode("0123456789abcdefghjkmnpqrstvwxyzoOlLiI")
	assert.Nil(err)
	assert.Equal("0123456789ABCDEFGHJKMNPQRSTVWXYZ001111", code.String())

	// Already-canonical text is a fixed point.
	same, err := NewCode(code.String())
	assert.Nil(err)
	assert.True(code.Equal(same))
	assert.Equal(code, same)
}

func TestNewCodeEmpty(t *testing.T) {
	assert := assert.New(t)

	code, err := NewCode("")
	assert.Nil(err)
	assert.Equal("", code.String())
	assert.Equal(0, code.Len())
	assert.Equal(0, code.DecodedLen())
}

func TestNewCodeInvalid(t *testing.T) {
	for _, str := range []string{
		"u",
		"U",
		"ABCu",
		"uABC",
		"ABC DEF",
		"ABC-DEF",
		"ABC\x00",
		"!",
	} {
		t.Run(str, func(t *testing.T) {
			_, err := NewCode(str)
			if err == nil {
				t.Fatalf("NewCode(%q) succeeded, want ErrInvalidDigit", str)
			}
			if !errors.Is(err, ErrInvalidDigit) {
				t.Errorf("NewCode(%q) error = %v, want ErrInvalidDigit", str, err)
			}
		})
	}
}

func TestCodeAccessors(t *testing.T) {
	assert := assert.New(t)

	code, err := NewCode("Z0Z0Z")
	assert.Nil(err)
	assert.Equal("Z0Z0Z", code.String())
	assert.Equal(5, code.Len())
	assert.Equal(4, code.DecodedLen())
}

func TestCodeEqual(t *testing.T) {
	assert := assert.New(t)

	x, err := NewCode("kmnpqrs0")
	assert.Nil(err)
	y, err := NewCode("KMNPQRS0")
	assert.Nil(err)
	z, err := NewCode("KMNPQRS1")
	assert.Nil(err)

	assert.True(x.Equal(y))
	assert.True(y.Equal(x))
	assert.False(x.Equal(z))
	assert.True(x == y)
}
