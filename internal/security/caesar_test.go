package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaesarEncode(t *testing.T) {
	c := NewCaesar(3)

	got, err := c.Encode("Hello")
	require.NoError(t, err)
	assert.Equal(t, "Khoor", got)
}

func TestCaesarNonLettersPassThrough(t *testing.T) {
	c := NewCaesar(3)

	got, err := c.Encode("a1!")
	require.NoError(t, err)
	assert.Equal(t, "d1!", got)
}

func TestCaesarDecodeIsInverse(t *testing.T) {
	inputs := []string{"Hello", "ZebraCrossing", "mixedCASE", "with spaces & symbols!", ""}
	for shift := 0; shift < 26; shift++ {
		c := NewCaesar(shift)
		for _, in := range inputs {
			encoded, err := c.Encode(in)
			require.NoError(t, err)
			assert.Equal(t, in, c.Decode(encoded), "shift=%d input=%q", shift, in)
		}
	}
}

func TestCaesarNegativeShiftNormalized(t *testing.T) {
	c := NewCaesar(-23) // ≡ 3 mod 26

	got, err := c.Encode("abc")
	require.NoError(t, err)
	assert.Equal(t, "def", got)
}

func TestCaesarVerify(t *testing.T) {
	c := NewCaesar(3)

	stored, err := c.Encode("TopSecret")
	require.NoError(t, err)

	assert.NoError(t, c.Verify("TopSecret", stored))
	assert.ErrorIs(t, c.Verify("topsecret", stored), ErrMismatch)
}
