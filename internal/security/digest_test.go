package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestDigestEncodeAndVerify(t *testing.T) {
	d := NewDigest(bcrypt.MinCost)

	stored, err := d.Encode("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", stored, "digest must not retain plaintext")

	assert.NoError(t, d.Verify("correct horse", stored))
	assert.ErrorIs(t, d.Verify("wrong horse", stored), ErrMismatch)
}

func TestDigestEncodingsDiffer(t *testing.T) {
	// bcrypt salts, so two encodings of the same plaintext differ while
	// both still verify.
	d := NewDigest(bcrypt.MinCost)

	a, err := d.Encode("default")
	require.NoError(t, err)
	b, err := d.Encode("default")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.NoError(t, d.Verify("default", a))
	assert.NoError(t, d.Verify("default", b))
}

func TestDigestInvalidCostFallsBack(t *testing.T) {
	d := NewDigest(99)

	stored, err := d.Encode("pw")
	require.NoError(t, err)
	assert.NoError(t, d.Verify("pw", stored))
}
