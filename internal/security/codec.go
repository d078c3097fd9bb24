// Package security provides the password-at-rest codecs: a reversible
// Caesar cipher kept for compatibility with legacy data files, and a
// one-way bcrypt digest, which is the recommended scheme. The two are
// mutually incompatible at the storage level — ciphertext written by one
// cannot be verified by the other.
package security

import "errors"

// ErrMismatch is returned by Verify when the plaintext does not match
// the stored encoding.
var ErrMismatch = errors.New("password mismatch")

// Scheme names a password encoding scheme.
type Scheme string

const (
	SchemeCipher Scheme = "cipher"
	SchemeDigest Scheme = "digest"
)

// Codec encodes plaintext passwords for storage and verifies login
// attempts against the stored form.
type Codec interface {
	// Encode returns the storable form of plain.
	Encode(plain string) (string, error)
	// Verify returns nil when plain matches stored, ErrMismatch otherwise.
	Verify(plain, stored string) error
}
