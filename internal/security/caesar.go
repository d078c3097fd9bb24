package security

import "crypto/subtle"

// Caesar is a reversible per-character rotation cipher. Case is
// preserved and non-alphabetic characters pass through unchanged.
// Decode with the same shift is the exact inverse of Encode.
type Caesar struct {
	shift int
}

// NewCaesar creates a Caesar codec with the given shift, normalized mod 26.
func NewCaesar(shift int) *Caesar {
	return &Caesar{shift: ((shift % 26) + 26) % 26}
}

// Encode rotates every ASCII letter forward by the shift.
func (c *Caesar) Encode(plain string) (string, error) {
	return rotate(plain, c.shift), nil
}

// Decode rotates every ASCII letter forward by 26-shift, inverting Encode.
func (c *Caesar) Decode(stored string) string {
	return rotate(stored, 26-c.shift)
}

// Verify decodes the stored ciphertext and compares it to plain.
func (c *Caesar) Verify(plain, stored string) error {
	if subtle.ConstantTimeCompare([]byte(c.Decode(stored)), []byte(plain)) != 1 {
		return ErrMismatch
	}
	return nil
}

func rotate(text string, shift int) string {
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch >= 'A' && ch <= 'Z':
			ch = byte((int(ch)-'A'+shift)%26) + 'A'
		case ch >= 'a' && ch <= 'z':
			ch = byte((int(ch)-'a'+shift)%26) + 'a'
		}
		out[i] = ch
	}
	return string(out)
}
