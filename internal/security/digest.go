package security

import "golang.org/x/crypto/bcrypt"

// Digest is the one-way bcrypt codec. There is no decode operation;
// Verify recomputes the hash and compares.
type Digest struct {
	cost int
}

// NewDigest creates a Digest codec with the given bcrypt cost. Costs
// outside bcrypt's valid range fall back to the library default.
func NewDigest(cost int) *Digest {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Digest{cost: cost}
}

// Encode hashes plain with the configured cost.
func (d *Digest) Encode(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), d.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compares plain against the stored bcrypt hash.
func (d *Digest) Verify(plain, stored string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)); err != nil {
		return ErrMismatch
	}
	return nil
}
