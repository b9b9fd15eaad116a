package password

import "golang.org/x/crypto/bcrypt"

// Cost is the bcrypt work factor. 10 matches bcrypt.DefaultCost and the
// cost the production data was hashed with, so existing digests keep
// verifying.
const Cost = 10

// Hasher wraps bcrypt hashing and verification.
// Hashing is salted per call, so the same plaintext produces a different
// digest every time; only Verify can relate the two.
type Hasher struct {
	cost int
}

// New creates a Hasher with the standard cost
func New() *Hasher {
	return &Hasher{cost: Cost}
}

// Hash derives a one-way digest from a plaintext password
func (h *Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest.
// A mismatch is not an error, just false.
func (h *Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
