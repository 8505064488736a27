package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt digest of plaintext with the given
// work factor. bcrypt salts internally, so two calls with the same input
// yield different hashes. A cost below bcrypt.MinCost falls back to
// bcrypt.DefaultCost.
func HashPassword(plaintext string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// CheckPassword reports whether plaintext would have produced hash. It never
// returns an error: a malformed hash simply verifies as false.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
