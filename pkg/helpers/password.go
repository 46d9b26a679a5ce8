package helpers

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword bcrypt-hashes the hex SHA-256 digest of plain. The digest is 64 bytes,
// so secrets of any length or encoding stay under bcrypt's 72 byte input limit.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(preHash(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword compares a hash from HashPassword with a plain secret
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), preHash(plain)) == nil
}

func preHash(plain string) []byte {
	sum := sha256.Sum256([]byte(plain))
	out := make([]byte, hex.EncodedLen(len(sum)))
	hex.Encode(out, sum[:])
	return out
}
