package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"github.com/google/uuid"
	"golang.org/x/crypto/pbkdf2"
)

const (
	hashIterations = 4096
	hashKeyLen     = 32
)

// Hasher derives password digests from a per-user salt. Salts are generated
// once at account creation and never rotated; re-hashing a changed password
// reuses the stored salt.
type Hasher struct {
	iterations int
	keyLen     int
}

func NewHasher() *Hasher {
	return &Hasher{
		iterations: hashIterations,
		keyLen:     hashKeyLen,
	}
}

func (h *Hasher) GenerateSalt() string {
	return uuid.NewString()
}

// Hash derives the storable digest for a plaintext password. Same salt and
// plaintext always produce the same digest.
func (h *Hasher) Hash(salt, plaintext string) string {
	key := pbkdf2.Key([]byte(plaintext), []byte(salt), h.iterations, h.keyLen, sha256.New)
	return hex.EncodeToString(key)
}

// Verify compares a candidate plaintext against a stored (salt, digest) pair
// in constant time.
func (h *Hasher) Verify(salt, plaintext, digest string) bool {
	candidate := h.Hash(salt, plaintext)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(digest)) == 1
}
