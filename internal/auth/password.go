package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptPrefixLen is the length of the "$2a$cost$salt" segment of a bcrypt
// digest: version (4) + cost (3) + 22 base64 salt characters.
const bcryptPrefixLen = 29

// HashPassword hashes a plaintext password with bcrypt and returns the
// digest together with its salt segment.
//
// bcrypt embeds the salt in the digest, so verification only ever needs the
// digest, but the salt is returned (and stored) separately to keep the user
// schema's salt column populated.
func HashPassword(plaintext string) (hash, salt string, err error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), string(digest[:bcryptPrefixLen]), nil
}

// CheckPassword reports whether plaintext matches the stored bcrypt digest.
// Any error (mismatch, malformed digest) yields false; it never panics on
// bad input.
func CheckPassword(plaintext, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext)) == nil
}
