package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 600000
	saltBytes        = 16
	keyBytes         = 32
)

// dummyHash is verified against the supplied password when a login names an
// unknown user, so both failure paths cost one key derivation.
const dummyHash = "pbkdf2:sha256:600000$6f70656e7361796d65303132333435$0000000000000000000000000000000000000000000000000000000000000000"

// HashPassword derives a salted PBKDF2-SHA256 hash of password, encoded as
// "pbkdf2:sha256:<iterations>$<salt>$<hash>".
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	saltHex := hex.EncodeToString(salt)
	key := pbkdf2.Key([]byte(password), []byte(saltHex), pbkdf2Iterations, keyBytes, sha256.New)
	return fmt.Sprintf("pbkdf2:sha256:%d$%s$%s", pbkdf2Iterations, saltHex, hex.EncodeToString(key)), nil
}

// VerifyPassword reports whether password matches the encoded hash.
// Malformed hashes verify as false, never as an error.
func VerifyPassword(encoded, password string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 {
		return false
	}

	method := strings.Split(parts[0], ":")
	if len(method) != 3 || method[0] != "pbkdf2" || method[1] != "sha256" {
		return false
	}
	iterations, err := strconv.Atoi(method[2])
	if err != nil || iterations <= 0 {
		return false
	}

	want, err := hex.DecodeString(parts[2])
	if err != nil {
		return false
	}

	got := pbkdf2.Key([]byte(password), []byte(parts[1]), iterations, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}

// VerifyDummy burns a key derivation without revealing anything, used to keep
// the unknown-username login path timed like the wrong-password path.
func VerifyDummy(password string) {
	VerifyPassword(dummyHash, password)
}
