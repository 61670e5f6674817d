package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. Changing them only affects new hashes; verification
// reads the parameters back out of the encoded string.
const (
	argonTime    = 3
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	argonSaltLen = 16
)

// HashPassword derives an argon2id hash in the standard encoded form
// ($argon2id$v=19$m=...,t=...,p=...$salt$hash).
func HashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// VerifyPassword checks a password against an encoded argon2id hash in
// constant time. A malformed hash is an error; a mismatch is just false.
func VerifyPassword(encoded, password string) (bool, error) {
	var (
		version          int
		memory, timeCost uint32
		threads          uint8
		saltB64, keyB64  string
	)

	_, err := fmt.Sscanf(encoded, "$argon2id$v=%d$m=%d,t=%d,p=%d$%s",
		&version, &memory, &timeCost, &threads, &saltB64)
	if err != nil {
		return false, fmt.Errorf("parsing password hash: %w", err)
	}

	// Sscanf's %s is greedy: the last field holds "salt$hash".
	for i := range saltB64 {
		if saltB64[i] == '$' {
			keyB64 = saltB64[i+1:]
			saltB64 = saltB64[:i]

			break
		}
	}

	if keyB64 == "" {
		return false, fmt.Errorf("parsing password hash: missing key segment")
	}

	salt, err := base64.RawStdEncoding.DecodeString(saltB64)
	if err != nil {
		return false, fmt.Errorf("decoding salt: %w", err)
	}

	key, err := base64.RawStdEncoding.DecodeString(keyB64)
	if err != nil {
		return false, fmt.Errorf("decoding key: %w", err)
	}

	derived := argon2.IDKey([]byte(password), salt, timeCost, memory, threads, uint32(len(key)))

	return subtle.ConstantTimeCompare(derived, key) == 1, nil
}
