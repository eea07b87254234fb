package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"skycast/config"
	"skycast/internal/domain/service"
	"skycast/internal/errors"
)

// Argon2id parameters for newly derived hashes.
const (
	argonMemory  uint32 = 15000 // KiB
	argonTime    uint32 = 2
	argonThreads uint8  = 1
	argonSaltLen        = 16
	argonKeyLen  uint32 = 32
)

// placeholderHash is a real Argon2id hash of a valid password that is never
// issued to anyone. When a login identifier matches no account, the password
// is verified against this constant so the work performed is the same as for
// an existing account. Do not remove the substitution: its presence is the
// timing-attack defense, even though the comparison can never succeed.
const placeholderHash = "$argon2id$v=19$m=15000,t=2,p=1$" +
	"gZiV/M1gPc22ElAH/Jh1Hw$" +
	"CWOrkoo7oJBQ/iyh7uJ0LO2aLEfrHwTWllSAxT0zRno"

// argon2Hasher is a concrete implementation of the PasswordHasher interface
// using Argon2id with PHC string encoding.
type argon2Hasher struct {
	gate *hashGate
}

// NewArgon2Hasher is the constructor for argon2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewArgon2Hasher(cfg *config.Config) service.PasswordHasher {
	workers := 0
	if cfg != nil && cfg.Hashing != nil {
		workers = cfg.Hashing.Workers
	}

	return &argon2Hasher{gate: newHashGate(workers)}
}

// Hash derives a salted Argon2id hash and encodes it as a PHC string.
// Each call generates a fresh random salt, so hashing the same password
// twice yields different strings that both verify.
func (h *argon2Hasher) Hash(ctx context.Context, password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	var encoded string
	if err := h.gate.run(ctx, func() {
		digest := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
		encoded = encodeHash(salt, digest)
	}); err != nil {
		return "", errors.Wrap(err, "failed to acquire hashing slot")
	}

	return encoded, nil
}

// Verify reports whether the password matches the PHC-encoded hash. An empty
// hash substitutes placeholderHash, keeping the computation shape identical
// for unknown accounts. All internal errors collapse to false.
func (h *argon2Hasher) Verify(ctx context.Context, password, hash string) bool {
	if hash == "" {
		hash = placeholderHash
	}

	memory, time, threads, salt, digest, err := decodeHash(hash)
	if err != nil {
		return false
	}

	var match bool
	if err := h.gate.run(ctx, func() {
		computed := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(digest)))
		match = subtle.ConstantTimeCompare(computed, digest) == 1
	}); err != nil {
		return false
	}

	return match
}

// encodeHash renders the standard PHC string form, e.g.
// $argon2id$v=19$m=15000,t=2,p=1$<base64 salt>$<base64 digest>
func encodeHash(salt, digest []byte) string {
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	)
}

// decodeHash parses a PHC string back into its parameters, salt and digest.
// The stored parameters drive verification, so hashes derived with older
// parameter sets keep verifying after the defaults change.
func decodeHash(hash string) (memory, time uint32, threads uint8, salt, digest []byte, err error) {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, errors.New("not an argon2id PHC string")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "failed to parse version")
	}
	if version != argon2.Version {
		return 0, 0, 0, nil, nil, errors.Errorf("unsupported argon2 version %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "failed to parse parameters")
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "failed to decode salt")
	}

	digest, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "failed to decode digest")
	}

	return memory, time, threads, salt, digest, nil
}
