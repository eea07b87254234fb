package auth

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"skycast/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher() *argon2Hasher {
	cfg := &config.Config{Hashing: &config.HashingConfig{Workers: 2}}

	return NewArgon2Hasher(cfg).(*argon2Hasher)
}

func TestArgon2Hasher_HashProducesDistinctVerifiableHashes(t *testing.T) {
	hasher := newTestHasher()
	ctx := context.Background()
	password := "Secur3!pass"

	first, err := hasher.Hash(ctx, password)
	require.NoError(t, err)
	second, err := hasher.Hash(ctx, password)
	require.NoError(t, err)

	// Random salt: same password, different strings.
	assert.NotEqual(t, first, second)

	assert.True(t, hasher.Verify(ctx, password, first))
	assert.True(t, hasher.Verify(ctx, password, second))
	assert.False(t, hasher.Verify(ctx, "wrongpass1", first))
	assert.False(t, hasher.Verify(ctx, "wrongpass1", second))
}

func TestArgon2Hasher_HashEncodesFixedParameters(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash(context.Background(), "Secur3!pass")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=15000,t=2,p=1$"), "unexpected PHC prefix: %s", hash)
}

func TestArgon2Hasher_VerifyWithoutHashUsesPlaceholder(t *testing.T) {
	hasher := newTestHasher()
	ctx := context.Background()

	// Unknown account: the placeholder computation runs but never matches.
	assert.False(t, hasher.Verify(ctx, "AnyPassword1!", ""))
	assert.False(t, hasher.Verify(ctx, "", ""))
}

func TestArgon2Hasher_VerifyMalformedHash(t *testing.T) {
	hasher := newTestHasher()
	ctx := context.Background()

	malformed := []string{
		"not-a-hash",
		"$argon2i$v=19$m=15000,t=2,p=1$c2FsdA$ZGlnZXN0",
		"$argon2id$v=18$m=15000,t=2,p=1$c2FsdA$ZGlnZXN0",
		"$argon2id$v=19$m=15000$c2FsdA$ZGlnZXN0",
		"$argon2id$v=19$m=15000,t=2,p=1$!!!$ZGlnZXN0",
	}

	for _, hash := range malformed {
		assert.False(t, hasher.Verify(ctx, "Secur3!pass", hash), "hash %q should not verify", hash)
	}
}

func TestArgon2Hasher_PlaceholderHashDecodes(t *testing.T) {
	// The placeholder must stay a structurally valid PHC string so the
	// not-found path performs a real computation instead of bailing out early.
	memory, time, threads, salt, digest, err := decodeHash(placeholderHash)
	require.NoError(t, err)
	assert.Equal(t, uint32(15000), memory)
	assert.Equal(t, uint32(2), time)
	assert.Equal(t, uint8(1), threads)
	assert.Len(t, salt, 16)
	assert.Len(t, digest, 32)
}

func TestHashGate_BoundsConcurrency(t *testing.T) {
	gate := newHashGate(1)

	var running, peak atomic.Int32
	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := gate.run(context.Background(), func() {
				cur := running.Add(1)
				if cur > peak.Load() {
					peak.Store(cur)
				}
				time.Sleep(10 * time.Millisecond)
				running.Add(-1)
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), peak.Load())
}

func TestHashGate_CancelledContext(t *testing.T) {
	gate := newHashGate(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	release := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = gate.run(context.Background(), func() { <-release })
	}()

	// Slot is busy and the context already ended: run must give up.
	time.Sleep(5 * time.Millisecond)
	err := gate.run(ctx, func() { t.Error("fn must not run") })
	assert.Error(t, err)

	close(release)
	wg.Wait()
}
