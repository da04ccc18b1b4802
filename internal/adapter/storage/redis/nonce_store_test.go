package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonceStore_CheckAndSet(t *testing.T) {
	s, client := newTestClient(t)
	store := NewNonceStore(client)
	ctx := context.Background()

	ok, err := store.CheckAndSet(ctx, "callback", "wave:evt-1", 24*time.Hour)
	require.NoError(t, err)
	assert.True(t, ok, "first delivery is fresh")

	ok, err = store.CheckAndSet(ctx, "callback", "wave:evt-1", 24*time.Hour)
	require.NoError(t, err)
	assert.False(t, ok, "redelivery is a replay")

	assert.True(t, s.Exists("bhp:nonce:callback:wave:evt-1"))
	assert.Greater(t, s.TTL("bhp:nonce:callback:wave:evt-1"), time.Duration(0))
}

func TestNonceStore_ScopesAreIndependent(t *testing.T) {
	_, client := newTestClient(t)
	store := NewNonceStore(client)
	ctx := context.Background()

	ok, err := store.CheckAndSet(ctx, "callback", "evt-9", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.CheckAndSet(ctx, "other", "evt-9", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNonceStore_ExpiredNonceIsFreshAgain(t *testing.T) {
	s, client := newTestClient(t)
	store := NewNonceStore(client)
	ctx := context.Background()

	_, err := store.CheckAndSet(ctx, "callback", "evt-2", time.Minute)
	require.NoError(t, err)
	s.FastForward(2 * time.Minute)

	ok, err := store.CheckAndSet(ctx, "callback", "evt-2", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNonceStore_ReleaseAllowsRedelivery(t *testing.T) {
	s, client := newTestClient(t)
	store := NewNonceStore(client)
	ctx := context.Background()

	ok, err := store.CheckAndSet(ctx, "callback", "wave:evt-3", time.Hour)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, store.Release(ctx, "callback", "wave:evt-3"))
	assert.False(t, s.Exists("bhp:nonce:callback:wave:evt-3"))

	ok, err = store.CheckAndSet(ctx, "callback", "wave:evt-3", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)
}
