package redis

import (
	"context"
	"fmt"
	"testing"

	"builderhub-payments/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	s := miniredis.RunT(t)
	cfg := config.RedisConfig{Host: s.Host(), Port: mustPort(t, s)}

	client, err := NewClient(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	hc := NewHealthCheck(client)
	assert.Equal(t, "redis", hc.Name())
	assert.NoError(t, hc.Ping(context.Background()))
}

func TestNewClient_Unreachable(t *testing.T) {
	s := miniredis.RunT(t)
	cfg := config.RedisConfig{Host: s.Host(), Port: mustPort(t, s)}
	s.Close()

	_, err := NewClient(context.Background(), cfg, zerolog.Nop())
	assert.ErrorContains(t, err, "pinging redis")
}

func TestEmbedded(t *testing.T) {
	e, err := NewEmbedded(zerolog.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	nonces := NewNonceStore(e.Client)
	ok, err := nonces.CheckAndSet(ctx, "callback", "evt-1", 0)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, e.Close())
	assert.Error(t, NewHealthCheck(e.Client).Ping(ctx))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "bhp:nonce:callback:evt-1", key("nonce", "callback", "evt-1"))
}

func mustPort(t *testing.T, s *miniredis.Miniredis) int {
	t.Helper()
	var port int
	_, err := fmt.Sscanf(s.Port(), "%d", &port)
	require.NoError(t, err)
	return port
}
