// Package redis holds the Redis-backed stores: recharge replay cache,
// callback nonces and rate-limit counters.
package redis

import (
	"context"
	"fmt"
	"strings"

	"builderhub-payments/config"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// keyPrefix namespaces every key written by this service.
const keyPrefix = "bhp:"

func key(parts ...string) string {
	return keyPrefix + strings.Join(parts, ":")
}

// NewClient creates a Redis client and verifies connectivity.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Msg("Redis connection established")

	return client, nil
}

// Embedded is an in-process Redis used when storage.driver is memory.
type Embedded struct {
	Client *goredis.Client
	server *miniredis.Miniredis
}

// NewEmbedded starts an in-process Redis server on a random local port.
func NewEmbedded(log zerolog.Logger) (*Embedded, error) {
	server, err := miniredis.Run()
	if err != nil {
		return nil, fmt.Errorf("starting embedded redis: %w", err)
	}

	log.Warn().Str("addr", server.Addr()).Msg("using embedded redis, state is lost on restart")

	return &Embedded{
		Client: goredis.NewClient(&goredis.Options{Addr: server.Addr()}),
		server: server,
	}, nil
}

// Close shuts down the client and the server.
func (e *Embedded) Close() error {
	err := e.Client.Close()
	e.server.Close()
	return err
}
