// Package testutils holds fixtures shared by package tests: a fake catalog
// server, canned catalog documents, builders and a miniredis backed client.
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dex-api/internal/redis"
)

// MiniRedis starts an in-memory redis and returns a client for it. Both are
// shut down when the test ends.
func MiniRedis(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client, err := redis.NewClient(&redis.Config{Addr: mr.Addr()})
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}
