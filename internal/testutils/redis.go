// Package testutils provides helpers shared by tests: a miniredis-backed client and
// game fixtures
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-story/internal/redis"
)

// CreateTestRedisClient starts a miniredis server and returns a client for it. The
// server is closed when the test ends; use the returned server to inspect keys or fast forward time.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client, mr
}
