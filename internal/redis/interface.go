package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the stores depend on. It is the full
// universal client so single node and miniredis setups are interchangeable.
type Client interface {
	redis.UniversalClient
}
