package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the command surface the repositories use. It is satisfied by
// every go-redis client so tests can point it at miniredis.
type Client interface {
	redis.UniversalClient
}
