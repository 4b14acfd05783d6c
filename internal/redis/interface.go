package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis used by repositories. Embedding
// UniversalClient keeps single-node, cluster and failover clients usable.
type Client interface {
	redis.UniversalClient
}
