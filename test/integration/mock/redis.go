package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisConnOnce sync.Once
var redisConn *redis.Client

// NewRedis starts an embedded redis server and returns a client connected to
// it. The server is shared across the whole suite.
func NewRedis() *redis.Client {
	redisConnOnce.Do(func() {
		redisConn = openRedisConn()
	})
	return redisConn
}

func openRedisConn() *redis.Client {
	miniRedis, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	return redis.NewClient(
		&redis.Options{
			Addr: miniRedis.Addr(),
		},
	)
}

// ClearRedis flushes every key, including cached stats entries and
// generation counters.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}
