package mock

import (
	"context"
	"sync"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisConnOnce sync.Once
var redisConn *redis.Client
var redisServer *miniredis.Miniredis

// NewRedis starts a shared miniredis server and returns a client for it.
func NewRedis() *redis.Client {
	redisConnOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisServer = server
		redisConn = redis.NewClient(&redis.Options{Addr: server.Addr()})
	})
	return redisConn
}

func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}

// KeyCount returns the number of keys matching pattern.
func KeyCount(client *redis.Client, pattern string) (int, error) {
	keys, err := client.Keys(context.TODO(), pattern).Result()
	return len(keys), err
}

// FastForwardRedis expires keys as if d had passed.
func FastForwardRedis(d time.Duration) {
	if redisServer != nil {
		redisServer.FastForward(d)
	}
}
