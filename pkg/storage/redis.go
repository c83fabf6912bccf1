package storage

import (
	"fmt"

	"github.com/go-redis/redis"
	"github.com/xfwduke/blueking-dbm/pkg/config"
)

// NewRedis returns a client for the ticket cache. The connection is verified with a ping.
func NewRedis(c config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", c.Host, c.Port),
	})

	if _, err := client.Ping().Result(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %v", err)
	}

	return client, nil
}
