package ticket

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis"
	gocache "github.com/patrickmn/go-cache"
	"github.com/xfwduke/blueking-dbm/pkg/model"
)

// Cache keeps tickets fetched from the backend. Tickets never change once created so entries only
// expire.
type Cache interface {
	// Get returns the cached ticket and true, or false if there's none.
	Get(ctx context.Context, id uint) (model.RawTicket, bool, error)
	Set(ctx context.Context, ticket model.RawTicket) error
}

func key(id uint) string {
	return fmt.Sprintf("ticket:%d", id)
}

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRedisCache(client *redis.Client, ttl time.Duration) *redisCache {
	return &redisCache{client: client, ttl: ttl}
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func (c redisCache) Get(ctx context.Context, id uint) (model.RawTicket, bool, error) {
	value, err := c.client.WithContext(ctx).Get(key(id)).Bytes()
	if err == redis.Nil {
		return model.RawTicket{}, false, nil
	}
	if err != nil {
		return model.RawTicket{}, false, fmt.Errorf("failed to get ticket %d from redis: %v", id, err)
	}

	var ticket model.RawTicket
	if err := json.Unmarshal(value, &ticket); err != nil {
		return model.RawTicket{}, false, fmt.Errorf("failed to decode cached ticket %d: %v", id, err)
	}
	return ticket, true, nil
}

func (c redisCache) Set(ctx context.Context, ticket model.RawTicket) error {
	value, err := json.Marshal(ticket)
	if err != nil {
		return fmt.Errorf("failed to encode ticket %d: %v", ticket.ID, err)
	}

	return c.client.WithContext(ctx).Set(key(ticket.ID), value, c.ttl).Err()
}

//goland:noinspection GoExportedFuncWithUnexportedType
func NewMemoryCache(ttl time.Duration) *memoryCache {
	return &memoryCache{cache: gocache.New(ttl, 2*ttl)}
}

// memoryCache keeps tickets in process. Used when no Redis is configured.
type memoryCache struct {
	cache *gocache.Cache
}

func (c memoryCache) Get(_ context.Context, id uint) (model.RawTicket, bool, error) {
	value, ok := c.cache.Get(key(id))
	if !ok {
		return model.RawTicket{}, false, nil
	}

	var ticket model.RawTicket
	if err := json.Unmarshal(value.([]byte), &ticket); err != nil {
		return model.RawTicket{}, false, fmt.Errorf("failed to decode cached ticket %d: %v", id, err)
	}
	return ticket, true, nil
}

func (c memoryCache) Set(_ context.Context, ticket model.RawTicket) error {
	value, err := json.Marshal(ticket)
	if err != nil {
		return fmt.Errorf("failed to encode ticket %d: %v", ticket.ID, err)
	}

	c.cache.SetDefault(key(ticket.ID), value)
	return nil
}
