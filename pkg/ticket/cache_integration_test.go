package ticket_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xfwduke/blueking-dbm/pkg/inttest"
	"github.com/xfwduke/blueking-dbm/pkg/model"
	"github.com/xfwduke/blueking-dbm/pkg/ticket"
)

func TestRedisCache(t *testing.T) {
	t.Parallel()

	client := inttest.SetupRedis(t)
	cache := ticket.NewRedisCache(client, time.Minute)

	t.Run("Miss", func(t *testing.T) {
		_, ok, err := cache.Get(context.Background(), 404)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("SetAndGet", func(t *testing.T) {
		want := model.RawTicket{
			ID:      1,
			BkBizID: 3,
			Type:    model.TicketTypeMysqlMigrateCluster,
			Details: json.RawMessage(`{"infos":[{"cluster_ids":[1]}],"clusters":{"1":{"id":1,"name":"c1"}}}`),
		}
		require.NoError(t, cache.Set(context.Background(), want))

		got, ok, err := cache.Get(context.Background(), 1)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, want, got)

		ttl, err := client.TTL("ticket:1").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
	})
}
