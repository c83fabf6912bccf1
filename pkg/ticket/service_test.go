package ticket

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xfwduke/blueking-dbm/internal/errdef"
	"github.com/xfwduke/blueking-dbm/pkg/model"
)

func TestService_Find(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	want := model.RawTicket{ID: 1, Type: model.TicketTypeMysqlAddSlave, Details: json.RawMessage(`{"infos":[]}`)}

	t.Run("FetchesAndCaches", func(t *testing.T) {
		backend := &mockBackend{}
		backend.
			On("GetTicket", uint(1)).
			Return(want, nil).
			Once()
		service := NewService(logger, backend, NewMemoryCache(time.Minute))

		got, err := service.Find(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		got, err = service.Find(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		backend.AssertExpectations(t)
	})

	t.Run("BackendError", func(t *testing.T) {
		backend := &mockBackend{}
		backend.
			On("GetTicket", uint(2)).
			Return(model.RawTicket{}, errdef.NewNotFound("ticket 2"))
		service := NewService(logger, backend, NewMemoryCache(time.Minute))

		_, err := service.Find(context.Background(), 2)

		require.Error(t, err)
		assert.True(t, errdef.IsNotFound(err))
		backend.AssertExpectations(t)
	})

	t.Run("FailingCacheIsIgnored", func(t *testing.T) {
		backend := &mockBackend{}
		backend.
			On("GetTicket", uint(1)).
			Return(want, nil)
		service := NewService(logger, backend, failingCache{})

		got, err := service.Find(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, want, got)
		backend.AssertExpectations(t)
	})
}

func TestMemoryCache(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ticket := model.RawTicket{ID: 7, Type: model.TicketTypeSqlserverAddSlave, Details: json.RawMessage(`{"infos":[]}`)}

	_, ok, err := cache.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(context.Background(), ticket))

	got, ok, err := cache.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, ticket, got)
}

type mockBackend struct{ mock.Mock }

func (m *mockBackend) GetTicket(_ context.Context, id uint) (model.RawTicket, error) {
	called := m.Called(id)
	return called.Get(0).(model.RawTicket), called.Error(1)
}

type failingCache struct{}

func (f failingCache) Get(context.Context, uint) (model.RawTicket, bool, error) {
	return model.RawTicket{}, false, errors.New("cache down")
}

func (f failingCache) Set(context.Context, model.RawTicket) error {
	return errors.New("cache down")
}
