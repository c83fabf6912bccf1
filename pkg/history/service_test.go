package history

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xfwduke/blueking-dbm/pkg/model"
)

func TestService(t *testing.T) {
	ctx := context.Background()

	t.Run("FindAllUsesDefaultLimit", func(t *testing.T) {
		repository := &mockRepository{}
		repository.
			On("findAll", model.TicketTypeMysqlAddSlave, DefaultLimit).
			Return([]model.CloneRecord{{ID: 1}}, nil)
		service := NewService(repository)

		records, err := service.FindAll(ctx, model.TicketTypeMysqlAddSlave, 0)

		require.NoError(t, err)
		assert.Len(t, records, 1)
		repository.AssertExpectations(t)
	})

	t.Run("FindByTicketKeepsLimit", func(t *testing.T) {
		repository := &mockRepository{}
		repository.
			On("findByTicket", uint(7), 5).
			Return([]model.CloneRecord{}, nil)
		service := NewService(repository)

		_, err := service.FindByTicket(ctx, 7, 5)

		require.NoError(t, err)
		repository.AssertExpectations(t)
	})
}

type mockRepository struct{ mock.Mock }

func (m *mockRepository) save(ctx context.Context, record *model.CloneRecord) error {
	called := m.Called(record)
	return called.Error(0)
}

func (m *mockRepository) findByTicket(ctx context.Context, ticketID uint, limit int) ([]model.CloneRecord, error) {
	called := m.Called(ticketID, limit)
	return called.Get(0).([]model.CloneRecord), called.Error(1)
}

func (m *mockRepository) findAll(ctx context.Context, ticketType model.TicketType, limit int) ([]model.CloneRecord, error) {
	called := m.Called(ticketType, limit)
	return called.Get(0).([]model.CloneRecord), called.Error(1)
}
