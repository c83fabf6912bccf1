// Package history keeps a record of every clone seed handed out.
package history

import (
	"context"

	"github.com/xfwduke/blueking-dbm/pkg/model"
)

// DefaultLimit is the number of records returned when no limit is requested.
const DefaultLimit = 20

func NewService(repository recordRepository) *Service {
	return &Service{repository: repository}
}

type recordRepository interface {
	save(ctx context.Context, record *model.CloneRecord) error
	findByTicket(ctx context.Context, ticketID uint, limit int) ([]model.CloneRecord, error)
	findAll(ctx context.Context, ticketType model.TicketType, limit int) ([]model.CloneRecord, error)
}

type Service struct {
	repository recordRepository
}

func (s *Service) Save(ctx context.Context, record *model.CloneRecord) error {
	return s.repository.save(ctx, record)
}

// FindByTicket returns the most recent records of the given ticket first.
func (s *Service) FindByTicket(ctx context.Context, ticketID uint, limit int) ([]model.CloneRecord, error) {
	return s.repository.findByTicket(ctx, ticketID, orDefault(limit))
}

// FindAll returns the most recent records first, optionally only those of the given ticket type.
func (s *Service) FindAll(ctx context.Context, ticketType model.TicketType, limit int) ([]model.CloneRecord, error) {
	return s.repository.findAll(ctx, ticketType, orDefault(limit))
}

func orDefault(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
