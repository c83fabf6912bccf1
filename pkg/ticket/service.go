// Package ticket fetches tickets from the DBM backend, keeping them in a cache.
package ticket

import (
	"context"
	"log/slog"

	"github.com/xfwduke/blueking-dbm/internal/metrics"
	"github.com/xfwduke/blueking-dbm/pkg/model"
)

type backend interface {
	GetTicket(ctx context.Context, id uint) (model.RawTicket, error)
}

func NewService(logger *slog.Logger, backend backend, cache Cache) Service {
	return Service{logger: logger, backend: backend, cache: cache}
}

type Service struct {
	logger  *slog.Logger
	backend backend
	cache   Cache
}

// Find returns the ticket with the given id. A failing cache is logged and otherwise ignored.
func (s Service) Find(ctx context.Context, id uint) (model.RawTicket, error) {
	ticket, ok, err := s.cache.Get(ctx, id)
	switch {
	case err != nil:
		metrics.RecordCacheLookup(metrics.CacheError)
		s.logger.WarnContext(ctx, "Failed to read ticket from cache", "ticketId", id, "error", err)
	case ok:
		metrics.RecordCacheLookup(metrics.CacheHit)
		return ticket, nil
	default:
		metrics.RecordCacheLookup(metrics.CacheMiss)
	}

	ticket, err = s.backend.GetTicket(ctx, id)
	if err != nil {
		return model.RawTicket{}, err
	}

	if err := s.cache.Set(ctx, ticket); err != nil {
		s.logger.WarnContext(ctx, "Failed to cache ticket", "ticketId", id, "error", err)
	}

	return ticket, nil
}
