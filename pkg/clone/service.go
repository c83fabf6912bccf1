package clone

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xfwduke/blueking-dbm/internal/errdef"
	"github.com/xfwduke/blueking-dbm/internal/metrics"
	"github.com/xfwduke/blueking-dbm/internal/middleware"
	"github.com/xfwduke/blueking-dbm/pkg/model"
	"golang.org/x/sync/errgroup"
)

// MaxBatchSize is the maximum number of tickets cloned by a single [Service.CloneBatch] call.
const MaxBatchSize = 50

type ticketService interface {
	Find(ctx context.Context, id uint) (model.RawTicket, error)
}

type historyService interface {
	Save(ctx context.Context, record *model.CloneRecord) error
}

func NewService(logger *slog.Logger, ticketService ticketService, historyService historyService, concurrency int) *Service {
	return &Service{
		logger:         logger,
		ticketService:  ticketService,
		historyService: historyService,
		concurrency:    concurrency,
	}
}

type Service struct {
	logger         *slog.Logger
	ticketService  ticketService
	historyService historyService
	concurrency    int
}

// Result is the seed of a cloned ticket.
// swagger:model CloneResult
type Result struct {
	TicketID   uint             `json:"ticketId"`
	TicketType model.TicketType `json:"ticketType"`
	Seed       Seed             `json:"seed"`
}

// Clone resolves the given ticket into a seed.
func (s *Service) Clone(ctx context.Context, ticket model.RawTicket) (Result, error) {
	ctx = model.NewContextWithTicketID(ctx, ticket.ID)

	seed, err := Resolve(ctx, ticket).Await(ctx)
	if err != nil {
		metrics.RecordClone(string(ticket.Type), cloneResult(err), 0)
		s.logger.InfoContext(ctx, "Failed to clone ticket", "ticketType", ticket.Type, "error", err)
		return Result{}, err
	}

	metrics.RecordClone(string(ticket.Type), metrics.CloneOK, len(seed))
	s.logger.DebugContext(ctx, "Cloned ticket", "ticketType", ticket.Type, "rows", len(seed))
	return Result{TicketID: ticket.ID, TicketType: ticket.Type, Seed: seed}, nil
}

// CloneByID fetches the ticket with the given id and resolves it into a seed. Every seed handed out
// is recorded. Failing to record it is logged but doesn't fail the clone.
func (s *Service) CloneByID(ctx context.Context, id uint) (Result, error) {
	ticket, result, err := s.fetchAndClone(ctx, id)
	if err != nil {
		return Result{}, err
	}

	s.record(ctx, ticket, result)
	return result, nil
}

// CloneBatch clones the tickets with the given ids concurrently. Results are in the order of ids.
// The first failure cancels the remaining clones and is returned. Seeds are only recorded once the
// whole batch succeeded.
func (s *Service) CloneBatch(ctx context.Context, ids []uint) ([]Result, error) {
	if len(ids) == 0 {
		return []Result{}, nil
	}
	if len(ids) > MaxBatchSize {
		return nil, errdef.NewBadRequest("can't clone more than %d tickets at once, got %d", MaxBatchSize, len(ids))
	}

	tickets := make([]model.RawTicket, len(ids))
	results := make([]Result, len(ids))
	g, groupCtx := errgroup.WithContext(ctx)
	if s.concurrency > 0 {
		g.SetLimit(s.concurrency)
	}
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			ticket, result, err := s.fetchAndClone(groupCtx, id)
			if err != nil {
				return err
			}
			tickets[i] = ticket
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range results {
		s.record(ctx, tickets[i], results[i])
	}
	return results, nil
}

func (s *Service) fetchAndClone(ctx context.Context, id uint) (model.RawTicket, Result, error) {
	ticket, err := s.ticketService.Find(ctx, id)
	if err != nil {
		return model.RawTicket{}, Result{}, fmt.Errorf("failed to find ticket %d: %w", id, err)
	}

	result, err := s.Clone(ctx, ticket)
	if err != nil {
		return model.RawTicket{}, Result{}, err
	}
	return ticket, result, nil
}

func (s *Service) record(ctx context.Context, ticket model.RawTicket, result Result) {
	correlationID, _ := middleware.GetCorrelationID(ctx)
	record := &model.CloneRecord{
		TicketID:      ticket.ID,
		TicketType:    ticket.Type,
		BkBizID:       ticket.BkBizID,
		Rows:          len(result.Seed),
		CorrelationID: correlationID,
	}
	if err := s.historyService.Save(ctx, record); err != nil {
		ctx = model.NewContextWithTicketID(ctx, ticket.ID)
		s.logger.WarnContext(ctx, "Failed to record clone", "error", err)
	}
}

func cloneResult(err error) string {
	switch {
	case errdef.IsBadRequest(err):
		return metrics.CloneUnsupported
	case errdef.IsUnprocessable(err):
		return metrics.CloneMalformed
	default:
		return metrics.CloneFailed
	}
}
