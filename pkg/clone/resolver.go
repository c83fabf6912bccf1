// Package clone turns existing tickets into seeds used to pre-fill the creation form of a new
// ticket of the same type.
//
// Every ticket type has its own small resolver function working on that type's details. Resolvers
// are pure: they never modify the ticket, perform no I/O and produce one seed row per entry of the
// ticket's infos, in the same order. A cluster id missing from the ticket's cluster summaries
// results in a nil cluster in the row rather than an error.
package clone

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/xfwduke/blueking-dbm/internal/errdef"
	"github.com/xfwduke/blueking-dbm/pkg/model"
)

// Seed is the data needed to pre-fill a ticket creation form. It holds one row per info of the
// cloned ticket. Rows are plain structs whose JSON keys match the form fields.
type Seed []any

// Resolver resolves a ticket into a seed.
type Resolver func(ctx context.Context, ticket model.RawTicket) *Deferred

var resolvers = map[model.TicketType]Resolver{
	model.TicketTypeMysqlAddSlave:              typed(MysqlAddSlave),
	model.TicketTypeMysqlMigrateCluster:        typed(MysqlMigrateCluster),
	model.TicketTypeMysqlRestoreSlave:          typed(MysqlRestoreSlave),
	model.TicketTypeSqlserverAddSlave:          typed(SqlserverAddSlave),
	model.TicketTypeSqlserverRestoreSlave:      typed(SqlserverRestoreSlave),
	model.TicketTypeTendbClusterMigrateCluster: typed(TendbClusterMigrateCluster),
	model.TicketTypeTendbClusterRestoreSlave:   typed(TendbClusterRestoreSlave),
}

// Resolve selects the resolver of the ticket's type and runs it. Tickets of a type without a
// resolver are rejected.
func Resolve(ctx context.Context, ticket model.RawTicket) *Deferred {
	resolver, ok := resolvers[ticket.Type]
	if !ok {
		return resolved(nil, errdef.NewBadRequest("ticket type %q can't be cloned", ticket.Type))
	}
	return resolver(ctx, ticket)
}

// Supported returns the ticket types that can be cloned, sorted by name.
func Supported() []model.TicketType {
	types := make([]model.TicketType, 0, len(resolvers))
	for t := range resolvers {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// typed adapts a resolver function working on decoded details of type D to a [Resolver].
func typed[D any, R any](resolve func(model.Ticket[D]) []R) Resolver {
	return func(_ context.Context, ticket model.RawTicket) *Deferred {
		decoded, err := Decode[D](ticket)
		if err != nil {
			return resolved(nil, errdef.NewUnprocessable("%s: %v", ticket.Type, err))
		}

		rows := resolve(decoded)

		seed := make(Seed, len(rows))
		for i := range rows {
			seed[i] = rows[i]
		}
		return resolved(seed, nil)
	}
}

// Decode decodes the details of a raw ticket. It's meant for callers who want to run a resolver
// function directly.
func Decode[D any](ticket model.RawTicket) (model.Ticket[D], error) {
	var details D
	if err := json.Unmarshal(ticket.Details, &details); err != nil {
		return model.Ticket[D]{}, fmt.Errorf("failed to decode details of ticket %d: %w", ticket.ID, err)
	}
	return model.WithDetails(ticket, details), nil
}
