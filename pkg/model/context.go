package model

import "context"

type ticketIDKey struct{}

// NewContextWithTicketID returns a new [context.Context] that carries the ID of the ticket being
// processed.
func NewContextWithTicketID(ctx context.Context, id uint) context.Context {
	return context.WithValue(ctx, ticketIDKey{}, id)
}

// GetTicketIDFromContext returns the ticket ID stored in the ctx, if any.
func GetTicketIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(ticketIDKey{}).(uint)
	return id, ok
}
