package clone

import "github.com/xfwduke/blueking-dbm/pkg/model"

// swagger:parameters cloneTicket
type _ struct {
	// Ticket as returned by DBM
	// in: body
	// required: true
	Body model.RawTicket
}

// swagger:parameters cloneTicketById
type _ struct {
	// in: path
	// required: true
	ID uint `json:"id"`
}

// swagger:parameters cloneTickets
type _ struct {
	// in: body
	// required: true
	Body CloneBatchRequest
}
