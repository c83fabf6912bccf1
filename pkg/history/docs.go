package history

// swagger:parameters findCloneRecords
type _ struct {
	// in: query
	// required: false
	TicketID uint `json:"ticketId"`

	// in: query
	// required: false
	TicketType string `json:"ticketType"`

	// in: query
	// required: false
	// minimum: 1
	// maximum: 100
	Limit int `json:"limit"`
}
