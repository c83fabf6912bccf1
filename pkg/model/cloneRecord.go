package model

import "time"

// CloneRecord remembers a clone seed handed out for a ticket.
// swagger:model
type CloneRecord struct {
	// required: true
	ID uint `json:"id" gorm:"primaryKey"`
	// required: true
	CreatedAt time.Time `json:"createdAt"`
	// required: true
	TicketID   uint       `json:"ticketId" gorm:"index"`
	TicketType TicketType `json:"ticketType"`
	BkBizID    uint       `json:"bkBizId"`
	// Number of rows in the generated seed
	Rows          int    `json:"rows"`
	CorrelationID string `json:"correlationId"`
}
