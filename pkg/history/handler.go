package history

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xfwduke/blueking-dbm/internal/handler"
	"github.com/xfwduke/blueking-dbm/pkg/model"
)

func NewHandler(service *Service) Handler {
	return Handler{service: service}
}

type Handler struct {
	service *Service
}

type findRecordsQuery struct {
	TicketID   uint   `form:"ticketId"`
	TicketType string `form:"ticketType" binding:"omitempty,ticketType"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

// FindAll clone records
func (h Handler) FindAll(c *gin.Context) {
	// swagger:route GET /clone-records findCloneRecords
	//
	// Find clone records
	//
	// Find the most recent clone records, optionally of a single ticket or ticket type
	//
	// responses:
	//   200: []CloneRecord
	//   400: Error
	var query findRecordsQuery
	if err := handler.QueryBinder(c, &query); err != nil {
		_ = c.Error(err)
		return
	}

	ctx := c.Request.Context()
	var records []model.CloneRecord
	var err error
	if query.TicketID != 0 {
		records, err = h.service.FindByTicket(ctx, query.TicketID, query.Limit)
	} else {
		records, err = h.service.FindAll(ctx, model.TicketType(query.TicketType), query.Limit)
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	if records == nil {
		records = []model.CloneRecord{}
	}
	c.JSON(http.StatusOK, records)
}
