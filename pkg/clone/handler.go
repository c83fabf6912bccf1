package clone

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

// Clone ticket
func (h Handler) Clone(c *gin.Context) {
	// swagger:route POST /tickets/clone cloneTicket
	//
	// Clone ticket
	//
	// Resolve the given ticket into the seed of a new ticket of the same type
	//
	// responses:
	//   200: CloneResult
	//   400: Error
	//   415: Error
	//   422: Error
	var ticket model.RawTicket
	if err := handler.DataBinder(c, &ticket); err != nil {
		_ = c.Error(err)
		return
	}

	result, err := h.service.Clone(c.Request.Context(), ticket)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CloneByID ticket
func (h Handler) CloneByID(c *gin.Context) {
	// swagger:route GET /tickets/{id}/clone cloneTicketById
	//
	// Clone ticket by id
	//
	// Fetch the ticket from DBM and resolve it into the seed of a new ticket of the same type
	//
	// responses:
	//   200: CloneResult
	//   400: Error
	//   404: Error
	//   422: Error
	//   502: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	result, err := h.service.CloneByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

type CloneBatchRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1,max=50,dive,min=1"`
}

// CloneBatch tickets
func (h Handler) CloneBatch(c *gin.Context) {
	// swagger:route POST /tickets/clone/batch cloneTickets
	//
	// Clone tickets
	//
	// Fetch several tickets from DBM and resolve each into a seed. Results are in request order
	//
	// responses:
	//   200: []CloneResult
	//   400: Error
	//   404: Error
	//   415: Error
	//   422: Error
	//   502: Error
	var request CloneBatchRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	results, err := h.service.CloneBatch(c.Request.Context(), request.IDs)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// TicketTypes which can be cloned
func (h Handler) TicketTypes(c *gin.Context) {
	// swagger:route GET /ticket-types ticketTypes
	//
	// Find ticket types
	//
	// Find the ticket types which can be cloned
	//
	// responses:
	//   200: []TicketType
	c.JSON(http.StatusOK, Supported())
}
