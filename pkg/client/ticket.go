package client

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/xfwduke/blueking-dbm/pkg/model"
)

// GetTicket fetches the ticket with the given id. Its details are left undecoded.
func (c *Client) GetTicket(ctx context.Context, id uint) (model.RawTicket, error) {
	return submit[model.Ticket[json.RawMessage]](ctx, c, operation{
		id:     "getTicket",
		method: http.MethodGet,
		path:   "/apis/tickets/{id}/",
		params: pathParam("id", itoa(id)),
	})
}
