package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xfwduke/blueking-dbm/internal/errdef"
)

// errorStatuses maps error kinds onto the status code they are reported with. The first matching
// kind wins.
var errorStatuses = []struct {
	is     func(error) bool
	status int
}{
	{errdef.IsBadRequest, http.StatusBadRequest},
	{errdef.IsNotFound, http.StatusNotFound},
	{errdef.IsUnsupportedMediaType, http.StatusUnsupportedMediaType},
	{errdef.IsUnprocessable, http.StatusUnprocessableEntity},
	{errdef.IsUpstream, http.StatusBadGateway},
}

// ErrorHandler responds with the last error handlers added to the Gin context. Errors of a kind
// defined in errdef are sent to the client as is. Any other error is reported as an internal
// server error that only reveals the correlation ID of the request.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		err := c.Errors.Last()
		if err == nil {
			return
		}

		// the handler already chose a status using c.AbortWithError
		if c.Writer.Status() != http.StatusOK {
			_, _ = c.Writer.WriteString(err.Error())
			return
		}

		for _, e := range errorStatuses {
			if e.is(err) {
				c.String(e.status, err.Error())
				return
			}
		}

		id, _ := GetCorrelationID(c.Request.Context())
		c.String(http.StatusInternalServerError, "something went wrong. We'll look into it if you send us the id %q", id)
	}
}
