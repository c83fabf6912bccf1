package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xfwduke/blueking-dbm/internal/errdef"
)

// GetPathParameter parses the named path parameter as an id. Ids start at 1. The error is added to
// the context and false returned if the parameter isn't a valid id.
func GetPathParameter(c *gin.Context, parameter string) (uint, bool) {
	value := c.Param(parameter)
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil || id == 0 {
		_ = c.Error(errdef.NewBadRequest("invalid %s %q: want a positive integer", parameter, value))
		return 0, false
	}
	return uint(id), true
}
