package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/xfwduke/blueking-dbm/internal/errdef"
)

// DataBinder binds and validates a JSON request body into req.
func DataBinder(c *gin.Context, req any) error {
	if c.ContentType() != gin.MIMEJSON {
		return errdef.NewUnsupportedMediaType("%s only accepts content of type %s", c.FullPath(), gin.MIMEJSON)
	}

	if err := c.ShouldBindJSON(req); err != nil {
		return errdef.NewBadRequest("error binding data: %v", err)
	}

	return nil
}

// QueryBinder binds and validates the URL query parameters into req.
func QueryBinder(c *gin.Context, req any) error {
	if err := c.ShouldBindQuery(req); err != nil {
		return errdef.NewBadRequest("error binding query: %v", err)
	}

	return nil
}
