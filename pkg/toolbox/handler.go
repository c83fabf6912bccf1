package toolbox

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func NewHandler(catalog *Catalog) Handler {
	return Handler{catalog: catalog}
}

type Handler struct {
	catalog *Catalog
}

// DBTypes having menus
func (h Handler) DBTypes(c *gin.Context) {
	// swagger:route GET /toolbox/menus toolboxDBTypes
	//
	// Find db types
	//
	// Find the db types which have toolbox menus
	//
	// responses:
	//   200: []string
	c.JSON(http.StatusOK, h.catalog.DBTypes())
}

// Menus of a db type
func (h Handler) Menus(c *gin.Context) {
	// swagger:route GET /toolbox/menus/{dbType} toolboxMenus
	//
	// Find menus
	//
	// Find the toolbox menus of a db type
	//
	// responses:
	//   200: []Menu
	//   404: Error
	menus, err := h.catalog.Menus(c.Param("dbType"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, menus)
}
