package clone

import "github.com/gin-gonic/gin"

func Routes(r gin.IRouter, handler Handler) {
	r.GET("/ticket-types", handler.TicketTypes)
	r.POST("/tickets/clone", handler.Clone)
	r.POST("/tickets/clone/batch", handler.CloneBatch)
	r.GET("/tickets/:id/clone", handler.CloneByID)
}
