package history

import "github.com/gin-gonic/gin"

func Routes(r gin.IRouter, handler Handler) {
	r.GET("/clone-records", handler.FindAll)
}
