package toolbox

import "github.com/gin-gonic/gin"

func Routes(r gin.IRouter, handler Handler) {
	r.GET("/toolbox/menus", handler.DBTypes)
	r.GET("/toolbox/menus/:dbType", handler.Menus)
}
