package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/NOMAN1802/ibooking/internal/controllers"
)

func BlogRoutes(r *gin.Engine, bc *controllers.BlogController) {
	r.POST("/blogs", bc.Create)
	r.GET("/blogs", bc.List)
	r.GET("/blogs/featured", bc.Featured)
	r.GET("/blog/:id", bc.Get)
}
