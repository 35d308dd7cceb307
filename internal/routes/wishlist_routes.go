package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/NOMAN1802/ibooking/internal/controllers"
)

func WishListRoutes(r *gin.Engine, wc *controllers.WishListController) {
	r.GET("/wishList", wc.List)
	r.POST("/wishList", wc.Create)
	r.DELETE("/wishList/:id", wc.Delete)
}
