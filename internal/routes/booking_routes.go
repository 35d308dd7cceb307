package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/NOMAN1802/ibooking/internal/controllers"
)

func BookingRoutes(r *gin.Engine, bc *controllers.BookingController) {
	r.GET("/bookings", bc.List)
	r.POST("/bookings", bc.Create)
	r.DELETE("/bookings/:id", bc.Delete)
}
