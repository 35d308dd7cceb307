package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/NOMAN1802/ibooking/internal/controllers"
	"github.com/NOMAN1802/ibooking/internal/middleware"
)

func PaymentRoutes(r *gin.Engine, pc *controllers.PaymentController, guard *middleware.Guard) {
	r.POST("/create-payment-intent", guard.Authenticate(), pc.CreateIntent)
}
