package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/NOMAN1802/ibooking/internal/controllers"
)

func AuthRoutes(r *gin.Engine, ac *controllers.AuthController) {
	r.POST("/jwt", ac.IssueToken)
}
