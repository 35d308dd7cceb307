package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/NOMAN1802/ibooking/internal/controllers"
	"github.com/NOMAN1802/ibooking/internal/middleware"
)

func UserRoutes(r *gin.Engine, uc *controllers.UserController, guard *middleware.Guard) {
	r.POST("/users", uc.Create)
	r.GET("/users", uc.List)
	r.PUT("/users/:email", uc.Update)

	// Self-only role queries: the token must belong to the queried email.
	r.GET("/users/admin/:email", guard.Authenticate(), uc.IsAdmin)
	r.GET("/users/host/:email", guard.Authenticate(), uc.IsHost)
	r.GET("/users/guest/:email", guard.Authenticate(), uc.IsGuest)

	r.PATCH("/users/host/:id", uc.MakeHost)
	r.PATCH("/users/admin/:id", uc.MakeAdmin)
	r.PATCH("/users/hostRequest/:email", uc.RequestHost)
}
