package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/NOMAN1802/ibooking/internal/controllers"
	"github.com/NOMAN1802/ibooking/internal/middleware"
	"github.com/NOMAN1802/ibooking/internal/models"
)

func ListingRoutes(r *gin.Engine, lc *controllers.ListingController, guard *middleware.Guard) {
	// Moderation is admin-only: the guard verifies the token first, then
	// resolves the stored role.
	adminOnly := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return []gin.HandlerFunc{guard.Authenticate(), guard.RequireRole(models.RoleAdmin), h}
	}

	r.POST("/rooms", lc.Create(models.KindRooms))
	r.GET("/rooms", lc.List(models.KindRooms))
	r.GET("/rooms/featured", lc.Featured(models.KindRooms))
	r.GET("/rooms/approved", lc.Approved(models.KindRooms))
	r.GET("/rooms/search", lc.Search(models.KindRooms))
	r.GET("/room/:id", lc.Get(models.KindRooms))
	r.PATCH("/rooms/approved/:id", adminOnly(lc.Approve(models.KindRooms))...)
	r.PATCH("/rooms/denied/:id", adminOnly(lc.Deny(models.KindRooms))...)
	r.PATCH("/rooms/status/:id", lc.SetBooked(models.KindRooms))

	r.POST("/cars", lc.Create(models.KindCars))
	r.GET("/cars", lc.List(models.KindCars))
	r.GET("/cars/featured", lc.Featured(models.KindCars))
	r.GET("/car/:id", lc.Get(models.KindCars))
	r.PATCH("/cars/approved/:id", adminOnly(lc.Approve(models.KindCars))...)
	r.PATCH("/cars/denied/:id", adminOnly(lc.Deny(models.KindCars))...)
	r.PATCH("/cars/status/:id", lc.SetBooked(models.KindCars))
}
