package routes

import (
	"net/http"

	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/NOMAN1802/ibooking/internal/controllers"
	"github.com/NOMAN1802/ibooking/internal/middleware"
)

// Deps carries the wired controllers and the auth guard into the router.
type Deps struct {
	Auth      *controllers.AuthController
	Users     *controllers.UserController
	Listings  *controllers.ListingController
	Bookings  *controllers.BookingController
	WishLists *controllers.WishListController
	Blogs     *controllers.BlogController
	Payments  *controllers.PaymentController
	Guard     *middleware.Guard
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(ginlogger.SetLogger(ginlogger.WithLogger(
		func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().Str("request_id", middleware.RequestIDFromContext(c)).Logger()
		})))
	r.Use(middleware.ErrorBoundary())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "booking is running")
	})

	AuthRoutes(r, deps.Auth)
	UserRoutes(r, deps.Users, deps.Guard)
	ListingRoutes(r, deps.Listings, deps.Guard)
	BookingRoutes(r, deps.Bookings)
	WishListRoutes(r, deps.WishLists)
	BlogRoutes(r, deps.Blogs)
	PaymentRoutes(r, deps.Payments, deps.Guard)

	return r
}
