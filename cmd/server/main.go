package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/NOMAN1802/ibooking/internal/config"
	"github.com/NOMAN1802/ibooking/internal/controllers"
	"github.com/NOMAN1802/ibooking/internal/logger"
	"github.com/NOMAN1802/ibooking/internal/middleware"
	"github.com/NOMAN1802/ibooking/internal/payment"
	"github.com/NOMAN1802/ibooking/internal/registry"
	"github.com/NOMAN1802/ibooking/internal/routes"
	"github.com/NOMAN1802/ibooking/internal/store"
)

func main() {
	cfg := config.Load()

	// Initialize structured logging to file
	logger.Setup(cfg.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to the document store
	client, err := config.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("failed to connect to mongo: %v", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Printf("mongo disconnect: %v", err)
		}
	}()

	db := client.Database(cfg.DBName)
	users := registry.NewUsers(store.NewMongo(db.Collection("users")))
	listings := registry.NewListings(
		store.NewMongo(db.Collection("rooms")),
		store.NewMongo(db.Collection("cars")),
	)
	bookings := registry.NewBookings(store.NewMongo(db.Collection("bookings")), listings)
	wishLists := registry.NewWishLists(store.NewMongo(db.Collection("wishList")))
	blogs := registry.NewBlogs(store.NewMongo(db.Collection("blogs")))

	r := routes.SetupRouter(routes.Deps{
		Auth:      controllers.NewAuthController(cfg.JWTSecret),
		Users:     controllers.NewUserController(users),
		Listings:  controllers.NewListingController(listings),
		Bookings:  controllers.NewBookingController(bookings),
		WishLists: controllers.NewWishListController(wishLists),
		Blogs:     controllers.NewBlogController(blogs),
		Payments:  controllers.NewPaymentController(payment.NewStripeIntents(cfg.StripeKey)),
		Guard:     middleware.NewGuard(cfg.JWTSecret, users),
	})

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: handler}
	go func() {
		log.Printf("🚀 Booking is sitting on port :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
}
