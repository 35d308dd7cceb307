package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NOMAN1802/ibooking/internal/apperr"
	"github.com/NOMAN1802/ibooking/internal/middleware"
	"github.com/NOMAN1802/ibooking/internal/models"
	"github.com/NOMAN1802/ibooking/internal/registry"
)

type BookingController struct {
	bookings *registry.Bookings
}

func NewBookingController(bookings *registry.Bookings) *BookingController {
	return &BookingController{bookings: bookings}
}

// List returns the bookings for the guest named in ?email. No email, no
// storage roundtrip, empty list.
func (bc *BookingController) List(c *gin.Context) {
	bookings, err := bc.bookings.ForGuest(c.Request.Context(), c.Query("email"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (bc *BookingController) Create(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		middleware.Fail(c, apperr.Validation("invalid booking payload: "+err.Error()))
		return
	}

	res, err := bc.bookings.Create(c.Request.Context(), booking)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (bc *BookingController) Delete(c *gin.Context) {
	res, err := bc.bookings.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
