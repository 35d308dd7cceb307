package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NOMAN1802/ibooking/internal/apperr"
	"github.com/NOMAN1802/ibooking/internal/middleware"
	"github.com/NOMAN1802/ibooking/internal/models"
	"github.com/NOMAN1802/ibooking/internal/registry"
)

// ListingController serves both registries; each route binds a handler
// to its kind, so /rooms and /cars share every handler body.
type ListingController struct {
	listings *registry.Listings
}

func NewListingController(listings *registry.Listings) *ListingController {
	return &ListingController{listings: listings}
}

func (lc *ListingController) Create(kind models.ListingKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var listing models.Listing
		if err := c.ShouldBindJSON(&listing); err != nil {
			middleware.Fail(c, apperr.Validation("invalid listing payload: "+err.Error()))
			return
		}

		res, err := lc.listings.Create(c.Request.Context(), kind, listing)
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func (lc *ListingController) List(kind models.ListingKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		listings, err := lc.listings.All(c.Request.Context(), kind)
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, listings)
	}
}

func (lc *ListingController) Featured(kind models.ListingKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		listings, err := lc.listings.Featured(c.Request.Context(), kind)
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, listings)
	}
}

func (lc *ListingController) Approved(kind models.ListingKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		listings, err := lc.listings.Approved(c.Request.Context(), kind)
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, listings)
	}
}

func (lc *ListingController) Get(kind models.ListingKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		listing, err := lc.listings.Get(c.Request.Context(), kind, c.Param("id"))
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, listing)
	}
}

func (lc *ListingController) Approve(kind models.ListingKind) gin.HandlerFunc {
	return lc.setStatus(kind, models.StatusApproved)
}

func (lc *ListingController) Deny(kind models.ListingKind) gin.HandlerFunc {
	return lc.setStatus(kind, models.StatusDenied)
}

func (lc *ListingController) setStatus(kind models.ListingKind, status models.ListingStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := lc.listings.SetStatus(c.Request.Context(), kind, c.Param("id"), status)
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// SetBooked flips the booked flag from body.status.
func (lc *ListingController) SetBooked(kind models.ListingKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Status *bool `json:"status"`
		}
		if err := c.ShouldBindJSON(&input); err != nil || input.Status == nil {
			middleware.Fail(c, apperr.Validation("missing booked status"))
			return
		}

		res, err := lc.listings.SetBooked(c.Request.Context(), kind, c.Param("id"), *input.Status)
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// Search is the exact-match availability search.
func (lc *ListingController) Search(kind models.ListingKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, err := registry.ParseSearchQuery(
			c.Query("location"),
			c.Query("checkIn"),
			c.Query("checkOut"),
			c.Query("guest"),
		)
		if err != nil {
			middleware.Fail(c, err)
			return
		}

		listings, err := lc.listings.Search(c.Request.Context(), kind, q)
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, listings)
	}
}
