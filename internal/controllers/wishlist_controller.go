package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NOMAN1802/ibooking/internal/apperr"
	"github.com/NOMAN1802/ibooking/internal/middleware"
	"github.com/NOMAN1802/ibooking/internal/models"
	"github.com/NOMAN1802/ibooking/internal/registry"
)

type WishListController struct {
	wishLists *registry.WishLists
}

func NewWishListController(wishLists *registry.WishLists) *WishListController {
	return &WishListController{wishLists: wishLists}
}

func (wc *WishListController) List(c *gin.Context) {
	entries, err := wc.wishLists.ForGuest(c.Request.Context(), c.Query("email"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (wc *WishListController) Create(c *gin.Context) {
	var entry models.WishListEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		middleware.Fail(c, apperr.Validation("invalid wishlist payload: "+err.Error()))
		return
	}

	res, err := wc.wishLists.Add(c.Request.Context(), entry)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (wc *WishListController) Delete(c *gin.Context) {
	res, err := wc.wishLists.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
