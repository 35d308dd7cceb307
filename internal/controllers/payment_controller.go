package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NOMAN1802/ibooking/internal/apperr"
	"github.com/NOMAN1802/ibooking/internal/middleware"
	"github.com/NOMAN1802/ibooking/internal/payment"
)

type PaymentController struct {
	intents payment.IntentCreator
}

func NewPaymentController(intents payment.IntentCreator) *PaymentController {
	return &PaymentController{intents: intents}
}

// CreateIntent asks the provider for a client secret covering the posted
// price.
func (pc *PaymentController) CreateIntent(c *gin.Context) {
	var input struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		middleware.Fail(c, apperr.Validation("invalid payment payload: "+err.Error()))
		return
	}

	secret, err := pc.intents.CreateIntent(c.Request.Context(), input.Price)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}
