package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NOMAN1802/ibooking/internal/apperr"
	"github.com/NOMAN1802/ibooking/internal/middleware"
)

type AuthController struct {
	secret []byte
}

func NewAuthController(secret string) *AuthController {
	return &AuthController{secret: []byte(secret)}
}

// IssueToken signs a 1-hour token for the posted user payload.
func (ac *AuthController) IssueToken(c *gin.Context) {
	var payload middleware.TokenPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		middleware.Fail(c, apperr.Validation("invalid token payload: "+err.Error()))
		return
	}

	token, err := middleware.GenerateToken(payload, ac.secret)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
