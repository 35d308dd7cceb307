package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NOMAN1802/ibooking/internal/apperr"
	"github.com/NOMAN1802/ibooking/internal/middleware"
	"github.com/NOMAN1802/ibooking/internal/models"
	"github.com/NOMAN1802/ibooking/internal/registry"
)

type UserController struct {
	users *registry.Users
}

func NewUserController(users *registry.Users) *UserController {
	return &UserController{users: users}
}

// Create handles the idempotent first-sign-in insert.
func (uc *UserController) Create(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		middleware.Fail(c, apperr.Validation("invalid user payload: "+err.Error()))
		return
	}

	res, created, err := uc.users.Create(c.Request.Context(), user)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "User already exist"})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (uc *UserController) List(c *gin.Context) {
	users, err := uc.users.All(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Update is the self-service profile update for PUT /users/:email.
func (uc *UserController) Update(c *gin.Context) {
	var input struct {
		Name  string `json:"name"`
		Image string `json:"image"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		middleware.Fail(c, apperr.Validation("invalid user payload: "+err.Error()))
		return
	}

	res, err := uc.users.UpdateProfile(c.Request.Context(), c.Param("email"), input.Name, input.Image)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// IsAdmin, IsHost and IsGuest back the client's role hooks. A caller may
// only ask about their own email; any other email answers false rather
// than erroring.

func (uc *UserController) IsAdmin(c *gin.Context) {
	uc.roleQuery(c, "Admin", models.RoleAdmin)
}

func (uc *UserController) IsHost(c *gin.Context) {
	uc.roleQuery(c, "Host", models.RoleHost)
}

func (uc *UserController) IsGuest(c *gin.Context) {
	uc.roleQuery(c, "Guest", models.RoleGuest)
}

func (uc *UserController) roleQuery(c *gin.Context, key string, want models.Role) {
	email := c.Param("email")
	if middleware.EmailFromContext(c) != email {
		c.JSON(http.StatusOK, gin.H{key: false})
		return
	}

	role, err := uc.users.RoleOf(c.Request.Context(), email)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{key: role == want})
}

// MakeHost and MakeAdmin are the admin promotion endpoints keyed by
// document id.

func (uc *UserController) MakeHost(c *gin.Context) {
	uc.setRole(c, models.RoleHost)
}

func (uc *UserController) MakeAdmin(c *gin.Context) {
	uc.setRole(c, models.RoleAdmin)
}

func (uc *UserController) setRole(c *gin.Context, role models.Role) {
	res, err := uc.users.SetRole(c.Request.Context(), c.Param("id"), role)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// RequestHost parks a guest in the pending-host role.
func (uc *UserController) RequestHost(c *gin.Context) {
	res, err := uc.users.RequestHost(c.Request.Context(), c.Param("email"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
