package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NOMAN1802/ibooking/internal/apperr"
	"github.com/NOMAN1802/ibooking/internal/middleware"
	"github.com/NOMAN1802/ibooking/internal/models"
	"github.com/NOMAN1802/ibooking/internal/registry"
)

type BlogController struct {
	blogs *registry.Blogs
}

func NewBlogController(blogs *registry.Blogs) *BlogController {
	return &BlogController{blogs: blogs}
}

func (bc *BlogController) Create(c *gin.Context) {
	var blog models.Blog
	if err := c.ShouldBindJSON(&blog); err != nil {
		middleware.Fail(c, apperr.Validation("invalid blog payload: "+err.Error()))
		return
	}

	res, err := bc.blogs.Create(c.Request.Context(), blog)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (bc *BlogController) List(c *gin.Context) {
	blogs, err := bc.blogs.All(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, blogs)
}

func (bc *BlogController) Featured(c *gin.Context) {
	blogs, err := bc.blogs.Featured(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, blogs)
}

func (bc *BlogController) Get(c *gin.Context) {
	blog, err := bc.blogs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, blog)
}
