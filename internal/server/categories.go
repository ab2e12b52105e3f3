package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mochilabs/mochi/internal/store"
)

func (s *Server) ListCategories(c *gin.Context) {
	cats, err := s.categories.List(c.Request.Context())
	if err != nil {
		s.log.Error("list categories", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load categories"})
		return
	}
	c.JSON(http.StatusOK, cats)
}

type createCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IconURL     string `json:"icon_url"`
	Color       string `json:"color"`
}

func (s *Server) CreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cat := store.Category{
		Name:        req.Name,
		Description: req.Description,
		IconURL:     req.IconURL,
		Color:       req.Color,
	}
	if err := s.categories.Create(c.Request.Context(), &cat); err != nil {
		s.log.Error("create category", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save category"})
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (s *Server) RecentActivities(c *gin.Context) {
	cats, err := s.categories.Recent(c.Request.Context(), 5)
	if err != nil {
		s.log.Error("recent activities", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load activities"})
		return
	}
	c.JSON(http.StatusOK, cats)
}

// categoryID parses the :id path parameter.
func categoryID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return 0, false
	}
	return uint(id), true
}
