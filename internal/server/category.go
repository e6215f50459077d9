package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	categorydomain "github.com/tillworks/posledger/internal/category/domain"
)

type createCategoryRequest struct {
	Name    string   `json:"category_name"`
	TaxRate *float64 `json:"tax_rate"`
}

type updateCategoryRequest struct {
	Name    string   `json:"category_name"`
	TaxRate *float64 `json:"tax_rate"`
}

func (s *Server) ListCategories(c *gin.Context) {
	categories, err := s.categorySvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": categories})
}

func (s *Server) CreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	category, err := s.categorySvc.Create(c.Request.Context(), categorydomain.CreateRequest{
		Name:    strings.TrimSpace(req.Name),
		TaxRate: req.TaxRate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": category})
}

func (s *Server) UpdateCategory(c *gin.Context) {
	var req updateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	category, err := s.categorySvc.Update(c.Request.Context(), categorydomain.UpdateRequest{
		ID:      strings.TrimSpace(c.Param("id")),
		Name:    strings.TrimSpace(req.Name),
		TaxRate: req.TaxRate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": category})
}

func (s *Server) DeleteCategory(c *gin.Context) {
	if err := s.categorySvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}
