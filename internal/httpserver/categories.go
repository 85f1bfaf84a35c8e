package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"task-manager-bot/internal/model"
)

type categoryResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

func toCategoryResponse(category model.Category) categoryResponse {
	return categoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		Color:     category.Color,
		CreatedAt: category.CreatedAt,
	}
}

type createCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (s *Server) listCategories(c *gin.Context) {
	categories, err := s.categories.List(c.Request.Context())
	if err != nil {
		s.fail(c, "list categories", err)
		return
	}
	resp := make([]categoryResponse, 0, len(categories))
	for _, category := range categories {
		resp = append(resp, toCategoryResponse(category))
	}
	c.JSON(http.StatusOK, gin.H{"categories": resp})
}

func (s *Server) createCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	category, err := s.categories.Create(c.Request.Context(), req.Name, req.Color)
	if err != nil {
		s.fail(c, "create category", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": toCategoryResponse(*category)})
}

func (s *Server) deleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.categories.Delete(c.Request.Context(), id); err != nil {
		s.fail(c, "delete category", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
