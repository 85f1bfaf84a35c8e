package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"task-manager-bot/internal/model"
	"task-manager-bot/internal/repository"
	"task-manager-bot/internal/service"
)

const dateLayout = "2006-01-02"

type taskResponse struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	DueDate       *string   `json:"due_date,omitempty"`
	CategoryID    *uint     `json:"category_id,omitempty"`
	CategoryName  string    `json:"category_name,omitempty"`
	CategoryColor string    `json:"category_color,omitempty"`
	Completed     bool      `json:"completed"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toTaskResponse(task model.Task, categories map[uint]model.Category) taskResponse {
	resp := taskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		CategoryID:  task.CategoryID,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
	if task.DueDate != nil {
		due := task.DueDate.Format(dateLayout)
		resp.DueDate = &due
	}
	if task.CategoryID != nil {
		if category, ok := categories[*task.CategoryID]; ok {
			resp.CategoryName = category.Name
			resp.CategoryColor = category.Color
		}
	}
	return resp
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	CategoryID  *uint  `json:"category_id"`
	Category    string `json:"category"`
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"` // "" clears the due date
	CategoryID  *uint   `json:"category_id"`
	Completed   *bool   `json:"completed"`
}

func (s *Server) listTasks(c *gin.Context) {
	var filter repository.TaskFilter
	if raw := c.Query("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "completed must be true or false"})
			return
		}
		filter.Completed = &completed
	}
	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category_id must be a number"})
			return
		}
		categoryID := uint(id)
		filter.CategoryID = &categoryID
	}

	tasks, err := s.tasks.ListTasks(c.Request.Context(), filter)
	if err != nil {
		s.fail(c, "list tasks", err)
		return
	}
	categories, err := s.categoryIndex(c)
	if err != nil {
		s.fail(c, "list categories", err)
		return
	}

	resp := make([]taskResponse, 0, len(tasks))
	for _, task := range tasks {
		resp = append(resp, toTaskResponse(task, categories))
	}
	c.JSON(http.StatusOK, gin.H{"tasks": resp})
}

func (s *Server) createTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	input := service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	}
	if req.DueDate != "" {
		due, err := time.Parse(dateLayout, req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "due_date must be YYYY-MM-DD"})
			return
		}
		input.DueDate = &due
	}
	// A category may arrive by name; unknown names are auto-created like on
	// the chat channel.
	if req.CategoryID == nil && req.Category != "" {
		category, err := s.categories.Ensure(c.Request.Context(), req.Category)
		if err != nil {
			s.fail(c, "resolve category", err)
			return
		}
		input.CategoryID = &category.ID
	}

	task, err := s.tasks.CreateTask(c.Request.Context(), input)
	if err != nil {
		s.fail(c, "create task", err)
		return
	}
	categories, err := s.categoryIndex(c)
	if err != nil {
		s.fail(c, "list categories", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"task": toTaskResponse(*task, categories)})
}

func (s *Server) updateTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	update := service.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Completed:   req.Completed,
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			update.ClearDueDate = true
		} else {
			due, err := time.Parse(dateLayout, *req.DueDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "due_date must be YYYY-MM-DD"})
				return
			}
			update.DueDate = &due
		}
	}

	task, err := s.tasks.UpdateTask(c.Request.Context(), id, update)
	if err != nil {
		s.fail(c, "update task", err)
		return
	}
	categories, err := s.categoryIndex(c)
	if err != nil {
		s.fail(c, "list categories", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": toTaskResponse(*task, categories)})
}

func (s *Server) toggleTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	task, err := s.tasks.ToggleTask(c.Request.Context(), id)
	if err != nil {
		s.fail(c, "toggle task", err)
		return
	}
	categories, err := s.categoryIndex(c)
	if err != nil {
		s.fail(c, "list categories", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": toTaskResponse(*task, categories)})
}

func (s *Server) deleteTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.tasks.DeleteTask(c.Request.Context(), id); err != nil {
		s.fail(c, "delete task", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) categoryIndex(c *gin.Context) (map[uint]model.Category, error) {
	categories, err := s.categories.List(c.Request.Context())
	if err != nil {
		return nil, err
	}
	index := make(map[uint]model.Category, len(categories))
	for _, category := range categories {
		index[category.ID] = category
	}
	return index, nil
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a number"})
		return 0, false
	}
	return uint(id), true
}

// fail maps taxonomy errors to status codes; anything else is a store
// failure that gets logged and answered with a generic 500.
func (s *Server) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		s.logger.Error(op, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
