package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"task-manager-bot/internal/model"
	"task-manager-bot/internal/repository"
)

// TaskInput represents data required to create a task.
type TaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	CategoryID  *uint
}

// TaskUpdate carries partial field changes. Nil pointers leave the field
// untouched; the Clear flags reset optional fields to absent.
type TaskUpdate struct {
	Title         *string
	Description   *string
	DueDate       *time.Time
	ClearDueDate  bool
	CategoryID    *uint
	ClearCategory bool
	Completed     *bool
}

// TaskRepo is the persistence surface TaskService needs.
type TaskRepo interface {
	Create(ctx context.Context, task *model.Task) error
	List(ctx context.Context, filter repository.TaskFilter) ([]model.Task, error)
	ListByCompletion(ctx context.Context) ([]model.Task, error)
	FindByID(ctx context.Context, id uint) (*model.Task, error)
	Save(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id uint) error
}

// TaskService wraps task-related business logic.
type TaskService struct {
	tasks TaskRepo
}

func NewTaskService(tasks TaskRepo) *TaskService {
	return &TaskService{tasks: tasks}
}

func (s *TaskService) CreateTask(ctx context.Context, input TaskInput) (*model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	task := model.Task{
		Title:       title,
		Description: input.Description,
		DueDate:     input.DueDate,
		CategoryID:  input.CategoryID,
	}
	if err := s.tasks.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, filter repository.TaskFilter) ([]model.Task, error) {
	return s.tasks.List(ctx, filter)
}

func (s *TaskService) ListByCompletion(ctx context.Context) ([]model.Task, error) {
	return s.tasks.ListByCompletion(ctx)
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: task %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return task, nil
}

// CompleteTask marks a task as done.
func (s *TaskService) CompleteTask(ctx context.Context, id uint) (*model.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	task.Completed = true
	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// ToggleTask flips the completion flag; the structured API uses this.
func (s *TaskService) ToggleTask(ctx context.Context, id uint) (*model.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	task.Completed = !task.Completed
	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint, update TaskUpdate) (*model.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title is required", ErrValidation)
		}
		task.Title = title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	switch {
	case update.ClearDueDate:
		task.DueDate = nil
	case update.DueDate != nil:
		task.DueDate = update.DueDate
	}
	switch {
	case update.ClearCategory:
		task.CategoryID = nil
	case update.CategoryID != nil:
		task.CategoryID = update.CategoryID
	}
	if update.Completed != nil {
		task.Completed = *update.Completed
	}

	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	if _, err := s.GetTask(ctx, id); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, id)
}
