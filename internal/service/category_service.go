package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"task-manager-bot/internal/model"
)

// CategoryRepo is the persistence surface CategoryService needs.
type CategoryRepo interface {
	FindByName(ctx context.Context, name string) (*model.Category, error)
	Create(ctx context.Context, name, color string) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id uint) (*model.Category, error)
	Delete(ctx context.Context, id uint) error
}

// CategoryService provides the two resolution paths categories have: the
// implicit one used when a chat command names an unknown category, and the
// explicit one that rejects duplicates.
type CategoryService struct {
	categories CategoryRepo
}

func NewCategoryService(categories CategoryRepo) *CategoryService {
	return &CategoryService{categories: categories}
}

// Ensure returns the category with the given name, creating it with the
// default color when absent. Lookup is case-insensitive; a created category
// keeps the caller's casing. This path never rejects an existing name.
func (s *CategoryService) Ensure(ctx context.Context, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}

	category, err := s.categories.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if category != nil {
		return category, nil
	}
	return s.categories.Create(ctx, name, model.DefaultCategoryColor)
}

// Create is the explicit path (newcat, POST /api/categories): a name that
// already exists case-insensitively is a conflict.
func (s *CategoryService) Create(ctx context.Context, name, color string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}

	existing, err := s.categories.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: category %q", ErrConflict, existing.Name)
	}

	if color == "" {
		color = model.DefaultCategoryColor
	}
	return s.categories.Create(ctx, name, color)
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.categories.List(ctx)
}

// Delete detaches dependent tasks and removes the category.
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: category %d", ErrNotFound, id)
		}
		return fmt.Errorf("find category: %w", err)
	}
	return s.categories.Delete(ctx, id)
}
