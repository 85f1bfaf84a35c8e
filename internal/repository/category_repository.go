package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"task-manager-bot/internal/model"
)

// CategoryRepository manages task categories.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// FindByName looks a category up by case-insensitive name match. A missing
// category is not an error: the result is nil, nil.
func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&category).Error
	switch {
	case err == nil:
		return &category, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	default:
		return nil, fmt.Errorf("find category: %w", err)
	}
}

func (r *CategoryRepository) Create(ctx context.Context, name, color string) (*model.Category, error) {
	category := model.Category{Name: name, Color: color}
	if err := r.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &category, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Delete removes a category after detaching every task that references it.
// Tasks survive with category_id cleared; nothing cascades.
func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Task{}).Where("category_id = ?", id).Update("category_id", nil).Error; err != nil {
			return fmt.Errorf("detach tasks: %w", err)
		}
		if err := tx.Delete(&model.Category{}, id).Error; err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		return nil
	})
}
