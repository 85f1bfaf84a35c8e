package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"task-manager-bot/internal/model"
)

// TaskFilter narrows task listings. Nil fields mean "no filter".
type TaskFilter struct {
	Completed  *bool
	CategoryID *uint
}

// TaskRepository handles CRUD for tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// List returns tasks in the listing order: due date ascending with undated
// tasks last, then newest-created first. Positional chat commands depend on
// this order staying identical to what the list reply showed.
func (r *TaskRepository) List(ctx context.Context, filter TaskFilter) ([]model.Task, error) {
	q := r.db.WithContext(ctx).Model(&model.Task{})
	if filter.Completed != nil {
		q = q.Where("completed = ?", *filter.Completed)
	}
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}

	var tasks []model.Task
	if err := q.Order("due_date ASC NULLS LAST, created_at DESC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// ListByCompletion returns every task, pending before completed, each block
// in the same order List uses. This is the view "delete N" resolves against.
func (r *TaskRepository) ListByCompletion(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Order("completed ASC, due_date ASC NULLS LAST, created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks by completion: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Save persists field changes; gorm refreshes updated_at.
func (r *TaskRepository) Save(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Task{}, id).Error; err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
