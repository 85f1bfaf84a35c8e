// Package storetest provides in-memory repository stand-ins with the same
// ordering and lookup contracts as the SQLite repositories, so service and
// interpreter tests run without a database.
package storetest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"task-manager-bot/internal/model"
	"task-manager-bot/internal/repository"
)

// Store backs a pair of fake repositories sharing one data set. Creation
// timestamps advance by a minute per insert so created-at ordering is
// deterministic.
type Store struct {
	mu         sync.Mutex
	nextTaskID uint
	nextCatID  uint
	clock      time.Time
	tasks      []model.Task
	categories []model.Category

	// When set, every operation on the corresponding repository fails.
	TaskErr     error
	CategoryErr error
}

func NewStore() *Store {
	return &Store{
		clock: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *Store) Tasks() *TaskRepo { return &TaskRepo{s: s} }

func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }

func (s *Store) tick() time.Time {
	s.clock = s.clock.Add(time.Minute)
	return s.clock
}

// AllTasks returns a snapshot in insertion order.
func (s *Store) AllTasks() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// TaskByTitle finds a task by exact title; nil when absent.
func (s *Store) TaskByTitle(title string) *model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].Title == title {
			task := s.tasks[i]
			return &task
		}
	}
	return nil
}

// AllCategories returns a snapshot in insertion order.
func (s *Store) AllCategories() []model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// TaskRepo implements service.TaskRepo in memory.
type TaskRepo struct {
	s *Store
}

func (r *TaskRepo) Create(ctx context.Context, task *model.Task) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.TaskErr != nil {
		return s.TaskErr
	}
	s.nextTaskID++
	task.ID = s.nextTaskID
	task.CreatedAt = s.tick()
	task.UpdatedAt = task.CreatedAt
	s.tasks = append(s.tasks, *task)
	return nil
}

func (r *TaskRepo) List(ctx context.Context, filter repository.TaskFilter) ([]model.Task, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.TaskErr != nil {
		return nil, s.TaskErr
	}
	var out []model.Task
	for _, task := range s.tasks {
		if filter.Completed != nil && task.Completed != *filter.Completed {
			continue
		}
		if filter.CategoryID != nil && (task.CategoryID == nil || *task.CategoryID != *filter.CategoryID) {
			continue
		}
		out = append(out, task)
	}
	sortTasks(out, false)
	return out, nil
}

func (r *TaskRepo) ListByCompletion(ctx context.Context) ([]model.Task, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.TaskErr != nil {
		return nil, s.TaskErr
	}
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	sortTasks(out, true)
	return out, nil
}

func (r *TaskRepo) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.TaskErr != nil {
		return nil, s.TaskErr
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			task := s.tasks[i]
			return &task, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *TaskRepo) Save(ctx context.Context, task *model.Task) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.TaskErr != nil {
		return s.TaskErr
	}
	for i := range s.tasks {
		if s.tasks[i].ID == task.ID {
			task.UpdatedAt = s.tick()
			s.tasks[i] = *task
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *TaskRepo) Delete(ctx context.Context, id uint) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.TaskErr != nil {
		return s.TaskErr
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

// CategoryRepo implements service.CategoryRepo in memory.
type CategoryRepo struct {
	s *Store
}

func (r *CategoryRepo) FindByName(ctx context.Context, name string) (*model.Category, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.CategoryErr != nil {
		return nil, s.CategoryErr
	}
	for i := range s.categories {
		if strings.EqualFold(s.categories[i].Name, name) {
			category := s.categories[i]
			return &category, nil
		}
	}
	return nil, nil
}

func (r *CategoryRepo) Create(ctx context.Context, name, color string) (*model.Category, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.CategoryErr != nil {
		return nil, s.CategoryErr
	}
	s.nextCatID++
	category := model.Category{
		ID:        s.nextCatID,
		Name:      name,
		Color:     color,
		CreatedAt: s.tick(),
	}
	s.categories = append(s.categories, category)
	return &category, nil
}

func (r *CategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.CategoryErr != nil {
		return nil, s.CategoryErr
	}
	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *CategoryRepo) FindByID(ctx context.Context, id uint) (*model.Category, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.CategoryErr != nil {
		return nil, s.CategoryErr
	}
	for i := range s.categories {
		if s.categories[i].ID == id {
			category := s.categories[i]
			return &category, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// Delete detaches referencing tasks before removing the category, mirroring
// the SQL transaction in the real repository.
func (r *CategoryRepo) Delete(ctx context.Context, id uint) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.CategoryErr != nil {
		return s.CategoryErr
	}
	for i := range s.tasks {
		if s.tasks[i].CategoryID != nil && *s.tasks[i].CategoryID == id {
			s.tasks[i].CategoryID = nil
		}
	}
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

// sortTasks applies the listing order: due date ascending with undated tasks
// last, newest-created first on ties. byCompletion prepends the
// pending-before-completed key used by the delete view.
func sortTasks(tasks []model.Task, byCompletion bool) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if byCompletion && a.Completed != b.Completed {
			return !a.Completed
		}
		switch {
		case a.DueDate == nil && b.DueDate == nil:
			// fall through to created-at
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		case !a.DueDate.Equal(*b.DueDate):
			return a.DueDate.Before(*b.DueDate)
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}
