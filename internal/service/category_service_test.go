package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager-bot/internal/model"
	"task-manager-bot/internal/service"
	"task-manager-bot/internal/storetest"
)

func TestCategoryEnsure(t *testing.T) {
	store := storetest.NewStore()
	svc := service.NewCategoryService(store.Categories())
	ctx := context.Background()

	t.Run("creates with the default color", func(t *testing.T) {
		category, err := svc.Ensure(ctx, "Shopping")
		require.NoError(t, err)
		assert.Equal(t, "Shopping", category.Name)
		assert.Equal(t, model.DefaultCategoryColor, category.Color)
	})

	t.Run("reuses an existing name case-insensitively", func(t *testing.T) {
		category, err := svc.Ensure(ctx, "SHOPPING")
		require.NoError(t, err)
		assert.Equal(t, "Shopping", category.Name)
		assert.Len(t, store.AllCategories(), 1)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := svc.Ensure(ctx, "  ")
		assert.ErrorIs(t, err, service.ErrValidation)
	})
}

func TestCategoryCreate(t *testing.T) {
	store := storetest.NewStore()
	svc := service.NewCategoryService(store.Categories())
	ctx := context.Background()

	t.Run("explicit color wins", func(t *testing.T) {
		category, err := svc.Create(ctx, "Work", "#FF0000")
		require.NoError(t, err)
		assert.Equal(t, "#FF0000", category.Color)
	})

	t.Run("empty color falls back to the default", func(t *testing.T) {
		category, err := svc.Create(ctx, "Home", "")
		require.NoError(t, err)
		assert.Equal(t, model.DefaultCategoryColor, category.Color)
	})

	t.Run("case-insensitive duplicate is a conflict", func(t *testing.T) {
		_, err := svc.Create(ctx, "work", "")
		assert.ErrorIs(t, err, service.ErrConflict)
		assert.Len(t, store.AllCategories(), 2)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, " ", "")
		assert.ErrorIs(t, err, service.ErrValidation)
	})
}

func TestCategoryDelete(t *testing.T) {
	store := storetest.NewStore()
	svc := service.NewCategoryService(store.Categories())
	taskSvc := service.NewTaskService(store.Tasks())
	ctx := context.Background()

	category, err := svc.Ensure(ctx, "Errands")
	require.NoError(t, err)
	task, err := taskSvc.CreateTask(ctx, service.TaskInput{Title: "Post office", CategoryID: &category.ID})
	require.NoError(t, err)

	t.Run("detaches tasks instead of deleting them", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, category.ID))
		assert.Empty(t, store.AllCategories())

		kept, err := taskSvc.GetTask(ctx, task.ID)
		require.NoError(t, err)
		assert.Nil(t, kept.CategoryID)
	})

	t.Run("missing category", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(ctx, category.ID), service.ErrNotFound)
	})
}
