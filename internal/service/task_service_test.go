package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager-bot/internal/repository"
	"task-manager-bot/internal/service"
	"task-manager-bot/internal/storetest"
)

func TestCreateTask(t *testing.T) {
	store := storetest.NewStore()
	svc := service.NewTaskService(store.Tasks())
	ctx := context.Background()

	t.Run("trims the title", func(t *testing.T) {
		task, err := svc.CreateTask(ctx, service.TaskInput{Title: "  Buy milk  "})
		require.NoError(t, err)
		assert.Equal(t, "Buy milk", task.Title)
		assert.NotZero(t, task.ID)
		assert.False(t, task.Completed)
	})

	t.Run("rejects an empty title", func(t *testing.T) {
		_, err := svc.CreateTask(ctx, service.TaskInput{Title: "   "})
		assert.ErrorIs(t, err, service.ErrValidation)
	})
}

func TestListTasks(t *testing.T) {
	store := storetest.NewStore()
	svc := service.NewTaskService(store.Tasks())
	ctx := context.Background()

	due := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	_, err := svc.CreateTask(ctx, service.TaskInput{Title: "Undated"})
	require.NoError(t, err)
	dated, err := svc.CreateTask(ctx, service.TaskInput{Title: "Dated", DueDate: &due})
	require.NoError(t, err)
	_, err = svc.CompleteTask(ctx, dated.ID)
	require.NoError(t, err)

	t.Run("pending filter", func(t *testing.T) {
		pending := false
		tasks, err := svc.ListTasks(ctx, repository.TaskFilter{Completed: &pending})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "Undated", tasks[0].Title)
	})

	t.Run("completion ordering puts pending first", func(t *testing.T) {
		tasks, err := svc.ListByCompletion(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, "Undated", tasks[0].Title)
		assert.Equal(t, "Dated", tasks[1].Title)
	})
}

func TestCompleteAndToggleTask(t *testing.T) {
	store := storetest.NewStore()
	svc := service.NewTaskService(store.Tasks())
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, service.TaskInput{Title: "Chore"})
	require.NoError(t, err)

	t.Run("complete marks done", func(t *testing.T) {
		done, err := svc.CompleteTask(ctx, task.ID)
		require.NoError(t, err)
		assert.True(t, done.Completed)
	})

	t.Run("complete is idempotent", func(t *testing.T) {
		done, err := svc.CompleteTask(ctx, task.ID)
		require.NoError(t, err)
		assert.True(t, done.Completed)
	})

	t.Run("toggle flips back", func(t *testing.T) {
		flipped, err := svc.ToggleTask(ctx, task.ID)
		require.NoError(t, err)
		assert.False(t, flipped.Completed)
	})

	t.Run("missing task", func(t *testing.T) {
		_, err := svc.CompleteTask(ctx, 999)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestUpdateTask(t *testing.T) {
	store := storetest.NewStore()
	svc := service.NewTaskService(store.Tasks())
	catSvc := service.NewCategoryService(store.Categories())
	ctx := context.Background()

	due := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	category, err := catSvc.Ensure(ctx, "Work")
	require.NoError(t, err)
	task, err := svc.CreateTask(ctx, service.TaskInput{Title: "Draft report", DueDate: &due, CategoryID: &category.ID})
	require.NoError(t, err)

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		title := "Finish report"
		updated, err := svc.UpdateTask(ctx, task.ID, service.TaskUpdate{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "Finish report", updated.Title)
		require.NotNil(t, updated.DueDate)
		assert.Equal(t, due, *updated.DueDate)
		require.NotNil(t, updated.CategoryID)
	})

	t.Run("clear flags reset optional fields", func(t *testing.T) {
		updated, err := svc.UpdateTask(ctx, task.ID, service.TaskUpdate{ClearDueDate: true, ClearCategory: true})
		require.NoError(t, err)
		assert.Nil(t, updated.DueDate)
		assert.Nil(t, updated.CategoryID)
	})

	t.Run("blank title rejected", func(t *testing.T) {
		blank := "  "
		_, err := svc.UpdateTask(ctx, task.ID, service.TaskUpdate{Title: &blank})
		assert.ErrorIs(t, err, service.ErrValidation)
	})

	t.Run("missing task", func(t *testing.T) {
		title := "x"
		_, err := svc.UpdateTask(ctx, 999, service.TaskUpdate{Title: &title})
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestDeleteTask(t *testing.T) {
	store := storetest.NewStore()
	svc := service.NewTaskService(store.Tasks())
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, service.TaskInput{Title: "Ephemeral"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(ctx, task.ID))
	assert.Empty(t, store.AllTasks())

	assert.ErrorIs(t, svc.DeleteTask(ctx, task.ID), service.ErrNotFound)
}
