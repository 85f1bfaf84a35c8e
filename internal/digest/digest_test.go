package digest_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager-bot/internal/digest"
	"task-manager-bot/internal/service"
	"task-manager-bot/internal/storetest"
)

func TestSummary(t *testing.T) {
	store := storetest.NewStore()
	tasks := service.NewTaskService(store.Tasks())
	categories := service.NewCategoryService(store.Categories())
	svc := digest.New(tasks, categories)

	ctx := context.Background()
	now := time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC)

	t.Run("no pending tasks", func(t *testing.T) {
		got, err := svc.Summary(ctx, now)
		require.NoError(t, err)
		assert.Equal(t,
			"☀️ *Daily digest* — Sat, Mar 15\n\n"+
				"📝 No pending tasks! Add a new task with `add [task title]`",
			got)
	})

	t.Run("pending tasks render like a list reply", func(t *testing.T) {
		category, err := categories.Ensure(ctx, "Shopping")
		require.NoError(t, err)
		due := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
		_, err = tasks.CreateTask(ctx, service.TaskInput{Title: "Buy milk", DueDate: &due, CategoryID: &category.ID})
		require.NoError(t, err)
		_, err = tasks.CreateTask(ctx, service.TaskInput{Title: "Water plants"})
		require.NoError(t, err)

		got, err := svc.Summary(ctx, now)
		require.NoError(t, err)
		want := "☀️ *Daily digest* — Sat, Mar 15\n\n" +
			"📋 *Your Tasks:*\n\n" +
			"⭕ *1.* Buy milk 📁Shopping 🔶Due Today\n" +
			"⭕ *2.* Water plants\n" +
			"\n💡 *Quick actions:*" +
			"\n• `complete [number]` - Mark as done" +
			"\n• `delete [number]` - Remove task"
		assert.Equal(t, want, got)
	})
}
