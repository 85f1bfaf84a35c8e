package digest

import (
	"context"
	"fmt"
	"time"

	"task-manager-bot/internal/chat"
	"task-manager-bot/internal/repository"
	"task-manager-bot/internal/service"
)

// Service builds the daily pending-task digest. The body reuses the chat
// renderer so the digest reads exactly like a "list" reply.
type Service struct {
	tasks      *service.TaskService
	categories *service.CategoryService
}

func New(tasks *service.TaskService, categories *service.CategoryService) *Service {
	return &Service{tasks: tasks, categories: categories}
}

// Summary renders the digest for the given now.
func (s *Service) Summary(ctx context.Context, now time.Time) (string, error) {
	pending := false
	tasks, err := s.tasks.ListTasks(ctx, repository.TaskFilter{Completed: &pending})
	if err != nil {
		return "", err
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return "", err
	}
	names := make(map[uint]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.Name
	}

	header := fmt.Sprintf("☀️ *Daily digest* — %s\n\n", now.Format("Mon, Jan 2"))
	return header + chat.RenderTaskList(tasks, names, &pending, now), nil
}
