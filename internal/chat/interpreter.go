package chat

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"task-manager-bot/internal/model"
	"task-manager-bot/internal/repository"
	"task-manager-bot/internal/service"
)

// TaskStore is the slice of the task service the interpreter uses.
type TaskStore interface {
	CreateTask(ctx context.Context, input service.TaskInput) (*model.Task, error)
	ListTasks(ctx context.Context, filter repository.TaskFilter) ([]model.Task, error)
	ListByCompletion(ctx context.Context) ([]model.Task, error)
	CompleteTask(ctx context.Context, id uint) (*model.Task, error)
	DeleteTask(ctx context.Context, id uint) error
}

// CategoryStore is the slice of the category service the interpreter uses.
type CategoryStore interface {
	Ensure(ctx context.Context, name string) (*model.Category, error)
	Create(ctx context.Context, name, color string) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
}

// Interpreter turns one inbound chat message into one reply. It keeps no
// state between messages and recomputes orderings from the store on every
// command, so a concurrent mutation between the read and the write of a
// positional command can shift which task a number refers to. That race is
// accepted: the store only guarantees single-row operations and this layer
// adds no locking on top.
type Interpreter struct {
	tasks      TaskStore
	categories CategoryStore
	logger     *zap.Logger
	now        func() time.Time
}

func NewInterpreter(tasks TaskStore, categories CategoryStore, logger *zap.Logger) *Interpreter {
	return &Interpreter{
		tasks:      tasks,
		categories: categories,
		logger:     logger,
		now:        time.Now,
	}
}

// HandleMessage classifies text, performs the matching operation and returns
// the reply. It never returns an empty string: every failure mode has a
// reply of its own and store errors fall back to a generic apology.
func (i *Interpreter) HandleMessage(ctx context.Context, text string) string {
	// One now per message keeps "due today" resolution and the later due
	// bucketing on the same side of midnight.
	now := i.now()
	cmd := Classify(text)

	switch cmd.Intent {
	case IntentHelp:
		return helpText
	case IntentAdd:
		return i.handleAdd(ctx, cmd.Payload, now)
	case IntentListPending:
		return i.handleList(ctx, boolPtr(false), now)
	case IntentListCompleted:
		return i.handleList(ctx, boolPtr(true), now)
	case IntentListAll:
		return i.handleList(ctx, nil, now)
	case IntentComplete:
		return i.handleComplete(ctx, cmd)
	case IntentDelete:
		return i.handleDelete(ctx, cmd)
	case IntentListCategories:
		return i.handleCategories(ctx)
	case IntentAddCategory:
		return i.handleNewCategory(ctx, cmd.Payload)
	default:
		return replyUnknown
	}
}

func (i *Interpreter) handleAdd(ctx context.Context, payload string, now time.Time) string {
	args := ParseAddArgs(payload)

	// Category resolution comes first so the task links to it in the same
	// operation. The implicit path auto-creates unknown names.
	var categoryID *uint
	var categoryName string
	if args.Category != "" {
		category, err := i.categories.Ensure(ctx, args.Category)
		if err != nil {
			i.logger.Error("resolve category", zap.String("name", args.Category), zap.Error(err))
			return replyAddFailed
		}
		categoryID = &category.ID
		categoryName = category.Name
	}

	var dueDate *time.Time
	if args.DueRaw != "" {
		// An unparseable due clause drops the date; the clause text stays
		// out of the title either way.
		if due, ok := ResolveDate(args.DueRaw, now); ok {
			dueDate = &due
		}
	}

	if args.Title == "" {
		return replyTitleRequired
	}

	task, err := i.tasks.CreateTask(ctx, service.TaskInput{
		Title:      args.Title,
		DueDate:    dueDate,
		CategoryID: categoryID,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return replyTitleRequired
		}
		i.logger.Error("add task", zap.Error(err))
		return replyAddFailed
	}

	return renderTaskAdded(task, categoryName, now)
}

func (i *Interpreter) handleList(ctx context.Context, completed *bool, now time.Time) string {
	tasks, err := i.tasks.ListTasks(ctx, repository.TaskFilter{Completed: completed})
	if err != nil {
		i.logger.Error("list tasks", zap.Error(err))
		return replyListFailed
	}

	names, err := i.categoryNames(ctx)
	if err != nil {
		i.logger.Error("list categories for tasks", zap.Error(err))
		return replyListFailed
	}

	return RenderTaskList(tasks, names, completed, now)
}

// handleComplete resolves a 1-based position against the pending-only view
// and marks that task done. Note the asymmetry with handleDelete: the two
// commands resolve against different orderings, so the same number can name
// different tasks. Kept for compatibility with the original channel.
func (i *Interpreter) handleComplete(ctx context.Context, cmd Command) string {
	if !cmd.IndexOK {
		return replyInvalidTaskNumber("complete")
	}

	tasks, err := i.tasks.ListTasks(ctx, repository.TaskFilter{Completed: boolPtr(false)})
	if err != nil {
		i.logger.Error("list pending tasks", zap.Error(err))
		return replyCompleteFailed
	}
	if cmd.Index > len(tasks) {
		return renderTaskNotFound(cmd.Index, len(tasks), true)
	}

	task := tasks[cmd.Index-1]
	if _, err := i.tasks.CompleteTask(ctx, task.ID); err != nil {
		i.logger.Error("complete task", zap.Uint("id", task.ID), zap.Error(err))
		return replyCompleteFailed
	}
	return renderTaskCompleted(task.Title)
}

// handleDelete resolves against the all-tasks view: pending before
// completed, then the usual due-date order.
func (i *Interpreter) handleDelete(ctx context.Context, cmd Command) string {
	if !cmd.IndexOK {
		return replyInvalidTaskNumber("delete")
	}

	tasks, err := i.tasks.ListByCompletion(ctx)
	if err != nil {
		i.logger.Error("list all tasks", zap.Error(err))
		return replyDeleteFailed
	}
	if cmd.Index > len(tasks) {
		return renderTaskNotFound(cmd.Index, len(tasks), false)
	}

	task := tasks[cmd.Index-1]
	if err := i.tasks.DeleteTask(ctx, task.ID); err != nil {
		i.logger.Error("delete task", zap.Uint("id", task.ID), zap.Error(err))
		return replyDeleteFailed
	}
	return renderTaskDeleted(task.Title)
}

func (i *Interpreter) handleCategories(ctx context.Context) string {
	categories, err := i.categories.List(ctx)
	if err != nil {
		i.logger.Error("list categories", zap.Error(err))
		return replyCategoriesFailed
	}
	return renderCategories(categories)
}

func (i *Interpreter) handleNewCategory(ctx context.Context, name string) string {
	if name == "" {
		return replyCategoryNameRequired
	}

	category, err := i.categories.Create(ctx, name, "")
	if err != nil {
		switch {
		case errors.Is(err, service.ErrConflict):
			return renderCategoryExists(name)
		case errors.Is(err, service.ErrValidation):
			return replyCategoryNameRequired
		default:
			i.logger.Error("create category", zap.String("name", name), zap.Error(err))
			return replyNewCategoryFailed
		}
	}
	return renderCategoryCreated(category.Name)
}

func (i *Interpreter) categoryNames(ctx context.Context) (map[uint]string, error) {
	categories, err := i.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.Name
	}
	return names, nil
}

func boolPtr(v bool) *bool {
	return &v
}
