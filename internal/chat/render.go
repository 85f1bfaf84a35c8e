package chat

import (
	"fmt"
	"strings"
	"time"

	"task-manager-bot/internal/model"
)

const helpText = "🤖 *Task Manager Bot*\n\n" +
	"*Commands:*\n" +
	"• `add [task]` - Add new task\n" +
	"• `add [task] due [date]` - Add task with due date\n" +
	"• `add [task] cat [category]` - Add task with category\n" +
	"• `list` - Show all pending tasks\n" +
	"• `done` - Show completed tasks\n" +
	"• `all` - Show all tasks\n" +
	"• `complete [number]` - Mark task as done\n" +
	"• `delete [number]` - Delete task\n" +
	"• `categories` - Show all categories\n" +
	"• `newcat [name]` - Create new category\n" +
	"• `help` - Show this menu\n\n" +
	"*Examples:*\n" +
	"`add Buy groceries due tomorrow cat Shopping`\n" +
	"`complete 2`\n" +
	"`list`\n" +
	"`newcat Work`\n\n" +
	"Start by typing *add* followed by your task! 📝"

const replyUnknown = "❓ I didn't understand that command.\n\n" +
	"Type *help* to see all available commands.\n\n" +
	"Quick tip: Try `add Buy milk` to add a task! 📝"

// Failure replies. Every error path answers with a ❌-prefixed message so the
// channel never returns blank text.
const (
	replySomethingWentWrong   = "❌ Sorry, something went wrong. Please try again."
	replyTitleRequired        = "❌ Please provide a task title.\n\nExample: `add Buy groceries`"
	replyCategoryNameRequired = "❌ Please provide a category name.\n\nExample: `newcat Work`"
	replyAddFailed            = "❌ Failed to add task. Please try again."
	replyListFailed           = "❌ Failed to load tasks. Please try again."
	replyCompleteFailed       = "❌ Failed to complete task. Please try again."
	replyDeleteFailed         = "❌ Failed to delete task. Please try again."
	replyCategoriesFailed     = "❌ Failed to load categories. Please try again."
	replyNewCategoryFailed    = "❌ Failed to create category. Please try again."
)

func replyInvalidTaskNumber(command string) string {
	return fmt.Sprintf("❌ Please provide a valid task number.\n\nExample: `%s 2`", command)
}

type dueStatus struct {
	emoji string
	text  string
}

// dueStatusFor buckets a due date against now with the time of day zeroed
// out: Overdue, Due Today, Due Tomorrow, or the formatted date. Both the
// add confirmation and the list rendering go through the same date
// formatting so the wording can't diverge.
func dueStatusFor(due, now time.Time) dueStatus {
	today := startOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)
	day := startOfDay(due)

	switch {
	case day.Before(today):
		return dueStatus{emoji: "🔴", text: "Overdue"}
	case day.Equal(today):
		return dueStatus{emoji: "🔶", text: "Due Today"}
	case day.Equal(tomorrow):
		return dueStatus{emoji: "🔶", text: "Due Tomorrow"}
	default:
		return dueStatus{emoji: "📅", text: formatDueDate(due, now)}
	}
}

// formatDueDate renders a due date for humans: Today, Tomorrow, or M/D/YYYY.
func formatDueDate(due, now time.Time) string {
	today := startOfDay(now)
	day := startOfDay(due)

	switch {
	case day.Equal(today):
		return "Today"
	case day.Equal(today.AddDate(0, 0, 1)):
		return "Tomorrow"
	default:
		return day.Format("1/2/2006")
	}
}

func renderTaskAdded(task *model.Task, categoryName string, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ Task added: *%s*", task.Title)
	if task.DueDate != nil {
		fmt.Fprintf(&b, "\n📅 Due: %s", formatDueDate(*task.DueDate, now))
	}
	if categoryName != "" {
		fmt.Fprintf(&b, "\n📁 Category: %s", categoryName)
	}
	b.WriteString("\n\nType `list` to see all your tasks!")
	return b.String()
}

// RenderTaskList formats an ordered task listing. completed selects the
// header and empty-result phrasing: false = pending, true = completed,
// nil = all. Ordinals are 1-based and match what positional commands expect.
func RenderTaskList(tasks []model.Task, categoryNames map[uint]string, completed *bool, now time.Time) string {
	if len(tasks) == 0 {
		switch {
		case completed != nil && *completed:
			return "🎉 No completed tasks yet. Complete some tasks to see them here!"
		case completed != nil:
			return "📝 No pending tasks! Add a new task with `add [task title]`"
		default:
			return "📝 No tasks found. Add your first task with `add [task title]`"
		}
	}

	var b strings.Builder
	switch {
	case completed != nil && *completed:
		b.WriteString("✅ *Completed Tasks:*\n\n")
	case completed != nil:
		b.WriteString("📋 *Your Tasks:*\n\n")
	default:
		b.WriteString("📋 *All Tasks:*\n\n")
	}

	for i, task := range tasks {
		status := "⭕"
		title := task.Title
		if task.Completed {
			status = "✅"
			title = "~" + title + "~"
		}
		fmt.Fprintf(&b, "%s *%d.* %s", status, i+1, title)

		if task.CategoryID != nil {
			if name, ok := categoryNames[*task.CategoryID]; ok {
				fmt.Fprintf(&b, " 📁%s", name)
			}
		}
		if task.DueDate != nil {
			due := dueStatusFor(*task.DueDate, now)
			fmt.Fprintf(&b, " %s%s", due.emoji, due.text)
		}
		b.WriteByte('\n')
	}

	if completed != nil && !*completed {
		b.WriteString("\n💡 *Quick actions:*")
		b.WriteString("\n• `complete [number]` - Mark as done")
		b.WriteString("\n• `delete [number]` - Remove task")
	}

	return b.String()
}

func renderTaskCompleted(title string) string {
	return fmt.Sprintf("🎉 Completed: *%s*\n\nGreat job! Type `list` to see remaining tasks.", title)
}

func renderTaskDeleted(title string) string {
	return fmt.Sprintf("🗑️ Deleted: *%s*\n\nType `list` to see remaining tasks.", title)
}

func renderTaskNotFound(index, count int, pending bool) string {
	kind := "total"
	if pending {
		kind = "pending"
	}
	return fmt.Sprintf("❌ Task %d not found. You have %d %s tasks.", index, count, kind)
}

func renderCategories(categories []model.Category) string {
	if len(categories) == 0 {
		return "📁 No categories yet.\n\nCreate one with: `newcat Work`"
	}

	var b strings.Builder
	b.WriteString("📁 *Your Categories:*\n\n")
	for i, category := range categories {
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, category.Name)
	}
	b.WriteString("\n💡 Use categories when adding tasks:\n`add Buy milk cat Shopping`")
	return b.String()
}

func renderCategoryCreated(name string) string {
	return fmt.Sprintf("✅ Created category: *%s*\n\nNow you can use it: `add [task] cat %s`", name, name)
}

func renderCategoryExists(name string) string {
	return fmt.Sprintf("❌ Category \"*%s*\" already exists!", name)
}
