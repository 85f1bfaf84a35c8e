package chat

import (
	"strconv"
	"strings"
)

// Intent is the classified purpose of an inbound command message. The set is
// closed: dispatch switches over it exhaustively.
type Intent int

const (
	IntentUnknown Intent = iota
	IntentHelp
	IntentAdd
	IntentListPending
	IntentListCompleted
	IntentListAll
	IntentComplete
	IntentDelete
	IntentListCategories
	IntentAddCategory
)

func (i Intent) String() string {
	switch i {
	case IntentHelp:
		return "help"
	case IntentAdd:
		return "add"
	case IntentListPending:
		return "list-pending"
	case IntentListCompleted:
		return "list-completed"
	case IntentListAll:
		return "list-all"
	case IntentComplete:
		return "complete"
	case IntentDelete:
		return "delete"
	case IntentListCategories:
		return "list-categories"
	case IntentAddCategory:
		return "add-category"
	default:
		return "unknown"
	}
}

// Command is one classified inbound message.
type Command struct {
	Intent  Intent
	Payload string // add: raw text after the keyword; add-category: trimmed name
	Index   int    // 1-based task position for complete/delete
	IndexOK bool   // false when the index token was missing, non-numeric, or < 1
}

// Classify maps a message to a Command. Matching is case-insensitive and
// first match wins; Payload keeps the original casing so task titles and
// category names survive as typed.
func Classify(text string) Command {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	switch lower {
	case "help", "/help", "menu":
		return Command{Intent: IntentHelp}
	case "list", "tasks":
		return Command{Intent: IntentListPending}
	case "done", "completed":
		return Command{Intent: IntentListCompleted}
	case "all":
		return Command{Intent: IntentListAll}
	case "categories", "cats":
		return Command{Intent: IntentListCategories}
	}

	switch {
	case strings.HasPrefix(lower, "add "):
		return Command{Intent: IntentAdd, Payload: trimmed[len("add "):]}
	case strings.HasPrefix(lower, "complete "), strings.HasPrefix(lower, "done "):
		idx, ok := parseIndex(lower)
		return Command{Intent: IntentComplete, Index: idx, IndexOK: ok}
	case strings.HasPrefix(lower, "delete "), strings.HasPrefix(lower, "remove "):
		idx, ok := parseIndex(lower)
		return Command{Intent: IntentDelete, Index: idx, IndexOK: ok}
	case strings.HasPrefix(lower, "newcat "):
		return Command{Intent: IntentAddCategory, Payload: strings.TrimSpace(trimmed[len("newcat "):])}
	}

	return Command{Intent: IntentUnknown}
}

// parseIndex reads the token after the command keyword as a positive
// integer. A failure here means "invalid task number"; whether the number is
// in range is only known once the ordered list has been fetched.
func parseIndex(lower string) (int, bool) {
	fields := strings.Fields(lower)
	if len(fields) < 2 {
		return 0, false
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
