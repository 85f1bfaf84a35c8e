package chat

import (
	"regexp"
	"strings"
)

var (
	catClauseRe = regexp.MustCompile(`(?i)(?:^|\s)cat\s+(.+)$`)
	dueClauseRe = regexp.MustCompile(`(?i)(?:^|\s)due\s+(.+)$`)
)

// AddArgs is the parsed payload of an add command.
type AddArgs struct {
	Title    string
	DueRaw   string // raw due clause text, empty when absent
	Category string // category name, empty when absent
}

// ParseAddArgs splits text like "Buy milk due today cat Shopping" into its
// parts. The cat clause runs to the end of the message, so a due clause can
// only precede it; stripping cat first and then due from the remainder keeps
// the two order-independent. Clause keywords must stand alone ("overdue
// book" is a plain title). Both clauses are removed from the title even when
// the due text later fails to resolve as a date.
func ParseAddArgs(payload string) AddArgs {
	var args AddArgs
	rest := payload

	if m := catClauseRe.FindStringSubmatchIndex(rest); m != nil {
		args.Category = strings.TrimSpace(rest[m[2]:m[3]])
		rest = rest[:m[0]]
	}
	if m := dueClauseRe.FindStringSubmatchIndex(rest); m != nil {
		args.DueRaw = strings.TrimSpace(rest[m[2]:m[3]])
		rest = rest[:m[0]]
	}

	args.Title = strings.Join(strings.Fields(rest), " ")
	return args
}
