package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAddArgs(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    AddArgs
	}{
		{
			name:    "plain title",
			payload: "Buy groceries",
			want:    AddArgs{Title: "Buy groceries"},
		},
		{
			name:    "due clause",
			payload: "Call dentist due tomorrow",
			want:    AddArgs{Title: "Call dentist", DueRaw: "tomorrow"},
		},
		{
			name:    "cat clause",
			payload: "Meeting prep cat Work",
			want:    AddArgs{Title: "Meeting prep", Category: "Work"},
		},
		{
			name:    "due and cat",
			payload: "Buy milk due today cat Shopping",
			want:    AddArgs{Title: "Buy milk", DueRaw: "today", Category: "Shopping"},
		},
		{
			name:    "multiword due before cat",
			payload: "File taxes due Jan 2, 2026 cat Finance",
			want:    AddArgs{Title: "File taxes", DueRaw: "Jan 2, 2026", Category: "Finance"},
		},
		{
			name:    "clause keywords are case-insensitive",
			payload: "Buy milk DUE Tomorrow CAT Shopping",
			want:    AddArgs{Title: "Buy milk", DueRaw: "Tomorrow", Category: "Shopping"},
		},
		{
			name:    "overdue is not a due clause",
			payload: "Return overdue library book",
			want:    AddArgs{Title: "Return overdue library book"},
		},
		{
			name:    "unparseable due text still leaves the title",
			payload: "Ship release due whenever",
			want:    AddArgs{Title: "Ship release", DueRaw: "whenever"},
		},
		{
			name:    "clauses only",
			payload: "due today cat Work",
			want:    AddArgs{DueRaw: "today", Category: "Work"},
		},
		{
			name:    "cat clause swallows a later due",
			payload: "Feed the pets cat Home due tomorrow",
			want:    AddArgs{Title: "Feed the pets", Category: "Home due tomorrow"},
		},
		{
			name:    "whitespace collapses",
			payload: "  Water   plants   due today ",
			want:    AddArgs{Title: "Water plants", DueRaw: "today"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAddArgs(tt.payload))
		})
	}
}
