package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Command
	}{
		{"help", "help", Command{Intent: IntentHelp}},
		{"slash help", "/help", Command{Intent: IntentHelp}},
		{"menu", "menu", Command{Intent: IntentHelp}},
		{"help uppercase", "HELP", Command{Intent: IntentHelp}},
		{"list", "list", Command{Intent: IntentListPending}},
		{"tasks", "tasks", Command{Intent: IntentListPending}},
		{"done bare", "done", Command{Intent: IntentListCompleted}},
		{"completed", "completed", Command{Intent: IntentListCompleted}},
		{"all", "all", Command{Intent: IntentListAll}},
		{"categories", "categories", Command{Intent: IntentListCategories}},
		{"cats", "cats", Command{Intent: IntentListCategories}},
		{"add", "add Buy Milk", Command{Intent: IntentAdd, Payload: "Buy Milk"}},
		{"add keeps casing", "ADD Buy Milk", Command{Intent: IntentAdd, Payload: "Buy Milk"}},
		{"add surrounding space", "  add Buy milk  ", Command{Intent: IntentAdd, Payload: "Buy milk"}},
		{"complete", "complete 2", Command{Intent: IntentComplete, Index: 2, IndexOK: true}},
		{"done with index", "done 3", Command{Intent: IntentComplete, Index: 3, IndexOK: true}},
		{"complete non-numeric", "complete abc", Command{Intent: IntentComplete}},
		{"complete zero", "complete 0", Command{Intent: IntentComplete}},
		{"complete negative", "complete -1", Command{Intent: IntentComplete}},
		{"delete", "delete 1", Command{Intent: IntentDelete, Index: 1, IndexOK: true}},
		{"remove", "remove 4", Command{Intent: IntentDelete, Index: 4, IndexOK: true}},
		{"delete missing index", "delete ", Command{Intent: IntentUnknown}},
		{"newcat", "newcat Work Stuff", Command{Intent: IntentAddCategory, Payload: "Work Stuff"}},
		{"newcat keeps casing", "NEWCAT Work", Command{Intent: IntentAddCategory, Payload: "Work"}},
		{"gibberish", "sudo make me a sandwich", Command{Intent: IntentUnknown}},
		{"empty", "", Command{Intent: IntentUnknown}},
		{"bare add", "add", Command{Intent: IntentUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestIntentString(t *testing.T) {
	intents := map[Intent]string{
		IntentUnknown:        "unknown",
		IntentHelp:           "help",
		IntentAdd:            "add",
		IntentListPending:    "list-pending",
		IntentListCompleted:  "list-completed",
		IntentListAll:        "list-all",
		IntentComplete:       "complete",
		IntentDelete:         "delete",
		IntentListCategories: "list-categories",
		IntentAddCategory:    "add-category",
	}
	for intent, want := range intents {
		assert.Equal(t, want, intent.String())
	}
}
