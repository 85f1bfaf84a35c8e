package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/start", "help"},
		{"/help", "help"},
		{"/HELP", "help"},
		{"/list", "list"},
		{"/complete 2", "complete 2"},
		{"add Buy milk", "add Buy milk"},
		{"list", "list"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize(tt.in))
		})
	}
}
