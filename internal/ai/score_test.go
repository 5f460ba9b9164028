package ai_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-matchjobs-backend/internal/ai"
)

func TestExtractScore(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  int
		found bool
	}{
		{"plain digit", "5", 5, true},
		{"zero clamps up", "0", 1, true},
		{"above scale clamps down", "I'd say an 8 out of 10", 5, true},
		{"first run wins", "3 or maybe 4", 3, true},
		{"first run wins before clamping", "9 is too high, real answer 2", 5, true},
		{"digits inside words", "nota7final", 5, true},
		{"embedded in sentence", "Eu daria nota 4 para esse texto.", 4, true},
		{"no digits", "no rating", 0, false},
		{"empty string", "", 0, false},
		{"huge run clamps down", "999999999999999999999999", 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ai.ExtractScore(tt.text)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}
