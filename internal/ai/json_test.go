package ai_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-matchjobs-backend/internal/ai"
)

func TestStripJSONFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no fences", `{"vagas": []}`, `{"vagas": []}`},
		{"json fence", "```json\n{\"vagas\": []}\n```", `{"vagas": []}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  \n```json\n{}\n```  ", "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ai.StripJSONFences(tt.input))
		})
	}
}
