package ai_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-matchjobs-backend/internal/ai"
	"go-matchjobs-backend/internal/domain"
)

func TestPromptsEmbedTextVerbatim(t *testing.T) {
	inputs := []string{
		"ajudo colegas sempre que posso",
		"",
		"texto com \"aspas\" e acentuação",
	}

	for _, text := range inputs {
		t.Run("summary/"+text, func(t *testing.T) {
			p := ai.SummaryPrompt("colaboração", text)
			assert.Contains(t, p, text)
			assert.Contains(t, p, "Resuma em 50 palavras")
		})
		t.Run("score/"+text, func(t *testing.T) {
			p := ai.ScorePrompt("a colaboração neste texto", text)
			assert.Contains(t, p, text)
			assert.Contains(t, p, "nota de 1 a 5")
		})
	}
}

func TestVagasPrompt(t *testing.T) {
	p := ai.VagasPrompt("Engenheiro de Dados", "Recife")

	assert.Contains(t, p, "'Engenheiro de Dados'")
	assert.Contains(t, p, "'Recife'")
	assert.Contains(t, p, "5 vagas")
	assert.Contains(t, p, "'vagas'")
}

func TestInsightsPrompt(t *testing.T) {
	rec := domain.Record{
		"trabalhoEquipe":       "gosto de pair programming",
		"preferenciasAmbiente": []any{"remoto", "híbrido"},
		"bigFive_consciencia":  int64(4),
	}

	p := ai.InsightsPrompt(rec)

	assert.Contains(t, p, "gosto de pair programming")
	assert.Contains(t, p, "remoto, híbrido")
	assert.Contains(t, p, "Conscienciosidade: 4/5")
	// absent answers render as empty, the prompt structure stays intact
	assert.Contains(t, p, "Objetivos de Carreira: \n")
	assert.True(t, strings.Contains(p, "Eneagrama"))
}
