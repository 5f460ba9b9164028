package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-matchjobs-backend/internal/domain"
	"go-matchjobs-backend/internal/usecase"
)

func TestGenerateInsightsParsesReply(t *testing.T) {
	mockRepo := new(MockProfileRepo)
	mockRepo.On("Get", mock.Anything, "u1").Return(domain.Record{
		"trabalhoEquipe": "gosto de pair programming",
	}, nil)

	reply := "```json\n" + `{
		"profile": "Perfil analítico e colaborativo.",
		"profileSummary": "Analítico, colaborativo.",
		"enneagramType": {"type": 5, "name": "O Investigador", "description": "Observador e curioso"},
		"bigFiveDistribution": {"openness": 80, "conscientiousness": 70, "extraversion": 40, "agreeableness": 75, "neuroticism": 30},
		"behavioralHighlights": {"communication": "clara", "decision": "baseada em dados", "leadership": "situacional", "problemSolving": "estruturada", "adaptability": "alta"},
		"suggestions": {"recommendedPositions": ["Engenheiro de Dados"], "standoutTips": ["mostre projetos"], "developmentAreas": ["comunicação executiva"]}
	}` + "\n```"

	gen := generatorFunc(func(_ context.Context, prompt string) (string, error) {
		assert.Contains(t, prompt, "gosto de pair programming")
		return reply, nil
	})

	uc := usecase.NewInsightsUsecase(mockRepo, gen)

	insights, err := uc.GenerateInsights(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, 5, insights.EnneagramType.Type)
	assert.Equal(t, 80, insights.BigFiveDistribution.Openness)
	assert.Equal(t, []string{"Engenheiro de Dados"}, insights.Suggestions.RecommendedPositions)
}

func TestGenerateInsightsFallbackOnInvalidJSON(t *testing.T) {
	mockRepo := new(MockProfileRepo)
	mockRepo.On("Get", mock.Anything, "u1").Return(domain.Record{
		"bigFive_abertura":     int64(5),
		"bigFive_consciencia":  int64(3),
		"bigFive_neuroticismo": int64(2),
	}, nil)

	gen := generatorFunc(func(context.Context, string) (string, error) {
		return "não vou responder em JSON", nil
	})

	uc := usecase.NewInsightsUsecase(mockRepo, gen)

	insights, err := uc.GenerateInsights(context.Background(), "u1")
	require.NoError(t, err)

	// fallback scales the self-assessment, inverting emotional stability
	assert.Equal(t, 100, insights.BigFiveDistribution.Openness)
	assert.Equal(t, 60, insights.BigFiveDistribution.Conscientiousness)
	assert.Equal(t, 80, insights.BigFiveDistribution.Neuroticism)
	assert.Equal(t, "Em análise", insights.EnneagramType.Name)
	assert.Equal(t, []string{"Análise em processamento"}, insights.Suggestions.StandoutTips)
}

func TestGenerateInsightsNotFound(t *testing.T) {
	mockRepo := new(MockProfileRepo)
	mockRepo.On("Get", mock.Anything, "ghost").Return(nil, nil)

	uc := usecase.NewInsightsUsecase(mockRepo, stubGenerator("4", "resumo"))

	_, err := uc.GenerateInsights(context.Background(), "ghost")
	assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
}

func TestGenerateInsightsRequiresUserID(t *testing.T) {
	uc := usecase.NewInsightsUsecase(new(MockProfileRepo), stubGenerator("4", "resumo"))

	_, err := uc.GenerateInsights(context.Background(), "")
	assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
}
