package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go-matchjobs-backend/internal/ai"
	"go-matchjobs-backend/internal/domain"
	"go-matchjobs-backend/pkg/apperror"
	"go-matchjobs-backend/pkg/logger"
)

type insightsUsecase struct {
	repo  domain.ProfileRepository
	model domain.TextGenerator
}

func NewInsightsUsecase(repo domain.ProfileRepository, model domain.TextGenerator) domain.InsightsUsecase {
	return &insightsUsecase{repo: repo, model: model}
}

// GenerateInsights builds the behavioral report for one stored profile. The
// report is ephemeral: nothing is written back, the record stays untouched.
// Model or parse failures degrade to a deterministic fallback report derived
// from the candidate's own Big Five self-assessment.
func (u *insightsUsecase) GenerateInsights(ctx context.Context, userID string) (*domain.BehavioralInsights, error) {
	if u.repo == nil {
		return nil, apperror.Unavailable("Error: Firestore not initialized.")
	}
	if strings.TrimSpace(userID) == "" {
		return nil, apperror.BadRequest("Error: Missing userId in query string.")
	}

	rec, err := u.repo.Get(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(fmt.Sprintf("Error: %v", err), err)
	}
	if rec == nil {
		return nil, apperror.NotFound("Candidate not found.")
	}

	reply, err := u.model.Generate(ctx, ai.InsightsPrompt(rec))
	if err != nil {
		logger.Log.Error("insights generation failed", "user_id", userID, "error", err)
		return fallbackInsights(rec), nil
	}

	var insights domain.BehavioralInsights
	if err := json.Unmarshal([]byte(ai.StripJSONFences(reply)), &insights); err != nil {
		logger.Log.Error("insights reply was not valid JSON", "user_id", userID, "error", err)
		return fallbackInsights(rec), nil
	}

	return &insights, nil
}

// fallbackInsights scales the stored 1-5 self-assessment into percentages.
// Emotional stability is inverted into neuroticism.
func fallbackInsights(rec domain.Record) *domain.BehavioralInsights {
	return &domain.BehavioralInsights{
		Profile:        "Perfil em processamento. A análise detalhada será gerada em breve baseada nas respostas fornecidas.",
		ProfileSummary: "Candidato com potencial para diversas áreas. Análise em processamento.",
		EnneagramType: domain.EnneagramType{
			Type:        7,
			Name:        "Em análise",
			Description: "Tipo do Eneagrama sendo determinado pela IA",
		},
		BigFiveDistribution: domain.BigFiveDistribution{
			Openness:          clampPct(rec.Int("bigFive_abertura") * 20),
			Conscientiousness: clampPct(rec.Int("bigFive_consciencia") * 20),
			Extraversion:      clampPct(rec.Int("bigFive_extroversao") * 20),
			Agreeableness:     clampPct(rec.Int("bigFive_amabilidade") * 20),
			Neuroticism:       clampPct((6 - rec.Int("bigFive_neuroticismo")) * 20),
		},
		Highlights: domain.Highlights{
			Communication:  "Em análise",
			Decision:       "Em análise",
			Leadership:     "Em análise",
			ProblemSolving: "Em análise",
			Adaptability:   "Em análise",
		},
		Suggestions: domain.Suggestions{
			RecommendedPositions: []string{"Análise em processamento"},
			StandoutTips:         []string{"Análise em processamento"},
			DevelopmentAreas:     []string{"Análise em processamento"},
		},
	}
}

func clampPct(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
