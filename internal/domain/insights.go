package domain

import "context"

// BehavioralInsights is the structured report generated on demand from a
// stored profile. It is never persisted; the record is only ever written
// wholesale by a submission.
type BehavioralInsights struct {
	Profile             string              `json:"profile"`
	ProfileSummary      string              `json:"profileSummary"`
	EnneagramType       EnneagramType       `json:"enneagramType"`
	BigFiveDistribution BigFiveDistribution `json:"bigFiveDistribution"`
	Highlights          Highlights          `json:"behavioralHighlights"`
	Suggestions         Suggestions         `json:"suggestions"`
}

type EnneagramType struct {
	Type        int    `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type BigFiveDistribution struct {
	Openness          int `json:"openness"`
	Conscientiousness int `json:"conscientiousness"`
	Extraversion      int `json:"extraversion"`
	Agreeableness     int `json:"agreeableness"`
	Neuroticism       int `json:"neuroticism"`
}

type Highlights struct {
	Communication  string `json:"communication"`
	Decision       string `json:"decision"`
	Leadership     string `json:"leadership"`
	ProblemSolving string `json:"problemSolving"`
	Adaptability   string `json:"adaptability"`
}

type Suggestions struct {
	RecommendedPositions []string `json:"recommendedPositions"`
	StandoutTips         []string `json:"standoutTips"`
	DevelopmentAreas     []string `json:"developmentAreas"`
}

type InsightsUsecase interface {
	GenerateInsights(ctx context.Context, userID string) (*BehavioralInsights, error)
}
