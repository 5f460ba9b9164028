package domain

import (
	"context"
	"strconv"
)

// Record is one candidate's persisted profile document, keyed by user
// identifier. Form fields arrive verbatim from the client, so the record is a
// loose map rather than a fixed struct; the derived AI fields and the resume
// reference are written under fixed keys next to them.
type Record map[string]any

// Str returns the string stored under key, or "" when absent or non-string.
func (r Record) Str(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// StrList returns the list stored under key coerced to strings.
// Firestore decodes arrays as []interface{}, JSON round-trips may keep
// []string, and absence yields an empty slice.
func (r Record) StrList(key string) []string {
	switch v := r[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return []string{}
}

// Int returns the integer stored under key, defaulting to 0. Numeric values
// survive JSON as float64 and Firestore as int64; stray numeric strings are
// parsed as well, matching the original backend's int() coercion.
func (r Record) Int(key string) int {
	return CoerceInt(r[key])
}

// CoerceInt converts a loosely typed stored value to an int, defaulting to 0.
func CoerceInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		if parsed, err := strconv.Atoi(n); err == nil {
			return parsed
		}
	}
	return 0
}

type SubmitProfileRequest struct {
	FormData          map[string]any `json:"formData"`
	CurriculoBase64   string         `json:"curriculoBase64"`
	CurriculoFilename string         `json:"curriculoFilename"`
	UserID            string         `json:"userId" validate:"required"`
}

// Notas carries the seven behavioral ratings of one submission. A nil entry
// means the model reply contained no digits and the rating is absent.
type Notas struct {
	Collaboration         *int `json:"collaboration"`
	ProblemSolving        *int `json:"problem_solving"`
	Proactivity           *int `json:"proactivity"`
	Communication         *int `json:"communication"`
	Adaptability          *int `json:"adaptability"`
	Leadership            *int `json:"leadership"`
	EmotionalIntelligence *int `json:"emotional_intelligence"`
}

type SubmitProfileResponse struct {
	Message                  string `json:"message"`
	ID                       string `json:"id"`
	CurriculoURL             any    `json:"curriculo_url"`
	AIColaborationAnalysis   string `json:"ai_colaboration_analysis"`
	AIProblemSolvingAnalysis string `json:"ai_problem_solving_analysis"`
	Notas                    Notas  `json:"notas"`
}

// ProfileRepository is the document-store contract: wholesale reads and
// writes of one record by user identifier. Get returns a nil Record when no
// document exists.
type ProfileRepository interface {
	Get(ctx context.Context, userID string) (Record, error)
	Set(ctx context.Context, userID string, rec Record) error
}

// ResumeStore uploads a resume blob under a generated key and returns its
// public retrieval URL.
type ResumeStore interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (string, error)
}

// TextGenerator is the language-model contract consumed by the pipelines.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type ProfileUsecase interface {
	Submit(ctx context.Context, req *SubmitProfileRequest) (*SubmitProfileResponse, error)
	GetAnalysis(ctx context.Context, userID string) (map[string]any, error)
}
