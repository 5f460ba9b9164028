package domain

import "context"

// VagasRequest asks for fabricated job listings for a role in a city.
type VagasRequest struct {
	Cargo  string `json:"cargo" binding:"required"`
	Cidade string `json:"cidade" binding:"required"`
}

// Listings are ephemeral: they exist only within one request/response cycle
// and are returned exactly as the model produced them, so each entry stays a
// loose map instead of a validated struct.
type VagasUsecase interface {
	GenerateVagas(ctx context.Context, cargo, cidade string) ([]map[string]any, error)
}
