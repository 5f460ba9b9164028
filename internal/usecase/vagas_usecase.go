package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"go-matchjobs-backend/internal/ai"
	"go-matchjobs-backend/internal/domain"
	"go-matchjobs-backend/pkg/apperror"
	"go-matchjobs-backend/pkg/logger"
)

type vagasUsecase struct {
	model domain.TextGenerator
}

func NewVagasUsecase(model domain.TextGenerator) domain.VagasUsecase {
	return &vagasUsecase{model: model}
}

// GenerateVagas asks the model for five fabricated listings and parses the
// reply as a JSON document with a single 'vagas' list. The entries are
// returned exactly as the model produced them.
func (u *vagasUsecase) GenerateVagas(ctx context.Context, cargo, cidade string) ([]map[string]any, error) {
	reply, err := u.model.Generate(ctx, ai.VagasPrompt(cargo, cidade))
	if err != nil {
		return nil, apperror.Internal(fmt.Sprintf("Erro: %v", err), err)
	}

	var payload struct {
		Vagas []map[string]any `json:"vagas"`
	}
	if err := json.Unmarshal([]byte(ai.StripJSONFences(reply)), &payload); err != nil {
		logger.Log.Error("vagas reply was not valid JSON", "error", err, "reply_length", len(reply))
		return nil, apperror.Internal("Erro: resposta do modelo não é JSON válido", err)
	}
	if payload.Vagas == nil {
		return nil, apperror.Internal("Erro: resposta do modelo sem a lista 'vagas'", nil)
	}

	return payload.Vagas, nil
}
