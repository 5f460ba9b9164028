package usecase

import (
	"context"
	"fmt"
	"strings"

	"go-matchjobs-backend/pkg/apperror"
)

// fieldMap is one entry of the retrieval contract: which stored field feeds
// which public response field. The default comes from the value kind (empty
// string for text, empty list for lists, 0 for numbers), so retrieval never
// fails on a record with missing optional fields.
type fieldMap struct {
	public string
	stored string
}

var analysisTextFields = []fieldMap{
	{"full_name", "nomeCompleto"},
	{"email", "email"},
	{"phone", "telefone"},
	{"area_of_expertise", "areaAtuacao"},
	{"experience_total", "experienciaTotal"},
	{"qualification", "qualificacaoAcademica"},
	{"linkedin", "linkedin"},
	{"portfolio", "portfolio"},
	{"summary_professional", "sumarioProfissional"},
	{"curriculum_url", "curriculo_url"},
	{"career_goal", "objetivoCarreira"},
	{"ai_colaboration_analysis", "ai_colaboration_analysis"},
	{"ai_problem_solving_analysis", "ai_problem_solving_analysis"},
	{"growth_mindset", "mentalidadeCrescimento"},
	{"tolerance_for_ambiguity", "toleranciaAmbiguidade"},
	{"conflict_management", "conflitoInterpessoal"},
	{"emotional_intelligence_scenario", "inteligenciaEmocional_cenario"},
	{"motivation", "motivacao"},
	{"challenge_motivation", "motivacaoDesafio"},
	{"personal_values_company", "valoresPessoaisEmpresa"},
	{"ethics_values", "valoresEtica"},
}

var analysisListFields = []fieldMap{
	{"skills", "habilidades"},
	{"values_company", "valoresEmpresa"},
	{"environment_preferences", "preferenciasAmbiente"},
}

var analysisScoreFields = []fieldMap{
	{"nota_collaboration", "nota_collaboration"},
	{"nota_problem_solving", "nota_problem_solving"},
	{"nota_proactivity", "nota_proactivity"},
	{"nota_communication", "nota_communication"},
	{"nota_adaptability", "nota_adaptability"},
	{"nota_leadership", "nota_leadership"},
	{"nota_emotional_intelligence", "nota_emotional_intelligence"},
}

var bigFiveFields = []fieldMap{
	{"conscientiousness", "bigFive_consciencia"},
	{"extroversion", "bigFive_extroversao"},
	{"openness", "bigFive_abertura"},
	{"agreeableness", "bigFive_amabilidade"},
	{"neuroticism", "bigFive_neuroticismo"},
}

var rawTextFields = []fieldMap{
	{"teamwork", "trabalhoEquipe"},
	{"problem_solving_text", "resolucaoProblemas"},
	{"logical_reasoning", "raciocinioLogico"},
	{"numerical_problem", "problemaNumericoLogico"},
	{"creativity_problem", "criatividadeProblema"},
	{"divergent_thinking", "pensamentoDivergente"},
	{"proactivity", "proatividade"},
	{"communication", "comunicacao"},
	{"leadership", "lideranca"},
	{"adaptability", "adaptabilidade"},
	{"self_development", "autodesenvolvimento"},
}

// GetAnalysis reads one candidate record and reshapes it into the public
// analysis schema through the mapping tables above.
func (u *profileUsecase) GetAnalysis(ctx context.Context, userID string) (map[string]any, error) {
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

	out := make(map[string]any, len(analysisTextFields)+len(analysisListFields)+len(analysisScoreFields)+2)
	for _, f := range analysisTextFields {
		out[f.public] = rec.Str(f.stored)
	}
	for _, f := range analysisListFields {
		out[f.public] = rec.StrList(f.stored)
	}
	for _, f := range analysisScoreFields {
		out[f.public] = rec.Int(f.stored)
	}

	bigFive := make(map[string]int, len(bigFiveFields))
	for _, f := range bigFiveFields {
		bigFive[f.public] = rec.Int(f.stored)
	}
	out["big_five"] = bigFive

	raw := make(map[string]string, len(rawTextFields))
	for _, f := range rawTextFields {
		raw[f.public] = rec.Str(f.stored)
	}
	out["raw_fields"] = raw

	return out, nil
}
