package ai

import (
	"fmt"
	"strings"

	"go-matchjobs-backend/internal/domain"
)

// The prompts are kept in Portuguese: the form answers they embed are written
// in Portuguese and the model mirrors the language of its instructions.

// SummaryPrompt asks the model for a 50-word summary of a free-text answer.
// The raw text is embedded verbatim, including the empty string: deciding what
// to do with an empty answer is the model's problem, not a local short-circuit.
func SummaryPrompt(topic, text string) string {
	return fmt.Sprintf("Analise o seguinte texto sobre %s: \"%s\". Resuma em 50 palavras.", topic, text)
}

// ScorePrompt asks the model for an integer rating from 1 to 5.
func ScorePrompt(topic, text string) string {
	return fmt.Sprintf("Dê uma nota de 1 a 5 para %s: \"%s\".", topic, text)
}

// VagasPrompt asks for five fabricated job listings as a JSON document with a
// single 'vagas' list.
func VagasPrompt(cargo, cidade string) string {
	return fmt.Sprintf("Liste 5 vagas de emprego para o cargo '%s' em '%s'. "+
		"Cada vaga deve ter: título, empresa, tipo de contrato, requisitos principais e link de candidatura fictício. "+
		"Responda em JSON com uma lista chamada 'vagas'.", cargo, cidade)
}

// InsightsPrompt builds the Enneagram / Big Five analyst prompt from a stored
// profile record.
func InsightsPrompt(rec domain.Record) string {
	var b strings.Builder

	b.WriteString("Como especialista em análise comportamental, psicologia organizacional e Eneagrama, " +
		"analise as respostas abaixo e gere um relatório estruturado em JSON.\n\n")

	b.WriteString("DADOS DO CANDIDATO:\n\n")
	b.WriteString("=== ANÁLISE COMPORTAMENTAL ===\n")
	fmt.Fprintf(&b, "Colaboração: %s\n", rec.Str("trabalhoEquipe"))
	fmt.Fprintf(&b, "Raciocínio Lógico: %s\n", rec.Str("raciocinioLogico"))
	fmt.Fprintf(&b, "Proatividade: %s\n", rec.Str("proatividade"))
	fmt.Fprintf(&b, "Comunicação: %s\n", rec.Str("comunicacao"))
	fmt.Fprintf(&b, "Adaptabilidade: %s\n", rec.Str("adaptabilidade"))
	fmt.Fprintf(&b, "Liderança: %s\n", rec.Str("lideranca"))
	fmt.Fprintf(&b, "Inteligência Emocional: %s\n", rec.Str("inteligenciaEmocional_cenario"))

	b.WriteString("\n=== EXPECTATIVAS ===\n")
	fmt.Fprintf(&b, "Ambiente de Trabalho: %s\n", strings.Join(rec.StrList("preferenciasAmbiente"), ", "))
	fmt.Fprintf(&b, "Valores: %s\n", strings.Join(rec.StrList("valoresEmpresa"), ", "))
	fmt.Fprintf(&b, "Objetivos de Carreira: %s\n", rec.Str("objetivoCarreira"))

	b.WriteString("\n=== AUTOAVALIAÇÃO ===\n")
	fmt.Fprintf(&b, "Big Five - Conscienciosidade: %d/5\n", rec.Int("bigFive_consciencia"))
	fmt.Fprintf(&b, "Big Five - Extroversão: %d/5\n", rec.Int("bigFive_extroversao"))
	fmt.Fprintf(&b, "Big Five - Abertura: %d/5\n", rec.Int("bigFive_abertura"))
	fmt.Fprintf(&b, "Big Five - Amabilidade: %d/5\n", rec.Int("bigFive_amabilidade"))
	fmt.Fprintf(&b, "Big Five - Estabilidade Emocional: %d/5\n", rec.Int("bigFive_neuroticismo"))
	fmt.Fprintf(&b, "Mentalidade de Crescimento: %s\n", rec.Str("mentalidadeCrescimento"))
	fmt.Fprintf(&b, "Resolução de Conflitos: %s\n", rec.Str("conflitoInterpessoal"))
	fmt.Fprintf(&b, "Motivação: %s\n", rec.Str("motivacao"))
	fmt.Fprintf(&b, "Ética: %s\n", rec.Str("valoresEtica"))

	b.WriteString(`
INSTRUÇÕES DE ANÁLISE:
1. Determine o tipo do ENEAGRAMA mais provável (1-9) baseado nos padrões comportamentais
2. Calcule os percentuais dos Big Five baseado nas autoavaliações e respostas contextuais
3. Identifique características comportamentais que se destacam
4. Sugira posições compatíveis com o perfil identificado

GERE UM RELATÓRIO EM JSON com a seguinte estrutura EXATA:

{
  "profile": "Descrição detalhada do perfil ENEAGRAMA",
  "profileSummary": "Resumo em 2 linhas do perfil comportamental",
  "enneagramType": {
    "type": 1,
    "name": "Nome do tipo",
    "description": "Breve descrição do tipo identificado"
  },
  "bigFiveDistribution": {
    "openness": 0,
    "conscientiousness": 0,
    "extraversion": 0,
    "agreeableness": 0,
    "neuroticism": 0
  },
  "behavioralHighlights": {
    "communication": "",
    "decision": "",
    "leadership": "",
    "problemSolving": "",
    "adaptability": ""
  },
  "suggestions": {
    "recommendedPositions": [],
    "standoutTips": [],
    "developmentAreas": []
  }
}

IMPORTANTE:
- Retorne APENAS o JSON válido, sem texto adicional
- Os percentuais dos Big Five vão de 0 a 100
- Seja específico e profissional nas descrições
`)

	return b.String()
}
