package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"go-matchjobs-backend/internal/ai"
	"go-matchjobs-backend/internal/domain"
	"go-matchjobs-backend/pkg/apperror"
	"go-matchjobs-backend/pkg/logger"
)

// analysisSpec binds one model call to the record field its result lands in.
type analysisSpec struct {
	field   string // stored field name
	topic   string // inserted into the prompt
	formKey string // free-text answer the prompt quotes
}

// Two 50-word summaries plus seven 1-to-5 ratings make up the nine model
// calls of one submission. The field names are fixed; the retrieval mapping
// below depends on them.
var summarySpecs = []analysisSpec{
	{"ai_colaboration_analysis", "colaboração", "trabalhoEquipe"},
	{"ai_problem_solving_analysis", "resolução de problemas", "raciocinioLogico"},
}

var scoreSpecs = []analysisSpec{
	{"nota_collaboration", "a colaboração neste texto", "trabalhoEquipe"},
	{"nota_problem_solving", "a capacidade de resolver problemas", "raciocinioLogico"},
	{"nota_proactivity", "a proatividade mostrada", "proatividade"},
	{"nota_communication", "a comunicação", "comunicacao"},
	{"nota_adaptability", "a adaptabilidade", "adaptabilidade"},
	{"nota_leadership", "a liderança", "lideranca"},
	{"nota_emotional_intelligence", "a inteligência emocional", "inteligenciaEmocional_cenario"},
}

type profileUsecase struct {
	repo     domain.ProfileRepository
	resumes  domain.ResumeStore
	model    domain.TextGenerator
	validate *validator.Validate
}

func NewProfileUsecase(repo domain.ProfileRepository, resumes domain.ResumeStore, model domain.TextGenerator, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		repo:     repo,
		resumes:  resumes,
		model:    model,
		validate: validate,
	}
}

func (u *profileUsecase) Submit(ctx context.Context, req *domain.SubmitProfileRequest) (*domain.SubmitProfileResponse, error) {
	if u.repo == nil {
		return nil, apperror.Unavailable("Erro: banco de dados não inicializado.")
	}

	// The userId is validated before any upload or model call. The original
	// backend checked it only after running its side effects; rejecting first
	// keeps the no-write-without-userId property without the wasted calls.
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest("Erro: userId não fornecido.")
	}

	rec := domain.Record{}
	for k, v := range req.FormData {
		rec[k] = v
	}

	// Upload failures are tolerated: the error lands in the record in place
	// of the resume URL and the rest of the pipeline still runs.
	var curriculoURL any
	if req.CurriculoBase64 != "" && req.CurriculoFilename != "" {
		url, err := u.uploadResume(ctx, req.CurriculoFilename, req.CurriculoBase64)
		if err != nil {
			logger.Log.Error("resume upload failed", "user_id", req.UserID, "error", err)
			curriculoURL = fmt.Sprintf("Erro ao enviar: %v", err)
		} else {
			logger.Log.Info("resume uploaded", "user_id", req.UserID, "url", url)
			curriculoURL = url
		}
	}
	rec["curriculo_url"] = curriculoURL

	u.runAnalyses(ctx, rec)

	if err := u.repo.Set(ctx, req.UserID, rec); err != nil {
		return nil, apperror.Internal(fmt.Sprintf("Erro: %v", err), err)
	}

	return &domain.SubmitProfileResponse{
		Message:                  "Perfil salvo com sucesso!",
		ID:                       req.UserID,
		CurriculoURL:             curriculoURL,
		AIColaborationAnalysis:   rec.Str("ai_colaboration_analysis"),
		AIProblemSolvingAnalysis: rec.Str("ai_problem_solving_analysis"),
		Notas: domain.Notas{
			Collaboration:         scoreOf(rec, "nota_collaboration"),
			ProblemSolving:        scoreOf(rec, "nota_problem_solving"),
			Proactivity:           scoreOf(rec, "nota_proactivity"),
			Communication:         scoreOf(rec, "nota_communication"),
			Adaptability:          scoreOf(rec, "nota_adaptability"),
			Leadership:            scoreOf(rec, "nota_leadership"),
			EmotionalIntelligence: scoreOf(rec, "nota_emotional_intelligence"),
		},
	}, nil
}

// analysisTask is one prepared model call: the prompt is rendered from the
// form answers before any goroutine starts, so nothing reads the record
// while the tasks write their results into it.
type analysisTask struct {
	field   string
	prompt  string
	summary bool
}

// runAnalyses issues the nine model calls concurrently and joins them before
// the record is written. Every call targets a distinct field, so the result
// is independent of execution order; the mutex only guards the shared map.
// Failures degrade in-band: a failed summary stores an error string, a failed
// or digit-free rating stays absent.
func (u *profileUsecase) runAnalyses(ctx context.Context, rec domain.Record) {
	tasks := make([]analysisTask, 0, len(summarySpecs)+len(scoreSpecs))
	for _, spec := range summarySpecs {
		tasks = append(tasks, analysisTask{
			field:   spec.field,
			prompt:  ai.SummaryPrompt(spec.topic, rec.Str(spec.formKey)),
			summary: true,
		})
	}
	for _, spec := range scoreSpecs {
		tasks = append(tasks, analysisTask{
			field:  spec.field,
			prompt: ai.ScorePrompt(spec.topic, rec.Str(spec.formKey)),
		})
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	for _, task := range tasks {
		g.Go(func() error {
			var value any
			reply, err := u.model.Generate(gctx, task.prompt)
			switch {
			case task.summary && err != nil:
				value = fmt.Sprintf("Erro: %v", err)
			case task.summary:
				value = reply
			case err == nil:
				if score, ok := ai.ExtractScore(reply); ok {
					value = score
				}
			}
			mu.Lock()
			rec[task.field] = value
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait() // tasks never fail the group; errors degrade in-band
}

func (u *profileUsecase) uploadResume(ctx context.Context, filename, payload string) (string, error) {
	if u.resumes == nil {
		return "", fmt.Errorf("object storage is not configured")
	}

	// data-URL style payload: metadata before the first comma, base64 after
	_, encoded, found := strings.Cut(payload, ",")
	if !found {
		return "", fmt.Errorf("invalid resume payload: missing data header")
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode resume payload: %w", err)
	}

	return u.resumes.Upload(ctx, filename, contentTypeFor(filename), data)
}

// contentTypeFor classifies the upload by filename extension, falling back to
// a generic octet stream.
func contentTypeFor(filename string) string {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".pdf"):
		return "application/pdf"
	case strings.HasSuffix(name, ".docx"):
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case strings.HasSuffix(name, ".doc"):
		return "application/msword"
	}
	return "application/octet-stream"
}

// scoreOf reads a stored rating as a nullable int: nil when the model reply
// contained no digits.
func scoreOf(rec domain.Record, field string) *int {
	v, ok := rec[field]
	if !ok || v == nil {
		return nil
	}
	n := domain.CoerceInt(v)
	return &n
}
