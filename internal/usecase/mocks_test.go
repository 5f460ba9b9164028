package usecase_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"go-matchjobs-backend/internal/domain"
	"go-matchjobs-backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Mock Repositories

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Get(ctx context.Context, userID string) (domain.Record, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Record), args.Error(1)
}

func (m *MockProfileRepo) Set(ctx context.Context, userID string, rec domain.Record) error {
	return m.Called(ctx, userID, rec).Error(0)
}

type MockResumeStore struct {
	mock.Mock
}

func (m *MockResumeStore) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, filename, contentType, data)
	return args.String(0), args.Error(1)
}

// generatorFunc adapts a plain function into a domain.TextGenerator, keeping
// prompt-dependent stubs readable.
type generatorFunc func(ctx context.Context, prompt string) (string, error)

func (f generatorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// stubGenerator answers every rating prompt with scoreReply and every other
// prompt with textReply.
func stubGenerator(scoreReply, textReply string) generatorFunc {
	return func(_ context.Context, prompt string) (string, error) {
		if strings.HasPrefix(prompt, "Dê uma nota") {
			return scoreReply, nil
		}
		return textReply, nil
	}
}
