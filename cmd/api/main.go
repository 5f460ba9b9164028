package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/go-playground/validator/v10"
	"google.golang.org/api/option"

	"go-matchjobs-backend/config"
	"go-matchjobs-backend/internal/ai/gemini"
	v1 "go-matchjobs-backend/internal/delivery/http/v1"
	"go-matchjobs-backend/internal/domain"
	firestorerepo "go-matchjobs-backend/internal/repository/firestore"
	"go-matchjobs-backend/internal/repository/s3store"
	"go-matchjobs-backend/internal/usecase"
	"go-matchjobs-backend/pkg/logger"
	"go-matchjobs-backend/pkg/storage"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting matchjobs backend", "port", cfg.Port)

	ctx := context.Background()

	// 3. Setup Document Store
	// A failed client leaves the repository nil; the profile routes then
	// answer 500 instead of the process refusing to start.
	var profileRepo domain.ProfileRepository
	if cfg.FirestoreProjectID != "" {
		var opts []option.ClientOption
		if cfg.FirestoreCredentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.FirestoreCredentialsFile))
		}
		fsClient, err := firestore.NewClientWithDatabase(ctx, cfg.FirestoreProjectID, cfg.FirestoreDatabaseID, opts...)
		if err != nil {
			logger.Log.Error("Failed to initialize Firestore", "error", err)
		} else {
			defer fsClient.Close()
			profileRepo = firestorerepo.NewProfileRepository(fsClient)
		}
	}

	// 4. Setup Object Store
	// Upload failures are tolerated per submission, so a missing client only
	// degrades the resume field, never the pipeline.
	var resumeStore domain.ResumeStore
	if cfg.S3Bucket != "" {
		s3Client, err := storage.NewS3Client(ctx, storage.S3ClientConfig{
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			Endpoint:        cfg.S3Endpoint,
		})
		if err != nil {
			logger.Log.Error("Failed to initialize S3 client", "error", err)
		} else if err := storage.TestS3Connection(ctx, s3Client, cfg.S3Bucket); err != nil {
			logger.Log.Error("S3 bucket check failed", "bucket", cfg.S3Bucket, "error", err)
		} else {
			resumeStore = s3store.NewResumeStore(s3Client, cfg.S3Bucket, cfg.S3Region, cfg.S3PublicBaseURL)
		}
	}

	// 5. Setup Language Model
	// An empty API key yields a degraded generator; its calls surface a fixed
	// configuration error instead of crashing the request.
	generator, err := gemini.NewGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel,
		time.Duration(cfg.ModelTimeoutSeconds)*time.Second)
	if err != nil {
		logger.Log.Error("Failed to initialize Gemini client", "error", err)
		os.Exit(1)
	}

	// 6. Setup UseCases
	validate := validator.New()
	profileUC := usecase.NewProfileUsecase(profileRepo, resumeStore, generator, validate)
	vagasUC := usecase.NewVagasUsecase(generator)
	insightsUC := usecase.NewInsightsUsecase(profileRepo, generator)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ProfileUC:  profileUC,
		VagasUC:    vagasUC,
		InsightsUC: insightsUC,
		Config:     cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
