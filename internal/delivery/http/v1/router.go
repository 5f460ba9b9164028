package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-matchjobs-backend/config"
	"go-matchjobs-backend/internal/delivery/http/middleware"
	"go-matchjobs-backend/internal/delivery/http/response"
	"go-matchjobs-backend/internal/domain"
)

type RouterDeps struct {
	ProfileUC  domain.ProfileUsecase
	VagasUC    domain.VagasUsecase
	InsightsUC domain.InsightsUsecase
	Config     *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.ErrorHandler())

	// Status check, same body on both paths
	online := func(c *gin.Context) {
		response.Message(c, http.StatusOK, "Backend MatchJobs está online!")
	}
	r.GET("/", online)
	r.GET("/health", online)

	root := &r.RouterGroup
	NewProfileHandler(root, deps.ProfileUC)
	NewVagasHandler(root, deps.VagasUC)
	NewInsightsHandler(root, deps.InsightsUC)

	return r
}
