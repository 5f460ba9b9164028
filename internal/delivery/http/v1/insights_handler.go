package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-matchjobs-backend/internal/domain"
)

type InsightsHandler struct {
	insightsUC domain.InsightsUsecase
}

// NewInsightsHandler registers the on-demand behavioral report route.
func NewInsightsHandler(r *gin.RouterGroup, insightsUC domain.InsightsUsecase) {
	handler := &InsightsHandler{insightsUC: insightsUC}

	r.GET("/get-insights", handler.GetInsights)
}

// GetInsights generates the Enneagram / Big Five report for a stored profile.
// Nothing is persisted; model failures degrade to a fallback report.
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	insights, err := h.insightsUC.GenerateInsights(c.Request.Context(), c.Query("userId"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, insights)
}
