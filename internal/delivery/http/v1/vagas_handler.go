package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-matchjobs-backend/internal/domain"
	"go-matchjobs-backend/pkg/apperror"
	"go-matchjobs-backend/pkg/logger"
)

type VagasHandler struct {
	vagasUC domain.VagasUsecase
}

// NewVagasHandler registers the fabricated job-listing route.
func NewVagasHandler(r *gin.RouterGroup, vagasUC domain.VagasUsecase) {
	handler := &VagasHandler{vagasUC: vagasUC}

	r.POST("/get-vagas", handler.GetVagas)
}

// GetVagas returns five model-fabricated listings for a role in a city. The
// body is the bare list, and generation failures answer 500 with an empty
// list instead of the usual {"message"} shape.
func (h *VagasHandler) GetVagas(c *gin.Context) {
	var req domain.VagasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(fmt.Sprintf("Erro: %v", err)))
		return
	}

	vagas, err := h.vagasUC.GenerateVagas(c.Request.Context(), req.Cargo, req.Cidade)
	if err != nil {
		logger.Log.Error("vagas generation failed", "cargo", req.Cargo, "cidade", req.Cidade, "error", err)
		c.JSON(http.StatusInternalServerError, []any{})
		return
	}

	c.JSON(http.StatusOK, vagas)
}
