package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-matchjobs-backend/internal/domain"
	"go-matchjobs-backend/pkg/apperror"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

// NewProfileHandler registers the profile submission and analysis routes.
func NewProfileHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	r.POST("/submit-profile", handler.SubmitProfile)
	r.GET("/get-analysis", handler.GetAnalysis)
}

// SubmitProfile stores a candidate profile: uploads the optional resume,
// runs the nine model analyses and writes the record wholesale.
func (h *ProfileHandler) SubmitProfile(c *gin.Context) {
	var req domain.SubmitProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(fmt.Sprintf("Erro: %v", err)))
		return
	}

	res, err := h.profileUC.Submit(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// GetAnalysis returns one candidate's record reshaped into the public
// analysis schema. userId comes as a query parameter.
func (h *ProfileHandler) GetAnalysis(c *gin.Context) {
	out, err := h.profileUC.GetAnalysis(c.Request.Context(), c.Query("userId"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, out)
}
