// Package analyses exposes the CV analysis pipeline over HTTP.
package analyses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cvanaliz-backend/internal/analyzer"
	"cvanaliz-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analyzer service.
type Handler struct {
	Svc *analyzer.Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *analyzer.Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.createAnalysis)
}

// CreateAnalysisRequest is the body for POST /analyses.
type CreateAnalysisRequest struct {
	CVText  string `json:"cvText"`
	JobText string `json:"jobText"`
	Mode    string `json:"mode"`
}

// CreateAnalysisResponse wraps the analysis result with a request-scoped id.
type CreateAnalysisResponse struct {
	AnalysisID string `json:"analysisId"`
	*analyzer.Result
}

func (h *Handler) createAnalysis(c *gin.Context) {
	var req CreateAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Geçersiz istek gövdesi", nil)
		return
	}

	result, err := h.Svc.Analyze(req.CVText, req.JobText, analyzer.Mode(req.Mode))
	if err != nil {
		switch {
		case errors.Is(err, analyzer.ErrEmptyCVText):
			respond.Error(c, http.StatusBadRequest, "validation_error", "cvText alanı zorunludur", []map[string]string{
				{"field": "cvText", "issue": "required"},
			})
		case errors.Is(err, analyzer.ErrEmptyJobText):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Tam analiz için jobText alanı zorunludur", []map[string]string{
				{"field": "jobText", "issue": "required"},
			})
		case errors.Is(err, analyzer.ErrInvalidMode):
			respond.Error(c, http.StatusBadRequest, "validation_error", "mode alanı full veya ats-only olmalıdır", []map[string]string{
				{"field": "mode", "issue": "invalid"},
			})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Analiz tamamlanamadı", nil)
		}
		return
	}

	analysisID := uuid.NewString()
	c.Set("analysisId", analysisID)
	c.Set("analysisMode", string(result.AnalysisMode))

	respond.OK(c, CreateAnalysisResponse{
		AnalysisID: analysisID,
		Result:     result,
	})
}
