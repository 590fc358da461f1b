package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/finance-insights/internal/dto"
	"github.com/GregMSThompson/finance-insights/internal/errs"
	"github.com/GregMSThompson/finance-insights/internal/insights"
	"github.com/GregMSThompson/finance-insights/internal/middleware"
	"github.com/GregMSThompson/finance-insights/internal/response"
)

type AnalysisService interface {
	Analyze(ctx context.Context, uid string) (insights.Report, error)
}

type InsightService interface {
	Narrative(ctx context.Context, uid string, refresh bool) (dto.NarrativeResponse, error)
}

type analysisHandlers struct {
	ResponseHandler response.ResponseHandler
	AnalysisSvc     AnalysisService
	InsightSvc      InsightService
}

func NewAnalysisHandlers(deps *Deps) *analysisHandlers {
	return &analysisHandlers{
		ResponseHandler: deps.ResponseHandler,
		AnalysisSvc:     deps.AnalysisSvc,
		InsightSvc:      deps.InsightSvc,
	}
}

func (h *analysisHandlers) AnalysisRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetAnalysis)
	r.Get("/insights", h.GetNarrative)
	return r
}

func (h *analysisHandlers) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	report, err := h.AnalysisSvc.Analyze(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, report)
}

// GetNarrative accepts ?refresh=true to bypass the cached narrative.
func (h *analysisHandlers) GetNarrative(w http.ResponseWriter, r *http.Request) {
	refresh := false
	if v := r.URL.Query().Get("refresh"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			h.ResponseHandler.HandleError(w, r, errs.NewValidationError("refresh must be a boolean"))
			return
		}
		refresh = b
	}

	uid := middleware.UID(r.Context())
	resp, err := h.InsightSvc.Narrative(r.Context(), uid, refresh)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}
