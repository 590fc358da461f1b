package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/finance-insights/internal/dto"
	"github.com/GregMSThompson/finance-insights/internal/middleware"
	"github.com/GregMSThompson/finance-insights/internal/models"
	"github.com/GregMSThompson/finance-insights/internal/response"
)

type GoalService interface {
	CreateGoal(ctx context.Context, uid string, req dto.CreateGoalRequest) (*models.Goal, error)
	ListGoals(ctx context.Context, uid string) ([]*models.Goal, error)
	DeleteGoal(ctx context.Context, uid, goalID string) error
	PlanGoal(ctx context.Context, uid, goalID string) (dto.GoalPlanResponse, error)
}

type goalHandlers struct {
	ResponseHandler response.ResponseHandler
	GoalSvc         GoalService
}

func NewGoalHandlers(deps *Deps) *goalHandlers {
	return &goalHandlers{
		ResponseHandler: deps.ResponseHandler,
		GoalSvc:         deps.GoalSvc,
	}
}

func (h *goalHandlers) GoalRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListGoals)
	r.Post("/", h.CreateGoal)
	r.Delete("/{goalId}", h.DeleteGoal)
	r.Get("/{goalId}/plan", h.PlanGoal)
	return r
}

func (h *goalHandlers) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateGoalRequest
	if err := decodeBody(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	goal, err := h.GoalSvc.CreateGoal(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, goal)
}

func (h *goalHandlers) ListGoals(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	goals, err := h.GoalSvc.ListGoals(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, goals)
}

func (h *goalHandlers) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "goalId")
	uid := middleware.UID(r.Context())
	if err := h.GoalSvc.DeleteGoal(r.Context(), uid, goalID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *goalHandlers) PlanGoal(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "goalId")
	uid := middleware.UID(r.Context())
	plan, err := h.GoalSvc.PlanGoal(r.Context(), uid, goalID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, plan)
}
