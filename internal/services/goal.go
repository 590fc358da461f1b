package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/finance-insights/internal/dto"
	"github.com/GregMSThompson/finance-insights/internal/errs"
	"github.com/GregMSThompson/finance-insights/internal/insights"
	"github.com/GregMSThompson/finance-insights/internal/models"
	"github.com/GregMSThompson/finance-insights/pkg/helpers"
	"github.com/GregMSThompson/finance-insights/pkg/logger"
)

type goalStore interface {
	CreateGoal(ctx context.Context, uid string, g *models.Goal) error
	GetGoal(ctx context.Context, uid, goalID string) (*models.Goal, error)
	ListGoals(ctx context.Context, uid string) ([]*models.Goal, error)
	DeleteGoal(ctx context.Context, uid, goalID string) error
}

type goalService struct {
	goals    goalStore
	ledger   ledgerReader
	clockNow func() time.Time
	newID    func() string
}

func NewGoalService(goals goalStore, ledger ledgerReader) *goalService {
	return &goalService{
		goals:    goals,
		ledger:   ledger,
		clockNow: time.Now,
		newID:    uuid.NewString,
	}
}

func (s *goalService) CreateGoal(ctx context.Context, uid string, req dto.CreateGoalRequest) (*models.Goal, error) {
	log := logger.FromContext(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errs.NewValidationError("goal name is required")
	}
	if !(req.Target > 0) || math.IsInf(req.Target, 0) {
		return nil, errs.NewValidationError("goal target must be greater than zero")
	}
	current := helpers.Deref(req.Current, 0)
	if current < 0 || math.IsInf(current, 0) || math.IsNaN(current) {
		return nil, errs.NewValidationError("goal current amount must not be negative")
	}
	deadline := strings.TrimSpace(helpers.Deref(req.Deadline, ""))
	if deadline != "" {
		if _, err := parseDay(deadline); err != nil {
			return nil, errs.NewValidationError(fmt.Sprintf("goal deadline %q must be YYYY-MM-DD", deadline))
		}
	}

	now := s.clockNow().UTC()
	g := &models.Goal{
		GoalID:    s.newID(),
		Name:      name,
		Kind:      string(insights.ParseGoalKind(req.Kind)),
		Target:    req.Target,
		Current:   current,
		Deadline:  deadline,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.goals.CreateGoal(ctx, uid, g); err != nil {
		log.Error("failed to create goal", "error", err)
		return nil, err
	}

	log.Info("goal created", "goal_id", g.GoalID, "kind", g.Kind)
	return g, nil
}

func (s *goalService) ListGoals(ctx context.Context, uid string) ([]*models.Goal, error) {
	return s.goals.ListGoals(ctx, uid)
}

func (s *goalService) DeleteGoal(ctx context.Context, uid, goalID string) error {
	if err := s.goals.DeleteGoal(ctx, uid, goalID); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("goal deleted", "goal_id", goalID)
	return nil
}

// PlanGoal evaluates a stored goal against the user's full ledger.
func (s *goalService) PlanGoal(ctx context.Context, uid, goalID string) (dto.GoalPlanResponse, error) {
	g, err := s.goals.GetGoal(ctx, uid, goalID)
	if err != nil {
		return dto.GoalPlanResponse{}, err
	}
	goal, err := toGoal(g)
	if err != nil {
		return dto.GoalPlanResponse{}, err
	}

	expenses, income, err := loadLedger(ctx, s.ledger, uid)
	if err != nil {
		return dto.GoalPlanResponse{}, err
	}

	plan := insights.PlanGoal(goal, expenses, income, s.clockNow().UTC())
	logger.FromContext(ctx).Info("goal planned", "goal_id", goalID, "warnings", len(plan.Warnings))
	return dto.GoalPlanResponse{Goal: g, Plan: plan}, nil
}

func toGoal(g *models.Goal) (insights.Goal, error) {
	out := insights.Goal{
		Name:    g.Name,
		Kind:    insights.ParseGoalKind(g.Kind),
		Target:  decimal.NewFromFloat(g.Target),
		Current: decimal.NewFromFloat(g.Current),
	}
	if g.Deadline != "" {
		d, err := parseDay(g.Deadline)
		if err != nil {
			return out, errs.NewValidationError(fmt.Sprintf("goal %s has invalid deadline %q", g.GoalID, g.Deadline))
		}
		out.Deadline = &d
	}
	return out, nil
}
