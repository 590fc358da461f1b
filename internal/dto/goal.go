package dto

import (
	"github.com/GregMSThompson/finance-insights/internal/insights"
	"github.com/GregMSThompson/finance-insights/internal/models"
)

type CreateGoalRequest struct {
	Name     string   `json:"name"`
	Kind     string   `json:"kind"`
	Target   float64  `json:"target"`
	Current  *float64 `json:"current,omitempty"`
	Deadline *string  `json:"deadline,omitempty"`
}

type GoalPlanResponse struct {
	Goal *models.Goal      `json:"goal"`
	Plan insights.GoalPlan `json:"plan"`
}
