package services

import (
	"context"
	"time"

	"github.com/GregMSThompson/finance-insights/internal/dto"
	"github.com/GregMSThompson/finance-insights/internal/errs"
	"github.com/GregMSThompson/finance-insights/internal/models"
)

type fakeLedger struct {
	expenses  []models.Expense
	income    []models.Income
	listErr   error
	upsertErr error
	listCalls int

	upsertedExpenses []models.Expense
	upsertedIncome   []models.Income
}

func (f *fakeLedger) ListExpenses(_ context.Context, _ string) ([]models.Expense, error) {
	f.listCalls++
	return f.expenses, f.listErr
}

func (f *fakeLedger) ListIncome(_ context.Context, _ string) ([]models.Income, error) {
	return f.income, nil
}

func (f *fakeLedger) UpsertExpenses(_ context.Context, _ string, items []models.Expense) error {
	f.upsertedExpenses = items
	return f.upsertErr
}

func (f *fakeLedger) UpsertIncome(_ context.Context, _ string, items []models.Income) error {
	f.upsertedIncome = items
	return f.upsertErr
}

type fakeNarrativeCache struct {
	insight   *models.Insight
	getErr    error
	saveErr   error
	deleteErr error
	saved     *models.Insight
	deletes   int
}

func (f *fakeNarrativeCache) GetNarrative(_ context.Context, _ string) (*models.Insight, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.insight == nil {
		return nil, errs.NewNotFoundError("no cached narrative")
	}
	return f.insight, nil
}

func (f *fakeNarrativeCache) SaveNarrative(_ context.Context, _ string, in *models.Insight) error {
	f.saved = in
	return f.saveErr
}

func (f *fakeNarrativeCache) DeleteNarrative(_ context.Context, _ string) error {
	f.deletes++
	return f.deleteErr
}

type fakeVertexClient struct {
	resp     dto.VertexGenerateResponse
	err      error
	requests []dto.VertexGenerateRequest
}

func (f *fakeVertexClient) GenerateContent(_ context.Context, req dto.VertexGenerateRequest) (dto.VertexGenerateResponse, error) {
	f.requests = append(f.requests, req)
	return f.resp, f.err
}

type fakeGoalStore struct {
	goals     map[string]*models.Goal
	createErr error
	created   *models.Goal
}

func newFakeGoalStore(goals ...*models.Goal) *fakeGoalStore {
	f := &fakeGoalStore{goals: map[string]*models.Goal{}}
	for _, g := range goals {
		f.goals[g.GoalID] = g
	}
	return f
}

func (f *fakeGoalStore) CreateGoal(_ context.Context, _ string, g *models.Goal) error {
	f.created = g
	if f.createErr != nil {
		return f.createErr
	}
	f.goals[g.GoalID] = g
	return nil
}

func (f *fakeGoalStore) GetGoal(_ context.Context, _, goalID string) (*models.Goal, error) {
	g, ok := f.goals[goalID]
	if !ok {
		return nil, errs.NewNotFoundError("goal not found")
	}
	return g, nil
}

func (f *fakeGoalStore) ListGoals(_ context.Context, _ string) ([]*models.Goal, error) {
	out := make([]*models.Goal, 0, len(f.goals))
	for _, g := range f.goals {
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeGoalStore) DeleteGoal(_ context.Context, _, goalID string) error {
	if _, ok := f.goals[goalID]; !ok {
		return errs.NewNotFoundError("goal not found")
	}
	delete(f.goals, goalID)
	return nil
}

var testNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

// sampleLedger spans three months with five categories.
func sampleLedger() *fakeLedger {
	return &fakeLedger{
		expenses: []models.Expense{
			{ExpenseID: "e1", Amount: 420.5, Category: "food", Date: "2024-01-05"},
			{ExpenseID: "e2", Amount: 120, Category: "Shopping", Date: "2024-01-20"},
			{ExpenseID: "e3", Amount: 380.25, Category: "Food & Dining", Date: "2024-02-03"},
			{ExpenseID: "e4", Amount: 900, Category: "Bills & Utilities", Date: "2024-02-10"},
			{ExpenseID: "e5", Amount: 60, Category: "entertainment", Date: "2024-03-01"},
			{ExpenseID: "e6", Amount: 45.75, Category: "Transportation", Date: "2024-03-12"},
		},
		income: []models.Income{
			{IncomeID: "i1", Amount: 3000, Source: "salary", Date: "2024-01-01", Currency: "USD"},
			{IncomeID: "i2", Amount: 3000, Source: "Salary", Date: "2024-02-01", Currency: "USD"},
		},
	}
}
