package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/GregMSThompson/finance-insights/internal/errs"
	"github.com/GregMSThompson/finance-insights/internal/models"
)

// MemoryStore keeps every collection in process memory for local
// development and tests. It implements the same methods as the Firestore
// stores and orders lists the same way.
type MemoryStore struct {
	mu       sync.RWMutex
	expenses map[string]map[string]models.Expense
	income   map[string]map[string]models.Income
	goals    map[string]map[string]models.Goal
	insights map[string]models.Insight
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		expenses: make(map[string]map[string]models.Expense),
		income:   make(map[string]map[string]models.Income),
		goals:    make(map[string]map[string]models.Goal),
		insights: make(map[string]models.Insight),
		now:      time.Now,
	}
}

func (s *MemoryStore) ListExpenses(_ context.Context, uid string) ([]models.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Expense, 0, len(s.expenses[uid]))
	for _, e := range s.expenses[uid] {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].ExpenseID < out[j].ExpenseID
	})
	return out, nil
}

func (s *MemoryStore) ListIncome(_ context.Context, uid string) ([]models.Income, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Income, 0, len(s.income[uid]))
	for _, in := range s.income[uid] {
		out = append(out, in)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].IncomeID < out[j].IncomeID
	})
	return out, nil
}

func (s *MemoryStore) UpsertExpenses(_ context.Context, uid string, items []models.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.expenses[uid] == nil {
		s.expenses[uid] = make(map[string]models.Expense)
	}
	now := s.now()
	for _, e := range items {
		if e.CreatedAt.IsZero() {
			e.CreatedAt = now
		}
		e.UpdatedAt = now
		s.expenses[uid][e.ExpenseID] = e
	}
	return nil
}

func (s *MemoryStore) UpsertIncome(_ context.Context, uid string, items []models.Income) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.income[uid] == nil {
		s.income[uid] = make(map[string]models.Income)
	}
	now := s.now()
	for _, in := range items {
		if in.CreatedAt.IsZero() {
			in.CreatedAt = now
		}
		in.UpdatedAt = now
		s.income[uid][in.IncomeID] = in
	}
	return nil
}

func (s *MemoryStore) CreateGoal(_ context.Context, uid string, g *models.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.goals[uid] == nil {
		s.goals[uid] = make(map[string]models.Goal)
	}
	if _, ok := s.goals[uid][g.GoalID]; ok {
		return errs.NewAlreadyExistsError("goal already exists")
	}
	s.goals[uid][g.GoalID] = *g
	return nil
}

func (s *MemoryStore) GetGoal(_ context.Context, uid, goalID string) (*models.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.goals[uid][goalID]
	if !ok {
		return nil, errs.NewNotFoundError("goal not found")
	}
	return &g, nil
}

func (s *MemoryStore) ListGoals(_ context.Context, uid string) ([]*models.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Goal, 0, len(s.goals[uid]))
	for _, g := range s.goals[uid] {
		out = append(out, &g)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].GoalID < out[j].GoalID
	})
	return out, nil
}

func (s *MemoryStore) DeleteGoal(_ context.Context, uid, goalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.goals[uid][goalID]; !ok {
		return errs.NewNotFoundError("goal not found")
	}
	delete(s.goals[uid], goalID)
	return nil
}

func (s *MemoryStore) GetNarrative(_ context.Context, uid string) (*models.Insight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	in, ok := s.insights[uid]
	if !ok {
		return nil, errs.NewNotFoundError("no cached narrative")
	}
	return &in, nil
}

func (s *MemoryStore) SaveNarrative(_ context.Context, uid string, in *models.Insight) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insights[uid] = *in
	return nil
}

func (s *MemoryStore) DeleteNarrative(_ context.Context, uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.insights, uid)
	return nil
}
