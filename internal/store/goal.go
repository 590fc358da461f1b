package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GregMSThompson/finance-insights/internal/errs"
	"github.com/GregMSThompson/finance-insights/internal/models"
)

type goalStore struct {
	client *firestore.Client
}

func NewGoalStore(client *firestore.Client) *goalStore {
	return &goalStore{client: client}
}

func (s *goalStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("goals")
}

func (s *goalStore) CreateGoal(ctx context.Context, uid string, g *models.Goal) error {
	_, err := s.collection(uid).Doc(g.GoalID).Create(ctx, g)
	if status.Code(err) == codes.AlreadyExists {
		return errs.NewAlreadyExistsError("goal already exists")
	}
	if err != nil {
		return errs.NewDatabaseError("create", "failed to create goal", err)
	}
	return nil
}

func (s *goalStore) GetGoal(ctx context.Context, uid, goalID string) (*models.Goal, error) {
	doc, err := s.collection(uid).Doc(goalID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("goal not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get goal", err)
	}
	var g models.Goal
	if err := doc.DataTo(&g); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse goal data", err)
	}
	return &g, nil
}

func (s *goalStore) ListGoals(ctx context.Context, uid string) ([]*models.Goal, error) {
	docs, err := s.collection(uid).OrderBy("createdAt", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list goals", err)
	}
	goals := make([]*models.Goal, 0, len(docs))
	for _, d := range docs {
		var g models.Goal
		if err := d.DataTo(&g); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse goal data", err)
		}
		goals = append(goals, &g)
	}
	return goals, nil
}

// DeleteGoal reports NotFound for a missing goal; Firestore itself treats
// deleting a missing document as success.
func (s *goalStore) DeleteGoal(ctx context.Context, uid, goalID string) error {
	_, err := s.collection(uid).Doc(goalID).Delete(ctx, firestore.Exists)
	if status.Code(err) == codes.NotFound {
		return errs.NewNotFoundError("goal not found")
	}
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to delete goal", err)
	}
	return nil
}
