package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GregMSThompson/finance-insights/internal/errs"
	"github.com/GregMSThompson/finance-insights/internal/models"
)

const narrativeDoc = "narrative"

type insightStore struct {
	client *firestore.Client
}

func NewInsightStore(client *firestore.Client) *insightStore {
	return &insightStore{client: client}
}

func (s *insightStore) doc(uid string) *firestore.DocumentRef {
	return s.client.Collection("users").Doc(uid).Collection("ai_insights").Doc(narrativeDoc)
}

func (s *insightStore) GetNarrative(ctx context.Context, uid string) (*models.Insight, error) {
	snap, err := s.doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("no cached narrative")
		}
		return nil, errs.NewDatabaseError("read", "failed to get cached narrative", err)
	}
	var in models.Insight
	if err := snap.DataTo(&in); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse cached narrative", err)
	}
	return &in, nil
}

func (s *insightStore) SaveNarrative(ctx context.Context, uid string, in *models.Insight) error {
	if _, err := s.doc(uid).Set(ctx, in); err != nil {
		return errs.NewDatabaseError("update", "failed to cache narrative", err)
	}
	return nil
}

func (s *insightStore) DeleteNarrative(ctx context.Context, uid string) error {
	if _, err := s.doc(uid).Delete(ctx); err != nil {
		return errs.NewDatabaseError("delete", "failed to clear cached narrative", err)
	}
	return nil
}
