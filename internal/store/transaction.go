package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/GregMSThompson/finance-insights/internal/errs"
	"github.com/GregMSThompson/finance-insights/internal/models"
)

type transactionStore struct {
	client *firestore.Client
	now    func() time.Time
}

func NewTransactionStore(client *firestore.Client) *transactionStore {
	return &transactionStore{client: client, now: time.Now}
}

func (s *transactionStore) expenses(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("expenses")
}

func (s *transactionStore) income(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("income")
}

// ListExpenses returns every expense ordered by date, then document ID, so
// repeated reads feed the analysis the same sequence.
func (s *transactionStore) ListExpenses(ctx context.Context, uid string) ([]models.Expense, error) {
	return listOrdered[models.Expense](ctx, s.expenses(uid), "expenses")
}

func (s *transactionStore) ListIncome(ctx context.Context, uid string) ([]models.Income, error) {
	return listOrdered[models.Income](ctx, s.income(uid), "income")
}

func (s *transactionStore) UpsertExpenses(ctx context.Context, uid string, items []models.Expense) error {
	now := s.now()
	docs := make([]bulkDoc, 0, len(items))
	for i := range items {
		e := &items[i]
		if e.CreatedAt.IsZero() {
			e.CreatedAt = now
		}
		e.UpdatedAt = now
		docs = append(docs, bulkDoc{ref: s.expenses(uid).Doc(e.ExpenseID), data: e})
	}
	return s.bulkSet(ctx, docs, "expenses")
}

func (s *transactionStore) UpsertIncome(ctx context.Context, uid string, items []models.Income) error {
	now := s.now()
	docs := make([]bulkDoc, 0, len(items))
	for i := range items {
		in := &items[i]
		if in.CreatedAt.IsZero() {
			in.CreatedAt = now
		}
		in.UpdatedAt = now
		docs = append(docs, bulkDoc{ref: s.income(uid).Doc(in.IncomeID), data: in})
	}
	return s.bulkSet(ctx, docs, "income")
}

type bulkDoc struct {
	ref  *firestore.DocumentRef
	data any
}

func (s *transactionStore) bulkSet(ctx context.Context, docs []bulkDoc, what string) error {
	if len(docs) == 0 {
		return nil
	}

	bw := s.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(docs))
	for _, d := range docs {
		job, err := bw.Set(d.ref, d.data)
		if err != nil {
			bw.End()
			return errs.NewDatabaseError("create", "failed to schedule "+what+" write", err)
		}
		jobs = append(jobs, job)
	}

	// End flushes; each job then reports its own result.
	bw.End()
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return errs.NewDatabaseError("create", "failed to write "+what, err)
		}
	}
	return nil
}

func listOrdered[T any](ctx context.Context, coll *firestore.CollectionRef, what string) ([]T, error) {
	iter := coll.OrderBy("date", firestore.Asc).OrderBy(firestore.DocumentID, firestore.Asc).Documents(ctx)
	defer iter.Stop()

	out := []T{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to list "+what, err)
		}
		var item T
		if err := doc.DataTo(&item); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse "+what+" data", err)
		}
		out = append(out, item)
	}
	return out, nil
}
