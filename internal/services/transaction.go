package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/GregMSThompson/finance-insights/internal/dto"
	"github.com/GregMSThompson/finance-insights/internal/errs"
	"github.com/GregMSThompson/finance-insights/internal/insights"
	"github.com/GregMSThompson/finance-insights/internal/models"
	"github.com/GregMSThompson/finance-insights/pkg/logger"
)

// maxImportBatch bounds a single import request.
const maxImportBatch = 500

type ledgerWriter interface {
	UpsertExpenses(ctx context.Context, uid string, items []models.Expense) error
	UpsertIncome(ctx context.Context, uid string, items []models.Income) error
}

type narrativeInvalidator interface {
	DeleteNarrative(ctx context.Context, uid string) error
}

type transactionService struct {
	store ledgerWriter
	cache narrativeInvalidator
	newID func() string
}

func NewTransactionService(store ledgerWriter, cache narrativeInvalidator) *transactionService {
	return &transactionService{
		store: store,
		cache: cache,
		newID: uuid.NewString,
	}
}

// ImportExpenses validates and upserts a batch. Records with an ID replace
// the stored record of that ID. Category labels are stored in their
// canonical form.
func (s *transactionService) ImportExpenses(ctx context.Context, uid string, req dto.ImportExpensesRequest) (dto.ImportResult, error) {
	if err := checkBatch(len(req.Expenses)); err != nil {
		return dto.ImportResult{}, err
	}

	seen := make(map[string]bool, len(req.Expenses))
	items := make([]models.Expense, 0, len(req.Expenses))
	var unknown []string
	for i, in := range req.Expenses {
		id, err := s.recordID(in.ID, seen)
		if err != nil {
			return dto.ImportResult{}, err
		}
		if err := checkRecord(i, in.Amount, in.Date); err != nil {
			return dto.ImportResult{}, err
		}
		cat := insights.ParseCategory(in.Category)
		if !cat.Known() && !strings.EqualFold(strings.TrimSpace(in.Category), string(insights.CategoryOther)) {
			unknown = append(unknown, in.Category)
		}
		items = append(items, models.Expense{
			ExpenseID:   id,
			Amount:      in.Amount,
			Category:    string(cat),
			Date:        in.Date,
			Description: strings.TrimSpace(in.Description),
		})
	}

	if err := s.store.UpsertExpenses(ctx, uid, items); err != nil {
		return dto.ImportResult{}, err
	}
	s.invalidate(ctx, uid)

	log := logger.FromContext(ctx)
	if len(unknown) > 0 {
		log.Warn("unrecognised expense categories filed under Other", "count", len(unknown), "labels", unknown)
	}
	log.Info("expenses imported", "count", len(items))

	res := importResult(len(items), func(i int) string { return items[i].ExpenseID })
	res.Uncategorized = len(unknown)
	return res, nil
}

func (s *transactionService) ImportIncome(ctx context.Context, uid string, req dto.ImportIncomeRequest) (dto.ImportResult, error) {
	if err := checkBatch(len(req.Income)); err != nil {
		return dto.ImportResult{}, err
	}

	seen := make(map[string]bool, len(req.Income))
	items := make([]models.Income, 0, len(req.Income))
	for i, in := range req.Income {
		id, err := s.recordID(in.ID, seen)
		if err != nil {
			return dto.ImportResult{}, err
		}
		if err := checkRecord(i, in.Amount, in.Date); err != nil {
			return dto.ImportResult{}, err
		}
		items = append(items, models.Income{
			IncomeID:    id,
			Amount:      in.Amount,
			Source:      string(insights.ParseSource(in.Source)),
			Date:        in.Date,
			Description: strings.TrimSpace(in.Description),
			Currency:    strings.ToUpper(strings.TrimSpace(in.Currency)),
		})
	}

	if err := s.store.UpsertIncome(ctx, uid, items); err != nil {
		return dto.ImportResult{}, err
	}
	s.invalidate(ctx, uid)

	logger.FromContext(ctx).Info("income imported", "count", len(items))
	return importResult(len(items), func(i int) string { return items[i].IncomeID }), nil
}

// invalidate drops the cached narrative; it no longer describes the ledger.
func (s *transactionService) invalidate(ctx context.Context, uid string) {
	if err := s.cache.DeleteNarrative(ctx, uid); err != nil {
		logger.FromContext(ctx).Warn("failed to clear cached narrative", "error", err)
	}
}

func (s *transactionService) recordID(id string, seen map[string]bool) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		id = s.newID()
	}
	if strings.Contains(id, "/") {
		return "", errs.NewValidationError(fmt.Sprintf("id %q must not contain '/'", id))
	}
	if seen[id] {
		return "", errs.NewValidationError(fmt.Sprintf("id %q appears more than once", id))
	}
	seen[id] = true
	return id, nil
}

func checkBatch(n int) error {
	switch {
	case n == 0:
		return errs.NewValidationError("at least one record is required")
	case n > maxImportBatch:
		return errs.NewValidationError(fmt.Sprintf("at most %d records per request", maxImportBatch))
	}
	return nil
}

func checkRecord(i int, amount float64, date string) error {
	if amount == 0 {
		return errs.NewValidationError(fmt.Sprintf("record %d: amount must not be zero", i))
	}
	if _, err := parseDay(date); err != nil {
		return errs.NewValidationError(fmt.Sprintf("record %d: date %q must be YYYY-MM-DD", i, date))
	}
	return nil
}

func importResult(n int, id func(int) string) dto.ImportResult {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = id(i)
	}
	return dto.ImportResult{Imported: n, IDs: ids}
}
