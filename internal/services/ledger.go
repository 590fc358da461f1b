package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/GregMSThompson/finance-insights/internal/errs"
	"github.com/GregMSThompson/finance-insights/internal/insights"
	"github.com/GregMSThompson/finance-insights/internal/models"
	"github.com/GregMSThompson/finance-insights/pkg/logger"
)

type ledgerReader interface {
	ListExpenses(ctx context.Context, uid string) ([]models.Expense, error)
	ListIncome(ctx context.Context, uid string) ([]models.Income, error)
}

// loadLedger reads both collections concurrently and converts them into
// engine values. A stored record with an unparseable date fails the whole
// load.
func loadLedger(ctx context.Context, store ledgerReader, uid string) ([]insights.Expense, []insights.Income, error) {
	var (
		rawExpenses []models.Expense
		rawIncome   []models.Income
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rawExpenses, err = store.ListExpenses(gctx, uid)
		return err
	})
	g.Go(func() error {
		var err error
		rawIncome, err = store.ListIncome(gctx, uid)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	expenses, err := toExpenses(rawExpenses)
	if err != nil {
		return nil, nil, err
	}
	income, err := toIncome(rawIncome)
	if err != nil {
		return nil, nil, err
	}

	logger.FromContext(ctx).Debug("ledger loaded", "expenses", len(expenses), "income", len(income))
	return expenses, income, nil
}

func toExpenses(in []models.Expense) ([]insights.Expense, error) {
	out := make([]insights.Expense, 0, len(in))
	for _, m := range in {
		day, err := parseDay(m.Date)
		if err != nil {
			return nil, errs.NewValidationError(fmt.Sprintf("expense %s has invalid date %q", m.ExpenseID, m.Date))
		}
		out = append(out, insights.Expense{
			Amount:      decimal.NewFromFloat(m.Amount),
			Category:    insights.ParseCategory(m.Category),
			Date:        day,
			Description: m.Description,
		})
	}
	return out, nil
}

func toIncome(in []models.Income) ([]insights.Income, error) {
	out := make([]insights.Income, 0, len(in))
	for _, m := range in {
		day, err := parseDay(m.Date)
		if err != nil {
			return nil, errs.NewValidationError(fmt.Sprintf("income %s has invalid date %q", m.IncomeID, m.Date))
		}
		out = append(out, insights.Income{
			Amount:      decimal.NewFromFloat(m.Amount),
			Source:      insights.ParseSource(m.Source),
			Date:        day,
			Description: m.Description,
			Currency:    m.Currency,
		})
	}
	return out, nil
}

// parseDay reads a YYYY-MM-DD calendar day as midnight UTC.
func parseDay(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}
