package insights

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type AnomalyType string

const (
	AnomalyUnusuallyHigh      AnomalyType = "unusually_high"
	AnomalyUnusuallyLow       AnomalyType = "unusually_low"
	AnomalyPotentialDuplicate AnomalyType = "potential_duplicate"
)

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

func (s Severity) rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	default:
		return 2
	}
}

type Anomaly struct {
	Category    Category        `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Type        AnomalyType     `json:"type"`
	Severity    Severity        `json:"severity"`
	Deviation   float64         `json:"deviation,omitempty"`
	Count       int             `json:"count,omitempty"`
	Description string          `json:"description"`
}

type AnomalyReport struct {
	Anomalies []Anomaly `json:"anomalies"`
	Summary   string    `json:"summary"`
}

const (
	minAnomalyExpenses = 10
	minCategorySample  = 3
	outlierZ           = 2.0
	severeZ            = 3.0
)

// DetectAnomalies flags per-category statistical outliers and exact
// duplicates. Below minAnomalyExpenses nothing is attempted.
func DetectAnomalies(expenses []Expense) AnomalyReport {
	if len(expenses) < minAnomalyExpenses {
		return AnomalyReport{Anomalies: []Anomaly{}, Summary: "Insufficient data for anomaly detection"}
	}

	found := append(outliers(expenses), duplicates(expenses)...)
	sort.SliceStable(found, func(i, j int) bool { return found[i].Severity.rank() < found[j].Severity.rank() })

	summary := "No significant anomalies detected"
	if len(found) > 0 {
		summary = fmt.Sprintf("Found %d anomalies requiring attention", len(found))
	}
	return AnomalyReport{Anomalies: found, Summary: summary}
}

func outliers(expenses []Expense) []Anomaly {
	out := []Anomaly{}
	groups := groupBy(expenses, func(e Expense) Category { return e.Category })
	for _, cat := range sortedKeys(groups) {
		txs := groups[cat]
		if len(txs) < minCategorySample {
			continue
		}
		amounts := floats(txs)
		m := mean(amounts)
		sd := stdDev(amounts, m)
		for i, e := range txs {
			var z float64
			if sd > 0 {
				z = (amounts[i] - m) / sd
			}
			if math.Abs(z) <= outlierZ {
				continue
			}
			a := Anomaly{
				Category:  cat,
				Amount:    e.Amount,
				Date:      e.Date,
				Type:      AnomalyUnusuallyLow,
				Severity:  SeverityMedium,
				Deviation: changePercent(m, amounts[i]),
			}
			direction := "lower"
			if z > 0 {
				a.Type, direction = AnomalyUnusuallyHigh, "higher"
			}
			if math.Abs(z) > severeZ {
				a.Severity = SeverityHigh
			}
			a.Description = fmt.Sprintf("%s expense of %s is %.0f%% %s than average (%s)",
				cat, money(e.Amount), math.Abs(a.Deviation), direction, money(decimal.NewFromFloat(m)))
			out = append(out, a)
		}
	}
	return out
}

type duplicateKey struct {
	category Category
	amount   string
	date     string
}

// duplicates reports each (category, amount, date) triple seen more than once,
// in order of first appearance.
func duplicates(expenses []Expense) []Anomaly {
	counts := make(map[duplicateKey]int)
	var order []Expense
	for _, e := range expenses {
		k := duplicateKey{e.Category, e.Amount.String(), e.Date.Format(time.DateOnly)}
		if counts[k] == 0 {
			order = append(order, e)
		}
		counts[k]++
	}

	out := []Anomaly{}
	for _, e := range order {
		n := counts[duplicateKey{e.Category, e.Amount.String(), e.Date.Format(time.DateOnly)}]
		if n < 2 {
			continue
		}
		out = append(out, Anomaly{
			Category:    e.Category,
			Amount:      e.Amount,
			Date:        e.Date,
			Type:        AnomalyPotentialDuplicate,
			Severity:    SeverityMedium,
			Count:       n,
			Description: fmt.Sprintf("Potential duplicate: %d identical transactions of %s in %s", n, money(e.Amount), e.Category),
		})
	}
	return out
}
