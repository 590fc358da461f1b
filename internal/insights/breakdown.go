package insights

import (
	"sort"

	"github.com/shopspring/decimal"
)

type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// GroupStat aggregates the transactions sharing one category or income source.
type GroupStat struct {
	Key        string          `json:"key"`
	Total      decimal.Decimal `json:"total"`
	Count      int             `json:"count"`
	Average    decimal.Decimal `json:"average"`
	Min        decimal.Decimal `json:"min"`
	Max        decimal.Decimal `json:"max"`
	Percentage float64         `json:"percentage"`
	Trend      Trend           `json:"trend"`
}

type Consistency string

const (
	ConsistencyVeryConsistent   Consistency = "very_consistent"
	ConsistencyConsistent       Consistency = "consistent"
	ConsistencyModerate         Consistency = "moderate"
	ConsistencyVariable         Consistency = "variable"
	ConsistencyInsufficientData Consistency = "insufficient_data"
)

type SpendingPatterns struct {
	CategoryBreakdown  []GroupStat     `json:"categoryBreakdown"`
	AverageTransaction decimal.Decimal `json:"averageTransaction"`
	LargestExpense     decimal.Decimal `json:"largestExpense"`
	SmallestExpense    decimal.Decimal `json:"smallestExpense"`
	TotalCategories    int             `json:"totalCategories"`
}

type IncomeAnalysis struct {
	SourceBreakdown []GroupStat     `json:"sourceBreakdown"`
	AverageIncome   decimal.Decimal `json:"averageIncome"`
	Consistency     Consistency     `json:"consistency"`
	TotalSources    int             `json:"totalSources"`
}

// CategoryBreakdown groups expenses by category.
func CategoryBreakdown(expenses []Expense) []GroupStat {
	return breakdown(expenses, func(e Expense) string { return string(e.Category) })
}

// SourceBreakdown groups income by source.
func SourceBreakdown(income []Income) []GroupStat {
	return breakdown(income, func(i Income) string { return string(i.Source) })
}

func breakdown[T record](items []T, key func(T) string) []GroupStat {
	grand := total(items)
	groups := groupBy(items, key)

	out := make([]GroupStat, 0, len(groups))
	for _, k := range sortedKeys(groups) {
		txs := groups[k]
		sum := total(txs)
		lo, hi := bounds(txs)
		out = append(out, GroupStat{
			Key:        k,
			Total:      sum,
			Count:      len(txs),
			Average:    avg(sum, len(txs)),
			Min:        lo,
			Max:        hi,
			Percentage: percentOf(sum, grand),
			Trend:      amountTrend(txs),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total.GreaterThan(out[j].Total) })
	return out
}

// amountTrend compares the average amount of the later half of the
// transactions (by count) with the earlier half.
func amountTrend[T record](txs []T) Trend {
	if len(txs) < 2 {
		return TrendStable
	}
	sorted := byDate(txs)
	mid := len(sorted) / 2
	first := avg(total(sorted[:mid]), mid).InexactFloat64()
	second := avg(total(sorted[mid:]), len(sorted)-mid).InexactFloat64()

	change := changePercent(first, second)
	switch {
	case change > 10:
		return TrendIncreasing
	case change < -10:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

func bounds[T record](txs []T) (lo, hi decimal.Decimal) {
	for i, t := range txs {
		v := t.value()
		if i == 0 || v.LessThan(lo) {
			lo = v
		}
		if i == 0 || v.GreaterThan(hi) {
			hi = v
		}
	}
	return lo, hi
}

// AnalyzeSpendingPatterns returns nil when there are no expenses.
func AnalyzeSpendingPatterns(expenses []Expense) *SpendingPatterns {
	if len(expenses) == 0 {
		return nil
	}
	cats := CategoryBreakdown(expenses)
	lo, hi := bounds(expenses)
	return &SpendingPatterns{
		CategoryBreakdown:  cats,
		AverageTransaction: avg(total(expenses), len(expenses)),
		LargestExpense:     hi,
		SmallestExpense:    lo,
		TotalCategories:    len(cats),
	}
}

// AnalyzeIncome returns nil when there is no income.
func AnalyzeIncome(income []Income) *IncomeAnalysis {
	if len(income) == 0 {
		return nil
	}
	sources := SourceBreakdown(income)
	return &IncomeAnalysis{
		SourceBreakdown: sources,
		AverageIncome:   avg(total(income), len(income)),
		Consistency:     incomeConsistency(income),
		TotalSources:    len(sources),
	}
}

// incomeConsistency buckets the coefficient of variation of income amounts.
func incomeConsistency(income []Income) Consistency {
	if len(income) < 2 {
		return ConsistencyInsufficientData
	}
	amounts := floats(income)
	m := mean(amounts)
	if m == 0 {
		return ConsistencyVariable
	}
	cov := stdDev(amounts, m) / m * 100
	switch {
	case cov < 10:
		return ConsistencyVeryConsistent
	case cov < 25:
		return ConsistencyConsistent
	case cov < 50:
		return ConsistencyModerate
	default:
		return ConsistencyVariable
	}
}
