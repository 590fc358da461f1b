package insights

import (
	"math"

	"github.com/shopspring/decimal"
)

type SavingsTrend string

const (
	SavingsImproving        SavingsTrend = "improving"
	SavingsDeclining        SavingsTrend = "declining"
	SavingsStable           SavingsTrend = "stable"
	SavingsNewData          SavingsTrend = "new_data"
	SavingsInsufficientData SavingsTrend = "insufficient_data"
)

type MonthSummary struct {
	Month       string          `json:"month"`
	Expenses    decimal.Decimal `json:"expenses"`
	Income      decimal.Decimal `json:"income"`
	Savings     decimal.Decimal `json:"savings"`
	SavingsRate float64         `json:"savingsRate"`
}

type Trends struct {
	MonthlyData []MonthSummary `json:"monthlyData"`
	Trend       SavingsTrend   `json:"trend"`
	BestMonth   *MonthSummary  `json:"bestMonth"`
	WorstMonth  *MonthSummary  `json:"worstMonth"`
}

// recentWindow is how many trailing months count as "recent" for both the
// savings trend and the forecast.
const recentWindow = 3

// AnalyzeTrends builds the month-by-month ledger over every month that has
// either an expense or an income record.
func AnalyzeTrends(expenses []Expense, income []Income) Trends {
	spent := groupByMonth(expenses)
	earned := groupByMonth(income)

	all := make(map[MonthKey]struct{}, len(spent)+len(earned))
	for k := range spent {
		all[k] = struct{}{}
	}
	for k := range earned {
		all[k] = struct{}{}
	}

	months := sortedMonths(all)
	data := make([]MonthSummary, 0, len(months))
	for _, m := range months {
		out := total(spent[m])
		in := total(earned[m])
		net := in.Sub(out)
		data = append(data, MonthSummary{
			Month:       m.String(),
			Expenses:    out,
			Income:      in,
			Savings:     net,
			SavingsRate: savingsRate(net, in),
		})
	}

	t := Trends{MonthlyData: data, Trend: savingsTrend(data)}
	if len(data) > 0 {
		best, worst := data[0], data[0]
		for _, d := range data[1:] {
			if d.Savings.GreaterThan(best.Savings) {
				best = d
			}
			if d.Savings.LessThan(worst.Savings) {
				worst = d
			}
		}
		t.BestMonth, t.WorstMonth = &best, &worst
	}
	return t
}

func savingsTrend(data []MonthSummary) SavingsTrend {
	if len(data) < 2 {
		return SavingsInsufficientData
	}
	split := len(data) - recentWindow
	if split <= 0 {
		return SavingsNewData
	}
	recent := meanSavings(data[split:])
	older := meanSavings(data[:split])

	var change float64
	if older != 0 {
		change = (recent - older) / math.Abs(older) * 100
	}
	switch {
	case change > 15:
		return SavingsImproving
	case change < -15:
		return SavingsDeclining
	default:
		return SavingsStable
	}
}

func meanSavings(data []MonthSummary) float64 {
	xs := make([]float64, len(data))
	for i, d := range data {
		xs[i] = d.Savings.InexactFloat64()
	}
	return mean(xs)
}
