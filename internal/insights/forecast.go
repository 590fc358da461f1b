package insights

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

type Outlook string

const (
	OutlookPositive   Outlook = "positive"
	OutlookConcerning Outlook = "concerning"
)

type Projection struct {
	Month       string          `json:"month,omitempty"`
	Expense     decimal.Decimal `json:"expense"`
	Income      decimal.Decimal `json:"income"`
	Savings     decimal.Decimal `json:"savings"`
	SavingsRate float64         `json:"savingsRate"`
}

type CategoryForecast struct {
	Category         Category        `json:"category"`
	ProjectedMonthly decimal.Decimal `json:"projectedMonthly"`
	Confidence       Confidence      `json:"confidence"`
}

type ForecastTrends struct {
	Expense Trend   `json:"expenseTrend"`
	Income  Trend   `json:"incomeTrend"`
	Outlook Outlook `json:"outlook"`
}

// Forecast is only populated when Available is true; otherwise Reason says why.
type Forecast struct {
	Available  bool               `json:"available"`
	Reason     string             `json:"reason,omitempty"`
	NextMonth  *Projection        `json:"nextMonth,omitempty"`
	Next3      []Projection       `json:"next3Months,omitempty"`
	Categories []CategoryForecast `json:"categoryForecasts,omitempty"`
	Trends     *ForecastTrends    `json:"trends,omitempty"`
}

const (
	minForecastExpenses = 5
	minForecastIncome   = 2
	forecastHorizon     = 3
)

// BuildForecast extrapolates the last recentWindow expense months with a
// least-squares slope. Month labels count forward from now.
func BuildForecast(expenses []Expense, income []Income, now time.Time) Forecast {
	if len(expenses) < minForecastExpenses || len(income) < minForecastIncome {
		return Forecast{Reason: "Insufficient historical data for forecasting"}
	}
	spent := groupByMonth(expenses)
	months := sortedMonths(spent)
	if len(months) < recentWindow {
		return Forecast{Reason: "Need at least 3 months of data"}
	}
	recent := months[len(months)-recentWindow:]
	earned := groupByMonth(income)

	var outSeries, inSeries []float64
	outSum, inSum := decimal.Zero, decimal.Zero
	for _, m := range recent {
		o, i := total(spent[m]), total(earned[m])
		outSum, inSum = outSum.Add(o), inSum.Add(i)
		outSeries = append(outSeries, o.InexactFloat64())
		inSeries = append(inSeries, i.InexactFloat64())
	}
	outAvg := avg(outSum, len(recent))
	inAvg := avg(inSum, len(recent))
	outSlope := trendSlope(outSeries)
	inSlope := trendSlope(inSeries)

	project := func(step int) Projection {
		e := outAvg.Add(decimal.NewFromFloat(outSlope * float64(step)))
		in := inAvg.Add(decimal.NewFromFloat(inSlope * float64(step)))
		net := in.Sub(e)
		return Projection{Expense: e, Income: in, Savings: net, SavingsRate: savingsRate(net, in)}
	}

	next := project(1)
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	ahead := make([]Projection, 0, forecastHorizon)
	for i := 1; i <= forecastHorizon; i++ {
		p := project(i)
		p.Month = start.AddDate(0, i, 0).Format("Jan 2006")
		ahead = append(ahead, p)
	}

	outlook := OutlookConcerning
	if next.Savings.IsPositive() {
		outlook = OutlookPositive
	}

	return Forecast{
		Available:  true,
		NextMonth:  &next,
		Next3:      ahead,
		Categories: categoryForecasts(expenses, recent),
		Trends: &ForecastTrends{
			Expense: slopeTrend(outSlope),
			Income:  slopeTrend(inSlope),
			Outlook: outlook,
		},
	}
}

func categoryForecasts(expenses []Expense, window []MonthKey) []CategoryForecast {
	groups := groupBy(expenses, func(e Expense) Category { return e.Category })
	out := make([]CategoryForecast, 0, len(groups))
	for _, cat := range sortedKeys(groups) {
		txs := groups[cat]
		monthly := groupByMonth(txs)
		sum := decimal.Zero
		for _, m := range window {
			sum = sum.Add(total(monthly[m]))
		}
		conf := ConfidenceLow
		switch {
		case len(txs) >= 10:
			conf = ConfidenceHigh
		case len(txs) >= 5:
			conf = ConfidenceMedium
		}
		out = append(out, CategoryForecast{Category: cat, ProjectedMonthly: avg(sum, len(window)), Confidence: conf})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ProjectedMonthly.GreaterThan(out[j].ProjectedMonthly) })
	return out
}

// slopeTrend is binary in practice: only an exactly flat series is stable.
func slopeTrend(slope float64) Trend {
	switch {
	case slope > 0:
		return TrendIncreasing
	case slope < 0:
		return TrendDecreasing
	default:
		return TrendStable
	}
}
