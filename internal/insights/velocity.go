package insights

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type VelocityTrend string

const (
	VelocityAccelerating VelocityTrend = "accelerating"
	VelocityDecelerating VelocityTrend = "decelerating"
	VelocityStable       VelocityTrend = "stable"
)

type Rates struct {
	Daily   decimal.Decimal `json:"daily"`
	Weekly  decimal.Decimal `json:"weekly"`
	Monthly decimal.Decimal `json:"monthly"`
}

type OverallVelocity struct {
	Rates
	RecentDaily  decimal.Decimal `json:"recentDailyAverage"`
	Acceleration float64         `json:"acceleration"`
	Trend        VelocityTrend   `json:"trend"`
}

type CategoryVelocity struct {
	Rates
	Category  Category `json:"category"`
	Frequency float64  `json:"transactionFrequency"`
}

type BurnRate struct {
	Daily            decimal.Decimal `json:"daily"`
	DaysUntil1000    float64         `json:"daysUntil1000"`
	ProjectedMonthly decimal.Decimal `json:"projectedMonthly"`
}

type Velocity struct {
	Overall    OverallVelocity    `json:"overall"`
	ByCategory []CategoryVelocity `json:"byCategory"`
	BurnRate   BurnRate           `json:"burnRate"`
}

const recentDays = 7

var (
	seven    = decimal.NewFromInt(7)
	thirty   = decimal.NewFromInt(30)
	thousand = decimal.NewFromInt(1000)
)

func ratesOver(sum decimal.Decimal, span int) Rates {
	daily := sum.Div(decimal.NewFromInt(int64(span)))
	return Rates{Daily: daily, Weekly: daily.Mul(seven), Monthly: daily.Mul(thirty)}
}

// SpendingVelocity measures burn rate over the span of the data and compares
// the last week before now against it. It returns nil for fewer than two expenses.
func SpendingVelocity(expenses []Expense, now time.Time) *Velocity {
	if len(expenses) < 2 {
		return nil
	}
	sorted := byDate(expenses)
	span := wholeDays(sorted[0].Date, sorted[len(sorted)-1].Date)
	if span < 1 {
		span = 1
	}

	overall := ratesOver(total(expenses), span)

	recent := decimal.Zero
	for _, e := range expenses {
		if wholeDays(e.Date, now) <= recentDays {
			recent = recent.Add(e.Amount)
		}
	}
	recentDaily := recent.Div(seven)
	accel := changePercent(overall.Daily.InexactFloat64(), recentDaily.InexactFloat64())

	trend := VelocityStable
	switch {
	case accel > 10:
		trend = VelocityAccelerating
	case accel < -10:
		trend = VelocityDecelerating
	}

	byCat := make([]CategoryVelocity, 0)
	groups := groupBy(expenses, func(e Expense) Category { return e.Category })
	for _, cat := range sortedKeys(groups) {
		txs := groups[cat]
		byCat = append(byCat, CategoryVelocity{
			Category:  cat,
			Rates:     ratesOver(total(txs), span),
			Frequency: float64(len(txs)) / float64(span),
		})
	}
	sort.SliceStable(byCat, func(i, j int) bool { return byCat[i].Daily.GreaterThan(byCat[j].Daily) })

	var untilThousand float64
	if overall.Daily.IsPositive() {
		untilThousand = thousand.Div(overall.Daily).InexactFloat64()
	}

	return &Velocity{
		Overall: OverallVelocity{
			Rates:        overall,
			RecentDaily:  recentDaily,
			Acceleration: accel,
			Trend:        trend,
		},
		ByCategory: byCat,
		BurnRate: BurnRate{
			Daily:            overall.Daily,
			DaysUntil1000:    untilThousand,
			ProjectedMonthly: overall.Monthly,
		},
	}
}
