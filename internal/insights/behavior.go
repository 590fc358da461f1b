package insights

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type DayPattern struct {
	Day          string          `json:"day"`
	Average      decimal.Decimal `json:"averageSpending"`
	Transactions int             `json:"totalTransactions"`
	Total        decimal.Decimal `json:"totalSpent"`
}

type SpendBucket struct {
	Total   decimal.Decimal `json:"total"`
	Average decimal.Decimal `json:"average"`
	Count   int             `json:"count"`
}

type WeekSplit struct {
	Weekday    SpendBucket `json:"weekday"`
	Weekend    SpendBucket `json:"weekend"`
	Preference string      `json:"preference"`
}

type ImpulseBuying struct {
	Count      int             `json:"count"`
	Total      decimal.Decimal `json:"total"`
	Percentage float64         `json:"percentage"`
	Insight    string          `json:"insight"`
}

type LargePurchases struct {
	Count      int             `json:"count"`
	Total      decimal.Decimal `json:"total"`
	Average    decimal.Decimal `json:"average"`
	Categories []Category      `json:"categories"`
}

type Recurring struct {
	Category    Category        `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Frequency   Frequency       `json:"frequency"`
	AvgDays     int             `json:"avgDaysBetween"`
	Occurrences int             `json:"occurrences"`
	Consistency string          `json:"consistency"`
}

type BehaviorPatterns struct {
	DayOfWeek []DayPattern   `json:"dayOfWeekPatterns"`
	Week      WeekSplit      `json:"weekdayVsWeekend"`
	Impulse   ImpulseBuying  `json:"impulseBuying"`
	Large     LargePurchases `json:"largePurchases"`
	Recurring []Recurring    `json:"recurringExpenses"`
}

const (
	minBehaviorExpenses = 10
	impulseCeiling      = 50
	largePurchaseFloor  = 200
	impulseShare        = 0.3
)

// AnalyzeBehavior mines weekday habits, small discretionary purchases,
// large purchases and recurring charges. It returns nil below ten expenses.
func AnalyzeBehavior(expenses []Expense) *BehaviorPatterns {
	if len(expenses) < minBehaviorExpenses {
		return nil
	}
	return &BehaviorPatterns{
		DayOfWeek: dayOfWeek(expenses),
		Week:      weekSplit(expenses),
		Impulse:   impulseBuying(expenses),
		Large:     largePurchases(expenses),
		Recurring: DetectRecurring(expenses),
	}
}

func dayOfWeek(expenses []Expense) []DayPattern {
	groups := groupBy(expenses, func(e Expense) time.Weekday { return e.Date.Weekday() })
	out := make([]DayPattern, 0, len(groups))
	for d := time.Sunday; d <= time.Saturday; d++ {
		txs, ok := groups[d]
		if !ok {
			continue
		}
		sum := total(txs)
		out = append(out, DayPattern{Day: d.String(), Average: avg(sum, len(txs)), Transactions: len(txs), Total: sum})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Average.GreaterThan(out[j].Average) })
	return out
}

func isWeekend(t time.Time) bool {
	d := t.Weekday()
	return d == time.Saturday || d == time.Sunday
}

func bucket(txs []Expense) SpendBucket {
	sum := total(txs)
	return SpendBucket{Total: sum, Average: avg(sum, max(len(txs), 1)), Count: len(txs)}
}

func weekSplit(expenses []Expense) WeekSplit {
	var weekday, weekend []Expense
	for _, e := range expenses {
		if isWeekend(e.Date) {
			weekend = append(weekend, e)
		} else {
			weekday = append(weekday, e)
		}
	}
	s := WeekSplit{Weekday: bucket(weekday), Weekend: bucket(weekend), Preference: "weekday_spender"}
	if s.Weekend.Total.GreaterThan(s.Weekday.Total) {
		s.Preference = "weekend_spender"
	}
	return s
}

func impulseBuying(expenses []Expense) ImpulseBuying {
	ceiling := decimal.NewFromInt(impulseCeiling)
	var small []Expense
	for _, e := range expenses {
		if (e.Category == CategoryShopping || e.Category == CategoryEntertainment) && e.Amount.LessThan(ceiling) {
			small = append(small, e)
		}
	}
	ib := ImpulseBuying{
		Count:      len(small),
		Total:      total(small),
		Percentage: float64(len(small)) / float64(len(expenses)) * 100,
		Insight:    "Impulse buying is under control",
	}
	if float64(len(small)) > float64(len(expenses))*impulseShare {
		ib.Insight = "High frequency of small purchases - consider consolidating shopping trips"
	}
	return ib
}

func largePurchases(expenses []Expense) LargePurchases {
	floor := decimal.NewFromInt(largePurchaseFloor)
	var big []Expense
	cats := []Category{}
	seen := make(map[Category]bool)
	for _, e := range expenses {
		if !e.Amount.GreaterThan(floor) {
			continue
		}
		big = append(big, e)
		if !seen[e.Category] {
			seen[e.Category] = true
			cats = append(cats, e.Category)
		}
	}
	sum := total(big)
	return LargePurchases{Count: len(big), Total: sum, Average: avg(sum, len(big)), Categories: cats}
}

type recurringKey struct {
	category Category
	amount   string
}

// DetectRecurring finds charges of the same category and rounded amount that
// repeat at regular intervals. Regularity is the coefficient of variation of
// the day gaps between occurrences.
func DetectRecurring(expenses []Expense) []Recurring {
	groups := make(map[recurringKey][]Expense)
	var keys []recurringKey
	for _, e := range expenses {
		k := recurringKey{e.Category, e.Amount.Round(0).String()}
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], e)
	}

	out := []Recurring{}
	for _, k := range keys {
		txs := groups[k]
		if len(txs) < 2 {
			continue
		}
		sorted := byDate(txs)
		gaps := make([]float64, 0, len(sorted)-1)
		for i := 1; i < len(sorted); i++ {
			gaps = append(gaps, float64(wholeDays(sorted[i-1].Date, sorted[i].Date)))
		}
		m := mean(gaps)
		if m <= 0 {
			continue
		}
		cov := stdDev(gaps, m) / m
		if cov >= 0.3 || m >= 45 {
			continue
		}
		out = append(out, Recurring{
			Category:    k.category,
			Amount:      txs[0].Amount.Round(0),
			Frequency:   recurrence(m),
			AvgDays:     int(math.Round(m)),
			Occurrences: len(txs),
			Consistency: regularity(cov),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Amount.GreaterThan(out[j].Amount) })
	return out
}

func recurrence(meanGap float64) Frequency {
	switch {
	case meanGap < 10:
		return FrequencyWeekly
	case meanGap < 20:
		return FrequencyBiWeekly
	default:
		return FrequencyMonthly
	}
}

func regularity(cov float64) string {
	switch {
	case cov < 0.1:
		return "very_high"
	case cov < 0.2:
		return "high"
	default:
		return "moderate"
	}
}
