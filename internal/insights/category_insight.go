package insights

import (
	"sort"

	"github.com/shopspring/decimal"
)

type Frequency string

const (
	FrequencyDaily      Frequency = "daily"
	FrequencyWeekly     Frequency = "weekly"
	FrequencyBiWeekly   Frequency = "bi-weekly"
	FrequencyMonthly    Frequency = "monthly"
	FrequencyOccasional Frequency = "occasional"
)

type CategoryInsight struct {
	Category  Category        `json:"category"`
	Total     decimal.Decimal `json:"total"`
	Count     int             `json:"count"`
	Average   decimal.Decimal `json:"average"`
	Max       decimal.Decimal `json:"max"`
	Min       decimal.Decimal `json:"min"`
	Frequency Frequency       `json:"frequency"`
	Insights  []string        `json:"insights"`
}

const genericCategoryInsight = "Monitor this category for optimization opportunities"

// AnalyzeCategories describes each expense category with its purchase
// cadence and category-specific advice, largest total first.
func AnalyzeCategories(expenses []Expense) []CategoryInsight {
	groups := groupBy(expenses, func(e Expense) Category { return e.Category })
	out := make([]CategoryInsight, 0, len(groups))
	for _, cat := range sortedKeys(groups) {
		txs := groups[cat]
		sum := total(txs)
		average := avg(sum, len(txs))
		lo, hi := bounds(txs)
		out = append(out, CategoryInsight{
			Category:  cat,
			Total:     sum,
			Count:     len(txs),
			Average:   average,
			Max:       hi,
			Min:       lo,
			Frequency: purchaseFrequency(txs),
			Insights:  categoryAdvice(cat, sum, len(txs), average),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total.GreaterThan(out[j].Total) })
	return out
}

func purchaseFrequency(txs []Expense) Frequency {
	if len(txs) < 2 {
		return FrequencyOccasional
	}
	sorted := byDate(txs)
	gaps := make([]float64, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		gaps = append(gaps, float64(wholeDays(sorted[i-1].Date, sorted[i].Date)))
	}
	switch g := mean(gaps); {
	case g < 3:
		return FrequencyDaily
	case g < 10:
		return FrequencyWeekly
	case g < 35:
		return FrequencyMonthly
	default:
		return FrequencyOccasional
	}
}

func categoryAdvice(cat Category, sum decimal.Decimal, count int, average decimal.Decimal) []string {
	var out []string
	switch cat {
	case CategoryFoodDining:
		if average.GreaterThan(decimal.NewFromInt(30)) {
			out = append(out, "High average per meal - consider cooking at home more")
		}
		if count > 20 {
			out = append(out, "Frequent dining out - meal prep could save money")
		}
	case CategoryShopping:
		if average.GreaterThan(decimal.NewFromInt(50)) {
			out = append(out, "Large shopping transactions - review necessity of purchases")
		}
		if count > 15 {
			out = append(out, "Frequent shopping - implement a waiting period before purchases")
		}
	case CategoryEntertainment:
		if sum.GreaterThan(decimal.NewFromInt(200)) {
			out = append(out, "High entertainment spending - explore free alternatives")
		}
	case CategoryTransportation:
		if average.GreaterThan(decimal.NewFromInt(40)) {
			out = append(out, "High transportation costs - consider carpooling or public transit")
		}
	case CategoryCreditCard:
		out = append(out, "Focus on paying down credit card debt to reduce interest charges")
	}
	if len(out) == 0 {
		return []string{genericCategoryInsight}
	}
	return out
}
