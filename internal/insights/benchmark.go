package insights

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Benchmark holds percentage-of-spend thresholds for a category.
type Benchmark struct {
	Ideal      float64 `json:"ideal"`
	Acceptable float64 `json:"acceptable"`
	Warning    float64 `json:"warning"`
}

var benchmarks = map[Category]Benchmark{
	CategoryFoodDining:     {Ideal: 15, Acceptable: 20, Warning: 25},
	CategoryTransportation: {Ideal: 10, Acceptable: 15, Warning: 20},
	CategoryShopping:       {Ideal: 10, Acceptable: 15, Warning: 20},
	CategoryEntertainment:  {Ideal: 5, Acceptable: 10, Warning: 15},
	CategoryBillsUtilities: {Ideal: 20, Acceptable: 25, Warning: 30},
	CategoryHealthcare:     {Ideal: 5, Acceptable: 10, Warning: 15},
}

type Status string

const (
	StatusExcellent        Status = "excellent"
	StatusGood             Status = "good"
	StatusFair             Status = "fair"
	StatusWarning          Status = "warning"
	StatusCritical         Status = "critical"
	StatusPoor             Status = "poor"
	StatusNoBenchmark      Status = "no_benchmark"
	StatusNeedsImprovement Status = "needs_improvement"
	StatusNeedsAttention   Status = "needs_attention"
)

type CategoryComparison struct {
	Category       Category        `json:"category"`
	Amount         decimal.Decimal `json:"amount"`
	Percentage     float64         `json:"percentage"`
	Status         Status          `json:"status"`
	Benchmark      *Benchmark      `json:"benchmark"`
	Recommendation string          `json:"recommendation"`
}

type SavingsBenchmark struct {
	Excellent float64 `json:"excellent"`
	Good      float64 `json:"good"`
	Fair      float64 `json:"fair"`
	Current   float64 `json:"current"`
}

type SavingsAnalysis struct {
	Rate           float64          `json:"rate"`
	Status         Status           `json:"status"`
	Recommendation string           `json:"recommendation"`
	Benchmark      SavingsBenchmark `json:"benchmarkComparison"`
}

type Score struct {
	Score      int     `json:"score"`
	MaxScore   int     `json:"maxScore"`
	Percentage float64 `json:"percentage"`
	Rating     Status  `json:"rating"`
}

type Comparison struct {
	Categories []CategoryComparison `json:"categoryComparisons"`
	Savings    SavingsAnalysis      `json:"savingsAnalysis"`
	Overall    Score                `json:"overallScore"`
}

// Compare rates each category's share of spend against its benchmark and
// the savings rate against fixed tiers.
func Compare(expenses []Expense, income []Income) Comparison {
	spent := total(expenses)
	totals := categoryTotals(expenses)

	comps := make([]CategoryComparison, 0, len(totals))
	for _, cat := range sortedKeys(totals) {
		amount := totals[cat]
		pct := percentOf(amount, spent)
		c := CategoryComparison{
			Category:       cat,
			Amount:         amount,
			Percentage:     pct,
			Status:         StatusNoBenchmark,
			Recommendation: "No standard benchmark available",
		}
		if b, ok := benchmarks[cat]; ok {
			c.Benchmark = &b
			c.Status, c.Recommendation = rateShare(pct, b)
		}
		comps = append(comps, c)
	}
	sort.SliceStable(comps, func(i, j int) bool { return comps[i].Percentage > comps[j].Percentage })

	rate := savingsRate(total(income).Sub(spent), total(income))
	return Comparison{
		Categories: comps,
		Savings:    savingsAnalysis(rate),
		Overall:    overallScore(comps, rate),
	}
}

func rateShare(pct float64, b Benchmark) (Status, string) {
	switch {
	case pct <= b.Ideal:
		return StatusExcellent, "Spending is within ideal range"
	case pct <= b.Acceptable:
		return StatusGood, "Spending is acceptable but could be optimized"
	case pct <= b.Warning:
		return StatusWarning, fmt.Sprintf("Consider reducing spending - %.1f%% above recommended", pct-b.Acceptable)
	default:
		return StatusCritical, fmt.Sprintf("Significantly overspending - %.1f%% above warning threshold", pct-b.Warning)
	}
}

func savingsAnalysis(rate float64) SavingsAnalysis {
	s := SavingsAnalysis{
		Rate:           rate,
		Status:         StatusPoor,
		Recommendation: "Critical: Aim for at least 10% savings rate",
		Benchmark:      SavingsBenchmark{Excellent: 30, Good: 20, Fair: 10, Current: rate},
	}
	switch {
	case rate >= 30:
		s.Status, s.Recommendation = StatusExcellent, "Outstanding savings rate! Consider investment opportunities"
	case rate >= 20:
		s.Status, s.Recommendation = StatusGood, "Good savings rate, maintain this discipline"
	case rate >= 10:
		s.Status, s.Recommendation = StatusFair, "Adequate savings, try to increase to 20%"
	}
	return s
}

var categoryPoints = map[Status]int{
	StatusExcellent: 10,
	StatusGood:      7,
	StatusWarning:   4,
}

func overallScore(comps []CategoryComparison, rate float64) Score {
	score := 0
	for _, c := range comps {
		score += categoryPoints[c.Status]
	}
	switch {
	case rate >= 30:
		score += 30
	case rate >= 20:
		score += 25
	case rate >= 10:
		score += 15
	case rate >= 0:
		score += 5
	}

	maxScore := len(comps)*10 + 30
	ratio := float64(score) / float64(maxScore)
	rating := StatusNeedsImprovement
	switch {
	case ratio >= 0.8:
		rating = StatusExcellent
	case ratio >= 0.6:
		rating = StatusGood
	case ratio >= 0.4:
		rating = StatusFair
	}
	return Score{Score: score, MaxScore: maxScore, Percentage: ratio * 100, Rating: rating}
}
