package insights

import "fmt"

// HealthFactor is one scored input. Status is the tier the points came from;
// Detail is the measured value behind it.
type HealthFactor struct {
	Name   string `json:"factor"`
	Status Status `json:"status"`
	Detail string `json:"detail"`
	Points int    `json:"points"`
	Max    int    `json:"maxPoints"`
}

type Health struct {
	Score    int            `json:"score"`
	MaxScore int            `json:"maxScore"`
	Rating   Status         `json:"rating"`
	Factors  []HealthFactor `json:"factors"`
}

// ScoreHealth combines savings rate, income stability, category spread and
// credit card use into a score out of 100.
func ScoreHealth(expenses []Expense, income []Income) Health {
	ov := ComputeOverview(expenses, income)
	factors := []HealthFactor{
		savingsFactor(ov.SavingsRate),
		stabilityFactor(incomeConsistency(income)),
		disciplineFactor(len(categoryTotals(expenses))),
		debtFactor(expenses),
	}
	score := 0
	for _, f := range factors {
		score += f.Points
	}
	return Health{Score: score, MaxScore: 100, Rating: healthRating(score), Factors: factors}
}

func healthRating(score int) Status {
	switch {
	case score >= 85:
		return StatusExcellent
	case score >= 70:
		return StatusGood
	case score >= 50:
		return StatusFair
	default:
		return StatusNeedsImprovement
	}
}

func savingsFactor(rate float64) HealthFactor {
	f := HealthFactor{Name: "Savings Rate", Max: 30, Detail: fmt.Sprintf("%.1f%%", rate)}
	switch {
	case rate >= 20:
		f.Status, f.Points = StatusExcellent, 30
	case rate >= 10:
		f.Status, f.Points = StatusGood, 20
	case rate >= 0:
		f.Status, f.Points = StatusFair, 10
	default:
		f.Status = StatusPoor
	}
	return f
}

// stabilityFactor gives very_consistent and consistent the same 25 points.
func stabilityFactor(c Consistency) HealthFactor {
	f := HealthFactor{Name: "Income Stability", Max: 25, Detail: string(c), Status: StatusFair, Points: 5}
	switch c {
	case ConsistencyVeryConsistent, ConsistencyConsistent:
		f.Status, f.Points = StatusExcellent, 25
	case ConsistencyModerate:
		f.Status, f.Points = StatusGood, 15
	}
	return f
}

func disciplineFactor(categories int) HealthFactor {
	f := HealthFactor{Name: "Spending Discipline", Max: 20, Detail: fmt.Sprintf("%d categories", categories)}
	switch {
	case categories <= 5:
		f.Status, f.Points = StatusExcellent, 20
	case categories <= 7:
		f.Status, f.Points = StatusGood, 15
	default:
		f.Status, f.Points = StatusNeedsImprovement, 5
	}
	return f
}

func debtFactor(expenses []Expense) HealthFactor {
	if hasCreditCard(expenses) {
		return HealthFactor{Name: "Debt Status", Max: 25, Status: StatusNeedsAttention, Detail: "Has credit card debt", Points: 10}
	}
	return HealthFactor{Name: "Debt Status", Max: 25, Status: StatusExcellent, Detail: "No credit card debt", Points: 25}
}

func hasCreditCard(expenses []Expense) bool {
	for _, e := range expenses {
		if e.Category == CategoryCreditCard {
			return true
		}
	}
	return false
}
