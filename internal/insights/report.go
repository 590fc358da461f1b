package insights

import "time"

// Report bundles every analysis over one snapshot of a user's transactions.
// Sections that need more data than was supplied are nil or report
// Available=false.
type Report struct {
	GeneratedAt      time.Time         `json:"generatedAt"`
	Overview         Overview          `json:"overview"`
	SpendingPatterns *SpendingPatterns `json:"spendingPatterns"`
	IncomeAnalysis   *IncomeAnalysis   `json:"incomeAnalysis"`
	CategoryInsights []CategoryInsight `json:"categoryInsights"`
	Trends           Trends            `json:"trends"`
	Recommendations  []Recommendation  `json:"recommendations"`
	Health           Health            `json:"financialHealth"`
	Budget           *Budget           `json:"budgetSuggestions"`
	Anomalies        AnomalyReport     `json:"anomalies"`
	Velocity         *Velocity         `json:"spendingVelocity"`
	Forecast         Forecast          `json:"forecast"`
	Comparison       Comparison        `json:"comparativeAnalysis"`
	Behavior         *BehaviorPatterns `json:"behaviorPatterns"`
}

// Analyze runs every analysis independently over the full transaction sets.
// The result depends only on its arguments, so now must be supplied by the
// caller rather than read from the wall clock.
func Analyze(expenses []Expense, income []Income, now time.Time) Report {
	return Report{
		GeneratedAt:      now,
		Overview:         ComputeOverview(expenses, income),
		SpendingPatterns: AnalyzeSpendingPatterns(expenses),
		IncomeAnalysis:   AnalyzeIncome(income),
		CategoryInsights: AnalyzeCategories(expenses),
		Trends:           AnalyzeTrends(expenses, income),
		Recommendations:  Recommend(expenses, income),
		Health:           ScoreHealth(expenses, income),
		Budget:           SuggestBudget(expenses, income),
		Anomalies:        DetectAnomalies(expenses),
		Velocity:         SpendingVelocity(expenses, now),
		Forecast:         BuildForecast(expenses, income, now),
		Comparison:       Compare(expenses, income),
		Behavior:         AnalyzeBehavior(expenses),
	}
}
