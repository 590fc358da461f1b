package insights

import (
	"fmt"
	"strings"
)

const narrativeTopCategories = 3

// BasicNarrative renders a markdown summary of the largest spending
// categories with a tip for each. It is used when no language model is
// available.
func BasicNarrative(r Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Spending Analysis** (Total: %s)\n\n", money(r.Overview.TotalExpenses))
	b.WriteString("**Top Spending Categories:**\n\n")

	for i, c := range topCategories(r) {
		fmt.Fprintf(&b, "%d. **%s**: %s (%.1f%%)\n", i+1, c.Key, money(c.Total), c.Percentage)
		fmt.Fprintf(&b, "   Tip: %s\n\n", categoryTip(Category(c.Key), c.Percentage))
	}

	b.WriteString("\n**General Recommendations:**\n")
	b.WriteString("- Set a budget for each category and track progress\n")
	b.WriteString("- Look for subscription services you can cancel\n")
	b.WriteString("- Use the 50/30/20 rule: 50% needs, 30% wants, 20% savings\n\n")
	b.WriteString("_These are rule-based recommendations generated without AI assistance._")
	return b.String()
}

func topCategories(r Report) []GroupStat {
	if r.SpendingPatterns == nil {
		return nil
	}
	cats := r.SpendingPatterns.CategoryBreakdown
	if len(cats) > narrativeTopCategories {
		cats = cats[:narrativeTopCategories]
	}
	return cats
}

func categoryTip(cat Category, pct float64) string {
	switch {
	case cat == CategoryFoodDining && pct > 20:
		return "Consider meal planning and cooking at home to reduce dining expenses."
	case cat == CategoryShopping && pct > 15:
		return "Try the 24-hour rule: wait a day before making non-essential purchases."
	case cat == CategoryEntertainment && pct > 10:
		return "Look for free or low-cost entertainment alternatives."
	case cat == CategoryTransportation && pct > 15:
		return "Consider carpooling, public transit, or combining trips to save on fuel."
	default:
		return "Review this category for potential savings opportunities."
	}
}

// NarrativePrompt asks a language model for advice grounded in the report.
func NarrativePrompt(r Report) string {
	var b strings.Builder
	b.WriteString("You are a financial advisor. Analyze the following spending and provide specific, ")
	b.WriteString("actionable recommendations to reduce spending.\n\n")
	fmt.Fprintf(&b, "Total Spending: %s\n", money(r.Overview.TotalExpenses))
	fmt.Fprintf(&b, "Total Income: %s\n", money(r.Overview.TotalIncome))
	fmt.Fprintf(&b, "Savings Rate: %.1f%%\n", r.Overview.SavingsRate)
	fmt.Fprintf(&b, "Financial Health Score: %d/%d (%s)\n\n", r.Health.Score, r.Health.MaxScore, r.Health.Rating)

	if r.SpendingPatterns != nil {
		b.WriteString("Expenses by Category:\n")
		for _, c := range r.SpendingPatterns.CategoryBreakdown {
			fmt.Fprintf(&b, "- %s: %s (%.1f%%, trend %s)\n", c.Key, money(c.Total), c.Percentage, c.Trend)
		}
		b.WriteString("\n")
	}
	if len(r.Anomalies.Anomalies) > 0 {
		fmt.Fprintf(&b, "Anomalies: %s\n\n", r.Anomalies.Summary)
	}
	if len(r.Recommendations) > 0 {
		b.WriteString("Rule-based findings:\n")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(&b, "- [%s] %s: %s\n", rec.Priority, rec.Scope, rec.Issue)
		}
		b.WriteString("\n")
	}

	b.WriteString("Please provide:\n")
	b.WriteString("1. Top 3 categories where spending can be reduced\n")
	b.WriteString("2. Specific actionable tips for each category\n")
	b.WriteString("3. Estimated monthly savings if recommendations are followed\n")
	b.WriteString("4. Any patterns or concerns you notice\n\n")
	b.WriteString("Keep your response concise and practical.")
	return b.String()
}
