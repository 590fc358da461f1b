package insights

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

func (p Priority) rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	default:
		return 3
	}
}

// OverallScope is the Scope of recommendations that concern the whole
// budget rather than one category.
const OverallScope = "Overall"

type Recommendation struct {
	ID               uuid.UUID       `json:"id"`
	Priority         Priority        `json:"priority"`
	Scope            string          `json:"category"`
	Issue            string          `json:"issue"`
	Suggestion       string          `json:"suggestion"`
	PotentialSavings decimal.Decimal `json:"potentialSavings"`
}

// recommendationSpace namespaces the name-based recommendation IDs.
var recommendationSpace = uuid.MustParse("6f1d7c52-3b0e-4c55-9a57-2f8d1e4b9a10")

type spendRule struct {
	threshold float64
	priority  Priority
	issue     string
	advice    string
	share     decimal.Decimal
}

var spendRules = map[Category]spendRule{
	CategoryFoodDining: {
		threshold: 20,
		priority:  PriorityHigh,
		issue:     "%.1f%% of spending on food & dining",
		advice:    "Reduce dining out by 50% through meal planning",
		share:     decimal.RequireFromString("0.3"),
	},
	CategoryShopping: {
		threshold: 15,
		priority:  PriorityHigh,
		issue:     "%.1f%% on shopping",
		advice:    "Implement 48-hour rule before non-essential purchases",
		share:     decimal.RequireFromString("0.25"),
	},
	CategoryEntertainment: {
		threshold: 12,
		priority:  PriorityMedium,
		issue:     "%.1f%% on entertainment",
		advice:    "Explore free community events and streaming alternatives",
		share:     decimal.RequireFromString("0.4"),
	},
}

var (
	creditCardShare = decimal.RequireFromString("0.15")
	savingsTarget   = decimal.RequireFromString("0.2")
)

// Recommend emits rule-based suggestions, most urgent first.
func Recommend(expenses []Expense, income []Income) []Recommendation {
	spent := total(expenses)
	earned := total(income)
	totals := categoryTotals(expenses)

	out := []Recommendation{}
	for _, cat := range sortedKeys(totals) {
		amount := totals[cat]
		pct := percentOf(amount, spent)
		if r, ok := spendRules[cat]; ok && pct > r.threshold {
			out = append(out, newRecommendation(r.priority, string(cat),
				fmt.Sprintf(r.issue, pct), r.advice, amount.Mul(r.share)))
		}
		// any Credit Card record counts, even when refunds net it to zero
		if cat == CategoryCreditCard {
			out = append(out, newRecommendation(PriorityCritical, string(cat),
				"Credit card payments detected", "Prioritize paying off high-interest debt",
				decimal.Max(decimal.Zero, amount.Mul(creditCardShare))))
		}
	}

	net := earned.Sub(spent)
	if rate := savingsRate(net, earned); rate < 10 {
		out = append(out, newRecommendation(PriorityCritical, OverallScope,
			fmt.Sprintf("Only %.1f%% savings rate", rate),
			"Aim for at least 20% savings rate - review all categories",
			earned.Mul(savingsTarget).Sub(net)))
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority.rank() < out[j].Priority.rank() })
	return out
}

func newRecommendation(p Priority, scope, issue, suggestion string, savings decimal.Decimal) Recommendation {
	return Recommendation{
		ID:               uuid.NewSHA1(recommendationSpace, []byte(scope+"\x00"+issue)),
		Priority:         p,
		Scope:            scope,
		Issue:            issue,
		Suggestion:       suggestion,
		PotentialSavings: savings,
	}
}

type Buckets struct {
	Needs   decimal.Decimal `json:"needs"`
	Wants   decimal.Decimal `json:"wants"`
	Savings decimal.Decimal `json:"savings"`
}

// Budget compares actual spending with the 50/30/20 split of income.
// A positive Adjustments.Savings is a savings shortfall.
type Budget struct {
	Recommended Buckets `json:"recommended"`
	Current     Buckets `json:"current"`
	Adjustments Buckets `json:"adjustments"`
}

var (
	needsCategories = []Category{CategoryBillsUtilities, CategoryHealthcare, CategoryTransportation}
	wantsCategories = []Category{CategoryFoodDining, CategoryShopping, CategoryEntertainment}
)

// SuggestBudget returns nil when there is no income to split.
func SuggestBudget(expenses []Expense, income []Income) *Budget {
	earned := total(income)
	if earned.IsZero() {
		return nil
	}
	totals := categoryTotals(expenses)
	sumOf := func(cats []Category) decimal.Decimal {
		s := decimal.Zero
		for _, c := range cats {
			s = s.Add(totals[c])
		}
		return s
	}

	rec := Buckets{
		Needs:   earned.Mul(decimal.RequireFromString("0.5")),
		Wants:   earned.Mul(decimal.RequireFromString("0.3")),
		Savings: earned.Mul(savingsTarget),
	}
	cur := Buckets{
		Needs:   sumOf(needsCategories),
		Wants:   sumOf(wantsCategories),
		Savings: earned.Sub(total(expenses)),
	}
	return &Budget{
		Recommended: rec,
		Current:     cur,
		Adjustments: Buckets{
			Needs:   rec.Needs.Sub(cur.Needs),
			Wants:   rec.Wants.Sub(cur.Wants),
			Savings: rec.Savings.Sub(cur.Savings),
		},
	}
}
