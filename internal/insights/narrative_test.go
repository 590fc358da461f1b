package insights

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicNarrative(t *testing.T) {
	r := Analyze([]Expense{
		exp(CategoryFoodDining, "60", "2024-01-01"),
		exp(CategoryShopping, "25", "2024-01-02"),
		exp(CategoryTransportation, "10", "2024-01-03"),
		exp(CategoryHealthcare, "5", "2024-01-04"),
	}, nil, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))

	text := BasicNarrative(r)
	assert.Contains(t, text, "(Total: $100.00)")
	assert.Contains(t, text, "1. **Food & Dining**: $60.00 (60.0%)")
	assert.Contains(t, text, "cooking at home")
	assert.Contains(t, text, "24-hour rule")
	assert.NotContains(t, text, "Healthcare")
	assert.Contains(t, text, "50/30/20 rule")
}

func TestBasicNarrativeWithoutExpenses(t *testing.T) {
	text := BasicNarrative(Analyze(nil, nil, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)))
	assert.Contains(t, text, "General Recommendations")
	assert.NotContains(t, text, "1. **")
}

func TestNarrativePrompt(t *testing.T) {
	r := Analyze(
		[]Expense{exp(CategoryFoodDining, "60", "2024-01-01"), exp(CategoryCreditCard, "40", "2024-01-02")},
		[]Income{inc(SourceSalary, "1000", "2024-01-01")},
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	)
	prompt := NarrativePrompt(r)
	assert.True(t, strings.HasPrefix(prompt, "You are a financial advisor."))
	assert.Contains(t, prompt, "Savings Rate: 90.0%")
	assert.Contains(t, prompt, "- Food & Dining: $60.00 (60.0%, trend stable)")
	assert.Contains(t, prompt, "[critical] Credit Card: Credit card payments detected")
}
