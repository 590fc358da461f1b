package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend(t *testing.T) {
	expenses := []Expense{
		exp(CategoryFoodDining, "50", "2024-01-01"),
		exp(CategoryShopping, "20", "2024-01-02"),
		exp(CategoryEntertainment, "15", "2024-01-03"),
		exp(CategoryCreditCard, "15", "2024-01-04"),
	}
	income := []Income{inc(SourceSalary, "105", "2024-01-01")}

	recs := Recommend(expenses, income)
	require.Len(t, recs, 5)

	assert.Equal(t, PriorityCritical, recs[0].Priority)
	assert.Equal(t, string(CategoryCreditCard), recs[0].Scope)
	assertDecimal(t, "2.25", recs[0].PotentialSavings)

	assert.Equal(t, PriorityCritical, recs[1].Priority)
	assert.Equal(t, OverallScope, recs[1].Scope)
	assert.Equal(t, "Only 4.8% savings rate", recs[1].Issue)
	assertDecimal(t, "16", recs[1].PotentialSavings)

	assert.Equal(t, PriorityHigh, recs[2].Priority)
	assert.Equal(t, "50.0% of spending on food & dining", recs[2].Issue)
	assertDecimal(t, "15", recs[2].PotentialSavings)

	assert.Equal(t, PriorityHigh, recs[3].Priority)
	assertDecimal(t, "5", recs[3].PotentialSavings)

	assert.Equal(t, PriorityMedium, recs[4].Priority)
	assertDecimal(t, "6", recs[4].PotentialSavings)

	again := Recommend(expenses, income)
	for i := range recs {
		assert.Equal(t, recs[i].ID, again[i].ID)
	}
	assert.NotEqual(t, recs[0].ID, recs[1].ID)
}

func TestRecommendHealthyBudget(t *testing.T) {
	recs := Recommend(
		[]Expense{exp(CategoryBillsUtilities, "500", "2024-01-01"), exp(CategoryFoodDining, "100", "2024-01-02")},
		[]Income{inc(SourceSalary, "2000", "2024-01-01")},
	)
	assert.Empty(t, recs)
	assert.NotNil(t, recs)
}

func TestRecommendCreditCardRegardlessOfAmount(t *testing.T) {
	recs := Recommend(
		[]Expense{
			exp(CategoryBillsUtilities, "500", "2024-01-01"),
			exp(CategoryCreditCard, "50", "2024-01-02"),
			exp(CategoryCreditCard, "-50", "2024-01-03"),
		},
		[]Income{inc(SourceSalary, "2000", "2024-01-01")},
	)
	require.Len(t, recs, 1)
	assert.Equal(t, PriorityCritical, recs[0].Priority)
	assert.Equal(t, string(CategoryCreditCard), recs[0].Scope)
	assert.True(t, recs[0].PotentialSavings.IsZero())
}

func TestSuggestBudget(t *testing.T) {
	assert.Nil(t, SuggestBudget([]Expense{exp(CategoryFoodDining, "10", "2024-01-01")}, nil))

	b := SuggestBudget(
		[]Expense{
			exp(CategoryBillsUtilities, "300", "2024-01-01"),
			exp(CategoryHealthcare, "50", "2024-01-02"),
			exp(CategoryFoodDining, "200", "2024-01-03"),
			exp(CategoryOther, "100", "2024-01-04"),
		},
		[]Income{inc(SourceSalary, "1000", "2024-01-01")},
	)
	require.NotNil(t, b)
	assertDecimal(t, "500", b.Recommended.Needs)
	assertDecimal(t, "300", b.Recommended.Wants)
	assertDecimal(t, "200", b.Recommended.Savings)
	assertDecimal(t, "350", b.Current.Needs)
	assertDecimal(t, "200", b.Current.Wants)
	assertDecimal(t, "350", b.Current.Savings)
	assertDecimal(t, "150", b.Adjustments.Needs)
	assertDecimal(t, "100", b.Adjustments.Wants)
	assertDecimal(t, "-150", b.Adjustments.Savings)
}
