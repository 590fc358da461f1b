package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	c := Compare(
		[]Expense{
			exp(CategoryFoodDining, "30", "2024-01-01"),
			exp(CategoryShopping, "10", "2024-01-02"),
			exp(CategoryBillsUtilities, "60", "2024-01-03"),
		},
		[]Income{inc(SourceSalary, "200", "2024-01-01")},
	)

	require.Len(t, c.Categories, 3)
	bills, food, shopping := c.Categories[0], c.Categories[1], c.Categories[2]
	assert.Equal(t, CategoryBillsUtilities, bills.Category)
	assert.Equal(t, StatusCritical, bills.Status)
	assert.Equal(t, "Significantly overspending - 30.0% above warning threshold", bills.Recommendation)
	assert.Equal(t, StatusCritical, food.Status)
	assert.Equal(t, StatusExcellent, shopping.Status)
	require.NotNil(t, shopping.Benchmark)
	assert.Equal(t, 10.0, shopping.Benchmark.Ideal)

	assert.InDelta(t, 50.0, c.Savings.Rate, 1e-9)
	assert.Equal(t, StatusExcellent, c.Savings.Status)

	assert.Equal(t, 40, c.Overall.Score)
	assert.Equal(t, 60, c.Overall.MaxScore)
	assert.Equal(t, StatusGood, c.Overall.Rating)
}

func TestRateShare(t *testing.T) {
	b := benchmarks[CategoryTransportation]
	tests := []struct {
		pct    float64
		status Status
		text   string
	}{
		{10, StatusExcellent, "Spending is within ideal range"},
		{15, StatusGood, "Spending is acceptable but could be optimized"},
		{18, StatusWarning, "Consider reducing spending - 3.0% above recommended"},
		{20, StatusWarning, "Consider reducing spending - 5.0% above recommended"},
		{26.5, StatusCritical, "Significantly overspending - 6.5% above warning threshold"},
	}
	for _, tt := range tests {
		status, text := rateShare(tt.pct, b)
		assert.Equal(t, tt.status, status, "pct %v", tt.pct)
		assert.Equal(t, tt.text, text, "pct %v", tt.pct)
	}
}

func TestCompareNoBenchmarkAndNegativeSavings(t *testing.T) {
	c := Compare(
		[]Expense{exp(CategoryOther, "500", "2024-01-01")},
		[]Income{inc(SourceSalary, "100", "2024-01-01")},
	)
	require.Len(t, c.Categories, 1)
	assert.Equal(t, StatusNoBenchmark, c.Categories[0].Status)
	assert.Nil(t, c.Categories[0].Benchmark)
	assert.Equal(t, StatusPoor, c.Savings.Status)
	assert.Equal(t, 0, c.Overall.Score)
	assert.Equal(t, StatusNeedsImprovement, c.Overall.Rating)
}

func TestOverallScoreSavingsTiers(t *testing.T) {
	tests := []struct {
		rate float64
		want int
	}{
		{35, 30}, {30, 30}, {25, 25}, {10, 15}, {0, 5}, {-1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, overallScore(nil, tt.rate).Score, "rate %v", tt.rate)
	}
}
