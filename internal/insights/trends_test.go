package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeTrends(t *testing.T) {
	t.Run("no data", func(t *testing.T) {
		tr := AnalyzeTrends(nil, nil)
		assert.Empty(t, tr.MonthlyData)
		assert.Equal(t, SavingsInsufficientData, tr.Trend)
		assert.Nil(t, tr.BestMonth)
	})

	t.Run("recent months only", func(t *testing.T) {
		tr := AnalyzeTrends(
			[]Expense{exp(CategoryFoodDining, "100", "2024-01-10")},
			[]Income{inc(SourceSalary, "500", "2024-02-01")},
		)
		require.Len(t, tr.MonthlyData, 2)
		assert.Equal(t, "2024-01", tr.MonthlyData[0].Month)
		assertDecimal(t, "-100", tr.MonthlyData[0].Savings)
		assert.Zero(t, tr.MonthlyData[0].SavingsRate)
		assert.Equal(t, SavingsNewData, tr.Trend)
	})

	t.Run("improving", func(t *testing.T) {
		var income []Income
		for _, d := range []string{"2023-11-01", "2023-12-01", "2024-01-01", "2024-02-01", "2024-03-01"} {
			income = append(income, inc(SourceSalary, "1000", d))
		}
		expenses := []Expense{
			exp(CategoryFoodDining, "900", "2023-11-05"),
			exp(CategoryFoodDining, "900", "2023-12-05"),
			exp(CategoryFoodDining, "800", "2024-01-05"),
			exp(CategoryFoodDining, "800", "2024-02-05"),
			exp(CategoryFoodDining, "500", "2024-03-05"),
		}
		tr := AnalyzeTrends(expenses, income)
		require.Len(t, tr.MonthlyData, 5)
		assert.Equal(t, SavingsImproving, tr.Trend)
		require.NotNil(t, tr.BestMonth)
		assert.Equal(t, "2024-03", tr.BestMonth.Month)
		assert.Equal(t, "2023-11", tr.WorstMonth.Month)
	})

	t.Run("declining", func(t *testing.T) {
		var income []Income
		for _, d := range []string{"2024-01-01", "2024-02-01", "2024-03-01", "2024-04-01"} {
			income = append(income, inc(SourceSalary, "1000", d))
		}
		expenses := []Expense{
			exp(CategoryFoodDining, "200", "2024-01-05"),
			exp(CategoryFoodDining, "900", "2024-02-05"),
			exp(CategoryFoodDining, "900", "2024-03-05"),
			exp(CategoryFoodDining, "900", "2024-04-05"),
		}
		assert.Equal(t, SavingsDeclining, AnalyzeTrends(expenses, income).Trend)
	})
}
