package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeOverview(t *testing.T) {
	t.Run("net savings and rate", func(t *testing.T) {
		ov := ComputeOverview(
			[]Expense{exp(CategoryFoodDining, "120.50", "2024-01-03"), exp(CategoryShopping, "79.50", "2024-01-04")},
			[]Income{inc(SourceSalary, "1000", "2024-01-01")},
		)
		assertDecimal(t, "200", ov.TotalExpenses)
		assertDecimal(t, "1000", ov.TotalIncome)
		assertDecimal(t, "800", ov.NetSavings)
		assert.InDelta(t, 80.0, ov.SavingsRate, 1e-9)
		assert.Equal(t, 2, ov.ExpenseCount)
		assert.Equal(t, 1, ov.IncomeCount)
	})

	t.Run("no income gives zero rate", func(t *testing.T) {
		ov := ComputeOverview([]Expense{exp(CategoryFoodDining, "50", "2024-01-03")}, nil)
		assertDecimal(t, "-50", ov.NetSavings)
		assert.Zero(t, ov.SavingsRate)
	})

	t.Run("empty", func(t *testing.T) {
		ov := ComputeOverview(nil, nil)
		assert.True(t, ov.TotalExpenses.IsZero())
		assert.Zero(t, ov.SavingsRate)
	})
}
