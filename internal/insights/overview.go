package insights

import "github.com/shopspring/decimal"

type Overview struct {
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	NetSavings    decimal.Decimal `json:"netSavings"`
	SavingsRate   float64         `json:"savingsRate"`
	ExpenseCount  int             `json:"expenseCount"`
	IncomeCount   int             `json:"incomeCount"`
}

// ComputeOverview sums both sides of the ledger. Amounts are taken as given;
// negative values are the caller's concern.
func ComputeOverview(expenses []Expense, income []Income) Overview {
	spent := total(expenses)
	earned := total(income)
	net := earned.Sub(spent)
	return Overview{
		TotalExpenses: spent,
		TotalIncome:   earned,
		NetSavings:    net,
		SavingsRate:   savingsRate(net, earned),
		ExpenseCount:  len(expenses),
		IncomeCount:   len(income),
	}
}

// savingsRate is net as a percentage of income, 0 unless income is positive.
func savingsRate(net, income decimal.Decimal) float64 {
	if !income.IsPositive() {
		return 0
	}
	return percentOf(net, income)
}
