package dto

type ExpenseInput struct {
	ID          string  `json:"id,omitempty"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	Description string  `json:"description,omitempty"`
}

type IncomeInput struct {
	ID          string  `json:"id,omitempty"`
	Amount      float64 `json:"amount"`
	Source      string  `json:"source"`
	Date        string  `json:"date"`
	Description string  `json:"description,omitempty"`
	Currency    string  `json:"currency,omitempty"`
}

type ImportExpensesRequest struct {
	Expenses []ExpenseInput `json:"expenses"`
}

type ImportIncomeRequest struct {
	Income []IncomeInput `json:"income"`
}

// ImportResult reports what was stored. Uncategorized counts expense labels
// that matched no known category and were filed under Other.
type ImportResult struct {
	Imported      int      `json:"imported"`
	IDs           []string `json:"ids"`
	Uncategorized int      `json:"uncategorized,omitempty"`
}
