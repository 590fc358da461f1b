package models

import (
	"time"
)

// Expense is an outgoing transaction as stored under users/{uid}/expenses.
type Expense struct {
	ExpenseID   string    `firestore:"expenseId" json:"expenseId"`
	Amount      float64   `firestore:"amount" json:"amount"`
	Category    string    `firestore:"category" json:"category"`
	Date        string    `firestore:"date" json:"date"` // YYYY-MM-DD
	Description string    `firestore:"description" json:"description,omitempty"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// Income is an incoming transaction as stored under users/{uid}/income.
type Income struct {
	IncomeID    string    `firestore:"incomeId" json:"incomeId"`
	Amount      float64   `firestore:"amount" json:"amount"`
	Source      string    `firestore:"source" json:"source"`
	Date        string    `firestore:"date" json:"date"` // YYYY-MM-DD
	Description string    `firestore:"description" json:"description,omitempty"`
	Currency    string    `firestore:"currency" json:"currency,omitempty"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt" json:"updatedAt"`
}
