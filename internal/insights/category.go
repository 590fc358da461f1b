package insights

import (
	"strings"

	"golang.org/x/text/cases"
)

// Category is the closed set of expense categories the engine knows about.
// Labels that do not match one of them are analysed as CategoryOther.
type Category string

const (
	CategoryFoodDining     Category = "Food & Dining"
	CategoryShopping       Category = "Shopping"
	CategoryEntertainment  Category = "Entertainment"
	CategoryTransportation Category = "Transportation"
	CategoryBillsUtilities Category = "Bills & Utilities"
	CategoryHealthcare     Category = "Healthcare"
	CategoryCreditCard     Category = "Credit Card"
	CategoryOther          Category = "Other"
)

// Source is the closed set of income sources.
type Source string

const (
	SourceSalary     Source = "Salary"
	SourceFreelance  Source = "Freelance"
	SourceInvestment Source = "Investment"
	SourceGift       Source = "Gift"
	SourceBonus      Source = "Bonus"
	SourceOther      Source = "Other"
)

var categoryLabels = map[string]Category{
	"food & dining":       CategoryFoodDining,
	"food and dining":     CategoryFoodDining,
	"food":                CategoryFoodDining,
	"dining":              CategoryFoodDining,
	"shopping":            CategoryShopping,
	"entertainment":       CategoryEntertainment,
	"transportation":      CategoryTransportation,
	"transport":           CategoryTransportation,
	"bills & utilities":   CategoryBillsUtilities,
	"bills and utilities": CategoryBillsUtilities,
	"bills":               CategoryBillsUtilities,
	"utilities":           CategoryBillsUtilities,
	"healthcare":          CategoryHealthcare,
	"health":              CategoryHealthcare,
	"credit card":         CategoryCreditCard,
	"credit":              CategoryCreditCard,
	"other":               CategoryOther,
}

var sourceLabels = map[string]Source{
	"salary":     SourceSalary,
	"freelance":  SourceFreelance,
	"investment": SourceInvestment,
	"gift":       SourceGift,
	"bonus":      SourceBonus,
	"other":      SourceOther,
}

// ParseCategory maps a free-form label onto a Category, ignoring case and
// surrounding or repeated whitespace.
func ParseCategory(label string) Category {
	if c, ok := categoryLabels[foldLabel(label)]; ok {
		return c
	}
	return CategoryOther
}

// ParseSource maps a free-form income label onto a Source.
func ParseSource(label string) Source {
	if s, ok := sourceLabels[foldLabel(label)]; ok {
		return s
	}
	return SourceOther
}

func foldLabel(label string) string {
	// Casers carry state, so one is built per call.
	return cases.Fold().String(strings.Join(strings.Fields(label), " "))
}

// Known reports whether c is one of the named categories rather than the fallback.
func (c Category) Known() bool {
	return c != CategoryOther && ParseCategory(string(c)) == c
}
