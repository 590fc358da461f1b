package insights

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single outgoing transaction. Date is a calendar day; only its
// year, month and day are used.
type Expense struct {
	Amount      decimal.Decimal
	Category    Category
	Date        time.Time
	Description string
}

// Income is a single incoming transaction. Currency is carried for display only.
type Income struct {
	Amount      decimal.Decimal
	Source      Source
	Date        time.Time
	Description string
	Currency    string
}

type record interface {
	value() decimal.Decimal
	day() time.Time
}

func (e Expense) value() decimal.Decimal { return e.Amount }
func (e Expense) day() time.Time { return e.Date }
func (i Income) value() decimal.Decimal { return i.Amount }
func (i Income) day() time.Time { return i.Date }

// MonthKey identifies a calendar month.
type MonthKey struct {
	Year  int
	Month time.Month
}

func monthOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

func (m MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

func (m MonthKey) before(o MonthKey) bool {
	if m.Year != o.Year {
		return m.Year < o.Year
	}
	return m.Month < o.Month
}

func total[T record](items []T) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.value())
	}
	return sum
}

func groupBy[T record, K comparable](items []T, key func(T) K) map[K][]T {
	out := make(map[K][]T)
	for _, it := range items {
		k := key(it)
		out[k] = append(out[k], it)
	}
	return out
}

func groupByMonth[T record](items []T) map[MonthKey][]T {
	return groupBy(items, func(it T) MonthKey { return monthOf(it.day()) })
}

// sortedMonths returns the keys of a month grouping in ascending order.
func sortedMonths[T any](m map[MonthKey]T) []MonthKey {
	keys := make([]MonthKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].before(keys[j]) })
	return keys
}

// sortedKeys returns string-like map keys in ascending order so every
// grouping is walked deterministically.
func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// byDate returns a copy of items ordered by date, keeping input order for equal dates.
func byDate[T record](items []T) []T {
	out := append([]T(nil), items...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].day().Before(out[j].day()) })
	return out
}

func categoryTotals(expenses []Expense) map[Category]decimal.Decimal {
	out := make(map[Category]decimal.Decimal)
	for _, e := range expenses {
		out[e.Category] = out[e.Category].Add(e.Amount)
	}
	return out
}
