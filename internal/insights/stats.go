package insights

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var hundred = decimal.NewFromInt(100)

// percentOf returns part/whole*100, or 0 when whole is zero.
func percentOf(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(hundred).InexactFloat64()
}

// changePercent returns the relative change from base to next in percent, or 0 when base is zero.
func changePercent(base, next float64) float64 {
	if base == 0 {
		return 0
	}
	return (next - base) / base * 100
}

func floats[T record](items []T) []float64 {
	out := make([]float64, len(items))
	for i, it := range items {
		out[i] = it.value().InexactFloat64()
	}
	return out
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stdDev is the population standard deviation of xs around m.
func stdDev(xs []float64, m float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)))
}

// trendSlope is the least-squares slope of ys against x = 0, 1, ... n-1.
func trendSlope(ys []float64) float64 {
	n := float64(len(ys))
	if n < 2 {
		return 0
	}
	sumX := n * (n - 1) / 2
	sumX2 := n * (n - 1) * (2*n - 1) / 6
	var sumY, sumXY float64
	for i, y := range ys {
		sumY += y
		sumXY += float64(i) * y
	}
	return (n*sumXY - sumX*sumY) / (n*sumX2 - sumX*sumX)
}

// wholeDays counts the full days from a to b, truncated toward zero.
func wholeDays(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

func avg(sum decimal.Decimal, n int) decimal.Decimal {
	if n == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(n)))
}

// money formats an amount as US dollars with thousands separators.
func money(d decimal.Decimal) string {
	return "$" + message.NewPrinter(language.English).Sprintf("%.2f", d.InexactFloat64())
}
