package insights

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type GoalKind string

const (
	GoalWedding       GoalKind = "wedding"
	GoalHouse         GoalKind = "house"
	GoalCar           GoalKind = "car"
	GoalVacation      GoalKind = "vacation"
	GoalEmergencyFund GoalKind = "emergency_fund"
	GoalEducation     GoalKind = "education"
	GoalRetirement    GoalKind = "retirement"
	GoalOther         GoalKind = "other"
)

// ParseGoalKind accepts the kind names case-insensitively, with spaces or
// hyphens in place of underscores. Anything else is GoalOther.
func ParseGoalKind(label string) GoalKind {
	k := GoalKind(strings.NewReplacer(" ", "_", "-", "_").Replace(foldLabel(label)))
	switch k {
	case GoalWedding, GoalHouse, GoalCar, GoalVacation, GoalEmergencyFund, GoalEducation, GoalRetirement:
		return k
	default:
		return GoalOther
	}
}

// Goal is a savings target. A nil Deadline means open-ended.
type Goal struct {
	Name     string
	Kind     GoalKind
	Target   decimal.Decimal
	Current  decimal.Decimal
	Deadline *time.Time
}

type GoalProgress struct {
	Current    decimal.Decimal `json:"current"`
	Target     decimal.Decimal `json:"target"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage float64         `json:"percentage"`
}

type GoalTimeline struct {
	Deadline        *time.Time       `json:"deadline"`
	MonthsLeft      *int             `json:"monthsUntilDeadline"`
	EstimatedMonths *int             `json:"estimatedMonths"`
	RequiredMonthly *decimal.Decimal `json:"requiredMonthlySavings"`
}

type GoalFinancials struct {
	Income      decimal.Decimal `json:"monthlyIncome"`
	Expenses    decimal.Decimal `json:"monthlyExpenses"`
	Savings     decimal.Decimal `json:"monthlySavings"`
	SavingsRate float64         `json:"savingsRate"`
}

type GoalWarning struct {
	Level     string           `json:"type"`
	Code      string           `json:"code"`
	Message   string           `json:"message"`
	Required  *decimal.Decimal `json:"required,omitempty"`
	Current   *decimal.Decimal `json:"current,omitempty"`
	Shortfall *decimal.Decimal `json:"shortfall,omitempty"`
}

type Strategy struct {
	Name       string          `json:"name"`
	Percentage int             `json:"percentage"`
	Monthly    decimal.Decimal `json:"monthlyAmount"`
	Months     int             `json:"months"`
	Completion time.Time       `json:"completionDate"`
}

type GoalAction struct {
	Code        string           `json:"code"`
	Description string           `json:"description"`
	Priority    Priority         `json:"priority"`
	Category    Category         `json:"category,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Percentage  float64          `json:"percentage,omitempty"`
	Reduction   *decimal.Decimal `json:"suggestedReduction,omitempty"`
	Strategies  []Strategy       `json:"strategies,omitempty"`
}

type GoalTip struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type GoalPlan struct {
	Progress        GoalProgress   `json:"progress"`
	Timeline        GoalTimeline   `json:"timeline"`
	Financial       GoalFinancials `json:"financial"`
	Recommendations []GoalAction   `json:"recommendations"`
	Warnings        []GoalWarning  `json:"warnings"`
	Tips            []GoalTip      `json:"tips"`
}

const daysPerMonth = 30

var (
	cutShare    = decimal.RequireFromString("0.2")
	cutCoverage = decimal.RequireFromString("0.3")
)

var savingsPlans = []struct {
	name string
	pct  int
}{{"aggressive", 30}, {"moderate", 20}, {"conservative", 10}}

var goalTips = map[GoalKind][]GoalTip{
	GoalWedding: {
		{Code: "weddingTip1", Description: "Set a firm guest count early; it drives most other costs"},
		{Code: "weddingTip2", Description: "Track vendor deposits and due dates in one place"},
	},
	GoalHouse: {
		{Code: "houseTip1", Description: "Budget for closing costs on top of the down payment"},
		{Code: "houseTip2", Description: "Keep the down payment in a high-yield savings account"},
	},
	GoalCar: {
		{Code: "carTip1", Description: "Compare total cost of ownership, not just the sticker price"},
	},
	GoalVacation: {
		{Code: "vacationTip1", Description: "Book travel off-season and set fare alerts"},
	},
	GoalEmergencyFund: {
		{Code: "emergencyTip1", Description: "Aim for three to six months of essential expenses"},
	},
}

// PlanGoal measures progress toward a goal and proposes ways to reach it
// from the savings implied by the given transactions.
func PlanGoal(g Goal, expenses []Expense, income []Income, now time.Time) GoalPlan {
	remaining := g.Target.Sub(g.Current)
	earned := total(income)
	spent := total(expenses)
	net := earned.Sub(spent)
	rate := savingsRate(net, earned)

	plan := GoalPlan{
		Progress: GoalProgress{
			Current:    g.Current,
			Target:     g.Target,
			Remaining:  remaining,
			Percentage: percentOf(g.Current, g.Target),
		},
		Timeline:        GoalTimeline{Deadline: g.Deadline},
		Financial:       GoalFinancials{Income: earned, Expenses: spent, Savings: net, SavingsRate: rate},
		Recommendations: []GoalAction{},
		Warnings:        []GoalWarning{},
		Tips:            []GoalTip{},
	}

	if g.Deadline != nil {
		months := max(1, ceilDiv(g.Deadline.Sub(now).Hours()/24, daysPerMonth))
		required := remaining.Div(decimal.NewFromInt(int64(months)))
		plan.Timeline.MonthsLeft = &months
		plan.Timeline.RequiredMonthly = &required
	}
	if net.IsPositive() {
		est := int(remaining.Div(net).Ceil().IntPart())
		plan.Timeline.EstimatedMonths = &est
	}

	if !net.IsPositive() {
		plan.Warnings = append(plan.Warnings, GoalWarning{
			Level:   "critical",
			Code:    "noSavings",
			Message: "You are not currently saving any money",
		})
		plan.Recommendations = append(plan.Recommendations,
			GoalAction{Code: "increaseIncome", Description: "Look for ways to increase your income", Priority: PriorityHigh},
			GoalAction{Code: "reduceExpenses", Description: "Cut back on expenses to free up savings", Priority: PriorityHigh},
		)
	} else {
		plan.scheduleCheck(expenses, earned, net)
		plan.Recommendations = append(plan.Recommendations, GoalAction{
			Code:        "savingsStrategies",
			Description: "Choose how much of your income to set aside each month",
			Priority:    PriorityMedium,
			Strategies:  strategies(remaining, earned, net, now),
		})
	}

	plan.Tips = append(plan.Tips, goalTips[g.Kind]...)
	if rate < 10 {
		plan.Tips = append(plan.Tips, GoalTip{Code: "increaseSavingsRate", Description: "Try to save at least 10% of your income"})
	}
	return plan
}

// scheduleCheck compares current savings with what the deadline requires and
// suggests category cuts when behind.
func (p *GoalPlan) scheduleCheck(expenses []Expense, earned, net decimal.Decimal) {
	required := p.Timeline.RequiredMonthly
	if required == nil {
		return
	}
	if !required.GreaterThan(net) {
		p.Warnings = append(p.Warnings, GoalWarning{Level: "success", Code: "onTrack", Message: "You are on track to reach this goal"})
		return
	}

	shortfall := required.Sub(net)
	current := net
	p.Warnings = append(p.Warnings, GoalWarning{
		Level:     "warning",
		Code:      "behindSchedule",
		Message:   "Current savings will not reach the goal by the deadline",
		Required:  required,
		Current:   &current,
		Shortfall: &shortfall,
	})
	p.Recommendations = append(p.Recommendations, GoalAction{
		Code:        "increaseSavings",
		Description: "Increase monthly savings to close the gap",
		Priority:    PriorityHigh,
		Amount:      &shortfall,
		Percentage:  percentOf(shortfall, earned),
	})

	totals := categoryTotals(expenses)
	cats := sortedKeys(totals)
	sort.SliceStable(cats, func(i, j int) bool { return totals[cats[i]].GreaterThan(totals[cats[j]]) })
	if len(cats) > 3 {
		cats = cats[:3]
	}
	for _, cat := range cats {
		amount := totals[cat]
		cut := amount.Mul(cutShare)
		if cut.LessThan(shortfall.Mul(cutCoverage)) {
			continue
		}
		p.Recommendations = append(p.Recommendations, GoalAction{
			Code:        "reduceCategorySpending",
			Description: "Reduce spending in this category by 20%",
			Priority:    PriorityMedium,
			Category:    cat,
			Amount:      &amount,
			Reduction:   &cut,
		})
	}
}

func strategies(remaining, earned, net decimal.Decimal, now time.Time) []Strategy {
	out := []Strategy{}
	for _, s := range savingsPlans {
		monthly := earned.Mul(decimal.NewFromInt(int64(s.pct))).Div(hundred)
		if !monthly.IsPositive() {
			continue
		}
		if s.name == "aggressive" && !monthly.GreaterThan(net) {
			continue
		}
		months := int(remaining.Div(monthly).Ceil().IntPart())
		out = append(out, Strategy{
			Name:       s.name,
			Percentage: s.pct,
			Monthly:    monthly,
			Months:     months,
			Completion: now.AddDate(0, 0, months*daysPerMonth),
		})
	}
	return out
}

func ceilDiv(x float64, d int) int {
	q := x / float64(d)
	n := int(q)
	if float64(n) < q {
		n++
	}
	return n
}
