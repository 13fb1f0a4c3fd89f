package finance

import (
	"math"

	"github.com/shopspring/decimal"

	"smarta/internal/domain"
)

// Band is a coarse reading of the health score.
type Band string

const (
	BandExcellent Band = "excellent"
	BandGood      Band = "good"
	BandFair      Band = "fair"
	BandPoor      Band = "poor"
)

// BandOf buckets a score: 80+ excellent, 60+ good, 40+ fair, else poor.
func BandOf(score int) Band {
	switch {
	case score >= 80:
		return BandExcellent
	case score >= 60:
		return BandGood
	case score >= 40:
		return BandFair
	default:
		return BandPoor
	}
}

// emergencyTargetMonths is how many months of expenses count as a full
// emergency fund.
const emergencyTargetMonths = 6

// HealthInputs are the figures the score is computed from.
type HealthInputs struct {
	TotalSavings   decimal.Decimal
	MonthlyIncome  decimal.Decimal
	MonthlyExpense decimal.Decimal
	Goals          []domain.Goal
}

// DefaultHealthInputs is the seeded savings position.
func DefaultHealthInputs() HealthInputs {
	return HealthInputs{
		TotalSavings:   TotalSavings,
		MonthlyIncome:  MonthlyIncome,
		MonthlyExpense: MonthlyExpense,
		Goals:          Goals(),
	}
}

// Health is the computed score with the ratios behind it.
type Health struct {
	Score           int     `json:"score"`
	Band            Band    `json:"band"`
	SavingsRate     float64 `json:"savings_rate"`
	EmergencyMonths float64 `json:"emergency_months"`
	GoalProgress    float64 `json:"goal_progress"`
}

// HealthScore weighs savings rate 40%, emergency fund coverage (up to six
// months) 30% and mean goal progress 30%. The result is clamped to [0,100].
func HealthScore(in HealthInputs) Health {
	h := Health{
		SavingsRate:  SavingsRate(in.MonthlyIncome, in.MonthlyExpense),
		GoalProgress: MeanGoalProgress(in.Goals),
	}
	if !in.MonthlyExpense.IsZero() {
		h.EmergencyMonths = in.TotalSavings.Div(in.MonthlyExpense).InexactFloat64()
	}
	emergency := math.Min(h.EmergencyMonths/emergencyTargetMonths, 1)
	raw := h.SavingsRate*0.4 + emergency*30 + h.GoalProgress*30
	h.Score = int(math.Max(0, math.Min(100, math.Round(raw))))
	h.Band = BandOf(h.Score)
	return h
}

// GoalProgress is current/target, capped to [0,1]. A zero target is
// treated as no progress.
func GoalProgress(g domain.Goal) float64 {
	if !g.Target.IsPositive() {
		return 0
	}
	p := g.Current.Div(g.Target).InexactFloat64()
	return math.Max(0, math.Min(1, p))
}

// MeanGoalProgress averages GoalProgress over goals.
func MeanGoalProgress(goals []domain.Goal) float64 {
	if len(goals) == 0 {
		return 0
	}
	var sum float64
	for _, g := range goals {
		sum += GoalProgress(g)
	}
	return sum / float64(len(goals))
}
