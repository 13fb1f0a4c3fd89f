package finance

import (
	"strings"

	"github.com/shopspring/decimal"

	"smarta/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// FilterByCategory keeps transactions in category cat. AllCategories or ""
// keeps everything.
func FilterByCategory(txs []domain.Transaction, cat string) []domain.Transaction {
	if cat == "" || cat == AllCategories {
		return txs
	}
	out := make([]domain.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.Category == cat {
			out = append(out, t)
		}
	}
	return out
}

// Search keeps transactions whose title or category contains q,
// case-insensitively.
func Search(txs []domain.Transaction, q string) []domain.Transaction {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return txs
	}
	out := make([]domain.Transaction, 0, len(txs))
	for _, t := range txs {
		if strings.Contains(strings.ToLower(t.Title), q) || strings.Contains(strings.ToLower(t.Category), q) {
			out = append(out, t)
		}
	}
	return out
}

// Totals sums income and expense. Expense is returned as a positive amount.
func Totals(txs []domain.Transaction) (income, expense decimal.Decimal) {
	for _, t := range txs {
		if t.Type == domain.TxIncome {
			income = income.Add(t.Amount.Abs())
		} else {
			expense = expense.Add(t.Amount.Abs())
		}
	}
	return income, expense
}

// SavingsRate is the share of income not spent, in percent. Zero income
// yields zero.
func SavingsRate(income, expense decimal.Decimal) float64 {
	if income.IsZero() {
		return 0
	}
	return income.Sub(expense).Div(income).Mul(hundred).InexactFloat64()
}

// PercentChange is the change from prev to cur in percent. A zero prev
// yields zero.
func PercentChange(prev, cur decimal.Decimal) float64 {
	if prev.IsZero() {
		return 0
	}
	return cur.Sub(prev).Div(prev).Mul(hundred).InexactFloat64()
}

// Share is one category with its percentage of the total.
type Share struct {
	Name    string          `json:"name"`
	Value   decimal.Decimal `json:"value"`
	Percent float64         `json:"percent"`
}

// Breakdown returns the total of items and each item's share of it.
func Breakdown(items []domain.CategoryAmount) (decimal.Decimal, []Share) {
	var total decimal.Decimal
	for _, it := range items {
		total = total.Add(it.Value)
	}
	shares := make([]Share, 0, len(items))
	for _, it := range items {
		var pct float64
		if !total.IsZero() {
			pct = it.Value.Div(total).Mul(hundred).InexactFloat64()
		}
		shares = append(shares, Share{Name: it.Name, Value: it.Value, Percent: pct})
	}
	return total, shares
}

// Insight is the content of the insight screen.
type Insight struct {
	TotalExpense  decimal.Decimal       `json:"total_expense"`
	Categories    []Share               `json:"categories"`
	Comparison    []domain.MonthFigures `json:"comparison"`
	SavingsRate   float64               `json:"savings_rate"`
	IncomeChange  float64               `json:"income_change"`
	ExpenseChange float64               `json:"expense_change"`
}

// BuildInsight compares the last two months and breaks down expenses.
func BuildInsight(breakdown []domain.CategoryAmount, months []domain.MonthFigures) Insight {
	total, shares := Breakdown(breakdown)
	in := Insight{TotalExpense: total, Categories: shares, Comparison: months}
	if n := len(months); n > 0 {
		cur := months[n-1]
		in.SavingsRate = SavingsRate(cur.Income, cur.Expense)
		if n > 1 {
			prev := months[n-2]
			in.IncomeChange = PercentChange(prev.Income, cur.Income)
			in.ExpenseChange = PercentChange(prev.Expense, cur.Expense)
		}
	}
	return in
}
