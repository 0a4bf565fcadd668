package report

import (
	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

// BudgetComparison joins an aggregated expense total against the stored
// monthly budget. Set distinguishes "no budget configured" from a budget
// of zero; callers must check it before interpreting BudgetAmount.
type BudgetComparison struct {
	BudgetAmount  decimal.Decimal
	Set           bool
	Actual        decimal.Decimal
	Remaining     decimal.Decimal
	ConsumedRatio decimal.Decimal
}

// CompareBudget builds the comparison for a resolved month. The actual
// value is the expense total of the currently filtered period; the report
// period and the budget's month are expected to coincide.
//
// A nil budget means none is configured for the month: the comparison
// still carries the actual and remaining figures, with Set false and a
// zero ratio (the zero-budget ratio rule also guards divide-by-zero).
func CompareBudget(budget *core.Budget, actual decimal.Decimal) BudgetComparison {
	cmp := BudgetComparison{Actual: actual}
	if budget != nil {
		cmp.Set = true
		cmp.BudgetAmount = budget.Amount
	}
	cmp.Remaining = cmp.BudgetAmount.Sub(actual)
	if cmp.BudgetAmount.IsPositive() {
		cmp.ConsumedRatio = actual.Div(cmp.BudgetAmount)
	}
	return cmp
}
