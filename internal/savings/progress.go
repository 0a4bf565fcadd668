// Package savings computes savings-plan progress from manual contributions
// and auto-derived contributions (expense transactions in the plan's
// linked category).
package savings

import (
	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

// DateRange is an optional inclusive bound on contribution dates. Either
// side may be empty. It is independent of the report period selector.
type DateRange struct {
	From core.Date
	To   core.Date
}

func (r DateRange) IsZero() bool {
	return r.From.IsEmpty() && r.To.IsEmpty()
}

// AutoContribution is the normalized view of an expense transaction
// counted toward a plan, so callers can render a unified timeline without
// re-deriving provenance.
type AutoContribution struct {
	ID          string
	Amount      decimal.Decimal
	Date        core.Date
	Description string
	Source      string // always "auto"
}

// Progress is the computed state of one savings plan over an optional
// date range.
type Progress struct {
	TotalManual      decimal.Decimal
	TotalAuto        decimal.Decimal
	ProgressPercent  decimal.Decimal // clamped to [0, 100]
	Remaining        decimal.Decimal // never negative
	Contributions    []core.SavingsContribution
	AutoTransactions []AutoContribution
}

var hundred = decimal.NewFromInt(100)

// Calculate merges manual contributions with linked-category expense
// transactions and measures them against the plan's target. Both record
// sets are expected to be pre-filtered to the plan's owner and the
// requested date range; ownership has already been validated upstream.
func Calculate(plan core.SavingsPlan, manual []core.SavingsContribution, autoTxs []core.Transaction) Progress {
	p := Progress{
		Contributions:    manual,
		AutoTransactions: make([]AutoContribution, 0, len(autoTxs)),
	}
	if p.Contributions == nil {
		p.Contributions = []core.SavingsContribution{}
	}

	for _, c := range manual {
		p.TotalManual = p.TotalManual.Add(c.Amount)
	}
	for _, t := range autoTxs {
		p.TotalAuto = p.TotalAuto.Add(t.Amount)
		p.AutoTransactions = append(p.AutoTransactions, AutoContribution{
			ID:          t.ID,
			Amount:      t.Amount,
			Date:        t.Date,
			Description: t.Description,
			Source:      "auto",
		})
	}

	total := p.TotalManual.Add(p.TotalAuto)
	target := plan.TargetAmount

	if target.IsPositive() {
		pct := total.Div(target).Mul(hundred)
		if pct.GreaterThan(hundred) {
			pct = hundred
		}
		p.ProgressPercent = pct
	}

	p.Remaining = target.Sub(total)
	if p.Remaining.IsNegative() {
		p.Remaining = decimal.Zero
	}

	return p
}
