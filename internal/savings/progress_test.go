package savings

import (
	"testing"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCalculateClampsOvershoot(t *testing.T) {
	// target 1000, manual 300, auto 800 -> total 1100, clamped
	plan := core.SavingsPlan{TargetAmount: dec("1000"), LinkedCategoryID: "c1"}
	manual := []core.SavingsContribution{
		{Amount: dec("100"), Date: core.NewDate(2024, 1, 10)},
		{Amount: dec("200"), Date: core.NewDate(2024, 2, 10)},
	}
	autoTxs := []core.Transaction{
		{ID: "t1", Amount: dec("500"), Date: core.NewDate(2024, 1, 12), Description: "deposit"},
		{ID: "t2", Amount: dec("300"), Date: core.NewDate(2024, 2, 12), Description: "deposit"},
	}

	p := Calculate(plan, manual, autoTxs)

	if !p.TotalManual.Equal(dec("300")) || !p.TotalAuto.Equal(dec("800")) {
		t.Fatalf("totals: manual=%s auto=%s", p.TotalManual, p.TotalAuto)
	}
	if !p.ProgressPercent.Equal(dec("100")) {
		t.Fatalf("expected clamped 100%%, got %s", p.ProgressPercent)
	}
	if !p.Remaining.IsZero() {
		t.Fatalf("expected zero remaining, got %s", p.Remaining)
	}
	if len(p.AutoTransactions) != 2 || p.AutoTransactions[0].Source != "auto" {
		t.Fatalf("auto transactions not normalized: %+v", p.AutoTransactions)
	}
}

func TestCalculatePartialProgress(t *testing.T) {
	plan := core.SavingsPlan{TargetAmount: dec("400")}
	manual := []core.SavingsContribution{{Amount: dec("100")}}

	p := Calculate(plan, manual, nil)

	if !p.ProgressPercent.Equal(dec("25")) {
		t.Fatalf("expected 25%%, got %s", p.ProgressPercent)
	}
	if !p.Remaining.Equal(dec("300")) {
		t.Fatalf("expected 300 remaining, got %s", p.Remaining)
	}
	if len(p.AutoTransactions) != 0 {
		t.Fatal("no linked category, auto contributions must be empty")
	}
	if p.AutoTransactions == nil || p.Contributions == nil {
		t.Fatal("slices must be non-nil for JSON rendering")
	}
}

func TestCalculateZeroTarget(t *testing.T) {
	// Zero target cannot happen through validation but the calculator
	// still guards the division.
	p := Calculate(core.SavingsPlan{}, nil, nil)
	if !p.ProgressPercent.IsZero() || !p.Remaining.IsZero() {
		t.Fatalf("expected zeros, got pct=%s remaining=%s", p.ProgressPercent, p.Remaining)
	}
}

func TestProgressPercentBounds(t *testing.T) {
	cases := []struct {
		target, contributed string
	}{
		{"1000", "0"},
		{"1000", "1"},
		{"1000", "999.99"},
		{"1000", "1000"},
		{"1000", "250000"},
	}
	for _, tc := range cases {
		plan := core.SavingsPlan{TargetAmount: dec(tc.target)}
		p := Calculate(plan, []core.SavingsContribution{{Amount: dec(tc.contributed)}}, nil)
		if p.ProgressPercent.IsNegative() || p.ProgressPercent.GreaterThan(dec("100")) {
			t.Fatalf("contributed %s: percent out of range: %s", tc.contributed, p.ProgressPercent)
		}
		if p.Remaining.IsNegative() {
			t.Fatalf("contributed %s: negative remaining: %s", tc.contributed, p.Remaining)
		}
	}
}
