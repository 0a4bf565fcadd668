// Package report implements the financial analytics engine: ledger
// aggregation, budget comparison, and the report table model handed to the
// spreadsheet/JSON renderers.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

type (
	// Totals carries the headline numbers for a transaction set.
	Totals struct {
		Income       decimal.Decimal
		Expense      decimal.Decimal
		Balance      decimal.Decimal
		Transactions int
	}

	// CategoryBreakdownEntry is an expense total for one category name,
	// in first-seen order.
	CategoryBreakdownEntry struct {
		Name   string
		Amount decimal.Decimal
		Color  string
	}

	// DailyPoint is the income/expense pair for one calendar day.
	DailyPoint struct {
		Date    string // YYYY-MM-DD
		Income  decimal.Decimal
		Expense decimal.Decimal
	}

	// PaymentMethodSplit partitions expense amounts by payment method.
	PaymentMethodSplit struct {
		Cash decimal.Decimal
		Card decimal.Decimal
	}

	// InstrumentTotal is the expense total charged to one named card.
	InstrumentTotal struct {
		Name   string
		Amount decimal.Decimal
	}

	// Summary is the multi-dimensional aggregate of one owner's ledger,
	// scoped to a resolved period.
	Summary struct {
		Totals          Totals
		Categories      []CategoryBreakdownEntry
		IncomeVsExpense []DailyPoint
		PaymentMethods  PaymentMethodSplit
		PerCard         []InstrumentTotal
	}
)

// Aggregate reduces a transaction set into a Summary. Input records are
// assumed to be scoped to one owner and, when requested, one period; the
// record source resolves the optional category/card references.
//
// Ordering rules differ per table and are deliberate: category and
// per-card breakdowns keep first-seen order, the daily series is sorted
// ascending by date.
func Aggregate(txs []core.Transaction) Summary {
	var sum Summary
	sum.Totals.Transactions = len(txs)

	days := make(map[string]int)
	cats := make(map[string]int)
	cards := make(map[string]int)

	for _, t := range txs {
		day := t.Date.ISO()
		i, ok := days[day]
		if !ok {
			i = len(sum.IncomeVsExpense)
			days[day] = i
			sum.IncomeVsExpense = append(sum.IncomeVsExpense, DailyPoint{Date: day})
		}

		switch t.Type {
		case core.TypeIncome:
			sum.Totals.Income = sum.Totals.Income.Add(t.Amount)
			sum.IncomeVsExpense[i].Income = sum.IncomeVsExpense[i].Income.Add(t.Amount)
		case core.TypeExpense:
			sum.Totals.Expense = sum.Totals.Expense.Add(t.Amount)
			sum.IncomeVsExpense[i].Expense = sum.IncomeVsExpense[i].Expense.Add(t.Amount)

			name := t.CategoryName()
			j, ok := cats[name]
			if !ok {
				j = len(sum.Categories)
				cats[name] = j
				sum.Categories = append(sum.Categories, CategoryBreakdownEntry{Name: name, Color: t.CategoryColor()})
			}
			sum.Categories[j].Amount = sum.Categories[j].Amount.Add(t.Amount)

			switch t.PaymentMethod {
			case core.PaymentCash:
				sum.PaymentMethods.Cash = sum.PaymentMethods.Cash.Add(t.Amount)
			case core.PaymentCard:
				sum.PaymentMethods.Card = sum.PaymentMethods.Card.Add(t.Amount)

				card := t.CardName()
				k, ok := cards[card]
				if !ok {
					k = len(sum.PerCard)
					cards[card] = k
					sum.PerCard = append(sum.PerCard, InstrumentTotal{Name: card})
				}
				sum.PerCard[k].Amount = sum.PerCard[k].Amount.Add(t.Amount)
			}
		}
	}

	sum.Totals.Balance = sum.Totals.Income.Sub(sum.Totals.Expense)

	sort.Slice(sum.IncomeVsExpense, func(a, b int) bool {
		return sum.IncomeVsExpense[a].Date < sum.IncomeVsExpense[b].Date
	})

	return sum
}

// MonthlyPoint is the income/expense pair for one calendar month.
type MonthlyPoint struct {
	Month   string // YYYY-MM
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// AggregateMonthly buckets the daily series by month, ascending. Used by
// the report builder's IncomeVsExpenses table.
func AggregateMonthly(txs []core.Transaction) []MonthlyPoint {
	months := make(map[string]int)
	var out []MonthlyPoint

	for _, t := range txs {
		key := t.Date.MonthKey()
		i, ok := months[key]
		if !ok {
			i = len(out)
			months[key] = i
			out = append(out, MonthlyPoint{Month: key})
		}
		switch t.Type {
		case core.TypeIncome:
			out[i].Income = out[i].Income.Add(t.Amount)
		case core.TypeExpense:
			out[i].Expense = out[i].Expense.Add(t.Amount)
		}
	}

	sort.Slice(out, func(a, b int) bool { return out[a].Month < out[b].Month })
	return out
}
