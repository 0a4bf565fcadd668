package report

import (
	"fmt"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

// CellKind tags a cell for rendering: plain text, a two-decimal number,
// or a percentage. Widths, fonts and formats belong to the renderer.
type CellKind int

const (
	CellText CellKind = iota
	CellNumber
	CellPercent
)

type (
	Cell struct {
		Kind   CellKind
		Text   string
		Number decimal.Decimal
	}

	// Table is one named sheet of the report: a header row plus data rows.
	Table struct {
		Name   string
		Header []string
		Rows   [][]Cell
	}

	// Workbook is the ordered table collection produced for one report,
	// ready for xlsx encoding or JSON serialization.
	Workbook struct {
		Period core.Period
		Tables []Table
	}
)

func textCell(s string) Cell             { return Cell{Kind: CellText, Text: s} }
func numberCell(d decimal.Decimal) Cell  { return Cell{Kind: CellNumber, Number: d} }
func countCell(n int) Cell               { return Cell{Kind: CellNumber, Number: decimal.NewFromInt(int64(n))} }
func percentCell(d decimal.Decimal) Cell { return Cell{Kind: CellPercent, Number: d} }

// Table names, in workbook order.
const (
	TableTransactions    = "Transactions"
	TableOverview        = "Overview"
	TableIncomeVsExpense = "IncomeVsExpenses"
	TableCategories      = "Categories"
	TableBudgetVsActual  = "BudgetVsActual"
	TablePerCard         = "PerCard"
)

const budgetUnavailableNote = "Budget vs Actual is only available for a specific month."

// Build assembles the report workbook from the raw transaction list, the
// aggregated summary, and the budget comparison. The comparison is nil for
// an all-time period, in which case the BudgetVsActual table degrades to a
// single informational row.
func Build(period core.Period, txs []core.Transaction, sum Summary, budget *BudgetComparison) Workbook {
	wb := Workbook{Period: period}

	transactions := Table{
		Name:   TableTransactions,
		Header: []string{"Type", "Description", "Category", "Amount", "Date", "PaymentMethod", "Card"},
	}
	for _, t := range txs {
		// Unlike the aggregated breakdown, the verbatim table leaves
		// unresolved references blank.
		var catName, cardName string
		if t.Category != nil {
			catName = t.Category.Name
		}
		if t.Card != nil {
			cardName = t.Card.Name
		}
		transactions.Rows = append(transactions.Rows, []Cell{
			textCell(string(t.Type)),
			textCell(t.Description),
			textCell(catName),
			numberCell(t.Amount),
			textCell(t.Date.ISO()),
			textCell(string(t.PaymentMethod)),
			textCell(cardName),
		})
	}
	wb.Tables = append(wb.Tables, transactions)

	wb.Tables = append(wb.Tables, Table{
		Name:   TableOverview,
		Header: []string{"Metric", "Value"},
		Rows: [][]Cell{
			{textCell("Income"), numberCell(sum.Totals.Income)},
			{textCell("Expense"), numberCell(sum.Totals.Expense)},
			{textCell("Transactions"), countCell(sum.Totals.Transactions)},
			{textCell("Balance"), numberCell(sum.Totals.Balance)},
		},
	})

	monthly := Table{
		Name:   TableIncomeVsExpense,
		Header: []string{"Month", "Income", "Expense"},
	}
	for _, p := range AggregateMonthly(txs) {
		monthly.Rows = append(monthly.Rows, []Cell{
			textCell(p.Month), numberCell(p.Income), numberCell(p.Expense),
		})
	}
	wb.Tables = append(wb.Tables, monthly)

	categories := Table{
		Name:   TableCategories,
		Header: []string{"Category", "Amount"},
	}
	for _, c := range sum.Categories {
		categories.Rows = append(categories.Rows, []Cell{textCell(c.Name), numberCell(c.Amount)})
	}
	wb.Tables = append(wb.Tables, categories)

	budgetTable := Table{
		Name:   TableBudgetVsActual,
		Header: []string{"Metric", "Value"},
	}
	if budget != nil {
		budgetTable.Rows = [][]Cell{
			{textCell("Budget"), numberCell(budget.BudgetAmount)},
			{textCell("Actual (Expense)"), numberCell(budget.Actual)},
			{textCell("Remaining"), numberCell(budget.Remaining)},
			{textCell("Consumed %"), percentCell(budget.ConsumedRatio)},
		}
	} else {
		budgetTable.Rows = [][]Cell{{textCell(budgetUnavailableNote), textCell("")}}
	}
	wb.Tables = append(wb.Tables, budgetTable)

	perCard := Table{
		Name:   TablePerCard,
		Header: []string{"Card", "Amount"},
	}
	for _, c := range sum.PerCard {
		perCard.Rows = append(perCard.Rows, []Cell{textCell(c.Name), numberCell(c.Amount)})
	}
	wb.Tables = append(wb.Tables, perCard)

	return wb
}

// Filename returns the export attachment name for the workbook's period.
func (wb Workbook) Filename() string {
	if wb.Period.All() {
		return "transactions_all.xlsx"
	}
	return fmt.Sprintf("transactions_%04d-%02d.xlsx", wb.Period.Year, wb.Period.Month)
}

// Lookup returns the table with the given name, or nil.
func (wb Workbook) Lookup(name string) *Table {
	for i := range wb.Tables {
		if wb.Tables[i].Name == name {
			return &wb.Tables[i]
		}
	}
	return nil
}
