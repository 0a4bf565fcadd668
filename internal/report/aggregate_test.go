package report

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

func expense(amount, date, catName string) core.Transaction {
	t := core.Transaction{
		Type:          core.TypeExpense,
		Amount:        dec(amount),
		PaymentMethod: core.PaymentCash,
	}
	t.Date, _ = core.ParseDate(date)
	if catName != "" {
		t.Category = &core.Category{Name: catName, Color: "#111111"}
	}
	return t
}

func income(amount, date string) core.Transaction {
	t := core.Transaction{
		Type:          core.TypeIncome,
		Amount:        dec(amount),
		PaymentMethod: core.PaymentCash,
	}
	t.Date, _ = core.ParseDate(date)
	return t
}

func cardExpense(amount, date, cardName string) core.Transaction {
	t := expense(amount, date, "")
	t.PaymentMethod = core.PaymentCard
	if cardName != "" {
		t.Card = &core.Card{Name: cardName}
	}
	return t
}

func TestAggregateTotals(t *testing.T) {
	txs := []core.Transaction{
		expense("100", "2024-01-05", "Food"),
		income("500", "2024-01-10"),
	}
	sum := Aggregate(txs)

	if !sum.Totals.Income.Equal(dec("500")) || !sum.Totals.Expense.Equal(dec("100")) {
		t.Fatalf("totals: income=%s expense=%s", sum.Totals.Income, sum.Totals.Expense)
	}
	if !sum.Totals.Balance.Equal(dec("400")) {
		t.Fatalf("balance: %s", sum.Totals.Balance)
	}
	if sum.Totals.Transactions != 2 {
		t.Fatalf("count: %d", sum.Totals.Transactions)
	}
	if len(sum.Categories) != 1 || sum.Categories[0].Name != "Food" || !sum.Categories[0].Amount.Equal(dec("100")) {
		t.Fatalf("categories: %+v", sum.Categories)
	}
}

func TestAggregateBalanceProperty(t *testing.T) {
	txs := []core.Transaction{
		income("12.34", "2024-03-01"),
		expense("4.99", "2024-03-02", "A"),
		expense("0.01", "2024-03-02", "B"),
		income("7", "2024-03-05"),
	}
	sum := Aggregate(txs)
	if !sum.Totals.Balance.Equal(sum.Totals.Income.Sub(sum.Totals.Expense)) {
		t.Fatal("balance must equal income - expense")
	}

	var catSum decimal.Decimal
	for _, c := range sum.Categories {
		catSum = catSum.Add(c.Amount)
	}
	if !catSum.Equal(sum.Totals.Expense) {
		t.Fatalf("category sums %s must cover exactly the expense total %s", catSum, sum.Totals.Expense)
	}
}

func TestAggregateCategoryOrderAndDefaults(t *testing.T) {
	txs := []core.Transaction{
		expense("10", "2024-01-03", "Transport"),
		expense("5", "2024-01-01", ""), // uncategorized
		expense("7", "2024-01-02", "Transport"),
		income("99", "2024-01-01"), // income never contributes a category
	}
	sum := Aggregate(txs)

	if len(sum.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(sum.Categories))
	}
	// First-seen order, not sorted and not date order.
	if sum.Categories[0].Name != "Transport" || sum.Categories[1].Name != core.UncategorizedName {
		t.Fatalf("order: %+v", sum.Categories)
	}
	if !sum.Categories[0].Amount.Equal(dec("17")) {
		t.Fatalf("Transport total: %s", sum.Categories[0].Amount)
	}
	if sum.Categories[1].Color != core.UncategorizedColor {
		t.Fatalf("default color: %s", sum.Categories[1].Color)
	}
}

func TestAggregateDailySeriesSorted(t *testing.T) {
	txs := []core.Transaction{
		expense("1", "2024-02-20", ""),
		income("2", "2024-02-01"),
		expense("3", "2024-02-01", ""),
		income("4", "2024-02-10"),
	}
	sum := Aggregate(txs)

	if len(sum.IncomeVsExpense) != 3 {
		t.Fatalf("expected 3 distinct dates, got %d", len(sum.IncomeVsExpense))
	}
	for i := 1; i < len(sum.IncomeVsExpense); i++ {
		if sum.IncomeVsExpense[i-1].Date >= sum.IncomeVsExpense[i].Date {
			t.Fatalf("series not strictly ascending: %+v", sum.IncomeVsExpense)
		}
	}
	first := sum.IncomeVsExpense[0]
	if first.Date != "2024-02-01" || !first.Income.Equal(dec("2")) || !first.Expense.Equal(dec("3")) {
		t.Fatalf("per-day sums: %+v", first)
	}
}

func TestAggregatePaymentMethodsAndPerCard(t *testing.T) {
	visa := cardExpense("30", "2024-01-05", "Visa")
	amex := cardExpense("20", "2024-01-06", "Amex")
	unknown := cardExpense("5", "2024-01-07", "")
	cardIncome := income("1000", "2024-01-08")
	cardIncome.PaymentMethod = core.PaymentCard

	txs := []core.Transaction{
		expense("40", "2024-01-04", ""), // cash
		visa, amex, unknown, cardIncome,
		cardExpense("10", "2024-01-09", "Visa"),
	}
	sum := Aggregate(txs)

	if !sum.PaymentMethods.Cash.Equal(dec("40")) {
		t.Fatalf("cash: %s", sum.PaymentMethods.Cash)
	}
	// Income never contributes to the split.
	if !sum.PaymentMethods.Card.Equal(dec("65")) {
		t.Fatalf("card: %s", sum.PaymentMethods.Card)
	}

	if len(sum.PerCard) != 3 {
		t.Fatalf("per-card entries: %+v", sum.PerCard)
	}
	if sum.PerCard[0].Name != "Visa" || !sum.PerCard[0].Amount.Equal(dec("40")) {
		t.Fatalf("Visa: %+v", sum.PerCard[0])
	}
	if sum.PerCard[2].Name != core.UnknownCardName || !sum.PerCard[2].Amount.Equal(dec("5")) {
		t.Fatalf("unknown card: %+v", sum.PerCard[2])
	}
}

func TestAggregateEmpty(t *testing.T) {
	sum := Aggregate(nil)
	if sum.Totals.Transactions != 0 || !sum.Totals.Balance.IsZero() {
		t.Fatalf("empty input: %+v", sum.Totals)
	}
	if len(sum.Categories) != 0 || len(sum.IncomeVsExpense) != 0 || len(sum.PerCard) != 0 {
		t.Fatal("empty input must produce empty breakdowns")
	}
}

func TestAggregateMonthly(t *testing.T) {
	txs := []core.Transaction{
		expense("10", "2024-03-05", ""),
		income("20", "2024-01-15"),
		expense("30", "2024-01-20", ""),
		income("40", "2024-02-01"),
	}
	months := AggregateMonthly(txs)

	if len(months) != 3 {
		t.Fatalf("expected 3 months, got %d", len(months))
	}
	want := []string{"2024-01", "2024-02", "2024-03"}
	for i, m := range months {
		if m.Month != want[i] {
			t.Fatalf("month order: %+v", months)
		}
	}
	if !months[0].Income.Equal(dec("20")) || !months[0].Expense.Equal(dec("30")) {
		t.Fatalf("january sums: %+v", months[0])
	}
}
