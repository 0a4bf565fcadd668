package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
	"fintrack/internal/report"
	"fintrack/internal/storage"
)

type fakeTransactionStore struct {
	storage.TransactionStore
	txs        []core.Transaction
	err        error
	lastFilter storage.TransactionFilter
}

func (f *fakeTransactionStore) ListTransactions(_ context.Context, _ string, filter storage.TransactionFilter) ([]core.Transaction, error) {
	f.lastFilter = filter
	return f.txs, f.err
}

type fakeBudgetStore struct {
	storage.BudgetStore
	budget *core.Budget
	err    error
	calls  int
}

func (f *fakeBudgetStore) GetBudgetForMonth(_ context.Context, _ string, _, _ int) (*core.Budget, error) {
	f.calls++
	return f.budget, f.err
}

type fakeExportQueue struct {
	published []string
	err       error
}

func (f *fakeExportQueue) PublishExportRequest(_ context.Context, ownerID, period string) error {
	f.published = append(f.published, ownerID+"/"+period)
	return f.err
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleTxs() []core.Transaction {
	return []core.Transaction{
		{ID: "t1", Type: core.TypeIncome, Description: "Salary", Amount: dec("1000"), Date: core.NewDate(2024, 3, 1), PaymentMethod: core.PaymentCash},
		{ID: "t2", Type: core.TypeExpense, Description: "Groceries", Amount: dec("250"), Date: core.NewDate(2024, 3, 2), PaymentMethod: core.PaymentCard},
	}
}

func TestSummaryScopedMonth(t *testing.T) {
	txStore := &fakeTransactionStore{txs: sampleTxs()}
	budgets := &fakeBudgetStore{budget: &core.Budget{Month: 3, Year: 2024, Amount: dec("500")}}
	svc := NewStatsService(txStore, budgets, nil)

	res, err := svc.Summary(context.Background(), "owner-1", "2024-03")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if res.Period.String() != "2024-03" {
		t.Errorf("period = %s, want 2024-03", res.Period)
	}
	if !res.Summary.Totals.Income.Equal(dec("1000")) {
		t.Errorf("income = %s, want 1000", res.Summary.Totals.Income)
	}
	if res.Budget == nil || !res.Budget.Amount.Equal(dec("500")) {
		t.Errorf("budget = %+v, want amount 500", res.Budget)
	}
	if txStore.lastFilter.From.IsEmpty() || txStore.lastFilter.To.IsEmpty() {
		t.Errorf("scoped query must carry date bounds, got %+v", txStore.lastFilter)
	}
	if got := txStore.lastFilter.From.ISO(); got != "2024-03-01" {
		t.Errorf("filter from = %s, want 2024-03-01", got)
	}
	if got := txStore.lastFilter.To.ISO(); got != "2024-03-31" {
		t.Errorf("filter to = %s, want 2024-03-31", got)
	}
}

func TestSummaryAllTimeSkipsBudget(t *testing.T) {
	budgets := &fakeBudgetStore{budget: &core.Budget{Amount: dec("500")}}
	svc := NewStatsService(&fakeTransactionStore{txs: sampleTxs()}, budgets, nil)

	res, err := svc.Summary(context.Background(), "owner-1", "all")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if res.Budget != nil {
		t.Errorf("all-time summary must not carry a budget, got %+v", res.Budget)
	}
	if budgets.calls != 0 {
		t.Errorf("budget store queried %d times, want 0", budgets.calls)
	}
}

func TestSummaryInvalidSelector(t *testing.T) {
	txStore := &fakeTransactionStore{txs: sampleTxs()}
	svc := NewStatsService(txStore, &fakeBudgetStore{}, nil)

	_, err := svc.Summary(context.Background(), "owner-1", "2024-13")
	if !errors.Is(err, core.ErrInvalidPeriod) {
		t.Fatalf("error = %v, want ErrInvalidPeriod", err)
	}
}

func TestSummaryNoBudgetConfigured(t *testing.T) {
	svc := NewStatsService(&fakeTransactionStore{}, &fakeBudgetStore{budget: nil}, nil)

	res, err := svc.Summary(context.Background(), "owner-1", "2024-03")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if res.Budget != nil {
		t.Errorf("budget = %+v, want nil", res.Budget)
	}
}

func TestExportWorkbookScopedMonth(t *testing.T) {
	budgets := &fakeBudgetStore{budget: &core.Budget{Month: 3, Year: 2024, Amount: dec("500")}}
	svc := NewStatsService(&fakeTransactionStore{txs: sampleTxs()}, budgets, nil)

	wb, err := svc.ExportWorkbook(context.Background(), "owner-1", "2024-03")
	if err != nil {
		t.Fatalf("ExportWorkbook: %v", err)
	}
	if wb.Filename() != "transactions_2024-03.xlsx" {
		t.Errorf("filename = %s", wb.Filename())
	}
	table := wb.Lookup(report.TableBudgetVsActual)
	if table == nil {
		t.Fatal("missing BudgetVsActual table")
	}
	if len(table.Rows) != 4 {
		t.Errorf("BudgetVsActual rows = %d, want 4", len(table.Rows))
	}
}

func TestExportWorkbookAllTime(t *testing.T) {
	svc := NewStatsService(&fakeTransactionStore{txs: sampleTxs()}, &fakeBudgetStore{}, nil)

	wb, err := svc.ExportWorkbook(context.Background(), "owner-1", "")
	if err != nil {
		t.Fatalf("ExportWorkbook: %v", err)
	}
	if wb.Filename() != "transactions_all.xlsx" {
		t.Errorf("filename = %s", wb.Filename())
	}
	table := wb.Lookup(report.TableBudgetVsActual)
	if table == nil || len(table.Rows) != 1 {
		t.Fatalf("all-time BudgetVsActual must degrade to a single note row, got %+v", table)
	}
}

func TestQueueSheetsExport(t *testing.T) {
	queue := &fakeExportQueue{}
	svc := NewStatsService(&fakeTransactionStore{}, &fakeBudgetStore{}, queue)

	if err := svc.QueueSheetsExport(context.Background(), "owner-1", "2024-03"); err != nil {
		t.Fatalf("QueueSheetsExport: %v", err)
	}
	if len(queue.published) != 1 || queue.published[0] != "owner-1/2024-03" {
		t.Fatalf("published = %v", queue.published)
	}
}

func TestQueueSheetsExportUnconfigured(t *testing.T) {
	svc := NewStatsService(&fakeTransactionStore{}, &fakeBudgetStore{}, nil)

	err := svc.QueueSheetsExport(context.Background(), "owner-1", "2024-03")
	if !errors.Is(err, ErrExportQueueUnavailable) {
		t.Fatalf("error = %v, want ErrExportQueueUnavailable", err)
	}
}

func TestQueueSheetsExportValidatesSelectorFirst(t *testing.T) {
	queue := &fakeExportQueue{}
	svc := NewStatsService(&fakeTransactionStore{}, &fakeBudgetStore{}, queue)

	err := svc.QueueSheetsExport(context.Background(), "owner-1", "not-a-period")
	if !errors.Is(err, core.ErrInvalidPeriod) {
		t.Fatalf("error = %v, want ErrInvalidPeriod", err)
	}
	if len(queue.published) != 0 {
		t.Fatalf("invalid selector must not be published, got %v", queue.published)
	}
}
