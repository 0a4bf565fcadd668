// Package services orchestrates the analytics engine over the storage
// ports: resolving periods, fetching owner-scoped snapshots, and handing
// the results to the report builder or the export queue.
package services

import (
	"context"
	"errors"
	"fmt"

	"fintrack/internal/core"
	"fintrack/internal/report"
	"fintrack/internal/storage"
)

// ErrExportQueueUnavailable is returned when a sheet export is requested
// but no messaging backend is configured.
var ErrExportQueueUnavailable = errors.New("export queue not configured")

// ExportQueue publishes asynchronous export requests. Implemented by the
// amqp client.
type ExportQueue interface {
	PublishExportRequest(ctx context.Context, ownerID, period string) error
}

// StatsService computes summaries and report workbooks for one owner's
// ledger. Every invocation works on a fresh snapshot; nothing is cached.
type StatsService struct {
	transactions storage.TransactionStore
	budgets      storage.BudgetStore
	exports      ExportQueue // nil when messaging is not configured
}

func NewStatsService(transactions storage.TransactionStore, budgets storage.BudgetStore, exports ExportQueue) *StatsService {
	return &StatsService{
		transactions: transactions,
		budgets:      budgets,
		exports:      exports,
	}
}

// SummaryResult is the JSON-facing aggregate: the summary plus the raw
// budget record, whose absence must survive to the payload (null, not 0).
type SummaryResult struct {
	Period  core.Period
	Summary report.Summary
	Budget  *core.Budget
}

// Summary resolves the period selector, loads the scoped snapshot and
// aggregates it. A malformed selector short-circuits before any read.
func (s *StatsService) Summary(ctx context.Context, ownerID, selector string) (SummaryResult, error) {
	period, err := core.ResolvePeriod(selector)
	if err != nil {
		return SummaryResult{}, err
	}

	txs, err := s.loadPeriod(ctx, ownerID, period)
	if err != nil {
		return SummaryResult{}, err
	}

	result := SummaryResult{
		Period:  period,
		Summary: report.Aggregate(txs),
	}

	if !period.All() {
		result.Budget, err = s.budgets.GetBudgetForMonth(ctx, ownerID, period.Month, period.Year)
		if err != nil {
			return SummaryResult{}, err
		}
	}

	return result, nil
}

// ExportWorkbook builds the full report workbook for the selector. The
// budget comparison is attached only for a scoped period; its "actual" is
// the expense total of the same filtered snapshot.
func (s *StatsService) ExportWorkbook(ctx context.Context, ownerID, selector string) (report.Workbook, error) {
	period, err := core.ResolvePeriod(selector)
	if err != nil {
		return report.Workbook{}, err
	}

	txs, err := s.loadPeriod(ctx, ownerID, period)
	if err != nil {
		return report.Workbook{}, err
	}
	sum := report.Aggregate(txs)

	var cmp *report.BudgetComparison
	if !period.All() {
		budget, err := s.budgets.GetBudgetForMonth(ctx, ownerID, period.Month, period.Year)
		if err != nil {
			return report.Workbook{}, err
		}
		c := report.CompareBudget(budget, sum.Totals.Expense)
		cmp = &c
	}

	return report.Build(period, txs, sum, cmp), nil
}

// QueueSheetsExport validates the selector and enqueues an asynchronous
// export request for the worker.
func (s *StatsService) QueueSheetsExport(ctx context.Context, ownerID, selector string) error {
	period, err := core.ResolvePeriod(selector)
	if err != nil {
		return err
	}
	if s.exports == nil {
		return ErrExportQueueUnavailable
	}
	if err := s.exports.PublishExportRequest(ctx, ownerID, period.String()); err != nil {
		return fmt.Errorf("queue sheets export: %w", err)
	}
	return nil
}

func (s *StatsService) loadPeriod(ctx context.Context, ownerID string, period core.Period) ([]core.Transaction, error) {
	var filter storage.TransactionFilter
	if !period.All() {
		filter.From, filter.To = period.Range()
	}
	txs, err := s.transactions.ListTransactions(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("load period %s: %w", period, err)
	}
	return txs, nil
}
