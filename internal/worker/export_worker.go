// Package worker runs the asynchronous export pipeline: it drains queued
// export requests, rebuilds the report workbook for each, and publishes
// the result to the configured spreadsheet.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/amqp"
	"fintrack/internal/core"
	"fintrack/internal/export"
	"fintrack/internal/report"
)

// WorkbookBuilder rebuilds the report workbook for one owner and period
// selector. Implemented by the stats service.
type WorkbookBuilder interface {
	ExportWorkbook(ctx context.Context, ownerID, selector string) (report.Workbook, error)
}

// RequestSource delivers queued export requests. Implemented by the amqp
// client.
type RequestSource interface {
	ConsumeExportRequests(ctx context.Context, handler func(*amqp.ExportRequestMessage) error) error
}

// Config holds tunables for the export worker.
type Config struct {
	// RequestTimeout bounds the rebuild-and-publish cycle for a single
	// request (default: 60s).
	RequestTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{RequestTimeout: 60 * time.Second}
}

type ExportWorker struct {
	source    RequestSource
	builder   WorkbookBuilder
	publisher export.Publisher
	config    Config
}

func NewExportWorker(source RequestSource, builder WorkbookBuilder, publisher export.Publisher, config Config) *ExportWorker {
	if config.RequestTimeout <= 0 {
		config.RequestTimeout = DefaultConfig().RequestTimeout
	}
	return &ExportWorker{
		source:    source,
		builder:   builder,
		publisher: publisher,
		config:    config,
	}
}

// Run consumes export requests until ctx is cancelled.
func (w *ExportWorker) Run(ctx context.Context) error {
	return w.source.ConsumeExportRequests(ctx, func(msg *amqp.ExportRequestMessage) error {
		return w.process(ctx, msg)
	})
}

func (w *ExportWorker) process(ctx context.Context, msg *amqp.ExportRequestMessage) error {
	ctx, cancel := context.WithTimeout(ctx, w.config.RequestTimeout)
	defer cancel()

	started := time.Now()

	wb, err := w.builder.ExportWorkbook(ctx, msg.OwnerID, msg.Period)
	if err != nil {
		// A malformed period cannot succeed on retry; drop it instead of
		// requeueing a poison message.
		if errors.Is(err, core.ErrInvalidPeriod) {
			slog.ErrorContext(ctx, "Dropping export request with invalid period",
				"owner_id", msg.OwnerID,
				"period", msg.Period)
			return nil
		}
		return fmt.Errorf("build workbook: %w", err)
	}

	if err := w.publisher.Publish(ctx, wb); err != nil {
		return fmt.Errorf("publish workbook: %w", err)
	}

	slog.InfoContext(ctx, "Export completed",
		"owner_id", msg.OwnerID,
		"period", msg.Period,
		"duration", time.Since(started))
	return nil
}
