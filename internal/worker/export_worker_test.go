package worker

import (
	"context"
	"errors"
	"testing"

	"fintrack/internal/amqp"
	"fintrack/internal/core"
	"fintrack/internal/report"
)

type fakeBuilder struct {
	wb  report.Workbook
	err error
}

func (f fakeBuilder) ExportWorkbook(_ context.Context, _, _ string) (report.Workbook, error) {
	return f.wb, f.err
}

type fakePublisher struct {
	published []report.Workbook
	err       error
}

func (f *fakePublisher) Publish(_ context.Context, wb report.Workbook) error {
	f.published = append(f.published, wb)
	return f.err
}

func TestProcessPublishesWorkbook(t *testing.T) {
	pub := &fakePublisher{}
	w := NewExportWorker(nil, fakeBuilder{wb: report.Workbook{Period: core.Period{Month: 3, Year: 2024}}}, pub, DefaultConfig())

	msg := amqp.NewExportRequestMessage("owner-1", "2024-03")
	if err := w.process(context.Background(), msg); err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(pub.published) != 1 {
		t.Fatalf("published %d workbooks, want 1", len(pub.published))
	}
	if got := pub.published[0].Period.String(); got != "2024-03" {
		t.Errorf("published period = %s, want 2024-03", got)
	}
}

func TestProcessDropsInvalidPeriod(t *testing.T) {
	pub := &fakePublisher{}
	w := NewExportWorker(nil, fakeBuilder{err: core.ErrInvalidPeriod}, pub, DefaultConfig())

	msg := amqp.NewExportRequestMessage("owner-1", "2024-13")
	if err := w.process(context.Background(), msg); err != nil {
		t.Fatalf("invalid period should be dropped, got error: %v", err)
	}
	if len(pub.published) != 0 {
		t.Fatalf("published %d workbooks, want 0", len(pub.published))
	}
}

func TestProcessReturnsBuilderError(t *testing.T) {
	wantErr := errors.New("storage down")
	w := NewExportWorker(nil, fakeBuilder{err: wantErr}, &fakePublisher{}, DefaultConfig())

	msg := amqp.NewExportRequestMessage("owner-1", "2024-03")
	if err := w.process(context.Background(), msg); !errors.Is(err, wantErr) {
		t.Fatalf("process error = %v, want %v", err, wantErr)
	}
}

func TestProcessReturnsPublisherError(t *testing.T) {
	wantErr := errors.New("sheets unavailable")
	w := NewExportWorker(nil, fakeBuilder{}, &fakePublisher{err: wantErr}, DefaultConfig())

	msg := amqp.NewExportRequestMessage("owner-1", "all")
	if err := w.process(context.Background(), msg); !errors.Is(err, wantErr) {
		t.Fatalf("process error = %v, want %v", err, wantErr)
	}
}
