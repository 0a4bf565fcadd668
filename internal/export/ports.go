package export

import (
	"context"

	"fintrack/internal/report"
)

// Ports for outbound report rendering.
type (
	// Encoder renders a workbook to a binary document (xlsx).
	Encoder interface {
		Encode(wb report.Workbook) ([]byte, error)
	}

	// Publisher pushes a workbook to an external destination, one tab per
	// table. Used by the async export worker.
	Publisher interface {
		Publish(ctx context.Context, wb report.Workbook) error
	}
)
