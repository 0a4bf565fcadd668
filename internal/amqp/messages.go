package amqp

import (
	"encoding/json"
	"time"
)

// ExportRequestMessage asks the worker to render a report for one owner
// and period and publish it to the configured spreadsheet. It carries only
// identifiers; the worker re-reads the ledger snapshot itself.
type ExportRequestMessage struct {
	OwnerID     string    `json:"ownerId"`
	Period      string    `json:"period"` // "all" or YYYY-MM
	RequestedAt time.Time `json:"requestedAt"`
}

// NewExportRequestMessage creates an export request for an owner and a
// resolved period selector.
func NewExportRequestMessage(ownerID, period string) *ExportRequestMessage {
	return &ExportRequestMessage{
		OwnerID:     ownerID,
		Period:      period,
		RequestedAt: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *ExportRequestMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ExportRequestMessageFromJSON creates a message from JSON bytes.
func ExportRequestMessageFromJSON(data []byte) (*ExportRequestMessage, error) {
	var msg ExportRequestMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
