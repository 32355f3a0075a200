package sales

import (
	"encoding/json"
	"time"
)

const (
	EventTransactionCommitted = "TransactionCommitted"
	EventTransactionEdited    = "TransactionEdited"
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // transaction id
	Payload       json.RawMessage `json:"payload"`
}

// TransactionPayload carries the full record after commit or edit.
type TransactionPayload struct {
	Transaction Transaction `json:"transaction"`
}
