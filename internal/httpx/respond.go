package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	kafkax "github.com/ariefcatur/go-kasir.git/internal/kafka"
	"github.com/ariefcatur/go-kasir.git/internal/sales"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
)

// Publisher is satisfied by *kafka.Producer. Nil disables publishing.
type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

// writeJSON encodes v before writing the header; nilai yang gagal di-encode
// (mis. +Inf) dijawab 500.
func writeJSON(w http.ResponseWriter, code int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		code = http.StatusInternalServerError
		b, _ = json.Marshal(map[string]string{"error": "response encoding failed"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(append(b, '\n'))
}

func writeError(w http.ResponseWriter, err error) {
	var ve *sales.ValidationError
	switch {
	case errors.Is(err, sales.ErrMissingInput), errors.Is(err, sales.ErrOutOfRange):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	case errors.As(err, &ve):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": ve.Reason})
	case errors.Is(err, sales.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return false
	}
	return true
}

// publishTransaction wraps trx in an envelope v1 and hands it to pub.
func publishTransaction(pub Publisher, service, eventType, traceID string, trx sales.Transaction) {
	if pub == nil {
		return
	}
	ev := sales.Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      service,
		TraceID:       traceID,
		CorrelationID: trx.ID,
		Payload:       kafkax.MustMarshal(sales.TransactionPayload{Transaction: trx}),
	}
	pub.Publish(sales.PartitionKey(trx.ID), kafkax.MustMarshal(ev), kafkax.EventHeaders(eventType, 1)...)
}
