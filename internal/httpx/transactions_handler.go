package httpx

import (
	"context"
	"net/http"
	"time"

	"github.com/ariefcatur/go-kasir.git/internal/receipt"
	"github.com/ariefcatur/go-kasir.git/internal/sales"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type TransactionsHandler struct {
	Ledger   *sales.Ledger
	Profiles *sales.Profiles
	Edited   Publisher
	Service  string
	Location *time.Location
	Log      *zap.Logger
}

func (h *TransactionsHandler) Register(r *chi.Mux) {
	r.Get("/transactions", h.list)
	r.Get("/transactions/{id}", h.get)
	r.Patch("/transactions/{id}", h.edit)
	r.Get("/transactions/{id}/receipt", h.receipt)
}

func (h *TransactionsHandler) list(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	list, err := h.Ledger.List(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *TransactionsHandler) get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	trx, err := h.Ledger.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trx)
}

// edit: id yang tidak ada tetap 204 (silent no-op).
func (h *TransactionsHandler) edit(w http.ResponseWriter, r *http.Request) {
	var patch sales.TransactionPatch
	if !decode(w, r, &patch) {
		return
	}
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	trx, found, err := h.Ledger.Edit(ctx, id, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	if !found {
		h.Log.Debug("transaction edit: id not in ledger", zap.String("transaction_id", id))
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.Log.Info("transaction edited",
		zap.String("transaction_id", id),
		zap.Float64("paid", trx.Paid),
		zap.Float64("change", trx.Change))

	publishTransaction(h.Edited, h.Service, sales.EventTransactionEdited, middleware.GetReqID(r.Context()), trx)
	w.WriteHeader(http.StatusNoContent)
}

func (h *TransactionsHandler) receipt(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	trx, err := h.Ledger.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	profile, err := h.Profiles.Get(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(receipt.Render(profile, trx, h.Location)))
}
