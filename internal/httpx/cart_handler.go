package httpx

import (
	"context"
	"net/http"
	"time"

	"github.com/ariefcatur/go-kasir.git/internal/sales"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type CartHandler struct {
	Catalog   *sales.Catalog
	Checkout  *sales.Checkout
	Committed Publisher
	Service   string
	Log       *zap.Logger
}

type addItemReq struct {
	ProductID string `json:"product_id"`
}

// Field nil = tidak diubah.
type checkoutReq struct {
	Payment      *string `json:"payment"`
	CustomerName *string `json:"customer_name"`
	Status       *string `json:"status"`
}

func (h *CartHandler) Register(r *chi.Mux) {
	r.Get("/cart", h.view)
	r.Post("/cart/items", h.addItem)
	r.Delete("/cart/items/{productId}", h.removeItem)
	r.Put("/cart/checkout", h.setCheckout)
	r.Post("/cart/commit", h.commit)
	r.Post("/cart/reset", h.reset)
}

func (h *CartHandler) view(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Checkout.View())
}

func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemReq
	if !decode(w, r, &req) {
		return
	}
	if req.ProductID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing product_id"})
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	p, err := h.Catalog.Get(ctx, req.ProductID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.Checkout.AddToCart(p))
}

func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Checkout.RemoveFromCart(chi.URLParam(r, "productId")))
}

func (h *CartHandler) setCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutReq
	if !decode(w, r, &req) {
		return
	}
	if req.Status != nil {
		if _, err := h.Checkout.SetStatus(sales.Status(*req.Status)); err != nil {
			writeError(w, err)
			return
		}
	}
	if req.Payment != nil {
		h.Checkout.SetPayment(*req.Payment)
	}
	if req.CustomerName != nil {
		h.Checkout.SetCustomerName(*req.CustomerName)
	}
	writeJSON(w, http.StatusOK, h.Checkout.View())
}

func (h *CartHandler) commit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	trx, err := h.Checkout.Commit(ctx)
	if err != nil {
		if sales.IsValidation(err) {
			h.Log.Info("commit rejected", zap.String("reason", err.Error()))
		} else {
			h.Log.Error("commit failed", zap.Error(err))
		}
		writeError(w, err)
		return
	}
	h.Log.Info("transaction committed",
		zap.String("transaction_id", trx.ID),
		zap.Float64("total", trx.Total),
		zap.String("status", string(trx.Status)))

	publishTransaction(h.Committed, h.Service, sales.EventTransactionCommitted, middleware.GetReqID(r.Context()), trx)
	writeJSON(w, http.StatusCreated, trx)
}

// reset dipanggil saat struk ditutup.
func (h *CartHandler) reset(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Checkout.Reset())
}
