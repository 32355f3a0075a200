package httpx

import (
	"context"
	"net/http"
	"time"

	"github.com/ariefcatur/go-kasir.git/internal/sales"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProductsHandler struct {
	Catalog *sales.Catalog
	Log     *zap.Logger
}

type pricingReq struct {
	Satuan  string `json:"satuan"`
	Panjang string `json:"panjang"`
	Lebar   string `json:"lebar"`
}

func (h *ProductsHandler) Register(r *chi.Mux) {
	r.Get("/products", h.list)
	r.Post("/products", h.create)
	r.Put("/products/{id}", h.update)
	r.Delete("/products/{id}", h.delete)
	r.Post("/pricing", h.calculate)
}

func (h *ProductsHandler) list(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	ps, err := h.Catalog.List(ctx, r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

func (h *ProductsHandler) create(w http.ResponseWriter, r *http.Request) {
	var in sales.ProductInput
	if !decode(w, r, &in) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	p, err := h.Catalog.Create(ctx, in)
	if err != nil {
		writeError(w, err)
		return
	}
	h.Log.Info("product created", zap.String("product_id", p.ID), zap.String("name", p.Name))
	writeJSON(w, http.StatusCreated, p)
}

// update = editProduct: full replacement, id dari URL.
func (h *ProductsHandler) update(w http.ResponseWriter, r *http.Request) {
	var p sales.Product
	if !decode(w, r, &p) {
		return
	}
	p.ID = chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	updated, err := h.Catalog.Update(ctx, p)
	if err != nil {
		writeError(w, err)
		return
	}
	if !updated {
		h.Log.Debug("product update: id not in catalog", zap.String("product_id", p.ID))
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductsHandler) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	deleted, err := h.Catalog.Delete(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !deleted {
		h.Log.Debug("product delete: id not in catalog", zap.String("product_id", id))
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductsHandler) calculate(w http.ResponseWriter, r *http.Request) {
	var req pricingReq
	if !decode(w, r, &req) {
		return
	}
	price, err := h.Catalog.CalculatePrice(req.Satuan, req.Panjang, req.Lebar)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"price": price})
}
