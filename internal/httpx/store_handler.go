package httpx

import (
	"context"
	"net/http"
	"time"

	"github.com/ariefcatur/go-kasir.git/internal/sales"
	"github.com/go-chi/chi/v5"
)

type StoreHandler struct {
	Profiles *sales.Profiles
}

func (h *StoreHandler) Register(r *chi.Mux) {
	r.Get("/store", h.get)
	r.Put("/store", h.save)
}

func (h *StoreHandler) get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	sp, err := h.Profiles.Get(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sp)
}

func (h *StoreHandler) save(w http.ResponseWriter, r *http.Request) {
	var sp sales.StoreProfile
	if !decode(w, r, &sp) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.Profiles.Save(ctx, sp); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sp)
}
