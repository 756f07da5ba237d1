package http //nolint:revive // directory-based package name, imported with alias

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const requestTimeout = 30 * time.Second

func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Post("/api/bills/validate", h.HandleValidate)
	r.Post("/api/bills/encode", h.HandleEncode)
	r.Post("/api/bills/decode", h.HandleDecode)
	r.Post("/api/bills/qr", h.HandleQR)

	r.Handle("/metrics", promhttp.Handler())

	return r
}
