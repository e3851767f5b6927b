package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Heaven123321/tekbir-backend/internal/domain/orders"
)

// OrderService принимает заказ с сайта: уведомляет оператора и ставит
// позиции в резерв. Реализуется телеграм-ботом.
type OrderService interface {
	SubmitOrder(ctx context.Context, ord orders.Order) error
}

type Server struct {
	srv *http.Server
	log *slog.Logger
}

func New(addr string, exposeMetrics bool, svc OrderService, log *slog.Logger) *Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if exposeMetrics {
		mux.Handle("/metrics", promhttp.Handler())
	}

	s := &Server{log: log}
	mux.Handle("POST /order", s.orderHandler(svc))

	s.srv = &http.Server{Addr: addr, Handler: mux}
	return s
}

func (s *Server) orderHandler(svc OrderService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := s.log.With("request_id", uuid.NewString())

		var ord orders.Order
		if err := json.NewDecoder(r.Body).Decode(&ord); err != nil {
			log.Warn("некорректное тело заказа", "err", err)
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid order payload"})
			return
		}
		if err := ord.Validate(); err != nil {
			log.Warn("заказ не прошёл валидацию", "err", err)
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid order payload"})
			return
		}

		if err := svc.SubmitOrder(r.Context(), ord); err != nil {
			log.Error("обработка заказа", "err", err)
			writeJSON(w, http.StatusInternalServerError, map[string]any{"ok": false, "error": err.Error()})
			return
		}

		log.Info("заказ принят", "items", len(ord.Items), "total", ord.Total)
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) Start() error {
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
