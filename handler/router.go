package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"go-bank-console/model"
	"go-bank-console/storage"

	"github.com/gorilla/mux"
)

// NewRouter wires every endpoint of the bank API onto a mux router.
func NewRouter(store storage.Store, logger *slog.Logger) *mux.Router {
	logger = orDiscard(logger)
	customers := NewCustomerHandler(store, logger)
	accounts := NewAccountHandler(store, logger)
	transactions := NewTransactionHandler(store, logger)

	r := mux.NewRouter()
	r.Use(requestLogger(logger))
	r.HandleFunc("/health", healthHandler).Methods("GET")
	r.HandleFunc("/customers", customers.RegisterCustomerHandler).Methods("POST")
	r.HandleFunc("/customers/{tax_id}/accounts", accounts.OpenAccountHandler).Methods("POST")
	r.HandleFunc("/customers/{tax_id}/deposits", transactions.DepositHandler).Methods("POST")
	r.HandleFunc("/customers/{tax_id}/withdrawals", transactions.WithdrawHandler).Methods("POST")
	r.HandleFunc("/customers/{tax_id}/statement", transactions.StatementHandler).Methods("GET")
	r.HandleFunc("/accounts", accounts.ListAccountsHandler).Methods("GET")
	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, `{"status":"ok"}`)
}

func taxIDFrom(w http.ResponseWriter, r *http.Request) (string, bool) {
	taxID := model.SanitizeTaxID(mux.Vars(r)["tax_id"])
	if taxID == "" {
		http.Error(w, "Tax id is required", http.StatusBadRequest)
		return "", false
	}
	return taxID, true
}

func fail(l *slog.Logger, w http.ResponseWriter, op string, err error) {
	status, msg := statusFor(err)
	if status >= http.StatusInternalServerError {
		l.Error("request failed", "op", op, "error", err)
	}
	http.Error(w, msg, status)
}

func writeJSON(l *slog.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		l.Error("writing JSON response", "error", err)
	}
}

func orDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func requestLogger(l *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(sw, r)
			l.Info("http_request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}
