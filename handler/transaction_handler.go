package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"go-bank-console/model"
	"go-bank-console/storage"
)

// TransactionHandler holds dependencies for deposit, withdrawal and statement handlers.
type TransactionHandler struct {
	store storage.Store
	log   *slog.Logger
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(store storage.Store, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{store: store, log: orDiscard(logger)}
}

// DepositHandler credits the customer's primary account.
// It expects a JSON body with "amount".
//
// Method: POST
// Path: /customers/{tax_id}/deposits
// Success: 200 OK
// Error: 400 Bad Request (for invalid JSON or a non-positive amount)
// Error: 404 Not Found (unknown customer or customer without accounts)
func (h *TransactionHandler) DepositHandler(w http.ResponseWriter, r *http.Request) {
	taxID, req, ok := h.decode(w, r)
	if !ok {
		return
	}
	if err := h.store.Deposit(r.Context(), taxID, req.Amount); err != nil {
		fail(h.log, w, "deposit", err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// WithdrawHandler debits the customer's primary account.
// It expects a JSON body with "amount".
//
// Method: POST
// Path: /customers/{tax_id}/withdrawals
// Success: 200 OK
// Error: 400 Bad Request (for invalid JSON or a non-positive amount)
// Error: 404 Not Found (unknown customer or customer without accounts)
// Error: 422 Unprocessable Entity (limit, withdrawal count or balance rules)
func (h *TransactionHandler) WithdrawHandler(w http.ResponseWriter, r *http.Request) {
	taxID, req, ok := h.decode(w, r)
	if !ok {
		return
	}
	if err := h.store.Withdraw(r.Context(), taxID, req.Amount); err != nil {
		fail(h.log, w, "withdraw", err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// StatementHandler returns the history and balance of the customer's primary account.
//
// Method: GET
// Path: /customers/{tax_id}/statement
// Success: 200 OK
// Error: 404 Not Found (unknown customer or customer without accounts)
func (h *TransactionHandler) StatementHandler(w http.ResponseWriter, r *http.Request) {
	taxID, ok := taxIDFrom(w, r)
	if !ok {
		return
	}
	st, err := h.store.Statement(r.Context(), taxID)
	if err != nil {
		fail(h.log, w, "statement", err)
		return
	}
	writeJSON(h.log, w, http.StatusOK, st)
}

func (h *TransactionHandler) decode(w http.ResponseWriter, r *http.Request) (string, model.AmountRequest, bool) {
	var req model.AmountRequest
	taxID, ok := taxIDFrom(w, r)
	if !ok {
		return "", req, false
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return "", req, false
	}
	return taxID, req, true
}
