package handler

import (
	"log/slog"
	"net/http"

	"go-bank-console/storage"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	store storage.Store
	log   *slog.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(store storage.Store, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{store: store, log: orDiscard(logger)}
}

// OpenAccountHandler opens the next sequential account for a customer.
//
// Method: POST
// Path: /customers/{tax_id}/accounts
// Success: 201 Created with the account summary
// Error: 404 Not Found (if the customer does not exist)
func (h *AccountHandler) OpenAccountHandler(w http.ResponseWriter, r *http.Request) {
	taxID, ok := taxIDFrom(w, r)
	if !ok {
		return
	}

	summary, err := h.store.OpenAccount(r.Context(), taxID)
	if err != nil {
		fail(h.log, w, "open account", err)
		return
	}
	writeJSON(h.log, w, http.StatusCreated, summary)
}

// ListAccountsHandler lists every account with its branch, number and holder.
//
// Method: GET
// Path: /accounts
// Success: 200 OK
func (h *AccountHandler) ListAccountsHandler(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.store.ListAccounts(r.Context())
	if err != nil {
		fail(h.log, w, "list accounts", err)
		return
	}
	writeJSON(h.log, w, http.StatusOK, accounts)
}
