package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"go-bank-console/model"
	"go-bank-console/storage"
)

// CustomerHandler holds dependencies for customer-related handlers.
type CustomerHandler struct {
	store storage.Store
	log   *slog.Logger
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(store storage.Store, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{store: store, log: orDiscard(logger)}
}

// RegisterCustomerHandler registers a new customer.
// It expects a JSON body with "tax_id", "full_name", "date_of_birth" and "address".
//
// Method: POST
// Path: /customers
// Success: 201 Created
// Error: 400 Bad Request (for invalid JSON or missing fields)
// Error: 409 Conflict (if the tax id is already registered)
func (h *CustomerHandler) RegisterCustomerHandler(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	req.TaxID = model.SanitizeTaxID(req.TaxID)

	if err := h.store.RegisterCustomer(r.Context(), req); err != nil {
		fail(h.log, w, "register customer", err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}
