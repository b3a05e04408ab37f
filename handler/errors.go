package handler

import (
	"context"
	"errors"
	"net/http"

	"go-bank-console/bank"
	"go-bank-console/storage"
)

// statusFor maps store and domain errors to an HTTP status and a client message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, storage.ErrInvalidRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, bank.ErrInvalidAmount):
		return http.StatusBadRequest, "Amount must be greater than zero"
	case errors.Is(err, bank.ErrDuplicateCustomer):
		return http.StatusConflict, "A customer with this tax id already exists"
	case errors.Is(err, bank.ErrCustomerNotFound):
		return http.StatusNotFound, "Customer not found"
	case errors.Is(err, bank.ErrAccountNotFound):
		return http.StatusNotFound, "Customer has no accounts"
	case errors.Is(err, bank.ErrLimitExceeded):
		return http.StatusUnprocessableEntity, "Withdrawal exceeds the per-transaction limit"
	case errors.Is(err, bank.ErrWithdrawalCountExceeded):
		return http.StatusUnprocessableEntity, "Maximum number of withdrawals exceeded"
	case errors.Is(err, bank.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity, "Insufficient balance"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "Request cancelled"
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}
