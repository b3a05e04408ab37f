// Package model defines the request and response shapes shared by the
// session store and its front ends.
//
// Amounts use github.com/shopspring/decimal instead of float64 so that
// values like 0.1 are exact and balances never drift. JSON encodes them
// as strings, e.g. "1500.75".
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterCustomerRequest defines the expected JSON body for registering a customer.
type RegisterCustomerRequest struct {
	TaxID       string `json:"tax_id"`
	FullName    string `json:"full_name"`
	DateOfBirth string `json:"date_of_birth"`
	Address     string `json:"address"`
}

// AmountRequest defines the expected JSON body for a deposit or a withdrawal.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// TransactionView is one statement line.
type TransactionView struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
}

// StatementResponse is the history and balance of a customer's primary account.
type StatementResponse struct {
	Branch        string            `json:"branch"`
	AccountNumber int               `json:"account_number"`
	Owner         string            `json:"owner"`
	Transactions  []TransactionView `json:"transactions"`
	Balance       decimal.Decimal   `json:"balance"`
}

// AccountSummary identifies an account and its holder.
type AccountSummary struct {
	Branch        string `json:"branch"`
	AccountNumber int    `json:"account_number"`
	Owner         string `json:"owner"`
}
