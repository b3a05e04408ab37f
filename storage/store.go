// storage/store.go

package storage

import (
	"context"
	"errors"

	"go-bank-console/model"

	"github.com/shopspring/decimal"
)

// ErrInvalidRequest is returned when a request misses required fields.
var ErrInvalidRequest = errors.New("invalid request")

// Store defines the operations the front ends run against the bank session.
// Domain failures are reported with the sentinel errors of package bank.
type Store interface {
	RegisterCustomer(ctx context.Context, req model.RegisterCustomerRequest) error
	OpenAccount(ctx context.Context, taxID string) (*model.AccountSummary, error)
	ListAccounts(ctx context.Context) ([]model.AccountSummary, error)
	Deposit(ctx context.Context, taxID string, amount decimal.Decimal) error
	Withdraw(ctx context.Context, taxID string, amount decimal.Decimal) error
	Statement(ctx context.Context, taxID string) (*model.StatementResponse, error)
}
