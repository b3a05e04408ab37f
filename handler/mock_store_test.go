package handler

import (
	"context"

	"go-bank-console/model"

	"github.com/shopspring/decimal"
)

// MockStore provides a mock implementation of the storage.Store for testing.
type MockStore struct {
	RegisterCustomerFunc func(ctx context.Context, req model.RegisterCustomerRequest) error
	OpenAccountFunc      func(ctx context.Context, taxID string) (*model.AccountSummary, error)
	ListAccountsFunc     func(ctx context.Context) ([]model.AccountSummary, error)
	DepositFunc          func(ctx context.Context, taxID string, amount decimal.Decimal) error
	WithdrawFunc         func(ctx context.Context, taxID string, amount decimal.Decimal) error
	StatementFunc        func(ctx context.Context, taxID string) (*model.StatementResponse, error)
}

func (m *MockStore) RegisterCustomer(ctx context.Context, req model.RegisterCustomerRequest) error {
	return m.RegisterCustomerFunc(ctx, req)
}

func (m *MockStore) OpenAccount(ctx context.Context, taxID string) (*model.AccountSummary, error) {
	return m.OpenAccountFunc(ctx, taxID)
}

func (m *MockStore) ListAccounts(ctx context.Context) ([]model.AccountSummary, error) {
	return m.ListAccountsFunc(ctx)
}

func (m *MockStore) Deposit(ctx context.Context, taxID string, amount decimal.Decimal) error {
	return m.DepositFunc(ctx, taxID, amount)
}

func (m *MockStore) Withdraw(ctx context.Context, taxID string, amount decimal.Decimal) error {
	return m.WithdrawFunc(ctx, taxID, amount)
}

func (m *MockStore) Statement(ctx context.Context, taxID string) (*model.StatementResponse, error) {
	return m.StatementFunc(ctx, taxID)
}
