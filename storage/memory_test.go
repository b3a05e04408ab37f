// storage/memory_test.go
package storage

import (
	"context"
	"sync"
	"testing"
	"time"

	"go-bank-console/bank"
	"go-bank-console/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *MemoryStore {
	t.Helper()
	at := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	registry := bank.NewRegistry(bank.DefaultPolicy(), bank.WithClock(func() time.Time { return at }))
	return NewMemoryStore(registry, nil)
}

func register(t *testing.T, s *MemoryStore, taxID, name string) {
	t.Helper()
	err := s.RegisterCustomer(context.Background(), model.RegisterCustomerRequest{
		TaxID:       taxID,
		FullName:    name,
		DateOfBirth: "10-10-1985",
		Address:     "Av. Brasil, 100 - Centro - Rio de Janeiro/RJ",
	})
	require.NoError(t, err)
}

func TestRegisterCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate tax id", func(t *testing.T) {
		s := newTestStore(t)
		register(t, s, "111", "Ana")

		err := s.RegisterCustomer(ctx, model.RegisterCustomerRequest{TaxID: "111", FullName: "Other"})

		assert.ErrorIs(t, err, bank.ErrDuplicateCustomer)
	})

	t.Run("missing fields", func(t *testing.T) {
		s := newTestStore(t)

		err := s.RegisterCustomer(ctx, model.RegisterCustomerRequest{TaxID: " ", FullName: "Ana"})

		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("cancelled context", func(t *testing.T) {
		s := newTestStore(t)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		err := s.RegisterCustomer(cctx, model.RegisterCustomerRequest{TaxID: "1", FullName: "Ana"})

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestOpenAndListAccounts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	register(t, s, "111", "Ana")
	register(t, s, "222", "Bruno")

	_, err := s.OpenAccount(ctx, "333")
	assert.ErrorIs(t, err, bank.ErrCustomerNotFound)

	first, err := s.OpenAccount(ctx, "222")
	require.NoError(t, err)
	second, err := s.OpenAccount(ctx, "111")
	require.NoError(t, err)

	assert.Equal(t, model.AccountSummary{Branch: "0001", AccountNumber: 1, Owner: "Bruno"}, *first)
	assert.Equal(t, 2, second.AccountNumber)

	list, err := s.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.AccountSummary{*first, *second}, list)
}

func TestDepositWithdrawStatement(t *testing.T) {
	ctx := context.Background()

	t.Run("customer without account", func(t *testing.T) {
		s := newTestStore(t)
		register(t, s, "111", "Ana")

		assert.ErrorIs(t, s.Deposit(ctx, "111", decimal.NewFromInt(10)), bank.ErrAccountNotFound)
		assert.ErrorIs(t, s.Deposit(ctx, "999", decimal.NewFromInt(10)), bank.ErrCustomerNotFound)
		_, err := s.Statement(ctx, "111")
		assert.ErrorIs(t, err, bank.ErrAccountNotFound)
	})

	t.Run("operations hit the primary account", func(t *testing.T) {
		// Arrange
		s := newTestStore(t)
		register(t, s, "111", "Ana")
		_, err := s.OpenAccount(ctx, "111")
		require.NoError(t, err)
		_, err = s.OpenAccount(ctx, "111")
		require.NoError(t, err)

		// Act
		require.NoError(t, s.Deposit(ctx, "111", decimal.RequireFromString("1000.00")))
		require.NoError(t, s.Withdraw(ctx, "111", decimal.RequireFromString("250.50")))
		errLimit := s.Withdraw(ctx, "111", decimal.RequireFromString("500.01"))
		errAmount := s.Deposit(ctx, "111", decimal.Zero)

		// Assert
		assert.ErrorIs(t, errLimit, bank.ErrLimitExceeded)
		assert.ErrorIs(t, errAmount, bank.ErrInvalidAmount)

		st, err := s.Statement(ctx, "111")
		require.NoError(t, err)
		assert.Equal(t, 1, st.AccountNumber)
		assert.Equal(t, "Ana", st.Owner)
		assert.True(t, st.Balance.Equal(decimal.RequireFromString("749.50")))
		require.Len(t, st.Transactions, 2)
		assert.Equal(t, "deposit", st.Transactions[0].Kind)
		assert.Equal(t, "withdrawal", st.Transactions[1].Kind)
		assert.NotEmpty(t, st.Transactions[0].ID)
		assert.Equal(t, time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC), st.Transactions[1].Timestamp)
	})
}

func TestConcurrentDepositsAreSerialized(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	register(t, s, "111", "Ana")
	_, err := s.OpenAccount(ctx, "111")
	require.NoError(t, err)

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Deposit(ctx, "111", decimal.NewFromInt(2)))
		}()
	}
	wg.Wait()

	st, err := s.Statement(ctx, "111")
	require.NoError(t, err)
	assert.Len(t, st.Transactions, workers)
	assert.True(t, st.Balance.Equal(decimal.NewFromInt(2*workers)))
}
