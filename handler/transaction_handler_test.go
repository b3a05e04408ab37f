package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-bank-console/bank"
	"go-bank-console/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepositHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockStore := &MockStore{
			DepositFunc: func(ctx context.Context, taxID string, amount decimal.Decimal) error {
				assert.Equal(t, "111", taxID)
				assert.True(t, amount.Equal(decimal.RequireFromString("100.50")))
				return nil
			},
		}
		req := httptest.NewRequest("POST", "/customers/111/deposits", strings.NewReader(`{"amount":"100.50"}`))
		rr := httptest.NewRecorder()

		NewRouter(mockStore, nil).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("invalid amount", func(t *testing.T) {
		mockStore := &MockStore{
			DepositFunc: func(ctx context.Context, taxID string, amount decimal.Decimal) error {
				return fmt.Errorf("deposit on account 1: %w", bank.ErrInvalidAmount)
			},
		}
		req := httptest.NewRequest("POST", "/customers/111/deposits", strings.NewReader(`{"amount":"0"}`))
		rr := httptest.NewRecorder()

		NewRouter(mockStore, nil).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/customers/111/deposits", strings.NewReader(`{"amount":true}`))
		rr := httptest.NewRecorder()

		NewRouter(&MockStore{}, nil).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestWithdrawHandler(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"success", nil, http.StatusOK},
		{"limit exceeded", bank.ErrLimitExceeded, http.StatusUnprocessableEntity},
		{"count exceeded", bank.ErrWithdrawalCountExceeded, http.StatusUnprocessableEntity},
		{"insufficient balance", bank.ErrInsufficientBalance, http.StatusUnprocessableEntity},
		{"no account", bank.ErrAccountNotFound, http.StatusNotFound},
		{"no customer", bank.ErrCustomerNotFound, http.StatusNotFound},
		{"cancelled", context.Canceled, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockStore := &MockStore{
				WithdrawFunc: func(ctx context.Context, taxID string, amount decimal.Decimal) error {
					if tc.err == nil {
						return nil
					}
					return fmt.Errorf("withdrawal on account 1: %w", tc.err)
				},
			}
			req := httptest.NewRequest("POST", "/customers/111/withdrawals", strings.NewReader(`{"amount":"50"}`))
			rr := httptest.NewRecorder()

			NewRouter(mockStore, nil).ServeHTTP(rr, req)

			assert.Equal(t, tc.wantCode, rr.Code)
		})
	}
}

func TestStatementHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		at := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
		mockStore := &MockStore{
			StatementFunc: func(ctx context.Context, taxID string) (*model.StatementResponse, error) {
				return &model.StatementResponse{
					Branch:        "0001",
					AccountNumber: 1,
					Owner:         "Ana",
					Transactions: []model.TransactionView{
						{ID: "a", Kind: "deposit", Amount: decimal.NewFromInt(100), Timestamp: at},
					},
					Balance: decimal.NewFromInt(100),
				}, nil
			},
		}
		req := httptest.NewRequest("GET", "/customers/111/statement", nil)
		rr := httptest.NewRecorder()

		NewRouter(mockStore, nil).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var st model.StatementResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &st))
		require.Len(t, st.Transactions, 1)
		assert.True(t, st.Balance.Equal(decimal.NewFromInt(100)))
	})

	t.Run("wrong method", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/customers/111/statement", nil)
		rr := httptest.NewRecorder()

		NewRouter(&MockStore{}, nil).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})
}
