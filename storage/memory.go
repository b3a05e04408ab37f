// storage/memory.go

package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"go-bank-console/bank"
	"go-bank-console/model"

	"github.com/shopspring/decimal"
)

// MemoryStore implements Store on top of a bank.Registry held in memory.
// Every call holds the store lock for its whole duration, so commands run
// one at a time in arrival order.
type MemoryStore struct {
	mu       sync.Mutex
	registry *bank.Registry
	log      *slog.Logger
}

// NewMemoryStore wraps registry. A nil logger discards log output.
func NewMemoryStore(registry *bank.Registry, logger *slog.Logger) *MemoryStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &MemoryStore{registry: registry, log: logger}
}

// RegisterCustomer adds a customer. Tax ID and full name are required.
func (s *MemoryStore) RegisterCustomer(ctx context.Context, req model.RegisterCustomerRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(req.TaxID) == "" || strings.TrimSpace(req.FullName) == "" {
		return fmt.Errorf("tax id and full name are required: %w", ErrInvalidRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.registry.CreateCustomer(bank.Profile{
		TaxID:       req.TaxID,
		FullName:    req.FullName,
		DateOfBirth: req.DateOfBirth,
		Address:     req.Address,
	})
	if err != nil {
		s.log.Warn("customer registration rejected", "tax_id", req.TaxID, "error", err)
		return err
	}
	s.log.Info("customer registered", "tax_id", req.TaxID)
	return nil
}

// OpenAccount opens the next account for the customer with taxID.
func (s *MemoryStore) OpenAccount(ctx context.Context, taxID string) (*model.AccountSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, err := s.registry.CreateAccount(taxID)
	if err != nil {
		s.log.Warn("account opening rejected", "tax_id", taxID, "error", err)
		return nil, err
	}
	s.log.Info("account opened", "tax_id", taxID, "branch", acc.Branch(), "number", acc.Number())
	summary := summarize(acc)
	return &summary, nil
}

// ListAccounts returns every account in creation order.
func (s *MemoryStore) ListAccounts(ctx context.Context) ([]model.AccountSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := s.registry.Accounts()
	out := make([]model.AccountSummary, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, summarize(acc))
	}
	return out, nil
}

// Deposit credits the primary account of the customer with taxID.
func (s *MemoryStore) Deposit(ctx context.Context, taxID string, amount decimal.Decimal) error {
	return s.execute(ctx, taxID, bank.NewDeposit(amount))
}

// Withdraw debits the primary account of the customer with taxID.
func (s *MemoryStore) Withdraw(ctx context.Context, taxID string, amount decimal.Decimal) error {
	return s.execute(ctx, taxID, bank.NewWithdrawal(amount))
}

func (s *MemoryStore) execute(ctx context.Context, taxID string, op bank.Operation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customer, acc, err := s.registry.PrimaryAccount(taxID)
	if err != nil {
		return err
	}
	if err := customer.Execute(acc, op); err != nil {
		s.log.Warn("operation rejected",
			"kind", op.Kind(),
			"tax_id", taxID,
			"account", acc.Number(),
			"amount", op.Amount().String(),
			"error", err,
		)
		return fmt.Errorf("%s on account %d: %w", op.Kind(), acc.Number(), err)
	}
	s.log.Info("operation completed",
		"kind", op.Kind(),
		"tax_id", taxID,
		"account", acc.Number(),
		"amount", op.Amount().String(),
		"balance", acc.Balance().String(),
	)
	return nil
}

// Statement returns the history and balance of the customer's primary account.
func (s *MemoryStore) Statement(ctx context.Context, taxID string) (*model.StatementResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customer, acc, err := s.registry.PrimaryAccount(taxID)
	if err != nil {
		return nil, err
	}
	st := acc.Statement()
	resp := &model.StatementResponse{
		Branch:        acc.Branch(),
		AccountNumber: acc.Number(),
		Owner:         customer.Name(),
		Transactions:  make([]model.TransactionView, 0, len(st.Transactions)),
		Balance:       st.Balance,
	}
	for _, tx := range st.Transactions {
		resp.Transactions = append(resp.Transactions, model.TransactionView{
			ID:        tx.ID.String(),
			Kind:      string(tx.Kind),
			Amount:    tx.Amount,
			Timestamp: tx.Timestamp,
		})
	}
	return resp, nil
}

func summarize(acc *bank.Account) model.AccountSummary {
	return model.AccountSummary{
		Branch:        acc.Branch(),
		AccountNumber: acc.Number(),
		Owner:         acc.Owner().Name(),
	}
}

// Compile-time check that MemoryStore satisfies Store.
var _ Store = (*MemoryStore)(nil)
