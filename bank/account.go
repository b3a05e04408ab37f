package bank

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultBranch is the branch code assigned to every account.
const DefaultBranch = "0001"

// Window selects which withdrawals count towards the withdrawal cap.
type Window string

const (
	// WindowDaily counts only withdrawals recorded on the current calendar day.
	WindowDaily Window = "daily"

	// WindowLifetime counts every withdrawal in the ledger.
	WindowLifetime Window = "lifetime"
)

// ParseWindow converts a configuration value into a Window.
func ParseWindow(s string) (Window, error) {
	switch w := Window(strings.ToLower(strings.TrimSpace(s))); w {
	case WindowDaily, WindowLifetime:
		return w, nil
	default:
		return "", fmt.Errorf("unknown withdrawal window %q", s)
	}
}

// Policy holds the rules applied to new accounts.
type Policy struct {
	Branch          string
	WithdrawalLimit decimal.Decimal
	MaxWithdrawals  int
	Window          Window
	// AllowOverdraft skips the balance check on withdrawals.
	AllowOverdraft bool
}

// DefaultPolicy returns branch 0001, a 500.00 per-withdrawal limit and
// at most 3 withdrawals per day, with the balance check enabled.
func DefaultPolicy() Policy {
	return Policy{
		Branch:          DefaultBranch,
		WithdrawalLimit: decimal.NewFromInt(500),
		MaxWithdrawals:  3,
		Window:          WindowDaily,
	}
}

// Account is a checking account owned by exactly one customer.
type Account struct {
	number  int
	branch  string
	balance decimal.Decimal
	policy  Policy
	owner   *Customer
	ledger  Ledger
	now     func() time.Time
}

// NewAccount creates an empty account. Callers normally go through
// Registry.CreateAccount, which assigns the number and registers the owner.
func NewAccount(number int, owner *Customer, policy Policy) *Account {
	return newAccount(number, owner, policy, time.Now)
}

func newAccount(number int, owner *Customer, policy Policy, now func() time.Time) *Account {
	if policy.Branch == "" {
		policy.Branch = DefaultBranch
	}
	if policy.Window == "" {
		policy.Window = WindowDaily
	}
	return &Account{
		number:  number,
		branch:  policy.Branch,
		balance: decimal.Zero,
		policy:  policy,
		owner:   owner,
		now:     now,
	}
}

func (a *Account) Number() int              { return a.number }
func (a *Account) Branch() string           { return a.branch }
func (a *Account) Balance() decimal.Decimal { return a.balance }
func (a *Account) Owner() *Customer         { return a.owner }
func (a *Account) Policy() Policy           { return a.policy }

// Ledger exposes the read-only view of the account history.
func (a *Account) Ledger() *Ledger { return &a.ledger }

// Deposit credits the account and records the deposit.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	a.ledger.record(KindDeposit, amount, a.now())
	return nil
}

// Withdraw debits the account. Guards run in a fixed order and the first
// failing one decides the error: limit, withdrawal count, balance, amount.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	switch {
	case amount.GreaterThan(a.policy.WithdrawalLimit):
		return ErrLimitExceeded
	case a.WithdrawalsInWindow() >= a.policy.MaxWithdrawals:
		return ErrWithdrawalCountExceeded
	case amount.IsPositive():
		if !a.policy.AllowOverdraft && amount.GreaterThan(a.balance) {
			return ErrInsufficientBalance
		}
		a.balance = a.balance.Sub(amount)
		a.ledger.record(KindWithdrawal, amount, a.now())
		return nil
	default:
		return ErrInvalidAmount
	}
}

// WithdrawalsInWindow returns how many withdrawals count against the cap right now.
func (a *Account) WithdrawalsInWindow() int {
	if a.policy.Window == WindowLifetime {
		return a.ledger.Count(KindWithdrawal, nil)
	}
	now := a.now()
	return a.ledger.Count(KindWithdrawal, func(tx Transaction) bool {
		return sameDay(tx.Timestamp, now)
	})
}

// RemainingWithdrawals returns how many more withdrawals the cap allows.
func (a *Account) RemainingWithdrawals() int {
	if n := a.policy.MaxWithdrawals - a.WithdrawalsInWindow(); n > 0 {
		return n
	}
	return 0
}

// Statement is a point-in-time copy of an account history and balance.
type Statement struct {
	Transactions []Transaction
	Balance      decimal.Decimal
}

// Statement returns the full history and the current balance without changing anything.
func (a *Account) Statement() Statement {
	return Statement{
		Transactions: a.ledger.Transactions(),
		Balance:      a.balance,
	}
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.In(a.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
