package bank

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind identifies the type of a ledger record.
type Kind string

const (
	// KindDeposit marks money entering the account.
	KindDeposit Kind = "deposit"

	// KindWithdrawal marks money leaving the account.
	KindWithdrawal Kind = "withdrawal"
)

// Label returns the display name used on statements.
func (k Kind) Label() string {
	switch k {
	case KindDeposit:
		return "Deposit"
	case KindWithdrawal:
		return "Withdrawal"
	default:
		return string(k)
	}
}

// Transaction is one completed deposit or withdrawal as stored in a ledger.
// Values are copied out of the ledger, so a recorded transaction never changes.
type Transaction struct {
	ID        uuid.UUID
	Kind      Kind
	Amount    decimal.Decimal
	Timestamp time.Time
}

// Operation is a requested deposit or withdrawal that a customer executes
// against one of its accounts. The set of variants is closed: Deposit and Withdrawal.
type Operation interface {
	Kind() Kind
	Amount() decimal.Decimal
	// Apply runs the operation against the account. A nil error means the
	// account accepted it and recorded it in its ledger.
	Apply(a *Account) error

	sealed()
}

// Deposit is the operation that credits an account.
type Deposit struct {
	amount decimal.Decimal
}

// NewDeposit builds a deposit of the given amount. Validation happens on Apply.
func NewDeposit(amount decimal.Decimal) Deposit {
	return Deposit{amount: amount}
}

func (d Deposit) Kind() Kind              { return KindDeposit }
func (d Deposit) Amount() decimal.Decimal { return d.amount }
func (d Deposit) Apply(a *Account) error  { return a.Deposit(d.amount) }
func (Deposit) sealed()                   {}

// Withdrawal is the operation that debits an account.
type Withdrawal struct {
	amount decimal.Decimal
}

// NewWithdrawal builds a withdrawal of the given amount. Validation happens on Apply.
func NewWithdrawal(amount decimal.Decimal) Withdrawal {
	return Withdrawal{amount: amount}
}

func (w Withdrawal) Kind() Kind              { return KindWithdrawal }
func (w Withdrawal) Amount() decimal.Decimal { return w.amount }
func (w Withdrawal) Apply(a *Account) error  { return a.Withdraw(w.amount) }
func (Withdrawal) sealed()                   {}
