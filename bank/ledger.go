package bank

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger is the append-only transaction history of a single account.
// Only the owning Account appends to it.
type Ledger struct {
	records []Transaction
}

// record appends a new transaction stamped with the given time and returns it.
func (l *Ledger) record(kind Kind, amount decimal.Decimal, at time.Time) Transaction {
	tx := Transaction{
		ID:        uuid.New(),
		Kind:      kind,
		Amount:    amount,
		Timestamp: at,
	}
	l.records = append(l.records, tx)
	return tx
}

// Transactions returns a copy of the records in insertion order.
func (l *Ledger) Transactions() []Transaction {
	out := make([]Transaction, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of recorded transactions.
func (l *Ledger) Len() int {
	return len(l.records)
}

// Count returns how many records of the given kind satisfy keep.
// A nil keep counts every record of that kind.
func (l *Ledger) Count(kind Kind, keep func(Transaction) bool) int {
	n := 0
	for _, tx := range l.records {
		if tx.Kind != kind {
			continue
		}
		if keep == nil || keep(tx) {
			n++
		}
	}
	return n
}

// Total sums the amounts of every record of the given kind.
func (l *Ledger) Total(kind Kind) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range l.records {
		if tx.Kind == kind {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum
}
