package bank

import (
	"fmt"
	"time"
)

// Option configures a Registry.
type Option func(*Registry)

// WithClock replaces time.Now for every account the registry opens.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// Registry is the in-memory collection of customers and accounts for one session.
type Registry struct {
	policy    Policy
	now       func() time.Time
	customers []*Customer
	accounts  []*Account
}

// NewRegistry returns an empty registry whose accounts follow policy.
func NewRegistry(policy Policy, opts ...Option) *Registry {
	r := &Registry{
		policy: policy,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FindCustomer returns the first customer registered under taxID.
func (r *Registry) FindCustomer(taxID string) (*Customer, bool) {
	for _, c := range r.customers {
		if c.TaxID == taxID {
			return c, true
		}
	}
	return nil, false
}

// CreateCustomer registers a new customer. The tax ID must not be taken.
func (r *Registry) CreateCustomer(p Profile) (*Customer, error) {
	if _, ok := r.FindCustomer(p.TaxID); ok {
		return nil, fmt.Errorf("tax id %s: %w", p.TaxID, ErrDuplicateCustomer)
	}
	c := NewCustomer(p)
	r.customers = append(r.customers, c)
	return c, nil
}

// CreateAccount opens the next sequential account for the customer with taxID.
func (r *Registry) CreateAccount(taxID string) (*Account, error) {
	c, ok := r.FindCustomer(taxID)
	if !ok {
		return nil, fmt.Errorf("tax id %s: %w", taxID, ErrCustomerNotFound)
	}
	a := newAccount(len(r.accounts)+1, c, r.policy, r.now)
	r.accounts = append(r.accounts, a)
	c.AddAccount(a)
	return a, nil
}

// PrimaryAccount resolves a customer by tax ID and returns its first account.
func (r *Registry) PrimaryAccount(taxID string) (*Customer, *Account, error) {
	c, ok := r.FindCustomer(taxID)
	if !ok {
		return nil, nil, fmt.Errorf("tax id %s: %w", taxID, ErrCustomerNotFound)
	}
	a, err := c.PrimaryAccount()
	if err != nil {
		return c, nil, fmt.Errorf("tax id %s: %w", taxID, err)
	}
	return c, a, nil
}

// Customers returns the registered customers in registration order.
func (r *Registry) Customers() []*Customer {
	out := make([]*Customer, len(r.customers))
	copy(out, r.customers)
	return out
}

// Accounts returns every account in creation order.
func (r *Registry) Accounts() []*Account {
	out := make([]*Account, len(r.accounts))
	copy(out, r.accounts)
	return out
}
