package bank

// Person is the natural-person profile of a customer.
type Person struct {
	FullName    string
	DateOfBirth string // dd-mm-yyyy, as entered
}

// Profile carries the registration data of a new customer.
type Profile struct {
	TaxID       string
	FullName    string
	DateOfBirth string
	Address     string
}

// Customer owns accounts and executes operations against them.
type Customer struct {
	TaxID    string
	Address  string
	Person   *Person
	accounts []*Account
}

// NewCustomer builds a natural-person customer from a registration profile.
func NewCustomer(p Profile) *Customer {
	return &Customer{
		TaxID:   p.TaxID,
		Address: p.Address,
		Person: &Person{
			FullName:    p.FullName,
			DateOfBirth: p.DateOfBirth,
		},
	}
}

// Name returns the full name of the customer, or an empty string when no
// person profile is attached.
func (c *Customer) Name() string {
	if c.Person == nil {
		return ""
	}
	return c.Person.FullName
}

// AddAccount appends an account to the customer in creation order.
func (c *Customer) AddAccount(a *Account) {
	c.accounts = append(c.accounts, a)
}

// Accounts returns the customer's accounts in creation order.
func (c *Customer) Accounts() []*Account {
	out := make([]*Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// PrimaryAccount returns the first account the customer opened.
func (c *Customer) PrimaryAccount() (*Account, error) {
	if len(c.accounts) == 0 {
		return nil, ErrAccountNotFound
	}
	return c.accounts[0], nil
}

// Execute applies op to the account. Only a successful operation is
// recorded in the account ledger; a failed one leaves no trace.
// The account is not required to belong to c.
func (c *Customer) Execute(a *Account, op Operation) error {
	return op.Apply(a)
}
