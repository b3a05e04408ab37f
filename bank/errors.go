package bank

import "errors"

// Domain errors returned by accounts, customers and the registry.
// Front ends match them with errors.Is and turn them into messages or status codes.
var (
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrLimitExceeded           = errors.New("withdrawal exceeds the per-transaction limit")
	ErrWithdrawalCountExceeded = errors.New("maximum number of withdrawals exceeded")
	ErrInsufficientBalance     = errors.New("insufficient balance")
	ErrDuplicateCustomer       = errors.New("customer with this tax id already exists")
	ErrCustomerNotFound        = errors.New("customer not found")
	ErrAccountNotFound         = errors.New("customer has no accounts")
)
