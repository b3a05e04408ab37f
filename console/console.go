// Package console runs the interactive text menu of the bank on top of a storage.Store.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go-bank-console/bank"
	"go-bank-console/model"
	"go-bank-console/storage"

	"github.com/shopspring/decimal"
)

const menu = `
=============== MENU ===============
[d]	Deposit
[s]	Withdraw
[e]	Statement
[nc]	New account
[lc]	List accounts
[nu]	New customer
[q]	Quit
=> `

const timestampLayout = "02-01-2006 15:04:05"

// Console reads commands from in and writes prompts and results to out.
type Console struct {
	store storage.Store
	in    *bufio.Scanner
	out   io.Writer
	log   *slog.Logger

	lines   chan string
	done    chan struct{}
	scanErr error // set before lines is closed
}

// New creates a Console. A nil logger discards log output.
func New(store storage.Store, in io.Reader, out io.Writer, logger *slog.Logger) *Console {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Console{
		store: store,
		in:    bufio.NewScanner(in),
		out:   out,
		log:   logger,
	}
}

// Run executes commands until the user quits, the input ends or ctx is done.
// Failed commands are reported to the user and never stop the loop.
// Input is read on a separate goroutine so a cancelled ctx interrupts a
// blocked read.
func (c *Console) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.lines = make(chan string)
	c.done = make(chan struct{})
	defer close(c.done)
	go c.scan()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		option, ok := c.prompt(ctx, menu)
		if !ok {
			if err := ctx.Err(); err != nil {
				return err
			}
			return c.scanErr
		}

		switch strings.ToLower(option) {
		case "d":
			c.deposit(ctx)
		case "s":
			c.withdraw(ctx)
		case "e":
			c.statement(ctx)
		case "nu":
			c.newCustomer(ctx)
		case "nc":
			c.newAccount(ctx)
		case "lc":
			c.listAccounts(ctx)
		case "q":
			c.println("Leaving the system. Goodbye!")
			return nil
		default:
			c.failure("Invalid operation, please choose again.")
		}
	}
}

func (c *Console) deposit(ctx context.Context) {
	taxID, amount, ok := c.readOperation(ctx, "Deposit amount: ")
	if !ok {
		return
	}
	if err := c.store.Deposit(ctx, taxID, amount); err != nil {
		c.report(err)
		return
	}
	c.success("Deposit completed!")
}

func (c *Console) withdraw(ctx context.Context) {
	taxID, amount, ok := c.readOperation(ctx, "Withdrawal amount: ")
	if !ok {
		return
	}
	if err := c.store.Withdraw(ctx, taxID, amount); err != nil {
		c.report(err)
		return
	}
	c.success("Withdrawal completed!")
}

func (c *Console) statement(ctx context.Context) {
	taxID, ok := c.readTaxID(ctx, "Customer tax id: ")
	if !ok {
		return
	}
	st, err := c.store.Statement(ctx, taxID)
	if err != nil {
		c.report(err)
		return
	}

	c.println("\n=============== STATEMENT ===============")
	if len(st.Transactions) == 0 {
		c.println("No transactions were made.")
	}
	for _, tx := range st.Transactions {
		c.printf("%s:\n\tR$ %s em %s\n", bank.Kind(tx.Kind).Label(), tx.Amount.StringFixed(2), tx.Timestamp.Format(timestampLayout))
	}
	c.printf("\nBalance:\n\tR$ %s\n", st.Balance.StringFixed(2))
	c.println("=========================================")
}

func (c *Console) newCustomer(ctx context.Context) {
	taxID, ok := c.readTaxID(ctx, "Tax id (numbers only): ")
	if !ok {
		return
	}
	name, ok := c.prompt(ctx, "Full name: ")
	if !ok {
		return
	}
	birth, ok := c.prompt(ctx, "Date of birth (dd-mm-yyyy): ")
	if !ok {
		return
	}
	address, ok := c.prompt(ctx, "Address (street, number, district - city/state): ")
	if !ok {
		return
	}

	err := c.store.RegisterCustomer(ctx, model.RegisterCustomerRequest{
		TaxID:       taxID,
		FullName:    name,
		DateOfBirth: birth,
		Address:     address,
	})
	if err != nil {
		c.report(err)
		return
	}
	c.success("Customer created!")
}

func (c *Console) newAccount(ctx context.Context) {
	taxID, ok := c.readTaxID(ctx, "Customer tax id: ")
	if !ok {
		return
	}
	summary, err := c.store.OpenAccount(ctx, taxID)
	if err != nil {
		c.report(err)
		return
	}
	c.success(fmt.Sprintf("Account %s/%d created!", summary.Branch, summary.AccountNumber))
}

func (c *Console) listAccounts(ctx context.Context) {
	accounts, err := c.store.ListAccounts(ctx)
	if err != nil {
		c.report(err)
		return
	}
	if len(accounts) == 0 {
		c.println("No accounts registered.")
		return
	}
	for _, a := range accounts {
		c.println(strings.Repeat("=", 100))
		c.printf("Branch:\t\t%s\nAccount:\t%d\nHolder:\t\t%s\n", a.Branch, a.AccountNumber, a.Owner)
	}
}

func (c *Console) readOperation(ctx context.Context, amountPrompt string) (string, decimal.Decimal, bool) {
	taxID, ok := c.readTaxID(ctx, "Customer tax id: ")
	if !ok {
		return "", decimal.Zero, false
	}
	raw, ok := c.prompt(ctx, amountPrompt)
	if !ok {
		return "", decimal.Zero, false
	}
	amount, err := ParseAmount(raw)
	if err != nil {
		c.failure("Operation failed! The value entered is invalid.")
		return "", decimal.Zero, false
	}
	return taxID, amount, true
}

func (c *Console) readTaxID(ctx context.Context, label string) (string, bool) {
	raw, ok := c.prompt(ctx, label)
	if !ok {
		return "", false
	}
	taxID := model.SanitizeTaxID(raw)
	if taxID == "" {
		c.failure("Tax id must contain digits.")
		return "", false
	}
	return taxID, true
}

// ParseAmount parses a user-typed amount. Both "10.50" and "10,50" are accepted.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	return decimal.NewFromString(s)
}

// prompt writes label and waits for the next input line. It reports false
// when the input ends or ctx is done.
func (c *Console) prompt(ctx context.Context, label string) (string, bool) {
	fmt.Fprint(c.out, label)
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-c.lines:
		if !ok {
			return "", false
		}
		return strings.TrimSpace(line), true
	}
}

// scan feeds input lines to prompt until the input ends or Run returns.
func (c *Console) scan() {
	defer close(c.lines)
	for c.in.Scan() {
		select {
		case c.lines <- c.in.Text():
		case <-c.done:
			return
		}
	}
	c.scanErr = c.in.Err()
}

// report turns a store error into the message shown to the user.
func (c *Console) report(err error) {
	switch {
	case errors.Is(err, bank.ErrInvalidAmount):
		c.failure("Operation failed! The value entered is invalid.")
	case errors.Is(err, bank.ErrLimitExceeded):
		c.failure("Operation failed! The amount exceeds the withdrawal limit.")
	case errors.Is(err, bank.ErrWithdrawalCountExceeded):
		c.failure("Operation failed! Maximum number of withdrawals exceeded.")
	case errors.Is(err, bank.ErrInsufficientBalance):
		c.failure("Operation failed! You do not have enough balance.")
	case errors.Is(err, bank.ErrDuplicateCustomer):
		c.failure("A customer with this tax id already exists!")
	case errors.Is(err, bank.ErrCustomerNotFound):
		c.failure("Customer not found.")
	case errors.Is(err, bank.ErrAccountNotFound):
		c.failure("Customer has no accounts.")
	case errors.Is(err, storage.ErrInvalidRequest):
		c.failure("Tax id and full name are required.")
	default:
		c.log.Error("console command failed", "error", err)
		c.failure("Operation failed! Unexpected error.")
	}
}

func (c *Console) success(msg string) {
	c.printf("\n=== %s ===\n", msg)
}

func (c *Console) failure(msg string) {
	c.printf("\n@@@ %s @@@\n", msg)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
