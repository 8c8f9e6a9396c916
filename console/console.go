// Package console is the interactive teller driver. It owns all terminal
// parsing and presentation and calls into the services with already-parsed
// numeric values and string identifiers; no business rule lives here.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go-bank-teller/common"
	"go-bank-teller/model"
	"go-bank-teller/service"
)

const menuText = `
================ MENU ================
[d] Deposit
[w] Withdraw
[s] Statement
[r] Register person
[o] Open account
[l] List accounts
[q] Quit
=> `

type Console struct {
	in       *bufio.Scanner
	out      io.Writer
	currency string
	persons  *service.PersonService
	accounts *service.AccountService
	txns     *service.TransactionService
}

func New(in io.Reader, out io.Writer, currency string, persons *service.PersonService, accounts *service.AccountService, txns *service.TransactionService) *Console {
	return &Console{
		in:       bufio.NewScanner(in),
		out:      out,
		currency: currency,
		persons:  persons,
		accounts: accounts,
		txns:     txns,
	}
}

// Run loops over the menu until quit or end of input.
func (c *Console) Run() {
	for {
		choice, ok := c.prompt(menuText)
		if !ok {
			return
		}

		switch strings.ToLower(choice) {
		case "d":
			c.deposit()
		case "w":
			c.withdraw()
		case "s":
			c.statement()
		case "r":
			c.registerPerson()
		case "o":
			c.openAccount()
		case "l":
			c.listAccounts()
		case "q":
			return
		default:
			c.failure("Invalid option, please select again.")
		}
	}
}

func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) success(msg string) {
	fmt.Fprintf(c.out, "\n=== %s ===\n", msg)
}

func (c *Console) failure(msg string) {
	fmt.Fprintf(c.out, "\n@@@ %s @@@\n", msg)
}

// promptAccountNumber guards the no-accounts case and parses the number
// locally; non-numeric input never reaches the services.
func (c *Console) promptAccountNumber() (int64, bool) {
	if len(c.accounts.ListAccounts()) == 0 {
		c.failure("There are no accounts. Open an account first.")
		return 0, false
	}

	raw, ok := c.prompt("Enter the account number: ")
	if !ok {
		return 0, false
	}
	number, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.failure("Invalid account number.")
		return 0, false
	}
	return number, true
}

func (c *Console) promptAmount(label string) (float64, bool) {
	raw, ok := c.prompt(label)
	if !ok {
		return 0, false
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.failure("Invalid amount.")
		return 0, false
	}
	return amount, true
}

func (c *Console) deposit() {
	number, ok := c.promptAccountNumber()
	if !ok {
		return
	}
	amount, ok := c.promptAmount("Enter the deposit amount: ")
	if !ok {
		return
	}

	outcome, err := c.txns.Deposit(number, amount)
	if err != nil {
		common.NewAppError("Account not found.", err).Print(c.out)
		return
	}
	if !outcome.Succeeded {
		c.failure("Operation failed! The amount entered is invalid.")
		return
	}
	c.success(fmt.Sprintf("Deposit of %s %.2f completed successfully!", c.currency, amount))
}

func (c *Console) withdraw() {
	number, ok := c.promptAccountNumber()
	if !ok {
		return
	}
	amount, ok := c.promptAmount("Enter the withdrawal amount: ")
	if !ok {
		return
	}

	outcome, err := c.txns.Withdraw(number, amount)
	if err != nil {
		common.NewAppError("Account not found.", err).Print(c.out)
		return
	}
	if outcome.Succeeded {
		c.success(fmt.Sprintf("Withdrawal of %s %.2f completed successfully!", c.currency, amount))
		return
	}

	switch outcome.Reason {
	case model.ReasonInsufficientBalance:
		c.failure("Operation failed! You do not have sufficient balance.")
	case model.ReasonExceedsLimit:
		c.failure("Operation failed! The amount exceeds the withdrawal limit.")
	case model.ReasonExceedsWithdrawalCount:
		c.failure("Operation failed! Maximum number of withdrawals exceeded.")
	default:
		c.failure("Operation failed! The amount entered is invalid.")
	}
}

func (c *Console) statement() {
	number, ok := c.promptAccountNumber()
	if !ok {
		return
	}

	text, err := c.txns.Statement(number)
	if err != nil {
		common.NewAppError("Account not found.", err).Print(c.out)
		return
	}
	fmt.Fprintf(c.out, "\n%s\n", text)
}

func (c *Console) registerPerson() {
	nationalID, ok := c.prompt("Enter the national ID (numbers only): ")
	if !ok {
		return
	}
	name, ok := c.prompt("Enter the full name: ")
	if !ok {
		return
	}
	birthDate, ok := c.prompt("Enter the birth date (dd-mm-yyyy): ")
	if !ok {
		return
	}
	address, ok := c.prompt("Enter the address (street, number - district - city/state): ")
	if !ok {
		return
	}

	_, err := c.persons.Register(model.RegisterPersonRequest{
		Name:       name,
		Address:    address,
		NationalID: nationalID,
		BirthDate:  birthDate,
	})
	if errors.Is(err, service.ErrDuplicatePerson) {
		c.failure("A person with this national ID already exists!")
		return
	}
	if err != nil {
		common.NewAppError("Invalid registration data.", err).Print(c.out)
		return
	}
	c.success("Person registered successfully!")
}

func (c *Console) openAccount() {
	nationalID, ok := c.prompt("Enter the holder's national ID: ")
	if !ok {
		return
	}

	account, err := c.accounts.OpenAccount(nationalID)
	if errors.Is(err, service.ErrPersonNotFound) {
		c.failure("Person not found, account opening aborted!")
		return
	}
	if err != nil {
		common.NewAppError("Could not open account.", err).Print(c.out)
		return
	}
	c.success(fmt.Sprintf("Account %d created successfully!", account.Number))
}

func (c *Console) listAccounts() {
	accounts := c.accounts.ListAccounts()
	if len(accounts) == 0 {
		c.failure("There are no registered accounts.")
		return
	}

	for _, a := range accounts {
		fmt.Fprintln(c.out, strings.Repeat("=", 60))
		fmt.Fprintf(c.out, "Branch:\t\t%s\nAccount:\t%d\nHolder:\t\t%s\n", a.Branch, a.Number, a.Owner.Name)
	}
}
