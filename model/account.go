package model

import (
	"fmt"
	"strings"
)

// Account holds the balance and withdrawal state for one numbered account.
// Balance changes only through a successful Transaction application.
type Account struct {
	Branch          string
	Number          int64
	Owner           *Person
	Balance         float64
	Currency        string
	WithdrawalLimit float64
	MaxWithdrawals  int
	WithdrawalCount int
	History         *History
}

// NewAccount opens an account with a zero balance for an existing person.
func NewAccount(branch string, number int64, owner *Person, currency string, withdrawalLimit float64, maxWithdrawals int) *Account {
	return &Account{
		Branch:          branch,
		Number:          number,
		Owner:           owner,
		Currency:        currency,
		WithdrawalLimit: withdrawalLimit,
		MaxWithdrawals:  maxWithdrawals,
		History:         NewHistory(),
	}
}

// Apply routes a transaction to its own apply logic against this account.
// The default branch is unreachable as long as every variant in the package
// is listed here.
func (a *Account) Apply(transaction Transaction) Outcome {
	switch t := transaction.(type) {
	case Deposit:
		return t.apply(a)
	case Withdraw:
		return t.apply(a)
	default:
		return Outcome{Reason: ReasonUnknownTransaction}
	}
}

// Statement renders the full transaction history plus the current balance.
// Pure read, no mutation.
func (a *Account) Statement() string {
	var b strings.Builder
	b.WriteString("================ STATEMENT ================\n")
	if a.History.IsEmpty() {
		b.WriteString("No transactions recorded.\n")
	} else {
		b.WriteString(a.History.Render())
	}
	fmt.Fprintf(&b, "\nBalance:\t%s %.2f\n", a.Currency, a.Balance)
	b.WriteString("==========================================")
	return b.String()
}
