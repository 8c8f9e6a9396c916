package model

import "fmt"

// FailureReason classifies why a transaction was rejected.
type FailureReason string

const (
	ReasonInvalidAmount          FailureReason = "invalid_amount"
	ReasonInsufficientBalance    FailureReason = "insufficient_balance"
	ReasonExceedsLimit           FailureReason = "exceeds_limit"
	ReasonExceedsWithdrawalCount FailureReason = "exceeds_withdrawal_count"
	ReasonUnknownTransaction     FailureReason = "unknown_transaction"
)

// Outcome is the structured result of applying a Transaction to an account.
// Reason is populated only for rejected withdrawals; a failed deposit reports
// failure alone.
type Outcome struct {
	Succeeded bool
	Reason    FailureReason
}

// Transaction is the closed set of operations an Account accepts. The
// unexported apply method seals the set to this package, so no third variant
// can exist outside of it.
type Transaction interface {
	apply(account *Account) Outcome
	Describe(currency string) string
}

// Deposit credits its amount to an account.
type Deposit struct {
	Amount float64
}

func (d Deposit) apply(account *Account) Outcome {
	if d.Amount <= 0 {
		return Outcome{}
	}
	account.Balance += d.Amount
	account.History.Record(d.Describe(account.Currency))
	return Outcome{Succeeded: true}
}

func (d Deposit) Describe(currency string) string {
	return fmt.Sprintf("Deposit:\t%s %.2f", currency, d.Amount)
}

// Withdraw debits its amount from an account, subject to the balance, the
// per-transaction ceiling and the withdrawal count maximum.
type Withdraw struct {
	Amount float64
}

// apply runs the checks in order and stops at the first failure, so a
// rejected withdrawal leaves the account completely untouched.
func (wd Withdraw) apply(account *Account) Outcome {
	if wd.Amount <= 0 {
		return Outcome{Reason: ReasonInvalidAmount}
	}
	if wd.Amount > account.Balance {
		return Outcome{Reason: ReasonInsufficientBalance}
	}
	if wd.Amount > account.WithdrawalLimit {
		return Outcome{Reason: ReasonExceedsLimit}
	}
	if account.WithdrawalCount >= account.MaxWithdrawals {
		return Outcome{Reason: ReasonExceedsWithdrawalCount}
	}

	account.Balance -= wd.Amount
	account.WithdrawalCount++
	account.History.Record(wd.Describe(account.Currency))
	return Outcome{Succeeded: true}
}

func (wd Withdraw) Describe(currency string) string {
	return fmt.Sprintf("Withdraw:\t%s %.2f", currency, wd.Amount)
}
