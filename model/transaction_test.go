package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// testAccount opens an account with the stock defaults: 500.00 per-withdrawal
// ceiling, 3 withdrawals maximum.
func testAccount(balance float64) *Account {
	owner := &Person{Name: "Maria Silva", NationalID: "12345678900"}
	account := NewAccount("0001", 1, owner, "R$", 500.0, 3)
	account.Balance = balance
	return account
}

func TestDeposit_Apply(t *testing.T) {
	t.Run("positive amount increases balance and records history", func(t *testing.T) {
		account := testAccount(0)

		outcome := account.Apply(Deposit{Amount: 150.0})

		assert.True(t, outcome.Succeeded)
		assert.Empty(t, outcome.Reason)
		assert.Equal(t, 150.0, account.Balance)
		assert.Equal(t, 1, account.History.Len())
		assert.Equal(t, "Deposit:\tR$ 150.00\n", account.History.Render())
	})

	t.Run("zero amount is rejected without mutation", func(t *testing.T) {
		account := testAccount(100.0)

		outcome := account.Apply(Deposit{Amount: 0})

		assert.False(t, outcome.Succeeded)
		assert.Empty(t, outcome.Reason)
		assert.Equal(t, 100.0, account.Balance)
		assert.True(t, account.History.IsEmpty())
	})

	t.Run("negative amount is rejected without mutation", func(t *testing.T) {
		account := testAccount(100.0)

		outcome := account.Apply(Deposit{Amount: -25.0})

		assert.False(t, outcome.Succeeded)
		assert.Equal(t, 100.0, account.Balance)
		assert.True(t, account.History.IsEmpty())
	})
}

func TestWithdraw_Apply(t *testing.T) {
	t.Run("success decrements balance and counts the withdrawal", func(t *testing.T) {
		account := testAccount(150.0)

		outcome := account.Apply(Withdraw{Amount: 100.0})

		assert.True(t, outcome.Succeeded)
		assert.Empty(t, outcome.Reason)
		assert.Equal(t, 50.0, account.Balance)
		assert.Equal(t, 1, account.WithdrawalCount)
		assert.Equal(t, "Withdraw:\tR$ 100.00\n", account.History.Render())
	})

	t.Run("non-positive amount", func(t *testing.T) {
		account := testAccount(100.0)

		outcome := account.Apply(Withdraw{Amount: -1.0})

		assert.False(t, outcome.Succeeded)
		assert.Equal(t, ReasonInvalidAmount, outcome.Reason)
		assert.Equal(t, 100.0, account.Balance)
		assert.Equal(t, 0, account.WithdrawalCount)
		assert.True(t, account.History.IsEmpty())
	})

	t.Run("amount above balance", func(t *testing.T) {
		account := testAccount(150.0)

		outcome := account.Apply(Withdraw{Amount: 500.01})

		assert.False(t, outcome.Succeeded)
		assert.Equal(t, ReasonInsufficientBalance, outcome.Reason)
		assert.Equal(t, 150.0, account.Balance)
		assert.True(t, account.History.IsEmpty())
	})

	t.Run("amount above ceiling even with sufficient balance", func(t *testing.T) {
		account := testAccount(1000.0)

		outcome := account.Apply(Withdraw{Amount: 600.0})

		assert.False(t, outcome.Succeeded)
		assert.Equal(t, ReasonExceedsLimit, outcome.Reason)
		assert.Equal(t, 1000.0, account.Balance)
		assert.Equal(t, 0, account.WithdrawalCount)
	})

	t.Run("fourth withdrawal is rejected by the count maximum", func(t *testing.T) {
		account := testAccount(1000.0)

		for i := 0; i < 3; i++ {
			outcome := account.Apply(Withdraw{Amount: 100.0})
			assert.True(t, outcome.Succeeded, "withdrawal %d should succeed", i+1)
		}
		assert.Equal(t, 3, account.WithdrawalCount)

		outcome := account.Apply(Withdraw{Amount: 100.0})

		assert.False(t, outcome.Succeeded)
		assert.Equal(t, ReasonExceedsWithdrawalCount, outcome.Reason)
		assert.Equal(t, 700.0, account.Balance)
		assert.Equal(t, 3, account.WithdrawalCount)
		assert.Equal(t, 3, account.History.Len())
	})
}

// Balance must never go below zero, whatever sequence of withdrawals runs.
func TestWithdraw_BalanceNeverNegative(t *testing.T) {
	account := testAccount(250.0)

	amounts := []float64{100.0, 100.0, 100.0, 50.0, 0.01}
	for _, amount := range amounts {
		account.Apply(Withdraw{Amount: amount})
		assert.GreaterOrEqual(t, account.Balance, 0.0)
	}
}

// History grows by exactly one entry per successful transaction and not at
// all on failures.
func TestHistory_TracksOnlySuccesses(t *testing.T) {
	account := testAccount(0)

	succeeded := 0
	steps := []Transaction{
		Deposit{Amount: 150.0},   // ok
		Deposit{Amount: -10.0},   // rejected
		Withdraw{Amount: 500.01}, // rejected, above balance
		Withdraw{Amount: 100.0},  // ok
		Withdraw{Amount: 0},      // rejected
	}
	for _, step := range steps {
		if account.Apply(step).Succeeded {
			succeeded++
		}
	}

	assert.Equal(t, 2, succeeded)
	assert.Equal(t, succeeded, account.History.Len())
	assert.Equal(t, 50.0, account.Balance)
}

func TestDescribe_Formatting(t *testing.T) {
	assert.Equal(t, "Deposit:\tR$ 150.00", Deposit{Amount: 150.0}.Describe("R$"))
	assert.Equal(t, "Withdraw:\tR$ 99.90", Withdraw{Amount: 99.9}.Describe("R$"))
	assert.Equal(t, fmt.Sprintf("Deposit:\t$ %.2f", 0.5), Deposit{Amount: 0.5}.Describe("$"))
}
