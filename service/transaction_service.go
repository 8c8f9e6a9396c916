package service

import (
	"errors"
	"go-bank-teller/logger"
	"go-bank-teller/model"
	"go-bank-teller/repository"

	"github.com/sirupsen/logrus"
)

var ErrAccountNotFound = errors.New("account not found")

// TransactionService applies deposits and withdrawals to numbered accounts
// and serves statement reads. Rule failures come back as structured outcomes,
// never as errors; the only error here is a failed account lookup.
type TransactionService struct {
	accountRepo repository.IAccountRepository
}

func NewTransactionService(accountRepo repository.IAccountRepository) *TransactionService {
	return &TransactionService{accountRepo: accountRepo}
}

// Deposit applies a deposit to the numbered account.
func (s *TransactionService) Deposit(accountNumber int64, amount float64) (model.Outcome, error) {
	account := s.accountRepo.FindByNumber(accountNumber)
	if account == nil {
		return model.Outcome{}, ErrAccountNotFound
	}

	log := logger.Log.WithFields(logrus.Fields{
		"account_number": accountNumber,
		"amount":         amount,
	})

	outcome := account.Apply(model.Deposit{Amount: amount})
	if outcome.Succeeded {
		log.Info("Deposit applied")
	} else {
		log.Warn("Deposit rejected")
	}
	return outcome, nil
}

// Withdraw applies a withdrawal to the numbered account.
func (s *TransactionService) Withdraw(accountNumber int64, amount float64) (model.Outcome, error) {
	account := s.accountRepo.FindByNumber(accountNumber)
	if account == nil {
		return model.Outcome{}, ErrAccountNotFound
	}

	log := logger.Log.WithFields(logrus.Fields{
		"account_number": accountNumber,
		"amount":         amount,
	})

	outcome := account.Apply(model.Withdraw{Amount: amount})
	if outcome.Succeeded {
		log.Info("Withdrawal applied")
	} else {
		log.WithField("reason", string(outcome.Reason)).Warn("Withdrawal rejected")
	}
	return outcome, nil
}

// Statement renders the numbered account's history and balance. Pure read.
func (s *TransactionService) Statement(accountNumber int64) (string, error) {
	account := s.accountRepo.FindByNumber(accountNumber)
	if account == nil {
		return "", ErrAccountNotFound
	}
	return account.Statement(), nil
}
