// file: service/account_service.go

package service

import (
	"errors"
	"go-bank-teller/logger"
	"go-bank-teller/model"
	"go-bank-teller/repository"

	"github.com/sirupsen/logrus"
)

var ErrPersonNotFound = errors.New("no registered person with this national ID")

// AccountDefaults carries the configured settings every new account starts
// with.
type AccountDefaults struct {
	Branch          string
	Currency        string
	WithdrawalLimit float64
	MaxWithdrawals  int
}

// AccountService handles account opening and listing.
type AccountService struct {
	accountRepo repository.IAccountRepository
	personRepo  repository.IPersonRepository
	defaults    AccountDefaults
}

func NewAccountService(accountRepo repository.IAccountRepository, personRepo repository.IPersonRepository, defaults AccountDefaults) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		personRepo:  personRepo,
		defaults:    defaults,
	}
}

// OpenAccount creates an account for an already-registered person. Numbers
// are sequential starting at 1; the balance starts at zero. One person may
// hold any number of accounts.
func (s *AccountService) OpenAccount(nationalID string) (*model.Account, error) {
	owner := s.personRepo.FindByNationalID(nationalID)
	if owner == nil {
		return nil, ErrPersonNotFound
	}

	newAccountNumber := s.accountRepo.LastAccountNumber() + 1

	account := model.NewAccount(
		s.defaults.Branch,
		newAccountNumber,
		owner,
		s.defaults.Currency,
		s.defaults.WithdrawalLimit,
		s.defaults.MaxWithdrawals,
	)
	s.accountRepo.Create(account)

	logger.Log.WithFields(logrus.Fields{
		"account_number": account.Number,
		"national_id":    nationalID,
	}).Info("Account opened")

	return account, nil
}

// ListAccounts retrieves all accounts for display.
func (s *AccountService) ListAccounts() []*model.Account {
	return s.accountRepo.All()
}
