package repository

import (
	"go-bank-teller/logger"
	"go-bank-teller/model"

	"github.com/sirupsen/logrus"
)

// IAccountRepository is the in-memory account store.
type IAccountRepository interface {
	LastAccountNumber() int64
	Create(account *model.Account)
	FindByNumber(number int64) *model.Account
	All() []*model.Account
}

type AccountRepository struct {
	accounts []*model.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{}
}

// LastAccountNumber returns the highest number assigned so far, zero when no
// account exists yet. Numbers are assigned monotonically, so the last stored
// account carries the highest one.
func (r *AccountRepository) LastAccountNumber() int64 {
	if len(r.accounts) == 0 {
		return 0
	}
	return r.accounts[len(r.accounts)-1].Number
}

func (r *AccountRepository) Create(account *model.Account) {
	logger.Log.WithFields(logrus.Fields{
		"account_number": account.Number,
		"national_id":    account.Owner.NationalID,
	}).Info("Storing new account")

	r.accounts = append(r.accounts, account)
}

func (r *AccountRepository) FindByNumber(number int64) *model.Account {
	for _, a := range r.accounts {
		if a.Number == number {
			return a
		}
	}
	return nil
}

func (r *AccountRepository) All() []*model.Account {
	return r.accounts
}
