// File: app/app.go
package app

import (
	"os"

	"go-bank-teller/config"
	"go-bank-teller/console"
	"go-bank-teller/logger"
	"go-bank-teller/repository"
	"go-bank-teller/service"
)

func Run() {
	config.LoadConfig(".")
	logger.Init(config.AppConfig.Log.Level)
	logger.Log.Info("Configuration loaded successfully")

	// --- Wiring All Layers Together ---
	// The two repositories hold every person and account for the lifetime of
	// the process; nothing is persisted.
	personRepo := repository.NewPersonRepository()
	accountRepo := repository.NewAccountRepository()

	personService := service.NewPersonService(personRepo)
	accountService := service.NewAccountService(accountRepo, personRepo, service.AccountDefaults{
		Branch:          config.AppConfig.Bank.Branch,
		Currency:        config.AppConfig.Bank.Currency,
		WithdrawalLimit: config.AppConfig.Bank.WithdrawalLimit,
		MaxWithdrawals:  config.AppConfig.Bank.MaxWithdrawals,
	})
	transactionService := service.NewTransactionService(accountRepo)

	teller := console.New(os.Stdin, os.Stdout, config.AppConfig.Bank.Currency,
		personService, accountService, transactionService)

	logger.Log.Info("Teller session started")
	teller.Run()
	logger.Log.Info("Teller session ended")
}
