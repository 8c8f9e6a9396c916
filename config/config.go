package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Bank struct {
		Branch          string  `mapstructure:"branch"`
		Currency        string  `mapstructure:"currency"`
		WithdrawalLimit float64 `mapstructure:"withdrawal_limit"`
		MaxWithdrawals  int     `mapstructure:"max_withdrawals"`
	} `mapstructure:"bank"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

var AppConfig Config

func LoadConfig(path string) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.SetDefault("bank.branch", "0001")
	viper.SetDefault("bank.currency", "R$")
	viper.SetDefault("bank.withdrawal_limit", 500.0)
	viper.SetDefault("bank.max_withdrawals", 3)
	viper.SetDefault("log.level", "info")

	viper.AutomaticEnv()

	// The teller runs fine on defaults alone; only a broken file is fatal.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("Error reading config file, %s", err)
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
