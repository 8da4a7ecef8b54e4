// Package config reads the subtrack settings from the environment, after
// loading an optional .env file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/etnz/subtrack/expense"
)

const (
	EnvDataDir           = "SUBTRACK_DATA_DIR"
	EnvSubscriptionsFile = "SUBTRACK_SUBSCRIPTIONS_FILE"
	EnvUsersFile         = "SUBTRACK_USERS_FILE"
	EnvPricesFile        = "SUBTRACK_PRICES_FILE"
	EnvCardsFile         = "SUBTRACK_CARDS_FILE"
	EnvCurrency          = "SUBTRACK_CURRENCY"
	EnvRemindDays        = "SUBTRACK_REMIND_DAYS"
	EnvStrictDays        = "SUBTRACK_STRICT_DAYS"
	EnvPassword          = "SUBTRACK_PASSWORD"
)

type Config struct {
	DataDir string

	// File names, relative ones live in DataDir.
	SubscriptionsFile string
	UsersFile         string
	PricesFile        string
	CardsFile         string

	Currency   string // default currency of the price list
	RemindDays int    // default reminder window
	StrictDays bool   // reject payment days that are not a day of month
}

// Load reads the configuration from the environment. Variables set in a .env
// file of the current directory are used when not already in the environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DataDir:           getEnv(EnvDataDir, "."),
		SubscriptionsFile: getEnv(EnvSubscriptionsFile, "subscriptions.csv"),
		UsersFile:         getEnv(EnvUsersFile, "users.csv"),
		PricesFile:        getEnv(EnvPricesFile, "prices.csv"),
		CardsFile:         getEnv(EnvCardsFile, "cards.csv"),
		Currency:          strings.ToUpper(getEnv(EnvCurrency, "EUR")),
		RemindDays:        getEnvInt(EnvRemindDays, 7),
		StrictDays:        getEnvBool(EnvStrictDays, false),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if !expense.ValidCurrency(c.Currency) {
		errors = append(errors, fmt.Sprintf("invalid currency '%s': must be an ISO 4217 code", c.Currency))
	}
	if c.RemindDays < 0 {
		errors = append(errors, fmt.Sprintf("invalid remind days %d: must not be negative", c.RemindDays))
	}
	files := []struct{ name, value string }{
		{"subscriptions", c.SubscriptionsFile},
		{"users", c.UsersFile},
		{"prices", c.PricesFile},
		{"cards", c.CardsFile},
	}
	for _, f := range files {
		if strings.TrimSpace(f.value) == "" {
			errors = append(errors, fmt.Sprintf("%s file name is empty", f.name))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errors, "; "))
	}
	return nil
}

// Path resolves a file name of the configuration against DataDir.
func (c *Config) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
