package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/tuannh982/expenditure-ledger/ledger"
	"github.com/tuannh982/expenditure-ledger/ledger/commons"
)

const defaultCategories = "Materials,Labour,Permits,Utilities,Marketing"

type Config struct {
	LogLevel string

	// Ledger
	ExpenditurePrefix   string
	ReceiptPrefix       string
	LowBalanceThreshold commons.Money
	InitialCapacity     int
	RecentOperations    int
	DefaultCategories   []string
}

func Load() *Config {
	return &Config{
		LogLevel: getEnv("LOG_LEVEL", "info"),

		ExpenditurePrefix:   getEnv("LEDGER_EXPENDITURE_PREFIX", ledger.DefaultExpenditurePrefix),
		ReceiptPrefix:       getEnv("LEDGER_RECEIPT_PREFIX", ledger.DefaultReceiptPrefix),
		LowBalanceThreshold: getEnvMoney("LEDGER_LOW_BALANCE_THRESHOLD", commons.Cents(100000)),
		InitialCapacity:     getEnvInt("LEDGER_INITIAL_CAPACITY", ledger.DefaultInitialCapacity),
		RecentOperations:    getEnvInt("LEDGER_RECENT_OPERATIONS", 100),
		DefaultCategories:   getEnvList("LEDGER_DEFAULT_CATEGORIES", defaultCategories),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}
	if c.ExpenditurePrefix == "" {
		errors = append(errors, "expenditure prefix cannot be empty")
	}
	if c.ReceiptPrefix == "" {
		errors = append(errors, "receipt prefix cannot be empty")
	}
	if c.ExpenditurePrefix != "" && c.ExpenditurePrefix == c.ReceiptPrefix {
		errors = append(errors, fmt.Sprintf("expenditure and receipt prefixes must differ, both are '%s'", c.ReceiptPrefix))
	}
	if c.LowBalanceThreshold.Cents < 0 {
		errors = append(errors, fmt.Sprintf("invalid low balance threshold %s: must not be negative", c.LowBalanceThreshold))
	}
	if c.InitialCapacity < 1 {
		errors = append(errors, fmt.Sprintf("invalid initial capacity %d: must be at least 1", c.InitialCapacity))
	}
	if c.RecentOperations < 1 {
		errors = append(errors, fmt.Sprintf("invalid recent operations limit %d: must be at least 1", c.RecentOperations))
	}
	seen := make(map[string]bool, len(c.DefaultCategories))
	for _, name := range c.DefaultCategories {
		if seen[name] {
			errors = append(errors, fmt.Sprintf("duplicate default category '%s'", name))
		}
		seen[name] = true
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

func (c *Config) LedgerOptions() ledger.Options {
	return ledger.Options{
		ExpenditurePrefix: c.ExpenditurePrefix,
		ReceiptPrefix:     c.ReceiptPrefix,
		LowBalance:        c.LowBalanceThreshold,
		InitialCapacity:   c.InitialCapacity,
		RecentOperations:  c.RecentOperations,
		Categories:        c.DefaultCategories,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvMoney(key string, defaultValue commons.Money) commons.Money {
	if value := os.Getenv(key); value != "" {
		if m, err := commons.ParseMoney(value); err == nil {
			return m
		}
	}
	return defaultValue
}

func getEnvList(key, defaultValue string) []string {
	var ret []string
	for _, item := range strings.Split(getEnv(key, defaultValue), ",") {
		if item = strings.TrimSpace(item); item != "" {
			ret = append(ret, item)
		}
	}
	return ret
}
