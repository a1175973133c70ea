package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/tuannh982/expenditure-ledger/config"
	"github.com/tuannh982/expenditure-ledger/ledger"
	"github.com/tuannh982/expenditure-ledger/ledger/commons"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger := log.WithFields(log.Fields{"app": "ledger"})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.Logger.SetLevel(cfg.Level())

	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Fatal("configuration validation failed")
	}
	l, err := ledger.New(cfg.LedgerOptions(), logger)
	if err != nil {
		logger.WithError(err).Fatal("cannot build ledger")
	}
	if err := seed(l, cfg.DefaultCategories); err != nil {
		logger.WithError(err).Error("seeding failed")
		os.Exit(1)
	}

	logger.WithFields(l.Summary().Fields()).Info("ledger summary")
	for _, total := range l.SpentByCategory() {
		logger.WithFields(log.Fields{"category": total.Category, "spent": total.Spent}).Info("category spend")
	}
	l.Accounts.LowBalance().ForEach(func(_ int, a *commons.BankAccount) bool {
		logger.WithFields(log.Fields{"account": a.ID, "balance": a.Balance}).Warn("low balance")
		return true
	})
	stats := l.Stats()
	logger.WithFields(log.Fields{
		"operations": stats.Operations,
		"avg":        stats.Average(),
		"min":        stats.Min,
		"max":        stats.Max,
	}).Info("query timings")
}

// seed loads a small demo project so the reports have something to show.
func seed(l *ledger.Ledger, categories []string) error {
	if len(categories) == 0 {
		return nil
	}
	for _, a := range []struct {
		id      string
		bank    string
		opening int64
	}{
		{"ops", "First Bank", 1500000},
		{"site", "First Bank", 400000},
		{"petty", "Credit Union", 50000},
	} {
		if _, err := l.Accounts.Open(a.id, a.bank, "IT-"+a.id, commons.Cents(a.opening)); err != nil {
			return err
		}
	}
	if err := l.Accounts.Relate("ops", "site", 1); err != nil {
		return err
	}
	start := time.Now().AddDate(0, 0, -10)
	for i, amount := range []int64{125000, 48050, 9900, 230000, 15075} {
		e, err := l.Spend(ledger.NewExpenditure{
			Amount:      commons.Cents(amount),
			Date:        start.AddDate(0, 0, i*2),
			Phase:       commons.Phase(i % 6),
			Category:    categories[i%len(categories)],
			AccountID:   []string{"ops", "site"}[i%2],
			Description: "demo",
		})
		if err != nil {
			return err
		}
		if _, err := l.Receipts.Upload(e.Code, e.Code+".pdf", "Vendor "+e.Code, e.Date); err != nil {
			return err
		}
	}
	_, err := l.Receipts.ValidateNext("admin")
	return err
}
