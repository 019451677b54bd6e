package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/howeyc/expense"
	cache "github.com/patrickmn/go-cache"
)

// Parsed ledgers keyed by path, size, and mtime so the interactive session
// doesn't reparse an unchanged file between menu iterations.
var ledgerCache = cache.New(5*time.Minute, 10*time.Minute)

func ledgerCacheKey() string {
	fi, err := os.Stat(expenseFilePath)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s|%d|%d", expenseFilePath, fi.Size(), fi.ModTime().UnixNano())
}

// loadLedger loads the backing file, creating it with a header row when
// missing. Invalid rows are reported to stderr and skipped.
func loadLedger() (*expense.Ledger, error) {
	key := ledgerCacheKey()
	if key != "" {
		if cached, found := ledgerCache.Get(key); found {
			return cached.(*expense.Ledger), nil
		}
	}

	ledger, rowErrs, err := expense.LoadFile(expenseFilePath)
	if err != nil {
		return nil, err
	}
	for _, rowErr := range rowErrs {
		fmt.Fprintln(os.Stderr, "Skipping invalid entry:", rowErr)
	}

	if key != "" {
		ledgerCache.Set(key, ledger, cache.DefaultExpiration)
	}
	return ledger, nil
}

// writeLedger persists the ledger to the backing file and drops stale cache
// entries.
func writeLedger(ledger *expense.Ledger) error {
	if err := expense.ExportFile(expenseFilePath, ledger.Records()); err != nil {
		return err
	}
	ledgerCache.Flush()
	return nil
}
