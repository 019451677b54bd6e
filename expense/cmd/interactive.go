package cmd

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"slices"
	"time"

	"github.com/howeyc/expense"
	"github.com/shopspring/decimal"
	"golang.org/x/term"
)

// runInteractive is the default mode: a menu-driven session over an
// in-memory ledger. Added expenses live in memory until Save Data writes
// them back to the backing file.
func runInteractive() {
	ledger, err := loadLedger()
	if err != nil {
		log.Fatalln(err)
	}
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalln(err)
	}

	in := bufio.NewReader(os.Stdin)
	dirty := false

	fmt.Printf("Personal Expense Tracker — %s (%d expenses)\n", expenseFilePath, ledger.Size())
	for {
		fmt.Println()
		fmt.Println("Go to:")
		fmt.Println("  1) Add Expense")
		fmt.Println("  2) View Expenses")
		fmt.Println("  3) Track Budget")
		fmt.Println("  4) Save Data")
		fmt.Println("  5) Quit")

		switch promptString(in, "Selection", "") {
		case "1":
			raw := promptRawRecord(ledger, "", "", "", "")
			if _, err := ledger.Append(raw); err != nil {
				fmt.Println("Failed to add expense:", err)
				continue
			}
			dirty = true
			fmt.Println("Expense added successfully!")
		case "2":
			if ledger.Size() == 0 {
				fmt.Println("No expenses added yet. Add some in the Add Expense section!")
				continue
			}
			records := slices.Clone(ledger.Records())
			slices.SortStableFunc(records, func(a, b *expense.Record) int {
				return b.Date.Compare(a.Date)
			})
			PrintRecords(records, cfg.Currency, sessionColumns())
		case "3":
			budget := cfg.MonthlyBudget()
			if answer := promptString(in, "Set monthly budget", cfg.Budget); answer != "" {
				newBudget, err := decimal.NewFromString(answer)
				if err != nil || newBudget.Sign() < 0 {
					fmt.Println("Budget must be a valid number.")
					continue
				}
				if answer != cfg.Budget {
					cfg.Budget = answer
					if err := saveConfig(cfg); err != nil {
						fmt.Println("Error saving budget:", err)
					}
				}
				budget = newBudget
			}
			printBudgetReport(ledger, cfg.Currency, currentYearMonth(), budget)
		case "4":
			if err := writeLedger(ledger); err != nil {
				fmt.Println("Error saving expenses:", err)
				continue
			}
			dirty = false
			fmt.Printf("Saved %d expenses to %s\n", ledger.Size(), expenseFilePath)

			if outName := promptString(in, "Also export a copy to (blank to skip)", ""); outName != "" {
				if err := expense.ExportFile(outName, ledger.Records()); err != nil {
					fmt.Println("Error saving expenses:", err)
					continue
				}
				fmt.Println("Exported to", outName)
			}
		case "5", "q", "quit":
			if dirty {
				if answer := promptString(in, "Unsaved expenses will be lost. Quit anyway? (y/N)", "n"); answer != "y" && answer != "Y" {
					continue
				}
			}
			return
		default:
			fmt.Println("Choose 1-5.")
		}
	}
}

func sessionColumns() int {
	columns := 80
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if tw, _, err := term.GetSize(fd); err == nil {
			columns = tw
		}
	}
	return columns
}

func currentYearMonth() string {
	return time.Now().Format("2006-01")
}
