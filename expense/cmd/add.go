package cmd

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/howeyc/expense"
	"github.com/spf13/cobra"
)

var addDate string
var addCategory string
var addAmount string
var addDescription string

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an expense to the ledger",
	Long: `Add validates and appends one expense to the ledger file.

Missing fields are prompted for. The amount accepts arithmetic
expressions such as "12.50+3.99". When the category is left blank,
a suggestion is made from the description based on past entries.`,
	Run: func(_ *cobra.Command, _ []string) {
		ledger, err := loadLedger()
		if err != nil {
			log.Fatalln(err)
		}

		raw := promptRawRecord(ledger, addDate, addCategory, addAmount, addDescription)
		rec, err := ledger.Append(raw)
		if err != nil {
			log.Fatalln("Failed to add expense:", err)
		}
		if err := writeLedger(ledger); err != nil {
			log.Fatalln(err)
		}
		fmt.Printf("Added %s %s %s\n", rec.Date.Format(expense.DateFormat), rec.Category, rec.Amount.StringFixedBank(2))
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "Date of the expense (YYYY-MM-DD, default today).")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category label.")
	addCmd.Flags().StringVarP(&addAmount, "amount", "a", "", "Amount (number or arithmetic expression).")
	addCmd.Flags().StringVarP(&addDescription, "description", "m", "", "Optional description.")
}

// promptRawRecord fills the missing fields of a form submission from stdin.
// Fields already given as flags are not prompted for.
func promptRawRecord(ledger *expense.Ledger, date, category, amount, description string) expense.RawRecord {
	in := bufio.NewReader(os.Stdin)

	if date == "" {
		date = promptString(in, "Date", time.Now().Format(expense.DateFormat))
	}
	if amount == "" {
		amount = promptString(in, "Amount", "")
	}
	if description == "" {
		description = promptString(in, "Description (optional)", "")
	}
	if category == "" {
		suggestion := predictCategory(trainClassifier(ledger.Records()), descriptionWords(description))
		label := "Category (" + strings.Join(categoryChoices(), ", ") + ")"
		category = promptString(in, label, suggestion)
	}

	return expense.RawRecord{
		Date:        date,
		Category:    category,
		Amount:      evaluateAmount(amount),
		Description: description,
	}
}

func categoryChoices() []string {
	cfg, err := loadConfig()
	if err != nil {
		return defaultCategories()
	}
	return cfg.Categories
}
