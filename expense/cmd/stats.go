package cmd

import (
	"bufio"
	"log"
	"os"
	"strings"

	"github.com/howeyc/expense"
	"github.com/howeyc/expense/expense/internal/fastcolor"
	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats [category-substring-filter]...",
	Short: "Print totals per category and per month",
	Run: func(_ *cobra.Command, args []string) {
		ledger, err := loadLedger()
		if err != nil {
			log.Fatalln(err)
		}
		cfg, _ := loadConfig()

		buf := bufio.NewWriter(os.Stdout)

		printTotals(buf, "Category", expense.GetCategoryTotals(ledger.Records(), args), cfg.Currency)
		buf.WriteString(newLine)
		printTotals(buf, "Month", expense.GetMonthlyTotals(ledger.Records()), cfg.Currency)

		buf.Flush()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func printTotals(buf *bufio.Writer, heading string, totals []*expense.CategoryTotal, currency string) {
	const nameWidth = 24

	colorHeader := fastcolor.Bold
	colorName := fastcolor.FgBlue
	colorReset := fastcolor.Reset

	colorHeader.WriteStringFixed(buf, heading, nameWidth, false)
	buf.WriteString(" ")
	colorHeader.WriteStringFixed(buf, "Total", 12, true)
	buf.WriteString(newLine)
	buf.WriteString(strings.Repeat("-", nameWidth+1+12))
	buf.WriteString(newLine)

	for _, total := range totals {
		colorName.WriteStringFixed(buf, fitColumn(total.Name, nameWidth), nameWidth, false)
		buf.WriteString(" ")
		colorReset.WriteStringFixed(buf, currency+total.Balance.StringFixedBank(2), 12, true)
		buf.WriteString(newLine)
	}
}
