package cmd

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hako/durafmt"
	"github.com/howeyc/expense"
	"github.com/howeyc/expense/expense/internal/fastcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var trackMonth string
var trackBudget string
var setBudget string

// trackCmd represents the track command
var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Compare monthly spending against the budget",
	Run: func(_ *cobra.Command, _ []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Fatalln(err)
		}

		if setBudget != "" {
			if _, err := decimal.NewFromString(setBudget); err != nil {
				log.Fatalln("Budget must be a valid number.")
			}
			cfg.Budget = setBudget
			if err := saveConfig(cfg); err != nil {
				log.Fatalln(err)
			}
			fmt.Printf("Monthly budget set to %s%s\n", cfg.Currency, cfg.MonthlyBudget().StringFixedBank(2))
		}

		budget := cfg.MonthlyBudget()
		if trackBudget != "" {
			override, err := decimal.NewFromString(trackBudget)
			if err != nil {
				log.Fatalln("Budget must be a valid number.")
			}
			budget = override
		}

		ledger, err := loadLedger()
		if err != nil {
			log.Fatalln(err)
		}

		printBudgetReport(ledger, cfg.Currency, trackMonth, budget)
	},
}

func init() {
	rootCmd.AddCommand(trackCmd)

	trackCmd.Flags().StringVar(&trackMonth, "month", time.Now().Format("2006-01"), "Month to track (YYYY-MM).")
	trackCmd.Flags().StringVar(&trackBudget, "budget", "", "Budget to compare against, overriding the config.")
	trackCmd.Flags().StringVar(&setBudget, "set", "", "Persist a monthly budget to the config file.")
}

func printBudgetReport(ledger *expense.Ledger, currency, yearMonth string, budget decimal.Decimal) {
	spending := ledger.MonthlyTotal(yearMonth)

	buf := bufio.NewWriter(os.Stdout)
	defer buf.Flush()

	fmt.Fprintf(buf, "Spending for %s: %s%s\n", yearMonth, currency, spending.StringFixedBank(2))

	if budget.Sign() <= 0 {
		if spending.Sign() > 0 {
			fmt.Fprintln(buf, "Set a monthly budget to track spending against it.")
		} else {
			fmt.Fprintln(buf, "No spending recorded for this month yet, and no budget set.")
		}
		return
	}

	fmt.Fprintf(buf, "Monthly budget:       %s%s\n", currency, budget.StringFixedBank(2))

	used, _ := spending.Div(budget).Float64()
	writeBudgetBar(buf, used)
	fmt.Fprintf(buf, " %d%% of budget used\n", int(used*100))

	remaining := budget.Sub(spending)
	if remaining.Sign() >= 0 {
		green := fastcolor.FgGreen
		green.WriteStringFixed(buf, fmt.Sprintf("Remaining budget: %s%s", currency, remaining.StringFixedBank(2)), 40, false)
		buf.WriteString(newLine)
	} else {
		red := fastcolor.FgRed
		red.WriteStringFixed(buf, fmt.Sprintf("Over budget by %s%s!", currency, remaining.Neg().StringFixedBank(2)), 40, false)
		buf.WriteString(newLine)
	}

	if left, ok := timeLeftInMonth(yearMonth, time.Now()); ok {
		fmt.Fprintf(buf, "%s left in %s\n", durafmt.Parse(left).LimitFirstN(2), yearMonth)
	}
}

// writeBudgetBar draws a progress bar whose fill shades from green to red as
// the budget is used up.
func writeBudgetBar(buf *bufio.Writer, used float64) {
	const barWidth = 40

	filled := int(used * barWidth)
	if filled > barWidth {
		filled = barWidth
	}

	safe, _ := colorful.Hex("#2ecc71")
	danger, _ := colorful.Hex("#e74c3c")

	buf.WriteString("[")
	for i := 0; i < barWidth; i++ {
		if i < filled {
			blend := safe.BlendLab(danger, float64(i)/float64(barWidth-1))
			r, g, b := blend.RGB255()
			fastcolor.RGB(r, g, b).WriteStringFixed(buf, "=", 1, false)
		} else {
			buf.WriteString(" ")
		}
	}
	buf.WriteString("]")
}

// timeLeftInMonth reports how long remains in yearMonth, when now falls
// inside it.
func timeLeftInMonth(yearMonth string, now time.Time) (time.Duration, bool) {
	start, err := time.ParseInLocation("2006-01", yearMonth, now.Location())
	if err != nil {
		return 0, false
	}
	end := start.AddDate(0, 1, 0)
	if now.Before(start) || !now.Before(end) {
		return 0, false
	}
	return end.Sub(now), true
}
