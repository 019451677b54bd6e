package cmd

import (
	"bufio"
	"errors"
	"log"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/howeyc/expense"
	"github.com/howeyc/expense/expense/internal/fastcolor"
	"github.com/juztin/numeronym"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const newLine = "\n"

var startString, endString string
var columnWidth int
var columnWide bool
var categoryFilter string
var searchFilter string

// cliRecords loads the ledger and applies the date-range, category, and
// search filters shared by the reporting commands.
func cliRecords() ([]*expense.Record, error) {
	if columnWidth == 80 && columnWide {
		columnWidth = 132
		fd := int(os.Stdout.Fd())
		if term.IsTerminal(fd) {
			tw, _, err := term.GetSize(fd)
			if err == nil {
				columnWidth = tw
			}
		}
	}

	parsedStartDate, tstartErr := dateparse.ParseAny(startString)
	parsedEndDate, tendErr := dateparse.ParseAny(endString)

	if tstartErr != nil || tendErr != nil {
		return nil, errors.New("unable to parse start or end date string argument")
	}

	// include end dates' records too
	parsedEndDate = parsedEndDate.Add(time.Second)

	ledger, err := loadLedger()
	if err != nil {
		return nil, err
	}

	records := expense.RecordsInDateRange(ledger.Records(), parsedStartDate, parsedEndDate)

	origRecords := records
	records = make([]*expense.Record, 0)
	for _, rec := range origRecords {
		if categoryFilter != "" && !strings.Contains(rec.Category, categoryFilter) {
			continue
		}
		if searchFilter != "" && !strings.Contains(rec.Description, searchFilter) {
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

// viewCmd represents the view command
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "View expenses, most recent first",
	Run: func(_ *cobra.Command, _ []string) {
		records, err := cliRecords()
		if err != nil {
			log.Fatalln(err)
		}

		slices.SortStableFunc(records, func(a, b *expense.Record) int {
			return b.Date.Compare(a.Date)
		})

		cfg, _ := loadConfig()
		PrintRecords(records, cfg.Currency, columnWidth)
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)

	var startDate, endDate time.Time
	startDate = time.Date(1970, 1, 1, 0, 0, 0, 0, time.Local)
	endDate = time.Now().AddDate(100, 0, 0)
	viewCmd.Flags().StringVarP(&startString, "begin-date", "b", startDate.Format(expense.DateFormat), "Begin date of processing.")
	viewCmd.Flags().StringVarP(&endString, "end-date", "e", endDate.Format(expense.DateFormat), "End date of processing.")
	viewCmd.Flags().StringVar(&categoryFilter, "category", "", "Filter output to categories that contain this string.")
	viewCmd.Flags().StringVar(&searchFilter, "search", "", "Filter output to descriptions that contain this string.")
	viewCmd.Flags().IntVar(&columnWidth, "columns", 80, "Set a column width for output.")
	viewCmd.Flags().BoolVar(&columnWide, "wide", false, "Wide output (use terminal width).")
}

// PrintRecords prints records as a table formatted to a window set to a
// width of columns.
func PrintRecords(records []*expense.Record, currency string, columns int) {
	// 10 for the date, 12 for the amount, 3 separating spaces; the rest is
	// split between category and description.
	if columns < 40 {
		columns = 40
	}
	remainingWidth := columns - 10 - 12 - 3
	catWidth := remainingWidth / 3
	descWidth := remainingWidth - catWidth

	colorHeader := fastcolor.Bold
	colorCategory := fastcolor.FgBlue
	colorReset := fastcolor.Reset

	buf := bufio.NewWriter(os.Stdout)

	colorHeader.WriteStringFixed(buf, "Date", 10, false)
	buf.WriteString(" ")
	colorHeader.WriteStringFixed(buf, "Category", catWidth, false)
	buf.WriteString(" ")
	colorHeader.WriteStringFixed(buf, "Amount", 12, true)
	buf.WriteString(" ")
	colorHeader.WriteStringFixed(buf, "Description", descWidth, false)
	buf.WriteString(newLine)

	total := decimal.Zero
	for _, rec := range records {
		buf.WriteString(rec.Date.Format(expense.DateFormat))
		buf.WriteString(" ")
		colorCategory.WriteStringFixed(buf, fitColumn(rec.Category, catWidth), catWidth, false)
		buf.WriteString(" ")
		colorReset.WriteStringFixed(buf, currency+rec.Amount.StringFixedBank(2), 12, true)
		buf.WriteString(" ")
		colorReset.WriteStringFixed(buf, rec.Description, descWidth, false)
		buf.WriteString(newLine)
		total = total.Add(rec.Amount)
	}

	buf.WriteString(strings.Repeat("-", columns))
	buf.WriteString(newLine)
	colorReset.WriteStringFixed(buf, "", 10+1+catWidth, false)
	buf.WriteString(" ")
	colorHeader.WriteStringFixed(buf, currency+total.StringFixedBank(2), 12, true)
	buf.WriteString(newLine)
	buf.Flush()
}

// fitColumn abbreviates a label that does not fit its column.
func fitColumn(label string, width int) string {
	if len(label) <= width {
		return label
	}
	return string(numeronym.Parse([]byte(label)))
}
