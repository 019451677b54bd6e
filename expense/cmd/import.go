package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/howeyc/expense"
	"github.com/howeyc/expense/expense/qif"
	"github.com/jbrukh/bayesian"
	date "github.com/joyt/godate"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var csvDateFormat string
var negateAmount bool
var allowMatching bool
var noHeader bool
var fieldDelimiter string
var scaleFactor float64

type Importer struct {
	filename   string
	reader     *os.File
	decScale   decimal.Decimal
	dateLayout string
	existing   []*expense.Record
	classifier *bayesian.Classifier
}

func NewImporter(filename string) *Importer {
	imp := Importer{
		filename:   filename,
		decScale:   decimal.NewFromFloat(scaleFactor),
		dateLayout: csvDateFormat,
	}

	fileReader, err := os.Open(filename)
	if err != nil {
		fmt.Println("Import: ", err)
		return nil
	}
	imp.reader = fileReader

	// Load the existing ledger to train the classifier and detect
	// duplicates. A missing ledger just means every category prediction
	// falls back to "Other".
	if existing, parseError := expense.ParseExpensesFile(expenseFilePath); parseError == nil {
		imp.existing = existing
		imp.classifier = trainClassifier(existing)
	}

	return &imp
}

func (imp *Importer) Close() {
	imp.reader.Close()
}

// parseForeignDate tries the configured date layout first, then lets godate
// take a guess and remembers the layout it found.
func (imp *Importer) parseForeignDate(dateString string) (time.Time, error) {
	if t, err := time.Parse(imp.dateLayout, dateString); err == nil {
		return t, nil
	}
	t, layout, err := date.ParseAndGetLayout(dateString)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date(%s): %w", dateString, err)
	}
	imp.dateLayout = layout
	return t, nil
}

func (imp *Importer) importCSV() []*expense.Record {
	csvReader := csv.NewReader(imp.reader)
	csvReader.Comma, _ = utf8.DecodeRuneInString(fieldDelimiter)
	csvRecords, cerr := csvReader.ReadAll()
	if cerr != nil {
		fmt.Println("CSV parse error:", cerr.Error())
		return nil
	}
	if len(csvRecords) < 1 {
		return nil
	}

	// Find columns from header
	var dateColumn, descColumn, amountColumn, categoryColumn int
	dateColumn, descColumn, amountColumn, categoryColumn = -1, -1, -1, -1
	for fieldIndex, fieldName := range csvRecords[0] {
		fieldName = strings.ToLower(fieldName)
		if strings.Contains(fieldName, "date") {
			dateColumn = fieldIndex
		} else if strings.Contains(fieldName, "description") {
			descColumn = fieldIndex
		} else if strings.Contains(fieldName, "payee") {
			descColumn = fieldIndex
		} else if strings.Contains(fieldName, "memo") {
			descColumn = fieldIndex
		} else if strings.Contains(fieldName, "amount") {
			amountColumn = fieldIndex
		} else if strings.Contains(fieldName, "expense") {
			amountColumn = fieldIndex
		} else if strings.Contains(fieldName, "category") {
			categoryColumn = fieldIndex
		}
	}

	if dateColumn < 0 || amountColumn < 0 {
		fmt.Println("Unable to find columns required from header field names.")
		return nil
	}

	var imported []*expense.Record
	for _, record := range csvRecords[1:] {
		recDate, derr := imp.parseForeignDate(record[dateColumn])
		if derr != nil {
			fmt.Fprintln(os.Stderr, "Skipping row:", derr)
			continue
		}

		description := ""
		if descColumn >= 0 {
			description = record[descColumn]
		}
		category := ""
		if categoryColumn >= 0 {
			category = record[categoryColumn]
		}

		rec, err := imp.buildRecord(recDate, category, record[amountColumn], description)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Skipping row:", err)
			continue
		}
		if rec != nil {
			imported = append(imported, rec)
		}
	}
	return imported
}

func (imp *Importer) importQIF() []*expense.Record {
	entries, err := qif.ParseQIF(imp.reader)
	if err != nil {
		fmt.Println("QIF parse error:", err.Error())
		return nil
	}

	var imported []*expense.Record
	for _, entry := range entries {
		recDate, derr := imp.parseForeignDate(entry.Date)
		if derr != nil {
			fmt.Fprintln(os.Stderr, "Skipping entry:", derr)
			continue
		}

		description := entry.Payee
		if description == "" {
			description = strings.ReplaceAll(entry.Memo, "\n", " ")
		}

		rec, err := imp.buildRecord(recDate, entry.Category, entry.Amount, description)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Skipping entry:", err)
			continue
		}
		if rec != nil {
			imported = append(imported, rec)
		}
	}
	return imported
}

// buildRecord turns one foreign row into a validated Record. A nil record
// with nil error means the row matched an existing ledger entry and was
// dropped.
func (imp *Importer) buildRecord(recDate time.Time, category, amount, description string) (*expense.Record, error) {
	if !allowMatching && imp.existingRecord(recDate, description) {
		return nil, nil
	}

	dec, derr := decimal.NewFromString(strings.TrimSpace(amount))
	if derr != nil {
		return nil, fmt.Errorf("unable to parse amount(%s): %w", amount, derr)
	}

	// Negate amount if required
	if negateAmount {
		dec = dec.Neg()
	}

	// Apply scale
	dec = dec.Mul(imp.decScale)

	if category == "" {
		category = predictCategory(imp.classifier, descriptionWords(description))
	}

	raw := expense.RawRecord{
		Date:        recDate.Format(expense.DateFormat),
		Category:    category,
		Amount:      dec.String(),
		Description: description,
	}
	return raw.Parse()
}

func (imp *Importer) existingRecord(recDate time.Time, description string) bool {
	for _, rec := range imp.existing {
		if rec.Date.Equal(recDate) && strings.TrimSpace(rec.Description) == strings.TrimSpace(description) {
			return true
		}
	}
	return false
}

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <csv-or-qif-file>",
	Args:  cobra.ExactArgs(1),
	Short: "Convert foreign bank exports to ledger rows on stdout",
	Long: `Import reads a bank CSV or QIF export and writes rows in the
ledger's flat-file format to standard output. Categories missing from
the input are predicted from past descriptions.`,
	Run: func(_ *cobra.Command, args []string) {
		fileName := args[0]

		imp := NewImporter(fileName)
		if imp == nil {
			os.Exit(1)
		}
		defer imp.Close()

		var imported []*expense.Record
		if strings.HasSuffix(strings.ToLower(fileName), ".qif") {
			imported = imp.importQIF()
		} else {
			imported = imp.importCSV()
		}

		if noHeader {
			writer := csv.NewWriter(os.Stdout)
			for _, rec := range imported {
				raw := rec.Raw()
				writer.Write([]string{raw.Date, raw.Category, raw.Amount, raw.Description})
			}
			writer.Flush()
			return
		}
		if err := expense.WriteRecords(os.Stdout, imported); err != nil {
			fmt.Fprintln(os.Stderr, "error writing records:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().BoolVar(&negateAmount, "neg", false, "Negate amount column value. Use for exports that list\nexpenses as negative amounts.")
	importCmd.Flags().BoolVar(&allowMatching, "allow-matching", false, "Have output include imported records that\nmatch existing ledger records.")
	importCmd.Flags().BoolVar(&noHeader, "no-header", false, "Omit the header row, for appending to an existing file.")
	importCmd.Flags().Float64Var(&scaleFactor, "scale", 1.0, "Scale factor to multiply against every imported amount.")
	importCmd.Flags().StringVar(&csvDateFormat, "date-format", "01/02/2006", "Date format.")
	importCmd.Flags().StringVar(&fieldDelimiter, "delimiter", ",", "Field delimiter.")
}
