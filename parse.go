package expense

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseExpensesFile parses an expense CSV file and returns a list of Records.
// The first invalid row stops the parse.
func ParseExpensesFile(filename string) (records []*Record, err error) {
	ifile, ierr := os.Open(filename)
	if ierr != nil {
		return nil, ierr
	}
	defer ifile.Close()
	parseExpenses(filename, ifile, func(recs []*Record, e error) (stop bool) {
		if e != nil {
			err = e
			stop = true
			return
		}
		records = append(records, recs...)
		return
	})

	return
}

// ParseExpenses parses expense CSV data and returns a list of Records.
// The first invalid row stops the parse.
func ParseExpenses(expenseReader io.Reader) (records []*Record, err error) {
	parseExpenses("", expenseReader, func(recs []*Record, e error) (stop bool) {
		if e != nil {
			err = e
			stop = true
			return
		}
		records = append(records, recs...)
		return
	})

	return
}

// LoadFile reads the ledger from the backing file. A missing file is created
// with only the header row and yields an empty ledger. Rows that fail
// validation are skipped and returned as rowErrs so the caller can report
// them; a file that cannot be read at all is returned as err with an empty
// ledger.
func LoadFile(filename string) (ledger *Ledger, rowErrs []error, err error) {
	ledger = NewLedger()

	ifile, ierr := os.Open(filename)
	if ierr != nil {
		if os.IsNotExist(ierr) {
			return ledger, nil, createEmptyFile(filename)
		}
		return ledger, nil, ierr
	}
	defer ifile.Close()

	parseExpenses(filename, ifile, func(recs []*Record, e error) (stop bool) {
		if e != nil {
			rowErrs = append(rowErrs, e)
			return
		}
		for _, rec := range recs {
			ledger.AppendRecord(rec)
		}
		return
	})

	return ledger, rowErrs, nil
}

func createEmptyFile(filename string) error {
	ofile, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer ofile.Close()

	w := csv.NewWriter(ofile)
	if err := w.Write(Header); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// parseExpenses reads headered CSV rows and hands batches of validated
// records (or row errors) to the callback. Returning stop from the callback
// aborts the parse.
func parseExpenses(filename string, expenseReader io.Reader, callback func(recs []*Record, err error) (stop bool)) (stop bool) {
	name := filename
	if name == "" {
		name = "expenses"
	}

	csvReader := csv.NewReader(expenseReader)
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true

	var recs []*Record
	first := true
	for {
		row, rerr := csvReader.Read()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			var perr *csv.ParseError
			if errors.As(rerr, &perr) {
				// Malformed row: report and keep going.
				if callback(nil, fmt.Errorf("%s:%d: unable to parse record: %w", name, perr.Line, perr.Err)) {
					return true
				}
				continue
			}
			callback(nil, fmt.Errorf("%s: unable to read: %w", name, rerr))
			return true
		}

		line, _ := csvReader.FieldPos(0)

		// Skip the column header row.
		if first {
			first = false
			if len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), Header[0]) {
				continue
			}
		}

		raw, rawErr := rowToRaw(row)
		if rawErr == nil {
			var rec *Record
			rec, rawErr = raw.Parse()
			if rawErr == nil {
				recs = append(recs, rec)
				continue
			}
		}
		if callback(nil, fmt.Errorf("%s:%d: unable to parse record: %w", name, line, rawErr)) {
			return true
		}
	}
	callback(recs, nil)
	return false
}

func rowToRaw(row []string) (RawRecord, error) {
	if len(row) < 3 || len(row) > len(Header) {
		return RawRecord{}, fmt.Errorf("expected %d fields, got %d", len(Header), len(row))
	}
	raw := RawRecord{
		Date:     strings.TrimSpace(row[0]),
		Category: strings.TrimSpace(row[1]),
		Amount:   strings.TrimSpace(row[2]),
	}
	if len(row) > 3 {
		raw.Description = row[3]
	}
	return raw, nil
}
