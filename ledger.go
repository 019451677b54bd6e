package expense

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Ledger is the ordered collection of expense records for a session.
// Records keep their insertion order; nothing is ever updated or removed.
type Ledger struct {
	records []*Record
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// FromRecords returns a ledger over an already-validated record list.
func FromRecords(records []*Record) *Ledger {
	return &Ledger{records: records}
}

// Records returns the records in insertion order.
func (l *Ledger) Records() []*Record {
	return l.records
}

// Size returns the number of records in the ledger.
func (l *Ledger) Size() int {
	return len(l.records)
}

// Append validates the raw record and, on success, adds it to the ledger.
// On failure the reason is returned and the ledger is unchanged.
func (l *Ledger) Append(raw RawRecord) (*Record, error) {
	rec, err := raw.Parse()
	if err != nil {
		return nil, err
	}
	l.records = append(l.records, rec)
	return rec, nil
}

// AppendRecord adds an already-validated record.
func (l *Ledger) AppendRecord(rec *Record) {
	l.records = append(l.records, rec)
}

// MonthlyTotal sums the amounts of records whose date falls in the given
// YYYY-MM month.
func (l *Ledger) MonthlyTotal(yearMonth string) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range l.records {
		if rec.YearMonth() == yearMonth {
			total = total.Add(rec.Amount)
		}
	}
	return total
}

// Total sums the amounts of all records.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, rec := range l.records {
		total = total.Add(rec.Amount)
	}
	return total
}

// Categories returns the distinct category names in the ledger, sorted.
func (l *Ledger) Categories() []string {
	seen := make(map[string]bool)
	var names []string
	for _, rec := range l.records {
		if !seen[rec.Category] {
			seen[rec.Category] = true
			names = append(names, rec.Category)
		}
	}
	slices.Sort(names)
	return names
}

// RecordsInDateRange returns a new list of records with start and end dates.
// The start date is inclusive, the end date is exclusive.
func RecordsInDateRange(records []*Record, start, end time.Time) []*Record {
	var newlist []*Record
	for _, rec := range records {
		if rec.Date.Before(start) || rec.Date.After(end) || rec.Date.Equal(end) {
			continue
		}
		newlist = append(newlist, rec)
	}
	return newlist
}

// GetCategoryTotals returns the summed amount per category over the given
// records, restricted to categories containing any of the filter substrings
// (no filters means all categories). Totals are sorted by category name.
func GetCategoryTotals(records []*Record, filterArr []string) []*CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	for _, rec := range records {
		inFilter := len(filterArr) == 0
		for _, filter := range filterArr {
			if strings.Contains(rec.Category, filter) {
				inFilter = true
			}
		}
		if inFilter {
			totals[rec.Category] = totals[rec.Category].Add(rec.Amount)
		}
	}

	list := make([]*CategoryTotal, 0, len(totals))
	for name, balance := range totals {
		list = append(list, &CategoryTotal{Name: name, Balance: balance})
	}
	slices.SortFunc(list, func(a, b *CategoryTotal) int {
		return strings.Compare(a.Name, b.Name)
	})
	return list
}

// GetMonthlyTotals returns the summed amount per YYYY-MM month, sorted by
// month.
func GetMonthlyTotals(records []*Record) []*CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	for _, rec := range records {
		month := rec.YearMonth()
		totals[month] = totals[month].Add(rec.Amount)
	}

	list := make([]*CategoryTotal, 0, len(totals))
	for month, balance := range totals {
		list = append(list, &CategoryTotal{Name: month, Balance: balance})
	}
	slices.SortFunc(list, func(a, b *CategoryTotal) int {
		return strings.Compare(a.Name, b.Name)
	})
	return list
}
