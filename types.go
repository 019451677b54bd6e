package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the calendar date layout used everywhere: in the flat file,
// in form input, and in display output.
const DateFormat = "2006-01-02"

// Header is the column row of the flat file.
var Header = []string{"Date", "Category", "Amount", "Description"}

// RawRecord is an expense as it arrives from the outside world: a form
// submission or a CSV row. All fields are text; Validate decides whether it
// can become a Record.
type RawRecord struct {
	Date        string
	Category    string
	Amount      string
	Description string
}

// Record is a validated expense. A Record holds a Date (with no time, or to
// put another way, with hours,minutes,seconds values that don't mean
// anything), a Category label, a positive Amount, and an optional
// Description. Records are immutable once appended to a ledger.
type Record struct {
	Date        time.Time
	Category    string
	Amount      decimal.Decimal
	Description string
}

// CategoryTotal holds the summed amount for one category.
type CategoryTotal struct {
	Name    string
	Balance decimal.Decimal
}

// Raw returns the flat-file representation of the record.
func (r *Record) Raw() RawRecord {
	return RawRecord{
		Date:        r.Date.Format(DateFormat),
		Category:    r.Category,
		Amount:      r.Amount.String(),
		Description: r.Description,
	}
}

// YearMonth returns the YYYY-MM prefix of the record date, used for monthly
// aggregation.
func (r *Record) YearMonth() string {
	return r.Date.Format("2006-01")
}
