package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

// Validation reasons reported back to the user. The messages are the form
// feedback text, hence the sentence casing.
var (
	ErrMissingField      = &ValidationError{"Missing Date, Category, or Amount."}
	ErrAmountNotNumeric  = &ValidationError{"Amount must be a valid number."}
	ErrAmountNotPositive = &ValidationError{"Amount must be a positive number."}
	ErrBadDateFormat     = &ValidationError{"Date format should be YYYY-MM-DD."}
)

// ValidationError is the reason a RawRecord was rejected.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Validate checks a raw record against the ledger invariants: Date,
// Category, and Amount present, Amount a positive number, Date in
// YYYY-MM-DD form. It returns nil when the record can be appended, otherwise
// one of the fixed validation errors.
func (r RawRecord) Validate() error {
	_, err := r.Parse()
	return err
}

// Parse validates the raw record and converts it into a typed Record.
func (r RawRecord) Parse() (*Record, error) {
	if r.Date == "" || r.Category == "" || r.Amount == "" {
		return nil, ErrMissingField
	}

	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return nil, ErrAmountNotNumeric
	}
	if amount.Sign() <= 0 {
		return nil, ErrAmountNotPositive
	}

	date, err := time.Parse(DateFormat, r.Date)
	if err != nil {
		return nil, ErrBadDateFormat
	}

	return &Record{
		Date:        date,
		Category:    r.Category,
		Amount:      amount,
		Description: r.Description,
	}, nil
}
