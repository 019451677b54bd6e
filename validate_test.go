package expense

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		raw     RawRecord
		wantErr error
	}{
		{
			name:    "empty date",
			raw:     RawRecord{Date: "", Category: "Food", Amount: "10"},
			wantErr: ErrMissingField,
		},
		{
			name:    "empty category",
			raw:     RawRecord{Date: "2025-07-01", Category: "", Amount: "10"},
			wantErr: ErrMissingField,
		},
		{
			name:    "empty amount",
			raw:     RawRecord{Date: "2025-07-01", Category: "Food", Amount: ""},
			wantErr: ErrMissingField,
		},
		{
			name:    "non-numeric amount",
			raw:     RawRecord{Date: "2025-07-01", Category: "Food", Amount: "ten"},
			wantErr: ErrAmountNotNumeric,
		},
		{
			name:    "zero amount",
			raw:     RawRecord{Date: "2025-07-01", Category: "Food", Amount: "0"},
			wantErr: ErrAmountNotPositive,
		},
		{
			name:    "negative amount",
			raw:     RawRecord{Date: "2025-07-01", Category: "Food", Amount: "-4.20"},
			wantErr: ErrAmountNotPositive,
		},
		{
			name:    "wrong date layout",
			raw:     RawRecord{Date: "01/07/2025", Category: "Food", Amount: "10"},
			wantErr: ErrBadDateFormat,
		},
		{
			name:    "date with time suffix",
			raw:     RawRecord{Date: "2025-07-01T00:00:00", Category: "Food", Amount: "10"},
			wantErr: ErrBadDateFormat,
		},
		{
			name:    "impossible calendar date",
			raw:     RawRecord{Date: "2025-02-30", Category: "Food", Amount: "10"},
			wantErr: ErrBadDateFormat,
		},
		{
			name: "valid without description",
			raw:  RawRecord{Date: "2025-07-01", Category: "Food", Amount: "10"},
		},
		{
			name: "valid with description",
			raw:  RawRecord{Date: "2025-07-01", Category: "Transport", Amount: "2.75", Description: "bus fare"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.raw.Validate()
			if err != tt.wantErr {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrMissingField, "Missing Date, Category, or Amount."},
		{ErrAmountNotNumeric, "Amount must be a valid number."},
		{ErrAmountNotPositive, "Amount must be a positive number."},
		{ErrBadDateFormat, "Date format should be YYYY-MM-DD."},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("expected message %q, got %q", tt.want, tt.err.Error())
		}
	}
}

func TestParseRecord(t *testing.T) {
	raw := RawRecord{Date: "2025-07-01", Category: "Food", Amount: "12.50", Description: "lunch"}
	rec, err := raw.Parse()
	if err != nil {
		t.Fatal(err)
	}

	if got := rec.Date.Format(DateFormat); got != "2025-07-01" {
		t.Errorf("expected date 2025-07-01, got %s", got)
	}
	if rec.Category != "Food" {
		t.Errorf("expected category Food, got %s", rec.Category)
	}
	if !rec.Amount.Equal(decimal.NewFromFloat(12.50)) {
		t.Errorf("expected amount 12.5, got %s", rec.Amount.String())
	}
	if rec.Description != "lunch" {
		t.Errorf("expected description lunch, got %s", rec.Description)
	}
	if rec.YearMonth() != "2025-07" {
		t.Errorf("expected year-month 2025-07, got %s", rec.YearMonth())
	}
}
