package expense

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

type testCase struct {
	name    string
	data    string
	records []*Record
	err     string
}

var testCases = []testCase{
	{
		"simple",
		`Date,Category,Amount,Description
2025-07-01,Food,12.50,lunch
2025-07-02,Transport,2.75,bus fare
`,
		[]*Record{
			{
				Date:        time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
				Category:    "Food",
				Amount:      decimal.NewFromFloat(12.50),
				Description: "lunch",
			},
			{
				Date:        time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
				Category:    "Transport",
				Amount:      decimal.NewFromFloat(2.75),
				Description: "bus fare",
			},
		},
		"",
	},
	{
		"header only",
		"Date,Category,Amount,Description\n",
		nil,
		"",
	},
	{
		"empty",
		"",
		nil,
		"",
	},
	{
		"no description column",
		`Date,Category,Amount,Description
2025-07-01,Food,10
`,
		[]*Record{
			{
				Date:     time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
				Category: "Food",
				Amount:   decimal.NewFromInt(10),
			},
		},
		"",
	},
	{
		"quoted description with comma",
		`Date,Category,Amount,Description
2025-07-01,Food,10,"coffee, cake"
`,
		[]*Record{
			{
				Date:        time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
				Category:    "Food",
				Amount:      decimal.NewFromInt(10),
				Description: "coffee, cake",
			},
		},
		"",
	},
	{
		"bad amount",
		`Date,Category,Amount,Description
2025-07-01,Food,ten,lunch
`,
		nil,
		"expenses:2: unable to parse record: Amount must be a valid number.",
	},
	{
		"bad date",
		`Date,Category,Amount,Description
07/01/2025,Food,10,lunch
`,
		nil,
		"expenses:2: unable to parse record: Date format should be YYYY-MM-DD.",
	},
	{
		"missing category",
		`Date,Category,Amount,Description
2025-07-01,,10,lunch
`,
		nil,
		"expenses:2: unable to parse record: Missing Date, Category, or Amount.",
	},
}

func TestParseExpenses(t *testing.T) {
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			records, err := ParseExpenses(bytes.NewBufferString(tc.data))
			if tc.err != "" {
				if err == nil {
					t.Fatalf("expected error %q, got none", tc.err)
				}
				if err.Error() != tc.err {
					t.Fatalf("expected error %q, got %q", tc.err, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}

			if len(records) != len(tc.records) {
				t.Fatalf("expected %d records, got %d", len(tc.records), len(records))
			}
			for i, want := range tc.records {
				got := records[i]
				if !got.Date.Equal(want.Date) {
					t.Errorf("record %d: expected date %s, got %s", i, want.Date, got.Date)
				}
				if got.Category != want.Category {
					t.Errorf("record %d: expected category %q, got %q", i, want.Category, got.Category)
				}
				if !got.Amount.Equal(want.Amount) {
					t.Errorf("record %d: expected amount %s, got %s", i, want.Amount.String(), got.Amount.String())
				}
				if got.Description != want.Description {
					t.Errorf("record %d: expected description %q, got %q", i, want.Description, got.Description)
				}
			}
		})
	}
}

func TestLoadFileCreatesMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.csv")

	ledger, rowErrs, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(rowErrs) != 0 {
		t.Fatalf("expected no row errors, got %v", rowErrs)
	}
	if ledger.Size() != 0 {
		t.Fatalf("expected empty ledger, got %d records", ledger.Size())
	}

	// The backing file should now exist and contain only the header row.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(string(data)); got != "Date,Category,Amount,Description" {
		t.Errorf("expected header-only file, got %q", got)
	}

	// A second load of the created file is also empty.
	ledger, rowErrs, err = LoadFile(path)
	if err != nil || len(rowErrs) != 0 || ledger.Size() != 0 {
		t.Errorf("reload: expected empty ledger, got size=%d rowErrs=%v err=%v", ledger.Size(), rowErrs, err)
	}
}

func TestLoadFileSkipsInvalidRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.csv")
	data := `Date,Category,Amount,Description
2025-07-01,Food,10,lunch
2025-07-02,Food,ten,typo
2025-07-03,Transport,2.75,
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	ledger, rowErrs, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Size() != 2 {
		t.Fatalf("expected 2 records, got %d", ledger.Size())
	}
	if len(rowErrs) != 1 {
		t.Fatalf("expected 1 row error, got %d", len(rowErrs))
	}
	if want := path + ":3: unable to parse record: Amount must be a valid number."; rowErrs[0].Error() != want {
		t.Errorf("expected row error %q, got %q", want, rowErrs[0].Error())
	}
}
