//go:build go1.18

package expense

import (
	"bytes"
	"testing"
)

func FuzzParseExpenses(f *testing.F) {
	for _, tc := range testCases {
		f.Add(tc.data)
	}
	f.Fuzz(func(t *testing.T, s string) {
		records, _ := ParseExpenses(bytes.NewBufferString(s))
		for _, rec := range records {
			if rec.Amount.Sign() <= 0 {
				t.Error("non-positive amount passed validation")
			}
			if rec.Category == "" {
				t.Error("empty category passed validation")
			}
		}
	})
}
