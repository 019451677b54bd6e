package cmd

import (
	"testing"
	"time"
)

func TestTimeLeftInMonth(t *testing.T) {
	now := time.Date(2025, 7, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		yearMonth string
		want      time.Duration
		ok        bool
	}{
		{"current month", "2025-07", 36 * time.Hour, true},
		{"past month", "2025-06", 0, false},
		{"future month", "2025-08", 0, false},
		{"garbage", "not-a-month", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := timeLeftInMonth(tt.yearMonth, now)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && got != tt.want {
				t.Errorf("expected %v left, got %v", tt.want, got)
			}
		})
	}
}
