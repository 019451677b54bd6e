package cmd

import "testing"

func TestEvaluateAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"12.50", "12.50"},
		{" 10 ", "10"},
		{"12.50+3.99", "16.49"},
		{"(3+2)*4", "20"},
		{"ten", "ten"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := evaluateAmount(tt.input); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
