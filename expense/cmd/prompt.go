package cmd

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/alfredxing/calc/compute"
	"github.com/shopspring/decimal"
)

// promptString asks for a value, returning def when the answer is blank.
func promptString(in *bufio.Reader, label, def string) string {
	if def != "" {
		fmt.Printf("%s [%s]: ", label, def)
	} else {
		fmt.Printf("%s: ", label)
	}
	line, err := in.ReadString('\n')
	if err != nil {
		return def
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

// evaluateAmount turns amount input into decimal text. Plain numbers pass
// through; anything else is tried as an arithmetic expression, so
// "12.50+3.99" works at the form. Input that is neither is returned as-is
// for validation to reject.
func evaluateAmount(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return input
	}
	if _, err := decimal.NewFromString(input); err == nil {
		return input
	}
	value, err := compute.Evaluate(input)
	if err != nil {
		return input
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
