// Package qif decodes Quicken Interchange Format exports, modeling the
// subset of non-investment fields an expense import needs.
package qif

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Entry is one QIF transaction.
type Entry struct {
	// Header/type line, e.g. "!Type:Cash"
	Type string

	Date     string // D - Date
	Amount   string // T - Amount (U, higher precision, wins when present)
	Payee    string // P - Payee/description
	Memo     string // M - Memo (multi-line, joined with '\n')
	Category string // L - Category (or transfer/class)
}

// Decoder reads QIF data from an input stream.
type Decoder struct {
	r *bufio.Reader
}

// NewDecoder returns a new QIF decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r: bufio.NewReader(r),
	}
}

// Decode reads QIF data from the underlying reader and returns all parsed
// entries.
func (d *Decoder) Decode() ([]*Entry, error) {
	var (
		entries     []*Entry
		currentType string
	)

	for {
		line, err := d.readLine()
		if err == io.EOF {
			// QIF files end each entry with '^'; no partial entry handling.
			return entries, nil
		}
		if err != nil {
			return nil, err
		}

		if len(line) == 0 {
			continue
		}

		// Header / account-type line: !Type:Cash, !Type:Bank, ...
		if strings.HasPrefix(line, "!Type:") {
			currentType = strings.TrimSpace(line[len("!Type:"):])
			continue
		}

		// An entry must start with 'D' (date) per the QIF format.
		if line[0] == 'D' {
			entry, err := d.decodeEntry(currentType, line)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
			continue
		}

		// Lines outside of entries are ignored.
	}
}

// decodeEntry parses a single entry, given that the first line (already
// read) is a 'D' date line. It continues reading until the '^' end marker
// has been consumed.
func (d *Decoder) decodeEntry(entryType, firstLine string) (*Entry, error) {
	entry := &Entry{
		Type: entryType,
	}

	assignField(entry, firstLine)

	for {
		line, err := d.readLine()
		if err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("unexpected EOF while reading entry")
			}
			return nil, err
		}
		if len(line) == 0 {
			continue
		}
		if line[0] == '^' {
			return entry, nil
		}

		assignField(entry, line)
	}
}

func assignField(entry *Entry, line string) {
	if len(line) == 0 {
		return
	}

	prefix := line[0]
	value := line[1:]

	switch prefix {
	case 'D':
		entry.Date = value
	case 'T':
		if entry.Amount == "" {
			entry.Amount = value
		}
	case 'U':
		// Higher precision amount; prefer it over T.
		entry.Amount = value
	case 'P':
		entry.Payee = value
	case 'M':
		if entry.Memo == "" {
			entry.Memo = value
		} else {
			entry.Memo += "\n" + value
		}
	case 'L':
		entry.Category = value
	}
}

// readLine reads a single logical line without the trailing '\n' or '\r\n'.
func (d *Decoder) readLine() (string, error) {
	line, err := d.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	if err == io.EOF && len(line) == 0 {
		return "", io.EOF
	}
	return line, err
}

// ParseQIF is a convenience helper that parses all entries from a QIF
// stream and returns them.
func ParseQIF(reader io.Reader) ([]*Entry, error) {
	return NewDecoder(reader).Decode()
}
