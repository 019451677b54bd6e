package expense

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/andybalholm/brotli"
)

// WriteRecords serializes records to the flat-file format: the header row
// followed by one CSV row per record, in order.
func WriteRecords(w io.Writer, records []*Record) error {
	csvWriter := csv.NewWriter(w)

	if err := csvWriter.Write(Header); err != nil {
		return err
	}
	for _, rec := range records {
		raw := rec.Raw()
		if err := csvWriter.Write([]string{raw.Date, raw.Category, raw.Amount, raw.Description}); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// ExportFile writes the records to filename in the flat-file format.
func ExportFile(filename string, records []*Record) error {
	ofile, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer ofile.Close()

	return WriteRecords(ofile, records)
}

// WriteSnapshot writes a brotli-compressed copy of the flat file, for
// archival alongside a plain export. The snapshot filename is the export
// filename with a ".br" suffix.
func WriteSnapshot(filename string, records []*Record) (string, error) {
	snapName := filename
	if !strings.HasSuffix(snapName, ".br") {
		snapName += ".br"
	}

	ofile, err := os.Create(snapName)
	if err != nil {
		return "", err
	}
	defer ofile.Close()

	bw := brotli.NewWriterLevel(ofile, brotli.BestCompression)
	if err := WriteRecords(bw, records); err != nil {
		return "", err
	}
	if err := bw.Close(); err != nil {
		return "", err
	}
	return snapName, nil
}

// ReadSnapshot parses records back out of a brotli-compressed snapshot.
func ReadSnapshot(filename string) ([]*Record, error) {
	ifile, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer ifile.Close()

	return ParseExpenses(brotli.NewReader(ifile))
}
