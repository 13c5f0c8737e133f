package employee

import (
	"io"
	"os"
	"strings"
)

// CSVFileName is the fixed name of the table download.
const CSVFileName = "employees.csv"

// WriteCSV writes one line per record, fields joined by comma in canonical
// column order, no header. Embedded commas and newlines are not escaped;
// the download is a best-effort export, not a round-trippable format.
func WriteCSV(w io.Writer, records []Employee) error {
	lines := make([]string, len(records))
	for i, record := range records {
		lines[i] = strings.Join(record.Values(), ",")
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}

// ExportCSV saves the record set to path.
func ExportCSV(path string, records []Employee) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(file, records); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
