package employee

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date. On the wire it is YYYY-MM-DD; decoding also
// accepts RFC 3339 and the M/D/YYYY display form. A value that does not
// represent a date decodes as the zero date instead of failing the record.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) *Date {
	return &Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	d.Time = time.Time{}
	if string(data) == "null" {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		// not a string at all, treat as missing
		return nil
	}
	if parsed := ParseDate(raw); parsed != nil {
		d.Time = parsed.Time
	}
	return nil
}

// ParseDate normalizes a textual date into its canonical value. Accepts
// RFC 3339, YYYY-MM-DD and M/D/YYYY. Returns nil for anything else; it
// never fails loudly, so form input can be normalized field by field.
func ParseDate(value string) *Date {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, dateLayout, "1/2/2006"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &Date{Time: parsed}
		}
	}
	return nil
}

// FormatDate renders a date for the table and detail views as M/D/YYYY
// with no zero padding, e.g. 3/4/2024. Missing dates render as N/A.
// Edit-time normalization is ParseDate; this output is display only.
func FormatDate(d *Date) string {
	if d == nil || d.IsZero() {
		return "N/A"
	}
	return fmt.Sprintf("%d/%d/%d", int(d.Month()), d.Day(), d.Year())
}

func dateString(d *Date) string {
	if d == nil || d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func floatString(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func boolString(b bool) string {
	return strconv.FormatBool(b)
}

// YesNo renders boolean flags for display.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
