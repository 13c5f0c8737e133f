package employee

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDateLayouts(t *testing.T) {
	cases := []string{"1990-05-02", "1990-05-02T00:00:00Z", "5/2/1990"}
	for _, input := range cases {
		parsed := ParseDate(input)
		if parsed == nil {
			t.Fatalf("expected %q to parse", input)
		}
		if parsed.Year() != 1990 || parsed.Month() != time.May || parsed.Day() != 2 {
			t.Fatalf("expected 1990-05-02 from %q, got %v", input, parsed)
		}
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, input := range []string{"", "   ", "not-a-date", "13/45/20", "2024-13-99"} {
		if parsed := ParseDate(input); parsed != nil {
			t.Fatalf("expected nil for %q, got %v", input, parsed)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(nil); got != "N/A" {
		t.Fatalf("expected N/A for nil date, got %q", got)
	}
	if got := FormatDate(&Date{}); got != "N/A" {
		t.Fatalf("expected N/A for zero date, got %q", got)
	}
	if got := FormatDate(NewDate(2024, time.March, 4)); got != "3/4/2024" {
		t.Fatalf("expected 3/4/2024, got %q", got)
	}
}

func TestNormalizeFormatRoundTrip(t *testing.T) {
	for _, input := range []string{"2024-03-04", "1990-05-02", "2001-12-31"} {
		first := ParseDate(input)
		if first == nil {
			t.Fatalf("expected %q to parse", input)
		}
		second := ParseDate(FormatDate(first))
		if second == nil {
			t.Fatalf("expected formatted %q to re-parse", FormatDate(first))
		}
		if !first.Equal(second.Time) {
			t.Fatalf("round trip changed %q to %v", input, second)
		}
	}
}

func TestDateJSONDecode(t *testing.T) {
	var rec Employee
	payload := `{"emp_id":"E1","birthday":"1990-05-02","date_hired":"2020-01-15T00:00:00Z","contract_end":"garbage","date_separated":null}`
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if rec.Birthday == nil || FormatDate(rec.Birthday) != "5/2/1990" {
		t.Fatalf("expected birthday 5/2/1990, got %v", rec.Birthday)
	}
	if rec.DateHired == nil || FormatDate(rec.DateHired) != "1/15/2020" {
		t.Fatalf("expected hire date 1/15/2020, got %v", rec.DateHired)
	}
	if rec.ContractEnd != nil && !rec.ContractEnd.IsZero() {
		t.Fatalf("expected unparseable contract_end to decode as null, got %v", rec.ContractEnd)
	}
	if rec.DateSeparated != nil {
		t.Fatalf("expected null date_separated to stay nil, got %v", rec.DateSeparated)
	}
}

func TestDateJSONEncode(t *testing.T) {
	rec := Employee{EmpID: "E1", Birthday: NewDate(1990, time.May, 2)}
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("re-decode failed: %v", err)
	}
	if decoded["birthday"] != "1990-05-02" {
		t.Fatalf("expected wire date 1990-05-02, got %v", decoded["birthday"])
	}
}
