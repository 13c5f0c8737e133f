package employee

import (
	"strings"
	"testing"
	"time"
)

func sampleRecords() []Employee {
	rate := 25000.0
	return []Employee{
		{EmpID: "E1", FirstName: "Ana", LastName: "Cruz", Active: true, Birthday: NewDate(1990, time.May, 2)},
		{EmpID: "E2", FirstName: "Ben", LastName: "Reyes", Department: "Accounting", MonthlyRate: &rate},
		{EmpID: "E3", FirstName: "Carla", LastName: "Santos", Kasambahay: true},
	}
}

func TestFilterEmptyTermReturnsInput(t *testing.T) {
	records := sampleRecords()
	for _, term := range []string{"", "   ", "\t"} {
		filtered := Filter(records, term)
		if len(filtered) != len(records) {
			t.Fatalf("expected full set for term %q, got %d records", term, len(filtered))
		}
	}
}

func TestFilterCaseInsensitiveSubstring(t *testing.T) {
	records := sampleRecords()

	filtered := Filter(records, "ana")
	if len(filtered) != 1 || filtered[0].EmpID != "E1" {
		t.Fatalf("expected only E1 for term ana, got %v", filtered)
	}

	filtered = Filter(records, "CRUZ")
	if len(filtered) != 1 || filtered[0].EmpID != "E1" {
		t.Fatalf("expected only E1 for term CRUZ, got %v", filtered)
	}

	if filtered := Filter(records, "xyz"); len(filtered) != 0 {
		t.Fatalf("expected no matches for xyz, got %v", filtered)
	}
}

func TestFilterMatchesNonStringFields(t *testing.T) {
	records := sampleRecords()

	// booleans stringify as true/false
	filtered := Filter(records, "true")
	if len(filtered) != 2 {
		t.Fatalf("expected E1 and E3 for term true, got %v", filtered)
	}

	// numbers in shortest decimal form
	filtered = Filter(records, "25000")
	if len(filtered) != 1 || filtered[0].EmpID != "E2" {
		t.Fatalf("expected only E2 for term 25000, got %v", filtered)
	}

	// dates as YYYY-MM-DD
	filtered = Filter(records, "1990-05")
	if len(filtered) != 1 || filtered[0].EmpID != "E1" {
		t.Fatalf("expected only E1 for term 1990-05, got %v", filtered)
	}
}

func TestFilterPreservesOrderAndSubset(t *testing.T) {
	records := sampleRecords()
	filtered := Filter(records, "e")

	previous := -1
	for _, match := range filtered {
		found := -1
		for i, record := range records {
			if record.EmpID == match.EmpID {
				found = i
			}
		}
		if found < 0 {
			t.Fatalf("filter invented record %v", match)
		}
		if found <= previous {
			t.Fatal("filter reordered records")
		}
		previous = found
	}

	// every match has a field containing the term, every miss has none
	for _, record := range records {
		matches := false
		for _, value := range record.Values() {
			if strings.Contains(strings.ToLower(value), "e") {
				matches = true
				break
			}
		}
		included := false
		for _, match := range filtered {
			if match.EmpID == record.EmpID {
				included = true
			}
		}
		if matches != included {
			t.Fatalf("record %s: matches=%v included=%v", record.EmpID, matches, included)
		}
	}
}
