package employee

import (
	"testing"
	"time"
)

func TestDetailSectionsFixedOrder(t *testing.T) {
	sections := DetailSections(Employee{EmpID: "E1"})
	want := []string{
		"Personal Information",
		"Employment Details",
		"Dates",
		"Compensation",
		"Government IDs & Bank Info",
	}
	if len(sections) != len(want) {
		t.Fatalf("expected %d sections, got %d", len(want), len(sections))
	}
	for i, title := range want {
		if sections[i].Title != title {
			t.Fatalf("section %d: expected %q, got %q", i, title, sections[i].Title)
		}
	}
}

func TestDetailSectionsPlaceholders(t *testing.T) {
	rate := 1200.0
	emp := Employee{
		EmpID:     "E1",
		FirstName: "Ana",
		Active:    true,
		Birthday:  NewDate(1990, time.May, 2),
		DailyRate: &rate,
	}

	byLabel := map[string]string{}
	for _, section := range DetailSections(emp) {
		for _, field := range section.Fields {
			byLabel[field.Label] = field.Value
		}
	}

	if byLabel["First Name"] != "Ana" {
		t.Fatalf("expected Ana, got %q", byLabel["First Name"])
	}
	if byLabel["Last Name"] != "N/A" {
		t.Fatalf("expected N/A for missing last name, got %q", byLabel["Last Name"])
	}
	if byLabel["Active"] != "Yes" {
		t.Fatalf("expected Yes, got %q", byLabel["Active"])
	}
	if byLabel["Birthday"] != "5/2/1990" {
		t.Fatalf("expected 5/2/1990, got %q", byLabel["Birthday"])
	}
	if byLabel["Date Hired"] != "N/A" {
		t.Fatalf("expected N/A for missing hire date, got %q", byLabel["Date Hired"])
	}
	if byLabel["Daily Rate"] != "1200" {
		t.Fatalf("expected 1200, got %q", byLabel["Daily Rate"])
	}
	if byLabel["Monthly Rate"] != "N/A" {
		t.Fatalf("expected N/A for missing monthly rate, got %q", byLabel["Monthly Rate"])
	}
}

func TestDetailSectionsZeroRateIsAbsent(t *testing.T) {
	zero := 0.0
	emp := Employee{EmpID: "E1", MonthlyRate: &zero, HoursPerDay: &zero}

	byLabel := map[string]string{}
	for _, section := range DetailSections(emp) {
		for _, field := range section.Fields {
			byLabel[field.Label] = field.Value
		}
	}

	if byLabel["Monthly Rate"] != "N/A" {
		t.Fatalf("expected N/A for zero monthly rate, got %q", byLabel["Monthly Rate"])
	}
	if byLabel["Hours/Day"] != "N/A" {
		t.Fatalf("expected N/A for zero hours per day, got %q", byLabel["Hours/Day"])
	}
}
