package console

import (
	"testing"
	"time"

	"masterfile/internal/domain/employee"
)

func TestNewEditFormNormalizesDates(t *testing.T) {
	form := NewEditForm(employee.Employee{
		EmpID:    "E1",
		Birthday: employee.NewDate(1990, time.May, 2),
	})

	if form.Values["birthday"] != "1990-05-02" {
		t.Fatalf("expected canonical birthday, got %q", form.Values["birthday"])
	}
	for _, name := range []string{"date_hired", "contract_start", "ctc_date"} {
		if form.Values[name] != "" {
			t.Fatalf("expected empty %s, got %q", name, form.Values[name])
		}
	}
}

func TestFormRecordPermissiveParsing(t *testing.T) {
	form := NewCreateForm()
	form.Set("emp_id", "E9")
	form.Set("monthly_rate", "not-a-number")
	form.Set("daily_rate", "1200.5")
	form.Set("active", "true")
	form.Set("birthday", "garbage")
	form.Set("date_hired", "3/4/2024")
	form.Set("last_updated", "should-not-be-sent")

	record := form.Record()
	if record.EmpID != "E9" {
		t.Fatalf("unexpected id %q", record.EmpID)
	}
	if record.MonthlyRate != nil {
		t.Fatal("unparseable number must become nil")
	}
	if record.DailyRate == nil || *record.DailyRate != 1200.5 {
		t.Fatalf("unexpected daily rate %v", record.DailyRate)
	}
	if !record.Active {
		t.Fatal("expected active flag set")
	}
	if record.Birthday != nil {
		t.Fatal("unparseable date must become nil")
	}
	if employee.FormatDate(record.DateHired) != "3/4/2024" {
		t.Fatalf("unexpected hire date %v", record.DateHired)
	}
	if record.LastUpdated != "" {
		t.Fatal("last_updated is server-set and must not be submitted")
	}
}

func TestFormEmpIDIsStableInEditMode(t *testing.T) {
	form := NewEditForm(employee.Employee{EmpID: "E1"})
	form.Set("emp_id", "E1-renamed")

	if form.EmpID() != "E1" {
		t.Fatalf("edit form must address the original id, got %q", form.EmpID())
	}

	create := NewCreateForm()
	create.Set("emp_id", "E9")
	if create.EmpID() != "E9" {
		t.Fatalf("create form id should follow input, got %q", create.EmpID())
	}
}
