package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"masterfile/internal/console"
	"masterfile/internal/domain/employee"
)

type fakeStore struct {
	records []employee.Employee
	deleted []string
}

func (f *fakeStore) List(ctx context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, len(f.records))
	copy(out, f.records)
	return out, nil
}

func (f *fakeStore) Create(ctx context.Context, emp employee.Employee) error {
	f.records = append(f.records, emp)
	return nil
}

func (f *fakeStore) Update(ctx context.Context, empID string, emp employee.Employee) error {
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, empID string) error {
	f.deleted = append(f.deleted, empID)
	kept := f.records[:0]
	for _, r := range f.records {
		if r.EmpID != empID {
			kept = append(kept, r)
		}
	}
	f.records = kept
	return nil
}

func newTestModel(store *fakeStore) *Model {
	m := newModel(context.Background())
	m.controller = console.New(store, console.NotifierFunc(m.pushNote))
	return m
}

func press(m *Model, s string) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)}))
	return cmd
}

func twoRecords() []employee.Employee {
	return []employee.Employee{
		{EmpID: "E1", FirstName: "Ana", LastName: "Cruz", LastUpdated: "2024-03-04T10:00:00Z"},
		{EmpID: "E2", FirstName: "Ben", LastName: "Reyes", LastUpdated: "2024-05-06T10:00:00Z"},
	}
}

// Records must only be applied inside Update; the command returned by Init
// carries no state of its own.
func TestInitAppliesRecordsInsideUpdate(t *testing.T) {
	m := newTestModel(&fakeStore{records: twoRecords()})

	cmd := m.Init()
	msg := cmd()
	if len(m.controller.Employees) != 0 {
		t.Fatal("command must not mutate the controller")
	}

	m.Update(msg)
	if len(m.controller.Employees) != 2 {
		t.Fatalf("expected 2 employees after update, got %d", len(m.controller.Employees))
	}
	if len(m.tbl.Rows()) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(m.tbl.Rows()))
	}
}

func TestRefreshKeyIsSynchronous(t *testing.T) {
	m := newTestModel(&fakeStore{records: twoRecords()})

	cmd := press(m, "r")
	if len(m.controller.Employees) != 2 {
		t.Fatalf("expected refresh applied before Update returned, got %d employees", len(m.controller.Employees))
	}
	if cmd != nil {
		t.Fatal("expected no follow-up command after a clean refresh")
	}
}

func TestDeleteFlowRunsOnUpdateLoop(t *testing.T) {
	store := &fakeStore{records: twoRecords()}
	m := newTestModel(store)
	press(m, "r")

	press(m, " ") // select cursor row (E1)
	if len(m.controller.Selection) != 1 {
		t.Fatalf("expected one selection, got %d", len(m.controller.Selection))
	}

	press(m, "d")
	if !m.controller.ConfirmingDelete {
		t.Fatal("expected delete confirmation armed")
	}

	press(m, "y")
	if len(store.deleted) != 1 || store.deleted[0] != "E1" {
		t.Fatalf("expected E1 deleted, got %v", store.deleted)
	}
	if len(m.controller.Selection) != 0 {
		t.Fatal("expected selection cleared")
	}
	if len(m.tbl.Rows()) != 1 {
		t.Fatalf("expected 1 row after delete, got %d", len(m.tbl.Rows()))
	}
	if m.note == nil || m.note.Severity != console.SeveritySuccess {
		t.Fatalf("expected success notification, got %+v", m.note)
	}
}

func TestStatusLineShowsLastUpdatedOfSelection(t *testing.T) {
	m := newTestModel(&fakeStore{records: twoRecords()})
	press(m, "r")

	if got := m.renderStatus(); strings.Contains(got, "last updated:") {
		t.Fatalf("expected no last updated without selection, got %q", got)
	}

	press(m, " ")
	if got := m.renderStatus(); !strings.Contains(got, "last updated: 2024-03-04T10:00:00Z") {
		t.Fatalf("expected last updated of selected record, got %q", got)
	}
}
