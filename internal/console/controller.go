package console

import (
	"context"
	"fmt"
	"path/filepath"

	"masterfile/internal/domain/employee"
)

// Store is the record store surface the controller drives. *client.Client
// implements it.
type Store interface {
	List(ctx context.Context) ([]employee.Employee, error)
	Create(ctx context.Context, emp employee.Employee) error
	Update(ctx context.Context, empID string, emp employee.Employee) error
	Delete(ctx context.Context, empID string) error
}

// Controller owns all console state and is its only mutator. One method per
// user action; every failure becomes a notification, never a crash. The
// authoritative record set is always re-derived by re-fetching after a
// mutation, there is no client-side merge.
type Controller struct {
	store    Store
	notifier Notifier

	Employees  []employee.Employee // full set from the last successful fetch
	Filtered   []employee.Employee
	Selection  []string // emp_ids in selection order
	SearchTerm string

	FormVisible      bool
	Form             *Form
	DetailVisible    bool
	Viewed           *employee.Employee
	ConfirmingDelete bool

	// CSVPath is where Download writes; the PDF sheet lands next to it.
	CSVPath string
}

func New(store Store, notifier Notifier) *Controller {
	return &Controller{store: store, notifier: notifier, CSVPath: employee.CSVFileName}
}

func (c *Controller) notify(severity Severity, summary, detail string) {
	if c.notifier != nil {
		c.notifier.Notify(Notification{Severity: severity, Summary: summary, Detail: detail})
	}
}

// Refresh replaces both record sets from the backend. On failure the
// existing state is left untouched.
func (c *Controller) Refresh(ctx context.Context) {
	employees, err := c.store.List(ctx)
	if err != nil {
		c.notify(SeverityError, "Error", "Failed to fetch employees")
		return
	}
	c.Employees = employees
	c.Filtered = employee.Filter(employees, c.SearchTerm)
}

// SetSearchTerm re-runs the filter against the full set.
func (c *Controller) SetSearchTerm(term string) {
	c.SearchTerm = term
	c.Filtered = employee.Filter(c.Employees, term)
}

func (c *Controller) ToggleSelect(empID string) {
	for i, id := range c.Selection {
		if id == empID {
			c.Selection = append(c.Selection[:i], c.Selection[i+1:]...)
			return
		}
	}
	c.Selection = append(c.Selection, empID)
}

func (c *Controller) ClearSelection() {
	c.Selection = nil
}

// SelectedRecords resolves the selection against the full set, dropping ids
// that no longer exist.
func (c *Controller) SelectedRecords() []employee.Employee {
	selected := make([]employee.Employee, 0, len(c.Selection))
	for _, id := range c.Selection {
		for _, emp := range c.Employees {
			if emp.EmpID == id {
				selected = append(selected, emp)
				break
			}
		}
	}
	return selected
}

// Add opens the record form in create mode.
func (c *Controller) Add() {
	c.Form = NewCreateForm()
	c.FormVisible = true
}

// Edit opens the record form for the single selected record.
func (c *Controller) Edit() {
	selected := c.SelectedRecords()
	if len(selected) != 1 {
		c.notify(SeverityWarning, "Warning", "Please select exactly one employee to edit")
		return
	}
	c.Form = NewEditForm(selected[0])
	c.FormVisible = true
}

// View opens the read-only detail view for the single selected record.
func (c *Controller) View() {
	selected := c.SelectedRecords()
	if len(selected) != 1 {
		c.notify(SeverityWarning, "Warning", "Please select exactly one employee to view")
		return
	}
	viewed := selected[0]
	c.Viewed = &viewed
	c.DetailVisible = true
}

// Delete arms the blocking confirmation; ConfirmDelete performs it.
func (c *Controller) Delete() {
	if len(c.Selection) == 0 {
		c.notify(SeverityWarning, "Warning", "Please select at least one employee to delete")
		return
	}
	c.ConfirmingDelete = true
}

func (c *Controller) CancelDelete() {
	c.ConfirmingDelete = false
}

// ConfirmDelete removes each selected record sequentially, one call awaited
// at a time. A failure stops the batch: records deleted before it stay
// deleted, the selection is kept so the remainder is visible, and one error
// notification is emitted. Not transactional.
func (c *Controller) ConfirmDelete(ctx context.Context) {
	c.ConfirmingDelete = false
	count := len(c.Selection)
	for _, empID := range c.Selection {
		if err := c.store.Delete(ctx, empID); err != nil {
			c.notify(SeverityError, "Error", "Failed to delete employee(s)")
			return
		}
	}
	c.ClearSelection()
	c.Refresh(ctx)
	c.notify(SeveritySuccess, "Success", fmt.Sprintf("%d employee(s) deleted", count))
}

// SubmitForm persists the form. On failure the form stays open with the
// user's input intact.
func (c *Controller) SubmitForm(ctx context.Context) {
	if c.Form == nil {
		return
	}
	record := c.Form.Record()

	var err error
	if c.Form.Mode == FormEdit {
		err = c.store.Update(ctx, c.Form.EmpID(), record)
	} else {
		err = c.store.Create(ctx, record)
	}
	if err != nil {
		c.notify(SeverityError, "Error", "Failed to save employee")
		return
	}

	c.FormVisible = false
	c.Form = nil
	c.Refresh(ctx)
	c.notify(SeveritySuccess, "Success", "Employee saved")
}

func (c *Controller) CloseForm() {
	c.FormVisible = false
	c.Form = nil
}

func (c *Controller) CloseDetail() {
	c.DetailVisible = false
	c.Viewed = nil
}

// Download serializes the full, unfiltered set to CSV. Pure client-side
// export; the backend is not consulted.
func (c *Controller) Download() {
	if err := employee.ExportCSV(c.CSVPath, c.Employees); err != nil {
		c.notify(SeverityError, "Error", "Failed to write "+c.CSVPath)
		return
	}
	c.notify(SeveritySuccess, "Success", "Saved "+c.CSVPath)
}

// ExportSheet writes the single selected record as a PDF detail sheet.
func (c *Controller) ExportSheet() {
	selected := c.SelectedRecords()
	if len(selected) != 1 {
		c.notify(SeverityWarning, "Warning", "Please select exactly one employee to export")
		return
	}
	name := employee.SheetFileName(selected[0])
	path := filepath.Join(filepath.Dir(c.CSVPath), name)
	if err := employee.WriteSheet(path, selected[0]); err != nil {
		c.notify(SeverityError, "Error", "Failed to write "+name)
		return
	}
	c.notify(SeveritySuccess, "Success", "Saved "+name)
}
