package console

import "masterfile/internal/domain/employee"

type FormMode int

const (
	FormCreate FormMode = iota
	FormEdit
)

// Form is the modal input surface for one record. Field values are held as
// strings keyed by canonical column name; a failed submit leaves them
// exactly as the user typed them.
type Form struct {
	Mode   FormMode
	Values map[string]string

	empID string // identity key captured at load in edit mode
}

func NewCreateForm() *Form {
	values := make(map[string]string, len(employee.FieldNames()))
	for _, name := range employee.FieldNames() {
		values[name] = ""
	}
	return &Form{Mode: FormCreate, Values: values}
}

// NewEditForm loads a record for editing. Date fields pass through the
// normalizer so the form always holds canonical date text, never the raw
// display form.
func NewEditForm(emp employee.Employee) *Form {
	values := make(map[string]string, len(employee.FieldNames()))
	for i, name := range employee.FieldNames() {
		values[name] = emp.Values()[i]
	}
	form := &Form{Mode: FormEdit, Values: values, empID: emp.EmpID}
	form.normalizeDates()
	return form
}

// EmpID is the identity key update calls are addressed to. It is the id the
// record had when the form was opened, regardless of later edits.
func (f *Form) EmpID() string {
	if f.Mode == FormEdit {
		return f.empID
	}
	return f.Values["emp_id"]
}

func (f *Form) Set(name, value string) {
	f.Values[name] = value
}

// Record maps the form back into a typed record. Permissive by design:
// numbers and dates that fail to parse become absent values.
func (f *Form) Record() employee.Employee {
	emp := employee.FromFields(f.Values)
	// last_updated is server-set and never submitted
	emp.LastUpdated = ""
	return emp
}

var dateFieldNames = []string{
	"ctc_date",
	"birthday",
	"date_hired",
	"date_regularized",
	"date_separated",
	"contract_start",
	"contract_end",
}

func (f *Form) normalizeDates() {
	for _, name := range dateFieldNames {
		if parsed := employee.ParseDate(f.Values[name]); parsed != nil {
			f.Values[name] = parsed.Format("2006-01-02")
		} else {
			f.Values[name] = ""
		}
	}
}
