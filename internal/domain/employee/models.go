package employee

// Employee is one row of the payroll master file. The employee id is the
// identity key; everything else is optional. Text columns use the empty
// string for absent values, numeric columns and dates are nil when unset.
type Employee struct {
	EmpID                   string   `json:"emp_id"`
	FirstName               string   `json:"first_name,omitempty"`
	MiddleName              string   `json:"middle_name,omitempty"`
	LastName                string   `json:"last_name,omitempty"`
	Suffix                  string   `json:"suffix,omitempty"`
	Address                 string   `json:"address,omitempty"`
	City                    string   `json:"city,omitempty"`
	Province                string   `json:"province,omitempty"`
	Zip                     string   `json:"zip,omitempty"`
	Location                string   `json:"location,omitempty"`
	Department              string   `json:"department,omitempty"`
	Project                 string   `json:"project,omitempty"`
	Team                    string   `json:"team,omitempty"`
	Position                string   `json:"position,omitempty"`
	EmploymentType          string   `json:"employment_type,omitempty"`
	UserProfile             string   `json:"user_profile,omitempty"`
	Manager                 string   `json:"manager,omitempty"`
	Vendor                  string   `json:"vendor,omitempty"`
	Email                   string   `json:"email,omitempty"`
	Phone                   string   `json:"phone,omitempty"`
	CTCID                   string   `json:"ctc_id,omitempty"`
	CTCPlace                string   `json:"ctc_place,omitempty"`
	CTCDate                 *Date    `json:"ctc_date,omitempty"`
	CTCAmount               *float64 `json:"ctc_amount,omitempty"`
	ResidentCert            string   `json:"resident_cert,omitempty"`
	Notes                   string   `json:"notes,omitempty"`
	PayFrequency            string   `json:"pay_frequency,omitempty"`
	Sex                     string   `json:"sex,omitempty"`
	Active                  bool     `json:"active"`
	Kasambahay              bool     `json:"kasambahay"`
	Birthday                *Date    `json:"birthday,omitempty"`
	DateHired               *Date    `json:"date_hired,omitempty"`
	DateRegularized         *Date    `json:"date_regularized,omitempty"`
	DateSeparated           *Date    `json:"date_separated,omitempty"`
	ContractStart           *Date    `json:"contract_start,omitempty"`
	ContractEnd             *Date    `json:"contract_end,omitempty"`
	MinimumWageEarner       bool     `json:"minimum_wage_earner"`
	MonthlyRate             *float64 `json:"monthly_rate,omitempty"`
	TaxID                   string   `json:"tax_id,omitempty"`
	SSSNumber               string   `json:"sss_number,omitempty"`
	PhilHealthID            string   `json:"philhealth_id,omitempty"`
	HDMFID                  string   `json:"hdmf_id,omitempty"`
	HDMFAccount             string   `json:"hdmf_account,omitempty"`
	BankName                string   `json:"bank_name,omitempty"`
	BankAccount             string   `json:"bank_account,omitempty"`
	RateType                string   `json:"rate_type,omitempty"`
	BaseMonthlyPay          *float64 `json:"base_monthly_pay,omitempty"`
	DaysPerMonth            *float64 `json:"days_per_month,omitempty"`
	HoursPerDay             *float64 `json:"hours_per_day,omitempty"`
	DailyRate               *float64 `json:"daily_rate,omitempty"`
	HourlyRate              *float64 `json:"hourly_rate,omitempty"`
	CostOfLiving            *float64 `json:"cost_of_living,omitempty"`
	RepresentationAllowance *float64 `json:"representation_allowance,omitempty"`
	HousingAllowance        *float64 `json:"housing_allowance,omitempty"`
	TransportationAllowance *float64 `json:"transportation_allowance,omitempty"`
	LastUpdated             string   `json:"last_updated,omitempty"`
}

type fieldDef struct {
	name  string
	value func(Employee) string
}

// fields fixes the canonical column order used by the table, the CSV export
// and the filter. Keep it in sync with the struct above.
var fields = []fieldDef{
	{"emp_id", func(e Employee) string { return e.EmpID }},
	{"first_name", func(e Employee) string { return e.FirstName }},
	{"middle_name", func(e Employee) string { return e.MiddleName }},
	{"last_name", func(e Employee) string { return e.LastName }},
	{"suffix", func(e Employee) string { return e.Suffix }},
	{"address", func(e Employee) string { return e.Address }},
	{"city", func(e Employee) string { return e.City }},
	{"province", func(e Employee) string { return e.Province }},
	{"zip", func(e Employee) string { return e.Zip }},
	{"location", func(e Employee) string { return e.Location }},
	{"department", func(e Employee) string { return e.Department }},
	{"project", func(e Employee) string { return e.Project }},
	{"team", func(e Employee) string { return e.Team }},
	{"position", func(e Employee) string { return e.Position }},
	{"employment_type", func(e Employee) string { return e.EmploymentType }},
	{"user_profile", func(e Employee) string { return e.UserProfile }},
	{"manager", func(e Employee) string { return e.Manager }},
	{"vendor", func(e Employee) string { return e.Vendor }},
	{"email", func(e Employee) string { return e.Email }},
	{"phone", func(e Employee) string { return e.Phone }},
	{"ctc_id", func(e Employee) string { return e.CTCID }},
	{"ctc_place", func(e Employee) string { return e.CTCPlace }},
	{"ctc_date", func(e Employee) string { return dateString(e.CTCDate) }},
	{"ctc_amount", func(e Employee) string { return floatString(e.CTCAmount) }},
	{"resident_cert", func(e Employee) string { return e.ResidentCert }},
	{"notes", func(e Employee) string { return e.Notes }},
	{"pay_frequency", func(e Employee) string { return e.PayFrequency }},
	{"sex", func(e Employee) string { return e.Sex }},
	{"active", func(e Employee) string { return boolString(e.Active) }},
	{"kasambahay", func(e Employee) string { return boolString(e.Kasambahay) }},
	{"birthday", func(e Employee) string { return dateString(e.Birthday) }},
	{"date_hired", func(e Employee) string { return dateString(e.DateHired) }},
	{"date_regularized", func(e Employee) string { return dateString(e.DateRegularized) }},
	{"date_separated", func(e Employee) string { return dateString(e.DateSeparated) }},
	{"contract_start", func(e Employee) string { return dateString(e.ContractStart) }},
	{"contract_end", func(e Employee) string { return dateString(e.ContractEnd) }},
	{"minimum_wage_earner", func(e Employee) string { return boolString(e.MinimumWageEarner) }},
	{"monthly_rate", func(e Employee) string { return floatString(e.MonthlyRate) }},
	{"tax_id", func(e Employee) string { return e.TaxID }},
	{"sss_number", func(e Employee) string { return e.SSSNumber }},
	{"philhealth_id", func(e Employee) string { return e.PhilHealthID }},
	{"hdmf_id", func(e Employee) string { return e.HDMFID }},
	{"hdmf_account", func(e Employee) string { return e.HDMFAccount }},
	{"bank_name", func(e Employee) string { return e.BankName }},
	{"bank_account", func(e Employee) string { return e.BankAccount }},
	{"rate_type", func(e Employee) string { return e.RateType }},
	{"base_monthly_pay", func(e Employee) string { return floatString(e.BaseMonthlyPay) }},
	{"days_per_month", func(e Employee) string { return floatString(e.DaysPerMonth) }},
	{"hours_per_day", func(e Employee) string { return floatString(e.HoursPerDay) }},
	{"daily_rate", func(e Employee) string { return floatString(e.DailyRate) }},
	{"hourly_rate", func(e Employee) string { return floatString(e.HourlyRate) }},
	{"cost_of_living", func(e Employee) string { return floatString(e.CostOfLiving) }},
	{"representation_allowance", func(e Employee) string { return floatString(e.RepresentationAllowance) }},
	{"housing_allowance", func(e Employee) string { return floatString(e.HousingAllowance) }},
	{"transportation_allowance", func(e Employee) string { return floatString(e.TransportationAllowance) }},
	{"last_updated", func(e Employee) string { return e.LastUpdated }},
}

// FieldNames returns the canonical column order.
func FieldNames() []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.name
	}
	return names
}

// Values returns every field of the record in canonical order, stringified
// the same way for filtering and export: booleans as true/false, numbers in
// their shortest decimal form, dates as YYYY-MM-DD, absent values empty.
func (e Employee) Values() []string {
	values := make([]string, len(fields))
	for i, f := range fields {
		values[i] = f.value(e)
	}
	return values
}
