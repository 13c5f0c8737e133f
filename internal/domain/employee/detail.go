package employee

type DetailField struct {
	Label string
	Value string
}

type DetailSection struct {
	Title  string
	Fields []DetailField
}

// DetailSections groups one record into the fixed read-only sections of the
// detail view. Absent values render as N/A, booleans as Yes/No, dates via
// the display formatter.
func DetailSections(e Employee) []DetailSection {
	return []DetailSection{
		{
			Title: "Personal Information",
			Fields: []DetailField{
				{"Employee ID", orNA(e.EmpID)},
				{"First Name", orNA(e.FirstName)},
				{"Middle Name", orNA(e.MiddleName)},
				{"Last Name", orNA(e.LastName)},
				{"Suffix", orNA(e.Suffix)},
				{"Sex", orNA(e.Sex)},
				{"Birthday", FormatDate(e.Birthday)},
				{"Email", orNA(e.Email)},
				{"Phone", orNA(e.Phone)},
				{"Address", orNA(e.Address)},
				{"City", orNA(e.City)},
				{"Province", orNA(e.Province)},
				{"Zip", orNA(e.Zip)},
			},
		},
		{
			Title: "Employment Details",
			Fields: []DetailField{
				{"Location", orNA(e.Location)},
				{"Department", orNA(e.Department)},
				{"Project", orNA(e.Project)},
				{"Team", orNA(e.Team)},
				{"Position", orNA(e.Position)},
				{"Employment Type", orNA(e.EmploymentType)},
				{"User Profile", orNA(e.UserProfile)},
				{"Manager", orNA(e.Manager)},
				{"Vendor", orNA(e.Vendor)},
				{"Active", YesNo(e.Active)},
			},
		},
		{
			Title: "Dates",
			Fields: []DetailField{
				{"Date Hired", FormatDate(e.DateHired)},
				{"Date Regularized", FormatDate(e.DateRegularized)},
				{"Date Separated", FormatDate(e.DateSeparated)},
				{"Contract Start", FormatDate(e.ContractStart)},
				{"Contract End", FormatDate(e.ContractEnd)},
				{"Last Updated", orNA(e.LastUpdated)},
			},
		},
		{
			Title: "Compensation",
			Fields: []DetailField{
				{"Monthly Rate", numOrNA(e.MonthlyRate)},
				{"Daily Rate", numOrNA(e.DailyRate)},
				{"Hourly Rate", numOrNA(e.HourlyRate)},
				{"Days/Month", numOrNA(e.DaysPerMonth)},
				{"Hours/Day", numOrNA(e.HoursPerDay)},
				{"Cost of Living", numOrNA(e.CostOfLiving)},
				{"Rep Allowance", numOrNA(e.RepresentationAllowance)},
				{"Housing Allowance", numOrNA(e.HousingAllowance)},
				{"Trans Allowance", numOrNA(e.TransportationAllowance)},
			},
		},
		{
			Title: "Government IDs & Bank Info",
			Fields: []DetailField{
				{"Tax ID", orNA(e.TaxID)},
				{"SSS Number", orNA(e.SSSNumber)},
				{"PhilHealth ID", orNA(e.PhilHealthID)},
				{"HDMF ID", orNA(e.HDMFID)},
				{"HDMF Account", orNA(e.HDMFAccount)},
				{"Bank Name", orNA(e.BankName)},
				{"Bank Account", orNA(e.BankAccount)},
				{"CTC ID", orNA(e.CTCID)},
				{"CTC Place", orNA(e.CTCPlace)},
				{"CTC Date", FormatDate(e.CTCDate)},
			},
		},
	}
}

// numOrNA treats a zero rate or allowance the same as an absent one.
func numOrNA(value *float64) string {
	if value == nil || *value == 0 {
		return "N/A"
	}
	return floatString(value)
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
