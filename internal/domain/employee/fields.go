package employee

import "strconv"

// FromFields builds a record from stringified field values keyed by
// canonical column name, the inverse of Values. The mapping is permissive:
// unparseable numbers and dates become nil, unparseable booleans false.
func FromFields(values map[string]string) Employee {
	return Employee{
		EmpID:                   values["emp_id"],
		FirstName:               values["first_name"],
		MiddleName:              values["middle_name"],
		LastName:                values["last_name"],
		Suffix:                  values["suffix"],
		Address:                 values["address"],
		City:                    values["city"],
		Province:                values["province"],
		Zip:                     values["zip"],
		Location:                values["location"],
		Department:              values["department"],
		Project:                 values["project"],
		Team:                    values["team"],
		Position:                values["position"],
		EmploymentType:          values["employment_type"],
		UserProfile:             values["user_profile"],
		Manager:                 values["manager"],
		Vendor:                  values["vendor"],
		Email:                   values["email"],
		Phone:                   values["phone"],
		CTCID:                   values["ctc_id"],
		CTCPlace:                values["ctc_place"],
		CTCDate:                 ParseDate(values["ctc_date"]),
		CTCAmount:               parseFloat(values["ctc_amount"]),
		ResidentCert:            values["resident_cert"],
		Notes:                   values["notes"],
		PayFrequency:            values["pay_frequency"],
		Sex:                     values["sex"],
		Active:                  parseBool(values["active"]),
		Kasambahay:              parseBool(values["kasambahay"]),
		Birthday:                ParseDate(values["birthday"]),
		DateHired:               ParseDate(values["date_hired"]),
		DateRegularized:         ParseDate(values["date_regularized"]),
		DateSeparated:           ParseDate(values["date_separated"]),
		ContractStart:           ParseDate(values["contract_start"]),
		ContractEnd:             ParseDate(values["contract_end"]),
		MinimumWageEarner:       parseBool(values["minimum_wage_earner"]),
		MonthlyRate:             parseFloat(values["monthly_rate"]),
		TaxID:                   values["tax_id"],
		SSSNumber:               values["sss_number"],
		PhilHealthID:            values["philhealth_id"],
		HDMFID:                  values["hdmf_id"],
		HDMFAccount:             values["hdmf_account"],
		BankName:                values["bank_name"],
		BankAccount:             values["bank_account"],
		RateType:                values["rate_type"],
		BaseMonthlyPay:          parseFloat(values["base_monthly_pay"]),
		DaysPerMonth:            parseFloat(values["days_per_month"]),
		HoursPerDay:             parseFloat(values["hours_per_day"]),
		DailyRate:               parseFloat(values["daily_rate"]),
		HourlyRate:              parseFloat(values["hourly_rate"]),
		CostOfLiving:            parseFloat(values["cost_of_living"]),
		RepresentationAllowance: parseFloat(values["representation_allowance"]),
		HousingAllowance:        parseFloat(values["housing_allowance"]),
		TransportationAllowance: parseFloat(values["transportation_allowance"]),
		LastUpdated:             values["last_updated"],
	}
}

func parseFloat(value string) *float64 {
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &parsed
}

func parseBool(value string) bool {
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}
	return parsed
}
