package employee

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const employeeColumns = `
    emp_id,
    COALESCE(first_name, ''), COALESCE(middle_name, ''), COALESCE(last_name, ''), COALESCE(suffix, ''),
    COALESCE(address, ''), COALESCE(city, ''), COALESCE(province, ''), COALESCE(zip, ''), COALESCE(location, ''),
    COALESCE(department, ''), COALESCE(project, ''), COALESCE(team, ''), COALESCE(position, ''),
    COALESCE(employment_type, ''), COALESCE(user_profile, ''), COALESCE(manager, ''), COALESCE(vendor, ''),
    COALESCE(email, ''), COALESCE(phone, ''),
    COALESCE(ctc_id, ''), COALESCE(ctc_place, ''), ctc_date, ctc_amount, COALESCE(resident_cert, ''),
    COALESCE(notes, ''), COALESCE(pay_frequency, ''), COALESCE(sex, ''),
    active, kasambahay,
    birthday, date_hired, date_regularized, date_separated, contract_start, contract_end,
    minimum_wage_earner,
    monthly_rate,
    COALESCE(tax_id, ''), COALESCE(sss_number, ''), COALESCE(philhealth_id, ''),
    COALESCE(hdmf_id, ''), COALESCE(hdmf_account, ''),
    COALESCE(bank_name, ''), COALESCE(bank_account, ''), COALESCE(rate_type, ''),
    base_monthly_pay, days_per_month, hours_per_day, daily_rate, hourly_rate,
    cost_of_living, representation_allowance, housing_allowance, transportation_allowance,
    last_updated`

func scanEmployee(row pgx.Row) (Employee, error) {
	var emp Employee
	var ctcDate, birthday, dateHired, dateRegularized, dateSeparated, contractStart, contractEnd *time.Time
	var lastUpdated time.Time

	err := row.Scan(
		&emp.EmpID,
		&emp.FirstName, &emp.MiddleName, &emp.LastName, &emp.Suffix,
		&emp.Address, &emp.City, &emp.Province, &emp.Zip, &emp.Location,
		&emp.Department, &emp.Project, &emp.Team, &emp.Position,
		&emp.EmploymentType, &emp.UserProfile, &emp.Manager, &emp.Vendor,
		&emp.Email, &emp.Phone,
		&emp.CTCID, &emp.CTCPlace, &ctcDate, &emp.CTCAmount, &emp.ResidentCert,
		&emp.Notes, &emp.PayFrequency, &emp.Sex,
		&emp.Active, &emp.Kasambahay,
		&birthday, &dateHired, &dateRegularized, &dateSeparated, &contractStart, &contractEnd,
		&emp.MinimumWageEarner,
		&emp.MonthlyRate,
		&emp.TaxID, &emp.SSSNumber, &emp.PhilHealthID,
		&emp.HDMFID, &emp.HDMFAccount,
		&emp.BankName, &emp.BankAccount, &emp.RateType,
		&emp.BaseMonthlyPay, &emp.DaysPerMonth, &emp.HoursPerDay, &emp.DailyRate, &emp.HourlyRate,
		&emp.CostOfLiving, &emp.RepresentationAllowance, &emp.HousingAllowance, &emp.TransportationAllowance,
		&lastUpdated,
	)
	if err != nil {
		return Employee{}, err
	}

	emp.CTCDate = dateFrom(ctcDate)
	emp.Birthday = dateFrom(birthday)
	emp.DateHired = dateFrom(dateHired)
	emp.DateRegularized = dateFrom(dateRegularized)
	emp.DateSeparated = dateFrom(dateSeparated)
	emp.ContractStart = dateFrom(contractStart)
	emp.ContractEnd = dateFrom(contractEnd)
	emp.LastUpdated = lastUpdated.UTC().Format(time.RFC3339)
	return emp, nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY emp_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (s *Store) GetEmployee(ctx context.Context, empID string) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE emp_id = $1`, empID)
	emp, err := scanEmployee(row)
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Store) CreateEmployee(ctx context.Context, emp Employee) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO employees (
      emp_id, first_name, middle_name, last_name, suffix,
      address, city, province, zip, location,
      department, project, team, position,
      employment_type, user_profile, manager, vendor,
      email, phone,
      ctc_id, ctc_place, ctc_date, ctc_amount, resident_cert,
      notes, pay_frequency, sex,
      active, kasambahay,
      birthday, date_hired, date_regularized, date_separated, contract_start, contract_end,
      minimum_wage_earner, monthly_rate,
      tax_id, sss_number, philhealth_id, hdmf_id, hdmf_account,
      bank_name, bank_account, rate_type,
      base_monthly_pay, days_per_month, hours_per_day, daily_rate, hourly_rate,
      cost_of_living, representation_allowance, housing_allowance, transportation_allowance,
      last_updated
    ) VALUES (
      $1,$2,$3,$4,$5,$6,$7,$8,$9,$10,
      $11,$12,$13,$14,$15,$16,$17,$18,$19,$20,
      $21,$22,$23,$24,$25,$26,$27,$28,$29,$30,
      $31,$32,$33,$34,$35,$36,$37,$38,$39,$40,
      $41,$42,$43,$44,$45,$46,$47,$48,$49,$50,
      $51,$52,$53,$54,$55, now()
    )
  `, employeeParams(emp)...)
	return err
}

func (s *Store) UpdateEmployee(ctx context.Context, empID string, emp Employee) (bool, error) {
	emp.EmpID = empID
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees SET
      first_name = $2, middle_name = $3, last_name = $4, suffix = $5,
      address = $6, city = $7, province = $8, zip = $9, location = $10,
      department = $11, project = $12, team = $13, position = $14,
      employment_type = $15, user_profile = $16, manager = $17, vendor = $18,
      email = $19, phone = $20,
      ctc_id = $21, ctc_place = $22, ctc_date = $23, ctc_amount = $24, resident_cert = $25,
      notes = $26, pay_frequency = $27, sex = $28,
      active = $29, kasambahay = $30,
      birthday = $31, date_hired = $32, date_regularized = $33, date_separated = $34,
      contract_start = $35, contract_end = $36,
      minimum_wage_earner = $37, monthly_rate = $38,
      tax_id = $39, sss_number = $40, philhealth_id = $41, hdmf_id = $42, hdmf_account = $43,
      bank_name = $44, bank_account = $45, rate_type = $46,
      base_monthly_pay = $47, days_per_month = $48, hours_per_day = $49,
      daily_rate = $50, hourly_rate = $51,
      cost_of_living = $52, representation_allowance = $53,
      housing_allowance = $54, transportation_allowance = $55,
      last_updated = now()
    WHERE emp_id = $1
  `, employeeParams(emp)...)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) DeleteEmployee(ctx context.Context, empID string) (bool, error) {
	tag, err := s.DB.Exec(ctx, `DELETE FROM employees WHERE emp_id = $1`, empID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// employeeParams lays out the record in the positional order shared by the
// insert and update statements ($1 is always emp_id).
func employeeParams(emp Employee) []any {
	return []any{
		emp.EmpID,
		nullIfEmpty(emp.FirstName), nullIfEmpty(emp.MiddleName), nullIfEmpty(emp.LastName), nullIfEmpty(emp.Suffix),
		nullIfEmpty(emp.Address), nullIfEmpty(emp.City), nullIfEmpty(emp.Province), nullIfEmpty(emp.Zip), nullIfEmpty(emp.Location),
		nullIfEmpty(emp.Department), nullIfEmpty(emp.Project), nullIfEmpty(emp.Team), nullIfEmpty(emp.Position),
		nullIfEmpty(emp.EmploymentType), nullIfEmpty(emp.UserProfile), nullIfEmpty(emp.Manager), nullIfEmpty(emp.Vendor),
		nullIfEmpty(emp.Email), nullIfEmpty(emp.Phone),
		nullIfEmpty(emp.CTCID), nullIfEmpty(emp.CTCPlace), dateParam(emp.CTCDate), emp.CTCAmount, nullIfEmpty(emp.ResidentCert),
		nullIfEmpty(emp.Notes), nullIfEmpty(emp.PayFrequency), nullIfEmpty(emp.Sex),
		emp.Active, emp.Kasambahay,
		dateParam(emp.Birthday), dateParam(emp.DateHired), dateParam(emp.DateRegularized), dateParam(emp.DateSeparated),
		dateParam(emp.ContractStart), dateParam(emp.ContractEnd),
		emp.MinimumWageEarner, emp.MonthlyRate,
		nullIfEmpty(emp.TaxID), nullIfEmpty(emp.SSSNumber), nullIfEmpty(emp.PhilHealthID),
		nullIfEmpty(emp.HDMFID), nullIfEmpty(emp.HDMFAccount),
		nullIfEmpty(emp.BankName), nullIfEmpty(emp.BankAccount), nullIfEmpty(emp.RateType),
		emp.BaseMonthlyPay, emp.DaysPerMonth, emp.HoursPerDay, emp.DailyRate, emp.HourlyRate,
		emp.CostOfLiving, emp.RepresentationAllowance, emp.HousingAllowance, emp.TransportationAllowance,
	}
}

func dateFrom(t *time.Time) *Date {
	if t == nil || t.IsZero() {
		return nil
	}
	return &Date{Time: *t}
}

func dateParam(d *Date) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	parsed := d.Time
	return &parsed
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
