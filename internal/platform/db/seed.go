package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"masterfile/internal/domain/employee"
)

// Seed inserts a small demo data set on an empty table so a fresh install
// has something to show in the console. No-op once any record exists.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM employees").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	store := employee.NewStore(pool)
	monthly := 32000.0
	daily := 1200.0
	for _, emp := range []employee.Employee{
		{
			EmpID:       "EMP-0001",
			FirstName:   "Ana",
			LastName:    "Cruz",
			Department:  "Accounting",
			Position:    "Bookkeeper",
			Active:      true,
			Birthday:    employee.NewDate(1990, time.May, 2),
			DateHired:   employee.NewDate(2019, time.August, 12),
			RateType:    "monthly",
			MonthlyRate: &monthly,
		},
		{
			EmpID:      "EMP-0002",
			FirstName:  "Ben",
			LastName:   "Reyes",
			Department: "Operations",
			Position:   "Driver",
			Active:     true,
			Kasambahay: false,
			DateHired:  employee.NewDate(2021, time.February, 1),
			RateType:   "daily",
			DailyRate:  &daily,
		},
	} {
		if err := store.CreateEmployee(ctx, emp); err != nil {
			return err
		}
	}
	return nil
}
