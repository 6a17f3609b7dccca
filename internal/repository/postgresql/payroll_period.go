package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stafftide/intranet-backend-go/internal/domain/payroll"
	"github.com/stafftide/intranet-backend-go/internal/pkg/database"
)

type periodRepository struct {
	db *database.DB
}

func NewPeriodRepository(db *database.DB) payroll.PeriodRepository {
	return &periodRepository{db: db}
}

const periodColumns = `
	id, employee_id, company_id, country_code, period_start, period_end,
	regular_hours, overtime_hours, night_hours, holiday_hours, sunday_holiday_hours,
	overtime_night_hours, overtime_sunday_holiday_hours, overtime_night_sunday_holiday_hours,
	hourly_rate, currency, gross_pay, social_security, taxes, total_deductions, net_pay,
	created_at, updated_at
`

// FindOverlappingPeriods implements payroll.PeriodRepository.
func (r *periodRepository) FindOverlappingPeriods(ctx context.Context, employeeID, companyID string, start, end time.Time) ([]payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + periodColumns + `
		FROM payroll_periods
		WHERE employee_id = $1
		  AND company_id = $2
		  AND period_start <= $4
		  AND period_end >= $3
		ORDER BY period_start
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping periods: %w", err)
	}
	defer rows.Close()

	var periods []payroll.PayrollPeriod
	for rows.Next() {
		period, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll period: %w", err)
		}
		periods = append(periods, period)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read overlapping periods: %w", err)
	}

	return periods, nil
}

// RegisterPeriod implements payroll.PeriodRepository. The overlap check and
// the insert run in one transaction so concurrent registrations cannot both
// succeed for overlapping windows.
func (r *periodRepository) RegisterPeriod(ctx context.Context, period payroll.PayrollPeriod) (payroll.PayrollPeriod, error) {
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		conflicts, err := r.FindOverlappingPeriods(txCtx, period.EmployeeID, period.CompanyID, period.PeriodStart, period.PeriodEnd)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			conflict := conflicts[0]
			return &payroll.OverlapError{
				ConflictingID:    conflict.ID,
				ConflictingStart: conflict.PeriodStart,
				ConflictingEnd:   conflict.PeriodEnd,
			}
		}

		query := `
			INSERT INTO payroll_periods (
				id, employee_id, company_id, country_code, period_start, period_end,
				regular_hours, overtime_hours, night_hours, holiday_hours, sunday_holiday_hours,
				overtime_night_hours, overtime_sunday_holiday_hours, overtime_night_sunday_holiday_hours,
				hourly_rate, currency, gross_pay, social_security, taxes, total_deductions, net_pay
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
				$12, $13, $14, $15, $16, $17, $18, $19, $20, $21
			) RETURNING created_at, updated_at
		`

		return tx.QueryRow(ctx, query,
			period.ID,
			period.EmployeeID,
			period.CompanyID,
			period.CountryCode,
			period.PeriodStart,
			period.PeriodEnd,
			period.Hours.Regular,
			period.Hours.Overtime,
			period.Hours.Night,
			period.Hours.Holiday,
			period.Hours.SundayHoliday,
			period.Hours.OvertimeNight,
			period.Hours.OvertimeSundayHoliday,
			period.Hours.OvertimeNightSundayHoliday,
			period.HourlyRate,
			period.Currency,
			period.Compensation.GrossPay,
			period.Compensation.SocialSecurity,
			period.Compensation.Taxes,
			period.Compensation.TotalDeductions,
			period.Compensation.NetPay,
		).Scan(&period.CreatedAt, &period.UpdatedAt)
	})
	if err != nil {
		var overlapErr *payroll.OverlapError
		if errors.As(err, &overlapErr) {
			return payroll.PayrollPeriod{}, overlapErr
		}
		return payroll.PayrollPeriod{}, fmt.Errorf("failed to register payroll period: %w", err)
	}

	return period, nil
}

// GetPeriodByID implements payroll.PeriodRepository.
func (r *periodRepository) GetPeriodByID(ctx context.Context, id, companyID string) (payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + periodColumns + `
		FROM payroll_periods
		WHERE id = $1
		  AND company_id = $2
		LIMIT 1
	`

	period, err := scanPeriod(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollPeriod{}, payroll.ErrPeriodNotFound
		}
		return payroll.PayrollPeriod{}, fmt.Errorf("failed to get payroll period: %w", err)
	}

	return period, nil
}

// ListPeriodsByEmployee implements payroll.PeriodRepository.
func (r *periodRepository) ListPeriodsByEmployee(ctx context.Context, employeeID, companyID string) ([]payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + periodColumns + `
		FROM payroll_periods
		WHERE employee_id = $1
		  AND company_id = $2
		ORDER BY period_start
	`

	rows, err := q.Query(ctx, query, employeeID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll periods: %w", err)
	}
	defer rows.Close()

	var periods []payroll.PayrollPeriod
	for rows.Next() {
		period, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll period: %w", err)
		}
		periods = append(periods, period)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read payroll periods: %w", err)
	}

	return periods, nil
}

func scanPeriod(row pgx.Row) (payroll.PayrollPeriod, error) {
	var period payroll.PayrollPeriod
	err := row.Scan(
		&period.ID, &period.EmployeeID, &period.CompanyID, &period.CountryCode,
		&period.PeriodStart, &period.PeriodEnd,
		&period.Hours.Regular, &period.Hours.Overtime, &period.Hours.Night,
		&period.Hours.Holiday, &period.Hours.SundayHoliday,
		&period.Hours.OvertimeNight, &period.Hours.OvertimeSundayHoliday,
		&period.Hours.OvertimeNightSundayHoliday,
		&period.HourlyRate, &period.Currency,
		&period.Compensation.GrossPay, &period.Compensation.SocialSecurity,
		&period.Compensation.Taxes, &period.Compensation.TotalDeductions,
		&period.Compensation.NetPay,
		&period.CreatedAt, &period.UpdatedAt,
	)
	return period, err
}
