package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stafftide/intranet-backend-go/internal/domain/worktime"
	"github.com/stafftide/intranet-backend-go/internal/pkg/database"
)

type intervalRepository struct {
	db *database.DB
}

func NewIntervalRepository(db *database.DB) worktime.IntervalRepository {
	return &intervalRepository{db: db}
}

// Create implements worktime.IntervalRepository.
func (r *intervalRepository) Create(ctx context.Context, interval worktime.WorkInterval) (worktime.WorkInterval, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_intervals (employee_id, company_id, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		interval.EmployeeID,
		interval.CompanyID,
		interval.StartTime,
		interval.EndTime,
	).Scan(&interval.ID, &interval.CreatedAt, &interval.UpdatedAt)

	if err != nil {
		return worktime.WorkInterval{}, fmt.Errorf("failed to create work interval: %w", err)
	}

	return interval, nil
}

// Update implements worktime.IntervalRepository.
func (r *intervalRepository) Update(ctx context.Context, interval worktime.WorkInterval) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_intervals
		SET start_time = $1, end_time = $2, updated_at = NOW()
		WHERE id = $3
		  AND company_id = $4
	`

	tag, err := q.Exec(ctx, query, interval.StartTime, interval.EndTime, interval.ID, interval.CompanyID)
	if err != nil {
		return fmt.Errorf("failed to update work interval: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worktime.ErrIntervalNotFound
	}

	return nil
}

// GetOpenSession implements worktime.IntervalRepository.
func (r *intervalRepository) GetOpenSession(ctx context.Context, employeeID, companyID string) (worktime.WorkInterval, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, start_time, end_time, created_at, updated_at
		FROM work_intervals
		WHERE employee_id = $1
		  AND company_id = $2
		  AND end_time IS NULL
		ORDER BY start_time DESC
		LIMIT 1
	`

	var interval worktime.WorkInterval
	err := q.QueryRow(ctx, query, employeeID, companyID).Scan(
		&interval.ID, &interval.EmployeeID, &interval.CompanyID,
		&interval.StartTime, &interval.EndTime,
		&interval.CreatedAt, &interval.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return worktime.WorkInterval{}, worktime.ErrNoOpenSession
		}
		return worktime.WorkInterval{}, fmt.Errorf("failed to get open session: %w", err)
	}

	return interval, nil
}

// ListByEmployeeRange implements worktime.IntervalRepository.
func (r *intervalRepository) ListByEmployeeRange(ctx context.Context, employeeID, companyID string, from, to time.Time) ([]worktime.WorkInterval, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, start_time, end_time, created_at, updated_at
		FROM work_intervals
		WHERE employee_id = $1
		  AND company_id = $2
		  AND start_time >= $3
		  AND start_time < $4
		ORDER BY start_time
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query work intervals: %w", err)
	}
	defer rows.Close()

	var intervals []worktime.WorkInterval
	for rows.Next() {
		var interval worktime.WorkInterval
		if err := rows.Scan(
			&interval.ID, &interval.EmployeeID, &interval.CompanyID,
			&interval.StartTime, &interval.EndTime,
			&interval.CreatedAt, &interval.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan work interval: %w", err)
		}
		intervals = append(intervals, interval)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read work intervals: %w", err)
	}

	return intervals, nil
}
