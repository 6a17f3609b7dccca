package worktime

import (
	"context"
	"time"
)

// IntervalRepository defines data access for clock-in/clock-out sessions.
// All methods are scoped by companyID to prevent cross-company data access.
type IntervalRepository interface {
	Create(ctx context.Context, interval WorkInterval) (WorkInterval, error)
	Update(ctx context.Context, interval WorkInterval) error

	// GetOpenSession returns the employee's interval with no end time.
	// Returns ErrNoOpenSession when every session is closed.
	GetOpenSession(ctx context.Context, employeeID, companyID string) (WorkInterval, error)

	// ListByEmployeeRange returns intervals whose start time falls in [from, to),
	// ordered by start time.
	ListByEmployeeRange(ctx context.Context, employeeID, companyID string, from, to time.Time) ([]WorkInterval, error)
}
