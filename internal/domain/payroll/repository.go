package payroll

import (
	"context"
	"time"
)

// PeriodRepository defines data access for registered payroll periods.
// All methods are scoped by companyID to prevent cross-company data access.
type PeriodRepository interface {
	// FindOverlappingPeriods returns every stored period for the employee whose
	// date range intersects [start, end].
	FindOverlappingPeriods(ctx context.Context, employeeID, companyID string, start, end time.Time) ([]PayrollPeriod, error)

	// RegisterPeriod runs the overlap check and the insert atomically, so two
	// concurrent requests cannot both pass the check against a stale snapshot.
	// Returns *OverlapError when the range is already covered.
	RegisterPeriod(ctx context.Context, period PayrollPeriod) (PayrollPeriod, error)

	GetPeriodByID(ctx context.Context, id, companyID string) (PayrollPeriod, error)
	ListPeriodsByEmployee(ctx context.Context, employeeID, companyID string) ([]PayrollPeriod, error)
}
