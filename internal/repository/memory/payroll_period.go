package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/stafftide/intranet-backend-go/internal/domain/payroll"
)

// PeriodRepository is an in-memory payroll.PeriodRepository used by tests and
// local development. Overlap checks run under the same lock as inserts, so
// RegisterPeriod keeps the check-then-insert atomic.
type PeriodRepository struct {
	mu      sync.RWMutex
	periods map[string]payroll.PayrollPeriod
}

func NewPeriodRepository() *PeriodRepository {
	return &PeriodRepository{periods: make(map[string]payroll.PayrollPeriod)}
}

func (r *PeriodRepository) FindOverlappingPeriods(ctx context.Context, employeeID, companyID string, start, end time.Time) ([]payroll.PayrollPeriod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.overlapping(employeeID, companyID, start, end), nil
}

func (r *PeriodRepository) RegisterPeriod(ctx context.Context, period payroll.PayrollPeriod) (payroll.PayrollPeriod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if conflicts := r.overlapping(period.EmployeeID, period.CompanyID, period.PeriodStart, period.PeriodEnd); len(conflicts) > 0 {
		conflict := conflicts[0]
		return payroll.PayrollPeriod{}, &payroll.OverlapError{
			ConflictingID:    conflict.ID,
			ConflictingStart: conflict.PeriodStart,
			ConflictingEnd:   conflict.PeriodEnd,
		}
	}

	now := time.Now().UTC()
	period.CreatedAt = now
	period.UpdatedAt = now
	r.periods[period.ID] = period
	return period, nil
}

func (r *PeriodRepository) GetPeriodByID(ctx context.Context, id, companyID string) (payroll.PayrollPeriod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	period, ok := r.periods[id]
	if !ok || period.CompanyID != companyID {
		return payroll.PayrollPeriod{}, payroll.ErrPeriodNotFound
	}
	return period, nil
}

func (r *PeriodRepository) ListPeriodsByEmployee(ctx context.Context, employeeID, companyID string) ([]payroll.PayrollPeriod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []payroll.PayrollPeriod
	for _, period := range r.periods {
		if period.EmployeeID == employeeID && period.CompanyID == companyID {
			out = append(out, period)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PeriodStart.Before(out[j].PeriodStart) })
	return out, nil
}

// overlapping must be called with the lock held.
func (r *PeriodRepository) overlapping(employeeID, companyID string, start, end time.Time) []payroll.PayrollPeriod {
	var out []payroll.PayrollPeriod
	for _, period := range r.periods {
		if period.EmployeeID != employeeID || period.CompanyID != companyID {
			continue
		}
		if !period.PeriodStart.After(end) && !period.PeriodEnd.Before(start) {
			out = append(out, period)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PeriodStart.Before(out[j].PeriodStart) })
	return out
}
