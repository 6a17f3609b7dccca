package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stafftide/intranet-backend-go/internal/domain/worktime"
)

// IntervalRepository is an in-memory worktime.IntervalRepository.
type IntervalRepository struct {
	mu        sync.RWMutex
	intervals map[string]worktime.WorkInterval
}

func NewIntervalRepository() *IntervalRepository {
	return &IntervalRepository{intervals: make(map[string]worktime.WorkInterval)}
}

func (r *IntervalRepository) Create(ctx context.Context, interval worktime.WorkInterval) (worktime.WorkInterval, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if interval.ID == "" {
		interval.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	interval.CreatedAt = now
	interval.UpdatedAt = now
	r.intervals[interval.ID] = interval
	return interval, nil
}

func (r *IntervalRepository) Update(ctx context.Context, interval worktime.WorkInterval) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.intervals[interval.ID]
	if !ok || stored.CompanyID != interval.CompanyID {
		return worktime.ErrIntervalNotFound
	}
	interval.CreatedAt = stored.CreatedAt
	interval.UpdatedAt = time.Now().UTC()
	r.intervals[interval.ID] = interval
	return nil
}

func (r *IntervalRepository) GetOpenSession(ctx context.Context, employeeID, companyID string) (worktime.WorkInterval, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, interval := range r.intervals {
		if interval.EmployeeID == employeeID && interval.CompanyID == companyID && interval.EndTime == nil {
			return interval, nil
		}
	}
	return worktime.WorkInterval{}, worktime.ErrNoOpenSession
}

func (r *IntervalRepository) ListByEmployeeRange(ctx context.Context, employeeID, companyID string, from, to time.Time) ([]worktime.WorkInterval, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []worktime.WorkInterval
	for _, interval := range r.intervals {
		if interval.EmployeeID != employeeID || interval.CompanyID != companyID {
			continue
		}
		if interval.StartTime.Before(from) || !interval.StartTime.Before(to) {
			continue
		}
		out = append(out, interval)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}
