package worktime

import (
	"context"

	"github.com/stafftide/intranet-backend-go/internal/pkg/validator"
)

type SessionService interface {
	ClockIn(ctx context.Context) (IntervalResponse, error)
	ClockOut(ctx context.Context) (IntervalResponse, error)
	ListIntervals(ctx context.Context, filter ListIntervalsRequest) ([]IntervalResponse, error)
}

type ListIntervalsRequest struct {
	From string // "2006-01-02", inclusive
	To   string // "2006-01-02", exclusive
}

func (r *ListIntervalsRequest) Validate() error {
	var errs validator.ValidationErrors

	from, fromOK := validator.IsValidDate(r.From)
	if !fromOK {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "must be a date in YYYY-MM-DD format"})
	}
	to, toOK := validator.IsValidDate(r.To)
	if !toOK {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must be a date in YYYY-MM-DD format"})
	}
	if fromOK && toOK && !from.Before(to) {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must be after from"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type IntervalResponse struct {
	ID         string   `json:"id"`
	EmployeeID string   `json:"employee_id"`
	StartTime  string   `json:"start_time"`
	EndTime    *string  `json:"end_time,omitempty"`
	Hours      *float64 `json:"hours,omitempty"`
}
