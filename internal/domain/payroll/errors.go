package payroll

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrPeriodNotFound     = errors.New("payroll period not found")
	ErrInvalidPeriod      = errors.New("period start must be before period end")
	ErrUnsupportedCountry = errors.New("no payroll rule set for country")
)

// OverlapError rejects a period that intersects an already registered one. It
// carries the conflicting period so callers can show it to the user.
type OverlapError struct {
	ConflictingID    string
	ConflictingStart time.Time
	ConflictingEnd   time.Time
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("period overlaps existing payroll period %s (%s - %s)",
		e.ConflictingID,
		e.ConflictingStart.Format("2006-01-02"),
		e.ConflictingEnd.Format("2006-01-02"),
	)
}
