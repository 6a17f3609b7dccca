package response

import (
	"errors"
	"net/http"
	"time"

	"github.com/stafftide/intranet-backend-go/internal/domain/payroll"
	"github.com/stafftide/intranet-backend-go/internal/domain/worktime"
	"github.com/stafftide/intranet-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Period overlap carries the conflicting period's identity
	var overlapErr *payroll.OverlapError
	if errors.As(err, &overlapErr) {
		ConflictWithDetails(w, "Period overlaps an existing payroll period", map[string]string{
			"conflicting_period_id": overlapErr.ConflictingID,
			"conflicting_start":     overlapErr.ConflictingStart.Format(time.DateOnly),
			"conflicting_end":       overlapErr.ConflictingEnd.Format(time.DateOnly),
		})
		return
	}

	switch {
	// Payroll domain errors
	case errors.Is(err, payroll.ErrPeriodNotFound):
		NotFound(w, "Payroll period not found")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Period end must be after period start", nil)
	case errors.Is(err, payroll.ErrUnsupportedCountry):
		BadRequest(w, "Unsupported country code", nil)

	// Worktime domain errors
	case errors.Is(err, worktime.ErrSessionAlreadyOpen):
		Conflict(w, "A work session is already open")
	case errors.Is(err, worktime.ErrNoOpenSession):
		Conflict(w, "No open work session to close")
	case errors.Is(err, worktime.ErrIntervalNotFound):
		NotFound(w, "Work interval not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
