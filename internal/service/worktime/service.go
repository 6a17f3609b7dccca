package worktime

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stafftide/intranet-backend-go/internal/domain/worktime"
	"github.com/stafftide/intranet-backend-go/internal/pkg/database"
)

type SessionServiceImpl struct {
	db           *database.DB
	intervalRepo worktime.IntervalRepository
}

func NewSessionService(db *database.DB, intervalRepo worktime.IntervalRepository) worktime.SessionService {
	return &SessionServiceImpl{db: db, intervalRepo: intervalRepo}
}

func claimsFromContext(ctx context.Context) (companyID, employeeID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	employeeID, ok = claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return companyID, employeeID, nil
}

// ClockIn opens a new work session. A second open session for the same
// employee is rejected.
func (s *SessionServiceImpl) ClockIn(ctx context.Context) (worktime.IntervalResponse, error) {
	companyID, employeeID, err := claimsFromContext(ctx)
	if err != nil {
		return worktime.IntervalResponse{}, err
	}

	_, err = s.intervalRepo.GetOpenSession(ctx, employeeID, companyID)
	if err == nil {
		return worktime.IntervalResponse{}, worktime.ErrSessionAlreadyOpen
	}
	if !errors.Is(err, worktime.ErrNoOpenSession) {
		return worktime.IntervalResponse{}, fmt.Errorf("failed to check for open session: %w", err)
	}

	interval := worktime.WorkInterval{
		EmployeeID: employeeID,
		CompanyID:  companyID,

		// Absolute times are stored in UTC.
		StartTime: time.Now().UTC(),
	}

	created, err := s.intervalRepo.Create(ctx, interval)
	if err != nil {
		return worktime.IntervalResponse{}, fmt.Errorf("failed to create work interval: %w", err)
	}

	return mapIntervalToResponse(created), nil
}

// ClockOut closes the employee's open session.
func (s *SessionServiceImpl) ClockOut(ctx context.Context) (worktime.IntervalResponse, error) {
	companyID, employeeID, err := claimsFromContext(ctx)
	if err != nil {
		return worktime.IntervalResponse{}, err
	}

	interval, err := s.intervalRepo.GetOpenSession(ctx, employeeID, companyID)
	if err != nil {
		if errors.Is(err, worktime.ErrNoOpenSession) {
			return worktime.IntervalResponse{}, worktime.ErrNoOpenSession
		}
		return worktime.IntervalResponse{}, fmt.Errorf("failed to get open session: %w", err)
	}

	now := time.Now().UTC()
	interval.EndTime = &now

	if err := s.intervalRepo.Update(ctx, interval); err != nil {
		return worktime.IntervalResponse{}, fmt.Errorf("failed to close work interval: %w", err)
	}

	return mapIntervalToResponse(interval), nil
}

// ListIntervals returns the caller's sessions starting inside [from, to).
func (s *SessionServiceImpl) ListIntervals(ctx context.Context, filter worktime.ListIntervalsRequest) ([]worktime.IntervalResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	companyID, employeeID, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	from, _ := time.Parse("2006-01-02", filter.From)
	to, _ := time.Parse("2006-01-02", filter.To)

	intervals, err := s.intervalRepo.ListByEmployeeRange(ctx, employeeID, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list work intervals: %w", err)
	}

	responses := make([]worktime.IntervalResponse, 0, len(intervals))
	for _, interval := range intervals {
		responses = append(responses, mapIntervalToResponse(interval))
	}
	return responses, nil
}

func mapIntervalToResponse(interval worktime.WorkInterval) worktime.IntervalResponse {
	resp := worktime.IntervalResponse{
		ID:         interval.ID,
		EmployeeID: interval.EmployeeID,
		StartTime:  interval.StartTime.Format(time.RFC3339),
	}
	if interval.EndTime != nil {
		endTime := interval.EndTime.Format(time.RFC3339)
		hours := interval.Hours()
		resp.EndTime = &endTime
		resp.Hours = &hours
	}
	return resp
}
