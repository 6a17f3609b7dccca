package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/stafftide/intranet-backend-go/internal/domain/payroll"
	"github.com/stafftide/intranet-backend-go/internal/domain/worktime"
	"github.com/stafftide/intranet-backend-go/internal/pkg/database"
)

type PeriodServiceImpl struct {
	db               *database.DB
	periodRepo       payroll.PeriodRepository
	intervalRepo     worktime.IntervalRepository
	categorizer      *Categorizer
	normalDailyHours float64
}

func NewPeriodService(
	db *database.DB,
	periodRepo payroll.PeriodRepository,
	intervalRepo worktime.IntervalRepository,
	calendar *HolidayCalendar,
	normalDailyHours float64,
) payroll.PeriodService {
	if normalDailyHours <= 0 {
		normalDailyHours = payroll.DefaultNormalDailyHours
	}
	return &PeriodServiceImpl{
		db:               db,
		periodRepo:       periodRepo,
		intervalRepo:     intervalRepo,
		categorizer:      NewCategorizer(calendar),
		normalDailyHours: normalDailyHours,
	}
}

// Helper to get company_id and employee_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID, employeeID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	employeeID, _ = claims["employee_id"].(string)

	return companyID, employeeID, nil
}

// ValidatePeriod checks a requested range against previously stored periods.
// Returns ErrInvalidPeriod for a degenerate range and *OverlapError when any
// existing period intersects [start, end]. This is the application-level
// check; RegisterPeriod repeats it atomically at the storage layer.
func ValidatePeriod(start, end time.Time, existing []payroll.PayrollPeriod) error {
	if !start.Before(end) {
		return payroll.ErrInvalidPeriod
	}

	for _, p := range existing {
		if !p.PeriodStart.After(end) && !p.PeriodEnd.Before(start) {
			return &payroll.OverlapError{
				ConflictingID:    p.ID,
				ConflictingStart: p.PeriodStart,
				ConflictingEnd:   p.PeriodEnd,
			}
		}
	}
	return nil
}

func (s *PeriodServiceImpl) GeneratePeriod(ctx context.Context, req payroll.GeneratePeriodRequest) (payroll.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PeriodResponse{}, err
	}

	companyID, callerEmployeeID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	employeeID := req.EmployeeID
	if employeeID == "" {
		employeeID = callerEmployeeID
	}
	if employeeID == "" {
		return payroll.PeriodResponse{}, fmt.Errorf("employee_id claim is missing and no employee_id was provided")
	}

	periodStart, _ := time.Parse("2006-01-02", req.PeriodStart)
	periodEnd, _ := time.Parse("2006-01-02", req.PeriodEnd)

	existing, err := s.periodRepo.FindOverlappingPeriods(ctx, employeeID, companyID, periodStart, periodEnd)
	if err != nil {
		return payroll.PeriodResponse{}, fmt.Errorf("failed to check for overlapping periods: %w", err)
	}
	if err := ValidatePeriod(periodStart, periodEnd, existing); err != nil {
		return payroll.PeriodResponse{}, err
	}

	emp := s.employeeContext(employeeID, req)

	rules, err := RulesFor(emp.CountryCode)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	// Intervals starting on the end date itself belong to the period.
	rangeEnd := periodEnd.AddDate(0, 0, 1)
	intervals, err := s.intervalRepo.ListByEmployeeRange(ctx, employeeID, companyID, periodStart, rangeEnd)
	if err != nil {
		return payroll.PeriodResponse{}, fmt.Errorf("failed to load work intervals: %w", err)
	}

	hours := s.categorizer.Categorize(intervals, emp)

	hourlyRate, err := ResolveHourlyRate(emp)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	compensation, err := Compensate(hours, hourlyRate, emp.CountryCode)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	period := payroll.PayrollPeriod{
		ID:           uuid.NewString(),
		EmployeeID:   employeeID,
		CompanyID:    companyID,
		CountryCode:  emp.CountryCode,
		PeriodStart:  periodStart,
		PeriodEnd:    periodEnd,
		Hours:        hours,
		HourlyRate:   hourlyRate,
		Currency:     rules.Currency,
		Compensation: compensation,
	}

	registered, err := s.periodRepo.RegisterPeriod(ctx, period)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	return mapToPeriodResponse(registered), nil
}

func (s *PeriodServiceImpl) GetPeriod(ctx context.Context, id string) (payroll.PeriodResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	period, err := s.periodRepo.GetPeriodByID(ctx, id, companyID)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	return mapToPeriodResponse(period), nil
}

func (s *PeriodServiceImpl) ListMyPeriods(ctx context.Context) ([]payroll.PeriodResponse, error) {
	companyID, employeeID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if employeeID == "" {
		return nil, fmt.Errorf("employee_id claim is missing or invalid")
	}

	periods, err := s.periodRepo.ListPeriodsByEmployee(ctx, employeeID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll periods: %w", err)
	}

	result := make([]payroll.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		result = append(result, mapToPeriodResponse(p))
	}
	return result, nil
}

func (s *PeriodServiceImpl) employeeContext(employeeID string, req payroll.GeneratePeriodRequest) payroll.EmployeeContext {
	emp := payroll.EmployeeContext{
		EmployeeID:       employeeID,
		CountryCode:      payroll.CountryCode(req.CountryCode),
		MonthlySalary:    req.MonthlySalary,
		StoredHourlyRate: req.HourlyRate,
		NormalDailyHours: s.normalDailyHours,
	}
	if req.ContractType != nil {
		contractType := payroll.ContractType(*req.ContractType)
		emp.ContractType = &contractType
	}
	if req.NormalDailyHours != nil {
		emp.NormalDailyHours = *req.NormalDailyHours
	}
	return emp
}

func mapToPeriodResponse(p payroll.PayrollPeriod) payroll.PeriodResponse {
	return payroll.PeriodResponse{
		ID:          p.ID,
		EmployeeID:  p.EmployeeID,
		CountryCode: string(p.CountryCode),
		PeriodStart: p.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   p.PeriodEnd.Format("2006-01-02"),
		Hours: payroll.CategorizedHoursResponse{
			Regular:                    p.Hours.Regular,
			Overtime:                   p.Hours.Overtime,
			Night:                      p.Hours.Night,
			Holiday:                    p.Hours.Holiday,
			SundayHoliday:              p.Hours.SundayHoliday,
			OvertimeNight:              p.Hours.OvertimeNight,
			OvertimeSundayHoliday:      p.Hours.OvertimeSundayHoliday,
			OvertimeNightSundayHoliday: p.Hours.OvertimeNightSundayHoliday,
			Total:                      p.Hours.Total(),
		},
		HourlyRate:      p.HourlyRate,
		Currency:        p.Currency,
		GrossPay:        p.Compensation.GrossPay,
		SocialSecurity:  p.Compensation.SocialSecurity,
		Taxes:           p.Compensation.Taxes,
		TotalDeductions: p.Compensation.TotalDeductions,
		NetPay:          p.Compensation.NetPay,
	}
}
