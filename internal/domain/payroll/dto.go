package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/stafftide/intranet-backend-go/internal/pkg/validator"
)

type GeneratePeriodRequest struct {
	// EmployeeID is optional; when empty the caller's own employee_id claim is used.
	EmployeeID       string           `json:"employee_id,omitempty"`
	PeriodStart      string           `json:"period_start"` // "2006-01-02"
	PeriodEnd        string           `json:"period_end"`   // "2006-01-02"
	CountryCode      string           `json:"country_code"`
	ContractType     *string          `json:"contract_type,omitempty"`
	MonthlySalary    *decimal.Decimal `json:"monthly_salary,omitempty"`
	HourlyRate       *decimal.Decimal `json:"hourly_rate,omitempty"`
	NormalDailyHours *float64         `json:"normal_daily_hours,omitempty"`
}

var contractTypes = []string{
	string(ContractFullTime),
	string(ContractPartTime75),
	string(ContractPartTime50),
	string(ContractPartTime25),
	string(ContractExternalServices),
}

func (r *GeneratePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.PeriodStart)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be a date in YYYY-MM-DD format"})
	}
	end, endOK := validator.IsValidDate(r.PeriodEnd)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be a date in YYYY-MM-DD format"})
	}
	if startOK && endOK && !start.Before(end) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be after period_start"})
	}

	if validator.IsEmpty(r.CountryCode) {
		errs = append(errs, validator.ValidationError{Field: "country_code", Message: "is required"})
	}

	if r.ContractType != nil && !validator.IsInSlice(*r.ContractType, contractTypes) {
		errs = append(errs, validator.ValidationError{Field: "contract_type", Message: "is not a known contract type"})
	}
	if r.MonthlySalary != nil && r.MonthlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "must be non-negative"})
	}
	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}
	if r.NormalDailyHours != nil && (*r.NormalDailyHours <= 0 || *r.NormalDailyHours > 24) {
		errs = append(errs, validator.ValidationError{Field: "normal_daily_hours", Message: "must be between 0 and 24"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CategorizedHoursResponse struct {
	Regular                    float64 `json:"regular"`
	Overtime                   float64 `json:"overtime"`
	Night                      float64 `json:"night"`
	Holiday                    float64 `json:"holiday"`
	SundayHoliday              float64 `json:"sunday_holiday"`
	OvertimeNight              float64 `json:"overtime_night"`
	OvertimeSundayHoliday      float64 `json:"overtime_sunday_holiday"`
	OvertimeNightSundayHoliday float64 `json:"overtime_night_sunday_holiday"`
	Total                      float64 `json:"total"`
}

// PeriodResponse is the payslip-facing view of a registered period: bucketed
// hours plus monetary totals, currency and country label.
type PeriodResponse struct {
	ID              string                   `json:"id"`
	EmployeeID      string                   `json:"employee_id"`
	CountryCode     string                   `json:"country_code"`
	PeriodStart     string                   `json:"period_start"`
	PeriodEnd       string                   `json:"period_end"`
	Hours           CategorizedHoursResponse `json:"hours"`
	HourlyRate      decimal.Decimal          `json:"hourly_rate"`
	Currency        string                   `json:"currency"`
	GrossPay        decimal.Decimal          `json:"gross_pay"`
	SocialSecurity  decimal.Decimal          `json:"social_security"`
	Taxes           decimal.Decimal          `json:"taxes"`
	TotalDeductions decimal.Decimal          `json:"total_deductions"`
	NetPay          decimal.Decimal          `json:"net_pay"`
}
