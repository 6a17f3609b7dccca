package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// CountryCode enum - jurisdictions with a payroll rule set
type CountryCode string

const (
	CountrySwitzerland CountryCode = "CH"
	CountryColombia    CountryCode = "CO"
)

// ContractType enum
type ContractType string

const (
	ContractFullTime         ContractType = "full_time"
	ContractPartTime75       ContractType = "part_time_75"
	ContractPartTime50       ContractType = "part_time_50"
	ContractPartTime25       ContractType = "part_time_25"
	ContractExternalServices ContractType = "external_services"
)

// DefaultNormalDailyHours is the contractual daily threshold used when the
// employee record carries none.
const DefaultNormalDailyHours = 8.0

// EmployeeContext carries the contract attributes the engine needs to resolve
// rates and categorize hours. Immutable input, never persisted by this module.
type EmployeeContext struct {
	EmployeeID       string
	CountryCode      CountryCode
	ContractType     *ContractType
	MonthlySalary    *decimal.Decimal
	StoredHourlyRate *decimal.Decimal
	NormalDailyHours float64
}

// HourCategory enum - the eight mutually exclusive compensation buckets
type HourCategory string

const (
	CategoryRegular                    HourCategory = "regular"
	CategoryOvertime                   HourCategory = "overtime"
	CategoryNight                      HourCategory = "night"
	CategoryHoliday                    HourCategory = "holiday"
	CategorySundayHoliday              HourCategory = "sunday_holiday"
	CategoryOvertimeNight              HourCategory = "overtime_night"
	CategoryOvertimeSundayHoliday      HourCategory = "overtime_sunday_holiday"
	CategoryOvertimeNightSundayHoliday HourCategory = "overtime_night_sunday_holiday"
)

// CategorizedHours holds worked hours per compensation bucket. Every minute of
// every closed interval lands in exactly one bucket; the sum of all buckets
// equals the sum of interval durations.
type CategorizedHours struct {
	Regular                    float64
	Overtime                   float64
	Night                      float64
	Holiday                    float64
	SundayHoliday              float64
	OvertimeNight              float64
	OvertimeSundayHoliday      float64
	OvertimeNightSundayHoliday float64
}

// Total returns the sum of all buckets.
func (h CategorizedHours) Total() float64 {
	return h.Regular + h.Overtime + h.Night + h.Holiday + h.SundayHoliday +
		h.OvertimeNight + h.OvertimeSundayHoliday + h.OvertimeNightSundayHoliday
}

// Bucket returns the hours recorded for a single category.
func (h CategorizedHours) Bucket(c HourCategory) float64 {
	switch c {
	case CategoryRegular:
		return h.Regular
	case CategoryOvertime:
		return h.Overtime
	case CategoryNight:
		return h.Night
	case CategoryHoliday:
		return h.Holiday
	case CategorySundayHoliday:
		return h.SundayHoliday
	case CategoryOvertimeNight:
		return h.OvertimeNight
	case CategoryOvertimeSundayHoliday:
		return h.OvertimeSundayHoliday
	case CategoryOvertimeNightSundayHoliday:
		return h.OvertimeNightSundayHoliday
	}
	return 0
}

// CompensationResult - pay derived from categorized hours. Never persisted
// independently of a PayrollPeriod.
type CompensationResult struct {
	GrossPay        decimal.Decimal
	SocialSecurity  decimal.Decimal
	Taxes           decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
}

// PayrollPeriod - one registered pay period for one employee. Date ranges for
// the same employee never overlap.
type PayrollPeriod struct {
	ID           string
	EmployeeID   string
	CompanyID    string
	CountryCode  CountryCode
	PeriodStart  time.Time
	PeriodEnd    time.Time
	Hours        CategorizedHours
	HourlyRate   decimal.Decimal
	Currency     string
	Compensation CompensationResult
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
