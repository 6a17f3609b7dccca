package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stafftide/intranet-backend-go/internal/domain/payroll"
)

// CountryRules bundles everything jurisdiction-specific: currency, night
// window, fallback rate, bucket multipliers and the simplified flat-rate
// statutory deductions. The deduction percentages are approximations, not
// progressive tax tables.
type CountryRules struct {
	Currency          string
	NightStartHour    int
	NightEndHour      int
	DefaultHourlyRate decimal.Decimal

	// Multipliers lists the premium buckets this country pays. Buckets absent
	// from the map contribute nothing to gross pay; regular hours always pay
	// the plain rate.
	Multipliers map[payroll.HourCategory]decimal.Decimal

	SocialSecurityRate decimal.Decimal
	TaxRate            decimal.Decimal
}

var countryRules = map[payroll.CountryCode]CountryRules{
	payroll.CountrySwitzerland: {
		Currency:          "CHF",
		NightStartHour:    20,
		NightEndHour:      6,
		DefaultHourlyRate: decimal.NewFromInt(50),
		// Switzerland pays no combined premiums: hours landing in the combined
		// buckets are excluded from gross pay. Kept as-is pending a product
		// decision on the Swiss rule set.
		Multipliers: map[payroll.HourCategory]decimal.Decimal{
			payroll.CategoryOvertime: decimal.RequireFromString("1.25"),
			payroll.CategoryNight:    decimal.RequireFromString("1.25"),
			payroll.CategoryHoliday:  decimal.RequireFromString("2.00"),
		},
		SocialSecurityRate: decimal.RequireFromString("0.106"),
		TaxRate:            decimal.RequireFromString("0.15"),
	},
	payroll.CountryColombia: {
		Currency:          "COP",
		NightStartHour:    22,
		NightEndHour:      6,
		DefaultHourlyRate: decimal.NewFromInt(50000),
		Multipliers: map[payroll.HourCategory]decimal.Decimal{
			payroll.CategoryOvertime:                   decimal.RequireFromString("1.25"),
			payroll.CategoryNight:                      decimal.RequireFromString("1.75"),
			payroll.CategoryHoliday:                    decimal.RequireFromString("2.00"),
			payroll.CategorySundayHoliday:              decimal.RequireFromString("2.00"),
			payroll.CategoryOvertimeNight:              decimal.RequireFromString("2.1875"), // 1.25 x 1.75
			payroll.CategoryOvertimeSundayHoliday:      decimal.RequireFromString("2.50"),   // 1.25 x 2.00
			payroll.CategoryOvertimeNightSundayHoliday: decimal.RequireFromString("3.50"),   // 1.25 x 1.75 x 2.00
		},
		SocialSecurityRate: decimal.RequireFromString("0.16"),
		TaxRate:            decimal.RequireFromString("0.10"),
	},
}

// premiumCategories fixes the order gross-pay terms are summed in, so output
// is deterministic across runs.
var premiumCategories = []payroll.HourCategory{
	payroll.CategoryOvertime,
	payroll.CategoryNight,
	payroll.CategoryHoliday,
	payroll.CategorySundayHoliday,
	payroll.CategoryOvertimeNight,
	payroll.CategoryOvertimeSundayHoliday,
	payroll.CategoryOvertimeNightSundayHoliday,
}

// RulesFor returns the rule set for a country, or ErrUnsupportedCountry.
// Failing loudly beats silently paying zero premiums.
func RulesFor(country payroll.CountryCode) (CountryRules, error) {
	rules, ok := countryRules[country]
	if !ok {
		return CountryRules{}, fmt.Errorf("%w: %s", payroll.ErrUnsupportedCountry, country)
	}
	return rules, nil
}

// nightWindowFor returns the night window for categorization. Unknown
// countries use the default window; categorization itself is country-agnostic.
func nightWindowFor(country payroll.CountryCode) (startHour, endHour int) {
	if rules, ok := countryRules[country]; ok {
		return rules.NightStartHour, rules.NightEndHour
	}
	return 20, 6
}

// CalculateGrossPay prices categorized hours at the hourly rate with the
// country's premium multipliers. Regular hours pay the plain rate.
func CalculateGrossPay(hours payroll.CategorizedHours, hourlyRate decimal.Decimal, country payroll.CountryCode) (decimal.Decimal, error) {
	rules, err := RulesFor(country)
	if err != nil {
		return decimal.Zero, err
	}

	gross := decimal.NewFromFloat(hours.Regular).Mul(hourlyRate)
	for _, category := range premiumCategories {
		multiplier, ok := rules.Multipliers[category]
		if !ok {
			continue
		}
		bucket := decimal.NewFromFloat(hours.Bucket(category))
		gross = gross.Add(bucket.Mul(hourlyRate).Mul(multiplier))
	}

	return gross, nil
}

// CalculateDeductions applies the country's flat statutory percentages.
func CalculateDeductions(grossPay decimal.Decimal, country payroll.CountryCode) (socialSecurity, taxes, total decimal.Decimal, err error) {
	rules, err := RulesFor(country)
	if err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, err
	}

	socialSecurity = grossPay.Mul(rules.SocialSecurityRate)
	taxes = grossPay.Mul(rules.TaxRate)
	return socialSecurity, taxes, socialSecurity.Add(taxes), nil
}

// Compensate computes the full pay breakdown for one period.
func Compensate(hours payroll.CategorizedHours, hourlyRate decimal.Decimal, country payroll.CountryCode) (payroll.CompensationResult, error) {
	grossPay, err := CalculateGrossPay(hours, hourlyRate, country)
	if err != nil {
		return payroll.CompensationResult{}, err
	}

	socialSecurity, taxes, totalDeductions, err := CalculateDeductions(grossPay, country)
	if err != nil {
		return payroll.CompensationResult{}, err
	}

	return payroll.CompensationResult{
		GrossPay:        grossPay,
		SocialSecurity:  socialSecurity,
		Taxes:           taxes,
		TotalDeductions: totalDeductions,
		NetPay:          grossPay.Sub(totalDeductions),
	}, nil
}
