package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/stafftide/intranet-backend-go/internal/domain/payroll"
)

// contractDaysPerMonth maps salaried contract tiers to the day count used to
// convert a monthly salary into an implied hourly rate.
var contractDaysPerMonth = map[payroll.ContractType]int64{
	payroll.ContractFullTime:   22,
	payroll.ContractPartTime75: 21,
	payroll.ContractPartTime50: 14,
	payroll.ContractPartTime25: 7,
}

const contractHoursPerDay = 8

// ResolveHourlyRate determines the effective hourly rate from contract data.
//
//   - No stored rate and no monthly salary: the country's default rate. An
//     explicit fallback, never a silent zero.
//   - Switzerland, external-services contracts and contract-less employees are
//     hourly paid: the stored rate is returned directly (country default when
//     the stored rate is also absent).
//   - Otherwise (Colombia, salaried): monthlySalary / (contract days x 8h).
func ResolveHourlyRate(emp payroll.EmployeeContext) (decimal.Decimal, error) {
	rules, err := RulesFor(emp.CountryCode)
	if err != nil {
		return decimal.Zero, err
	}

	if emp.StoredHourlyRate == nil && emp.MonthlySalary == nil {
		return rules.DefaultHourlyRate, nil
	}

	hourlyContract := emp.CountryCode == payroll.CountrySwitzerland ||
		emp.ContractType == nil ||
		*emp.ContractType == payroll.ContractExternalServices

	if hourlyContract {
		if emp.StoredHourlyRate != nil {
			return *emp.StoredHourlyRate, nil
		}
		return rules.DefaultHourlyRate, nil
	}

	if emp.MonthlySalary == nil {
		// Salaried contract without a salary on record: the stored rate is the
		// only usable figure.
		return *emp.StoredHourlyRate, nil
	}

	days, ok := contractDaysPerMonth[*emp.ContractType]
	if !ok {
		days = contractDaysPerMonth[payroll.ContractFullTime]
	}
	return emp.MonthlySalary.Div(decimal.NewFromInt(days * contractHoursPerDay)), nil
}
