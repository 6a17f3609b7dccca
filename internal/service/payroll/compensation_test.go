package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stafftide/intranet-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateGrossPaySwitzerland(t *testing.T) {
	// 8 regular + 2 overtime hours at 50 CHF: 400 + 2*50*1.25 = 525.
	hours := payroll.CategorizedHours{Regular: 8, Overtime: 2}

	gross, err := CalculateGrossPay(hours, decimal.NewFromInt(50), payroll.CountrySwitzerland)
	require.NoError(t, err)
	assert.True(t, gross.Equal(decimal.NewFromInt(525)), "gross = %s, want 525", gross)
}

func TestCalculateGrossPaySwissCombinedBucketsUnpaid(t *testing.T) {
	// Switzerland defines no multipliers for the combined buckets; hours
	// landing there contribute nothing.
	hours := payroll.CategorizedHours{
		Regular:       8,
		SundayHoliday: 4,
		OvertimeNight: 2,
	}

	gross, err := CalculateGrossPay(hours, decimal.NewFromInt(50), payroll.CountrySwitzerland)
	require.NoError(t, err)
	assert.True(t, gross.Equal(decimal.NewFromInt(400)), "gross = %s, want 400", gross)
}

func TestCalculateGrossPayColombia(t *testing.T) {
	rate := decimal.NewFromInt(10000)

	tests := []struct {
		name  string
		hours payroll.CategorizedHours
		want  int64
	}{
		{"regular only", payroll.CategorizedHours{Regular: 8}, 80000},
		{"overtime", payroll.CategorizedHours{Overtime: 2}, 25000},
		{"night", payroll.CategorizedHours{Night: 2}, 35000},
		{"holiday", payroll.CategorizedHours{Holiday: 2}, 40000},
		{"sunday holiday", payroll.CategorizedHours{SundayHoliday: 2}, 40000},
		{"overtime night", payroll.CategorizedHours{OvertimeNight: 2}, 43750},
		{"overtime sunday holiday", payroll.CategorizedHours{OvertimeSundayHoliday: 2}, 50000},
		{"overtime night sunday holiday", payroll.CategorizedHours{OvertimeNightSundayHoliday: 2}, 70000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gross, err := CalculateGrossPay(tt.hours, rate, payroll.CountryColombia)
			require.NoError(t, err)
			assert.True(t, gross.Equal(decimal.NewFromInt(tt.want)), "gross = %s, want %d", gross, tt.want)
		})
	}
}

func TestCalculateDeductions(t *testing.T) {
	gross := decimal.NewFromInt(1000)

	t.Run("switzerland", func(t *testing.T) {
		socialSecurity, taxes, total, err := CalculateDeductions(gross, payroll.CountrySwitzerland)
		require.NoError(t, err)
		assert.True(t, socialSecurity.Equal(decimal.NewFromInt(106)), "social security = %s", socialSecurity)
		assert.True(t, taxes.Equal(decimal.NewFromInt(150)), "taxes = %s", taxes)
		assert.True(t, total.Equal(decimal.NewFromInt(256)), "total = %s", total)
	})

	t.Run("colombia", func(t *testing.T) {
		socialSecurity, taxes, total, err := CalculateDeductions(gross, payroll.CountryColombia)
		require.NoError(t, err)
		assert.True(t, socialSecurity.Equal(decimal.NewFromInt(160)), "social security = %s", socialSecurity)
		assert.True(t, taxes.Equal(decimal.NewFromInt(100)), "taxes = %s", taxes)
		assert.True(t, total.Equal(decimal.NewFromInt(260)), "total = %s", total)
	})
}

func TestCompensate(t *testing.T) {
	hours := payroll.CategorizedHours{Regular: 8, Overtime: 2}

	result, err := Compensate(hours, decimal.NewFromInt(50), payroll.CountrySwitzerland)
	require.NoError(t, err)

	assert.True(t, result.GrossPay.Equal(decimal.NewFromInt(525)))
	assert.True(t, result.TotalDeductions.Equal(result.SocialSecurity.Add(result.Taxes)))
	assert.True(t, result.NetPay.Equal(result.GrossPay.Sub(result.TotalDeductions)))
}

func TestRulesForUnsupportedCountry(t *testing.T) {
	_, err := RulesFor(payroll.CountryCode("BR"))
	assert.ErrorIs(t, err, payroll.ErrUnsupportedCountry)

	_, err = CalculateGrossPay(payroll.CategorizedHours{Regular: 8}, decimal.NewFromInt(10), payroll.CountryCode("BR"))
	assert.ErrorIs(t, err, payroll.ErrUnsupportedCountry)

	_, _, _, err = CalculateDeductions(decimal.NewFromInt(100), payroll.CountryCode("BR"))
	assert.ErrorIs(t, err, payroll.ErrUnsupportedCountry)
}

func TestNightWindowFor(t *testing.T) {
	start, end := nightWindowFor(payroll.CountryColombia)
	assert.Equal(t, 22, start)
	assert.Equal(t, 6, end)

	start, end = nightWindowFor(payroll.CountrySwitzerland)
	assert.Equal(t, 20, start)
	assert.Equal(t, 6, end)

	start, end = nightWindowFor(payroll.CountryCode("XX"))
	assert.Equal(t, 20, start)
	assert.Equal(t, 6, end)
}
