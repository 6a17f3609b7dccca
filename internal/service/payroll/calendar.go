package payroll

import (
	"time"

	"github.com/stafftide/intranet-backend-go/internal/domain/payroll"
	"github.com/stafftide/intranet-backend-go/internal/fixtures"
)

// HolidayCalendar answers public-holiday lookups from an injectable table
// keyed by (country, year). The table is data, not logic: deployments extend
// it through configuration instead of code changes.
type HolidayCalendar struct {
	table map[payroll.CountryCode]map[int][]time.Time
}

// NewHolidayCalendar builds a calendar from the shipped default table.
func NewHolidayCalendar() *HolidayCalendar {
	return NewHolidayCalendarWithTable(fixtures.DefaultHolidays())
}

// NewHolidayCalendarWithTable builds a calendar from a caller-supplied table.
func NewHolidayCalendarWithTable(table map[payroll.CountryCode]map[int][]time.Time) *HolidayCalendar {
	return &HolidayCalendar{table: table}
}

// IsHoliday reports whether date falls on a public holiday in the given
// country, compared by calendar day. Countries without a maintained table
// always return false; only Colombia ships with one. The compensation side is
// where unknown countries fail loudly (see RulesFor).
func (c *HolidayCalendar) IsHoliday(date time.Time, country payroll.CountryCode) bool {
	years, ok := c.table[country]
	if !ok {
		return false
	}

	holidays, ok := years[date.Year()]
	if !ok {
		return false
	}

	for _, h := range holidays {
		if sameDay(h, date) {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
