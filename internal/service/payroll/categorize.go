package payroll

import (
	"time"

	"github.com/stafftide/intranet-backend-go/internal/domain/payroll"
	"github.com/stafftide/intranet-backend-go/internal/domain/worktime"
)

// Categorizer allocates worked time into the eight compensation buckets using
// the daily overtime split plus holiday/Sunday/night flags. Pure computation:
// identical input always yields identical output.
type Categorizer struct {
	calendar *HolidayCalendar
}

func NewCategorizer(calendar *HolidayCalendar) *Categorizer {
	return &Categorizer{calendar: calendar}
}

// Categorize classifies every closed interval's duration. Open sessions are
// skipped; zero-duration days are skipped to avoid division by zero.
//
// On a day over the overtime threshold, each interval's duration is split in
// proportion to its share of the day's total: the overtime part lands in the
// matching overtime bucket, the regular part in the regular bucket. Below the
// threshold no split applies and the full duration lands in the single
// matching base bucket. Sub-threshold category membership is deliberately not
// proportional.
func (c *Categorizer) Categorize(intervals []worktime.WorkInterval, emp payroll.EmployeeContext) payroll.CategorizedHours {
	normalDailyHours := emp.NormalDailyHours
	if normalDailyHours <= 0 {
		normalDailyHours = payroll.DefaultNormalDailyHours
	}

	days := SplitDaily(intervals, normalDailyHours)
	nightStart, nightEnd := nightWindowFor(emp.CountryCode)

	var out payroll.CategorizedHours
	for _, iv := range intervals {
		if !iv.Closed() {
			continue
		}

		day := days[DayOf(iv.StartTime)]
		if day.TotalHours <= 0 {
			continue
		}

		duration := iv.Hours()
		if duration <= 0 {
			continue
		}

		isSunday := iv.StartTime.Weekday() == time.Sunday
		isHolidayDay := c.calendar.IsHoliday(iv.StartTime, emp.CountryCode)
		isNight := IsNightTime(iv.StartTime, *iv.EndTime, nightStart, nightEnd)
		isRestDay := isSunday || isHolidayDay

		if day.TotalHours > normalDailyHours {
			proportion := duration / day.TotalHours
			regularPart := day.RegularHours * proportion
			overtimePart := day.OvertimeHours * proportion

			// Priority order is the business rule: combined premiums win over
			// single ones, first match takes the overtime part.
			switch {
			case isNight && isRestDay:
				out.OvertimeNightSundayHoliday += overtimePart
			case isRestDay:
				out.OvertimeSundayHoliday += overtimePart
			case isNight:
				out.OvertimeNight += overtimePart
			default:
				out.Overtime += overtimePart
			}
			out.Regular += regularPart
			continue
		}

		switch {
		case isRestDay:
			// Night on a Sunday/holiday still pays the Sunday/holiday premium.
			out.SundayHoliday += duration
		case isNight:
			out.Night += duration
		default:
			out.Regular += duration
		}
	}

	return out
}
