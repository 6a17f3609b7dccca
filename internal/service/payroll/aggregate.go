package payroll

import (
	"time"

	"github.com/stafftide/intranet-backend-go/internal/domain/worktime"
)

// Day is a date-only value usable as a map key. Grouping by a value type
// instead of a formatted string avoids locale/timezone formatting bugs.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the calendar day of t.
func DayOf(t time.Time) Day {
	return Day{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// DailyTotals is one day's worked time split at the overtime threshold.
type DailyTotals struct {
	TotalHours    float64
	RegularHours  float64
	OvertimeHours float64
}

// SplitDaily groups closed intervals by the calendar day of their start time
// and splits each day's total at normalDailyHours.
//
// An interval crossing midnight is attributed entirely to the day it started.
// Known approximation: a night shift spanning two calendar days has all of its
// time counted against the first day's threshold.
func SplitDaily(intervals []worktime.WorkInterval, normalDailyHours float64) map[Day]DailyTotals {
	days := make(map[Day]DailyTotals)

	for _, iv := range intervals {
		if !iv.Closed() {
			continue
		}
		d := days[DayOf(iv.StartTime)]
		d.TotalHours += iv.Hours()
		days[DayOf(iv.StartTime)] = d
	}

	for key, d := range days {
		d.RegularHours = min(d.TotalHours, normalDailyHours)
		d.OvertimeHours = max(0, d.TotalHours-normalDailyHours)
		days[key] = d
	}

	return days
}
