package payroll

import "time"

// IsNightTime reports whether the interval [start, end) overlaps the night
// window on any day it spans. The window is [nightStartHour:00, nightEndHour:00)
// wrapping past midnight (nightStartHour > nightEndHour, e.g. 22 -> 06).
//
// Arithmetic runs in minutes-since-midnight space: the window repeats daily,
// so the interval avoids it only when it fits entirely inside a single daytime
// span [nightEndHour:00, nightStartHour:00).
func IsNightTime(start, end time.Time, nightStartHour, nightEndHour int) bool {
	if !end.After(start) {
		return false
	}

	startMin := float64(start.Hour()*60+start.Minute()) + float64(start.Second())/60
	durationMin := end.Sub(start).Minutes()

	dayStart := float64(nightEndHour * 60)
	dayEnd := float64(nightStartHour * 60)

	fitsInDaytime := startMin >= dayStart && startMin+durationMin <= dayEnd
	return !fitsInDaytime
}
