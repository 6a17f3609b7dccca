package payroll

import (
	"math"
	"testing"
	"time"

	"github.com/stafftide/intranet-backend-go/internal/domain/worktime"
)

func closedInterval(start time.Time, d time.Duration) worktime.WorkInterval {
	end := start.Add(d)
	return worktime.WorkInterval{StartTime: start, EndTime: &end}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSplitDaily(t *testing.T) {
	monday := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	tuesday := time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)

	intervals := []worktime.WorkInterval{
		closedInterval(monday, 6*time.Hour),
		closedInterval(monday.Add(7*time.Hour), 4*time.Hour),
		closedInterval(tuesday, 5*time.Hour),
		{StartTime: tuesday.Add(6 * time.Hour)}, // open session, skipped
	}

	days := SplitDaily(intervals, 8)

	mondayTotals := days[DayOf(monday)]
	if !almostEqual(mondayTotals.TotalHours, 10) {
		t.Errorf("monday total = %v, want 10", mondayTotals.TotalHours)
	}
	if !almostEqual(mondayTotals.RegularHours, 8) {
		t.Errorf("monday regular = %v, want 8", mondayTotals.RegularHours)
	}
	if !almostEqual(mondayTotals.OvertimeHours, 2) {
		t.Errorf("monday overtime = %v, want 2", mondayTotals.OvertimeHours)
	}

	tuesdayTotals := days[DayOf(tuesday)]
	if !almostEqual(tuesdayTotals.TotalHours, 5) {
		t.Errorf("tuesday total = %v, want 5", tuesdayTotals.TotalHours)
	}
	if !almostEqual(tuesdayTotals.RegularHours, 5) {
		t.Errorf("tuesday regular = %v, want 5", tuesdayTotals.RegularHours)
	}
	if tuesdayTotals.OvertimeHours != 0 {
		t.Errorf("tuesday overtime = %v, want 0", tuesdayTotals.OvertimeHours)
	}
}

func TestSplitDailyMidnightCrossing(t *testing.T) {
	// A shift crossing midnight counts entirely against its start day.
	eveningShift := closedInterval(time.Date(2025, 3, 10, 22, 0, 0, 0, time.UTC), 6*time.Hour)

	days := SplitDaily([]worktime.WorkInterval{eveningShift}, 8)

	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	totals := days[Day{Year: 2025, Month: time.March, Day: 10}]
	if !almostEqual(totals.TotalHours, 6) {
		t.Errorf("total = %v, want 6", totals.TotalHours)
	}
}

func TestSplitDailyEmpty(t *testing.T) {
	if days := SplitDaily(nil, 8); len(days) != 0 {
		t.Errorf("expected empty map, got %v", days)
	}
}
