package payroll

import (
	"testing"
	"time"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 3, 10, hour, minute, 0, 0, time.UTC)
}

func TestIsNightTime(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		nightStart int
		nightEnd   int
		want       bool
	}{
		{
			name:  "daytime interval",
			start: at(7, 0), end: at(9, 0),
			nightStart: 22, nightEnd: 6,
			want: false,
		},
		{
			name:  "crosses midnight",
			start: at(23, 0), end: at(23, 0).Add(2 * time.Hour),
			nightStart: 22, nightEnd: 6,
			want: true,
		},
		{
			name:  "entirely inside window before midnight",
			start: at(22, 30), end: at(23, 30),
			nightStart: 22, nightEnd: 6,
			want: true,
		},
		{
			name:  "entirely inside window after midnight",
			start: at(2, 0), end: at(4, 0),
			nightStart: 22, nightEnd: 6,
			want: true,
		},
		{
			name:  "starts before window and ends after its start",
			start: at(21, 0), end: at(22, 30),
			nightStart: 22, nightEnd: 6,
			want: true,
		},
		{
			name:  "ends exactly at window start",
			start: at(20, 0), end: at(22, 0),
			nightStart: 22, nightEnd: 6,
			want: false,
		},
		{
			name:  "starts exactly at window end",
			start: at(6, 0), end: at(8, 0),
			nightStart: 22, nightEnd: 6,
			want: false,
		},
		{
			name:  "starts just inside window end",
			start: at(5, 59), end: at(8, 0),
			nightStart: 22, nightEnd: 6,
			want: true,
		},
		{
			name:  "swiss window catches evening work",
			start: at(19, 30), end: at(21, 0),
			nightStart: 20, nightEnd: 6,
			want: true,
		},
		{
			name:  "swiss window daytime",
			start: at(8, 0), end: at(17, 0),
			nightStart: 20, nightEnd: 6,
			want: false,
		},
		{
			name:  "spans more than a full day",
			start: at(8, 0), end: at(8, 0).Add(26 * time.Hour),
			nightStart: 22, nightEnd: 6,
			want: true,
		},
		{
			name:  "zero duration",
			start: at(23, 0), end: at(23, 0),
			nightStart: 22, nightEnd: 6,
			want: false,
		},
		{
			name:  "end before start",
			start: at(23, 0), end: at(22, 0),
			nightStart: 22, nightEnd: 6,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsNightTime(tt.start, tt.end, tt.nightStart, tt.nightEnd)
			if got != tt.want {
				t.Errorf("IsNightTime(%v, %v, %d, %d) = %v, want %v",
					tt.start.Format("15:04"), tt.end.Format("15:04"), tt.nightStart, tt.nightEnd, got, tt.want)
			}
		})
	}
}
