package worktime

import "time"

// WorkInterval - one clock-in/clock-out session. EndTime is nil only while the
// session is still open; payroll only ever consumes closed intervals.
type WorkInterval struct {
	ID         string
	EmployeeID string
	CompanyID  string
	StartTime  time.Time
	EndTime    *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Closed reports whether the session has been clocked out.
func (w WorkInterval) Closed() bool {
	return w.EndTime != nil
}

// Hours returns the session duration in hours, 0 for open sessions.
func (w WorkInterval) Hours() float64 {
	if w.EndTime == nil {
		return 0
	}
	return w.EndTime.Sub(w.StartTime).Hours()
}
