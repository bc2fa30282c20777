package report

import (
	"time"

	"go-checkin/internal/attendance"
)

// repeatLateThreshold is the number of late entries in a window that flags
// an employee for follow-up.
const repeatLateThreshold = 3

// Summary is one employee's attendance aggregated over a date range. It is
// derived entirely from ledger rows, so recomputing it over the same range
// always yields the same numbers.
type Summary struct {
	EmployeeID       string
	DaysPresent      int
	LateCount        int
	TotalLateMinutes int
	ExpectedDays     int
	Absences         int
	RepeatLate       bool
}

// Summarize folds one employee's movements over [from, to] into a Summary.
// Only ENTRY rows count: presence is distinct entry dates, lateness totals
// come from the flags stamped at scan time. Expected attendance is working
// weekdays for standard schedules and every other day for 24-hour rotations.
func Summarize(employeeID string, movements []attendance.Movement, is24h bool, from, to time.Time) Summary {
	s := Summary{EmployeeID: employeeID}

	seen := make(map[string]struct{})
	for _, m := range movements {
		if m.Kind != attendance.KindEntry {
			continue
		}
		day := m.Date.Format("2006-01-02")
		if _, ok := seen[day]; !ok {
			seen[day] = struct{}{}
			s.DaysPresent++
		}
		if m.Late {
			s.LateCount++
			s.TotalLateMinutes += m.LateMinutes
		}
	}

	s.ExpectedDays = expectedDays(is24h, from, to)
	if s.ExpectedDays > s.DaysPresent {
		s.Absences = s.ExpectedDays - s.DaysPresent
	}
	s.RepeatLate = s.LateCount >= repeatLateThreshold
	return s
}

func expectedDays(is24h bool, from, to time.Time) int {
	from = truncateToDay(from)
	to = truncateToDay(to)
	if to.Before(from) {
		return 0
	}

	days := int(to.Sub(from).Hours()/24) + 1
	if is24h {
		return days / 2
	}

	weekdays := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			weekdays++
		}
	}
	return weekdays
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
