package attendance

import (
	"math"
	"time"

	atterrors "go-checkin/internal/attendance/errors"
	"go-checkin/internal/schedule"
	"go-checkin/internal/settings"
	"go-checkin/internal/shared/clock"
)

// The 24-hour rotation works on a nominal 48-hour cycle (24h on, 24h off)
// with a fixed ±2h band around it. Reports key off exactly these numbers,
// so they are not configurable.
const (
	cycleNominalHours = 48.0
	cycleShortHours   = 46.0
	cycleLateHours    = 50.0
)

// EntryPolicy is the resolved expectation an entry is judged against:
// schedule type first, system default second. Resolving once up front keeps
// the fallback order in a single place.
type EntryPolicy struct {
	ExpectedEntrySecond int
	ToleranceMinutes    int
}

func ResolveEntryPolicy(sched *schedule.ScheduleType, defaults *settings.SystemSettings) (EntryPolicy, error) {
	if sched != nil && !sched.Is24HourShift && sched.ExpectedEntry != nil {
		sec, err := clock.ParseTimeOfDay(*sched.ExpectedEntry)
		if err == nil {
			return EntryPolicy{ExpectedEntrySecond: sec, ToleranceMinutes: sched.ToleranceMinutes}, nil
		}
	}

	if defaults != nil {
		sec, err := clock.ParseTimeOfDay(defaults.ExpectedEntry)
		if err == nil {
			return EntryPolicy{ExpectedEntrySecond: sec, ToleranceMinutes: defaults.ToleranceMinutes}, nil
		}
	}

	return EntryPolicy{}, atterrors.ErrConfigurationMissing
}

// EvaluateEntry classifies a standard-shift entry. The deadline is
// expected + tolerance and is itself on time; minutes are counted from the
// expected time, not from the deadline, so a 09:20 arrival against 09:00+15
// is 20 minutes late.
func EvaluateEntry(at time.Time, policy EntryPolicy) (late bool, lateMinutes int) {
	sec := clock.SecondOfDay(at)
	deadline := policy.ExpectedEntrySecond + policy.ToleranceMinutes*60

	if sec <= deadline {
		return false, 0
	}
	return true, (sec - policy.ExpectedEntrySecond) / 60
}

// EvaluateCycleEntry classifies a 24-hour-shift entry against the previous
// entry. A first-ever entry is never late; anything up to 50h after the
// previous entry is within the band, and beyond that the delay is measured
// from the 48h nominal cycle.
func EvaluateCycleEntry(priorEntry *time.Time, at time.Time) (late bool, lateMinutes int) {
	if priorEntry == nil {
		return false, 0
	}

	elapsed := at.Sub(*priorEntry).Hours()
	switch {
	case elapsed < cycleShortHours:
		// Early re-entry (covering a shift, schedule swap) is not penalized.
		return false, 0
	case elapsed > cycleLateHours:
		return true, int(math.Round((elapsed - cycleNominalHours) * 60))
	default:
		return false, 0
	}
}
