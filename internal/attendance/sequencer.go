package attendance

import (
	"time"

	atterrors "go-checkin/internal/attendance/errors"
	"go-checkin/internal/schedule"
	"go-checkin/internal/shared/clock"
)

// NextMovement decides what a scan means given the employee's schedule and
// their last recorded movement for the day. It is a pure decision function:
// it never touches storage, and on rejection nothing must be recorded.
//
// Decision order:
//  1. no movement today → ENTRY
//  2. 24-hour shift → alternate ENTRY/EXIT
//  3. no meal break (including the global-default fallback) → alternate
//     ENTRY/EXIT
//  4. meal break → ENTRY → MEAL_OUT → MEAL_IN → EXIT → ENTRY → …
//
// A computed MEAL_OUT is additionally gated by the configured meal window
// (inclusive bounds).
func NextMovement(sched *schedule.ScheduleType, lastToday *Movement, now time.Time) (string, error) {
	var next string

	switch {
	case lastToday == nil:
		next = KindEntry

	case sched != nil && sched.Is24HourShift:
		next = alternate(lastToday.Kind)

	case sched == nil || !sched.HasMealBreak:
		next = alternate(lastToday.Kind)

	default:
		switch lastToday.Kind {
		case KindEntry:
			next = KindMealOut
		case KindMealOut:
			next = KindMealIn
		case KindMealIn:
			next = KindExit
		default:
			next = KindEntry
		}
	}

	if next == KindMealOut {
		if err := checkMealWindow(sched, now); err != nil {
			return "", err
		}
	}

	return next, nil
}

func alternate(lastKind string) string {
	if lastKind == KindEntry {
		return KindExit
	}
	return KindEntry
}

func checkMealWindow(sched *schedule.ScheduleType, now time.Time) error {
	// Unreachable through the decision table above; kept so a caller can
	// never record a meal exit under a schedule without one.
	if sched == nil || !sched.HasMealBreak {
		return atterrors.ErrNoMealBreak
	}
	if sched.MealWindowStart == nil || sched.MealWindowEnd == nil {
		return atterrors.ErrNoMealBreak
	}

	start, err := clock.ParseTimeOfDay(*sched.MealWindowStart)
	if err != nil {
		return atterrors.ErrNoMealBreak
	}
	end, err := clock.ParseTimeOfDay(*sched.MealWindowEnd)
	if err != nil {
		return atterrors.ErrNoMealBreak
	}

	sec := clock.SecondOfDay(now)
	if sec < start || sec > end {
		return atterrors.NewOutsideMealWindow(clock.FormatHHMM(start), clock.FormatHHMM(end))
	}
	return nil
}
