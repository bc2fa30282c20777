package report

import (
	"testing"
	"time"

	"go-checkin/internal/attendance"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func entry(date string, late bool, lateMinutes int) attendance.Movement {
	return attendance.Movement{
		ID:          uuid.New(),
		Date:        day(date),
		Kind:        attendance.KindEntry,
		Late:        late,
		LateMinutes: lateMinutes,
	}
}

func exit(date string) attendance.Movement {
	return attendance.Movement{ID: uuid.New(), Date: day(date), Kind: attendance.KindExit}
}

func TestSummarize_StandardSchedule(t *testing.T) {
	// 2026-03-02 is a Monday; 02..13 spans two full working weeks.
	movements := []attendance.Movement{
		entry("2026-03-02", false, 0), exit("2026-03-02"),
		entry("2026-03-03", true, 20), exit("2026-03-03"),
		entry("2026-03-04", true, 5),
		entry("2026-03-05", false, 0),
	}

	s := Summarize("emp-1", movements, false, day("2026-03-02"), day("2026-03-13"))

	assert.Equal(t, 4, s.DaysPresent)
	assert.Equal(t, 2, s.LateCount)
	assert.Equal(t, 25, s.TotalLateMinutes)
	assert.Equal(t, 10, s.ExpectedDays, "weekdays only")
	assert.Equal(t, 6, s.Absences)
	assert.False(t, s.RepeatLate)
}

func TestSummarize_OnlyEntriesCount(t *testing.T) {
	movements := []attendance.Movement{
		entry("2026-03-02", false, 0),
		{ID: uuid.New(), Date: day("2026-03-02"), Kind: attendance.KindMealOut},
		{ID: uuid.New(), Date: day("2026-03-02"), Kind: attendance.KindMealIn},
		exit("2026-03-02"),
	}

	s := Summarize("emp-1", movements, false, day("2026-03-02"), day("2026-03-02"))
	assert.Equal(t, 1, s.DaysPresent)
}

func TestSummarize_DoubleEntrySameDayCountsOnce(t *testing.T) {
	movements := []attendance.Movement{
		entry("2026-03-02", false, 0),
		exit("2026-03-02"),
		entry("2026-03-02", false, 0),
	}

	s := Summarize("emp-1", movements, false, day("2026-03-02"), day("2026-03-02"))
	assert.Equal(t, 1, s.DaysPresent)
	assert.Zero(t, s.Absences)
}

func TestSummarize_24HourSchedule(t *testing.T) {
	movements := []attendance.Movement{
		entry("2026-03-02", false, 0),
		entry("2026-03-04", false, 0),
		entry("2026-03-06", true, 120),
	}

	// 14 calendar days, alternating shifts: 7 expected.
	s := Summarize("emp-1", movements, true, day("2026-03-01"), day("2026-03-14"))
	assert.Equal(t, 7, s.ExpectedDays)
	assert.Equal(t, 3, s.DaysPresent)
	assert.Equal(t, 4, s.Absences)
	assert.Equal(t, 1, s.LateCount)
	assert.Equal(t, 120, s.TotalLateMinutes)
}

func TestSummarize_RepeatLateThreshold(t *testing.T) {
	movements := []attendance.Movement{
		entry("2026-03-02", true, 10),
		entry("2026-03-03", true, 10),
		entry("2026-03-04", true, 10),
	}

	s := Summarize("emp-1", movements, false, day("2026-03-02"), day("2026-03-06"))
	assert.True(t, s.RepeatLate)

	s = Summarize("emp-1", movements[:2], false, day("2026-03-02"), day("2026-03-06"))
	assert.False(t, s.RepeatLate)
}

func TestSummarize_Idempotent(t *testing.T) {
	movements := []attendance.Movement{
		entry("2026-03-02", true, 30),
		entry("2026-03-03", false, 0),
	}
	first := Summarize("emp-1", movements, false, day("2026-03-02"), day("2026-03-06"))
	second := Summarize("emp-1", movements, false, day("2026-03-02"), day("2026-03-06"))
	assert.Equal(t, first, second)
}

func TestSummarize_EmptyRange(t *testing.T) {
	s := Summarize("emp-1", nil, false, day("2026-03-06"), day("2026-03-02"))
	assert.Zero(t, s.ExpectedDays)
	assert.Zero(t, s.Absences)
}

func TestFortnightRange(t *testing.T) {
	from, to := fortnightRange(day("2026-03-13"))
	assert.Equal(t, "2026-03-01", from.Format("2006-01-02"))
	assert.Equal(t, "2026-03-13", to.Format("2006-01-02"))

	from, to = fortnightRange(day("2026-03-28"))
	assert.Equal(t, "2026-03-14", from.Format("2006-01-02"))
	assert.Equal(t, "2026-03-31", to.Format("2006-01-02"))

	// February: end of month tracked correctly.
	from, to = fortnightRange(day("2026-02-28"))
	assert.Equal(t, "2026-02-14", from.Format("2006-01-02"))
	assert.Equal(t, "2026-02-28", to.Format("2006-01-02"))
}
