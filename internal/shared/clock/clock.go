package clock

import (
	"fmt"
	"time"
)

// Time-of-day values travel through the system as "HH:MM" or "HH:MM:SS"
// strings (the database column type is TIME). All comparisons are done on
// seconds since midnight so no date component is involved.

func ParseTimeOfDay(s string) (int, error) {
	var h, m, sec int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
		sec = 0
		if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
			return 0, fmt.Errorf("invalid time of day %q", s)
		}
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	return h*3600 + m*60 + sec, nil
}

func SecondOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

func FormatHHMM(secondOfDay int) string {
	return fmt.Sprintf("%02d:%02d", secondOfDay/3600, (secondOfDay%3600)/60)
}

func FormatHHMMSS(secondOfDay int) string {
	return fmt.Sprintf("%02d:%02d:%02d", secondOfDay/3600, (secondOfDay%3600)/60, secondOfDay%60)
}
