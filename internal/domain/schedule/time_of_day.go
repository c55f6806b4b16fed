package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	minutesPerDay = 24 * 60
	EndOfDay      = TimeOfDay(minutesPerDay)
)

// TimeOfDay is minutes since local midnight. 24:00 is accepted as a window end.
type TimeOfDay int

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return 0, ErrInvalidTimeOfDay
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, ErrInvalidTimeOfDay
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, ErrInvalidTimeOfDay
	}
	if h < 0 || m < 0 || m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(h*60 + m), nil
}

func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

func (t TimeOfDay) Minutes() int { return int(t) }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}
