package models

import (
	"strconv"
	"strings"
	"time"
)

// TimeWindow is one opening window within a day, using "HH:MM" 24-hour times.
// A Close earlier than Open denotes a window running past midnight.
type TimeWindow struct {
	Open  string `json:"open" yaml:"open"`
	Close string `json:"close" yaml:"close"`
}

// WeeklyHours maps lowercase weekday names ("monday" .. "sunday") to opening windows.
// An absent day means closed that day; a nil/empty map means hours are unknown.
type WeeklyHours map[string][]TimeWindow

// HasHours reports whether any operating hours are recorded.
func (h WeeklyHours) HasHours() bool {
	return len(h) > 0
}

// OpenAt reports whether the service is open at t according to the windows
// recorded under t's weekday key.
//
// Overnight windows are day-keyed: a Friday 22:00-02:00 window matches only
// while the clock day is still Friday. Once the calendar day rolls over the
// check consults Saturday's windows, so the post-midnight portion of an
// overnight window is not matched unless the data also records it under the
// following day. This mirrors the upstream data convention.
func (h WeeklyHours) OpenAt(t time.Time) bool {
	day := strings.ToLower(t.Weekday().String())
	windows, ok := h[day]
	if !ok {
		return false
	}
	now := t.Hour()*60 + t.Minute()
	for _, w := range windows {
		opens, okOpen := parseClock(w.Open)
		closes, okClose := parseClock(w.Close)
		if !okOpen || !okClose {
			continue
		}
		if opens <= closes {
			if now >= opens && now < closes {
				return true
			}
		} else if now >= opens || now < closes {
			return true
		}
	}
	return false
}

// parseClock parses "HH:MM" into minutes since midnight.
func parseClock(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hh, err1 := strconv.Atoi(parts[0])
	mm, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, false
	}
	return hh*60 + mm, true
}
