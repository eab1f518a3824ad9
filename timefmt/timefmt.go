// Package timefmt converts between the time strings stored on trip events
// ("All day", "HH:MM", "HH:MM AM/PM") and a canonical sortable key, and
// drives the time-picker state machine.
package timefmt

import (
	"fmt"
	"strconv"
	"strings"
)

// AllDay is the sentinel stored for events without a clock time. It is not
// a parsable 12-hour string and is special-cased everywhere.
const AllDay = "All day"

// allDaySortKey sorts before "00:00" in a plain string compare, so
// all-day events lead the day.
const allDaySortKey = "!all-day"

// SortKey maps a stored time string to a zero-padded 24-hour HH:MM key.
// "12:30 PM" -> "12:30", "12:30 AM" -> "00:30", "3:00 PM" -> "15:00".
// 24-hour inputs pass through zero-padded. The all-day sentinel (and an
// empty time) gets a key ordered before every timed event.
func SortKey(t string) string {
	t = strings.TrimSpace(t)
	if t == "" || strings.EqualFold(t, AllDay) {
		return allDaySortKey
	}

	clock := t
	period := ""
	if i := strings.LastIndexByte(t, ' '); i >= 0 {
		clock = t[:i]
		period = strings.ToUpper(strings.TrimSpace(t[i+1:]))
	}

	hh, mm, ok := splitClock(clock)
	if !ok {
		// Unparsable historical value; keep it displayable and let it
		// sort after every well-formed time.
		return "~" + t
	}

	switch period {
	case "AM":
		if hh == 12 {
			hh = 0
		}
	case "PM":
		if hh != 12 {
			hh += 12
		}
	}

	return fmt.Sprintf("%02d:%02d", hh, mm)
}

func splitClock(clock string) (int, int, bool) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil || hh < 0 || hh > 23 {
		return 0, 0, false
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil || mm < 0 || mm > 59 {
		return 0, 0, false
	}
	return hh, mm, true
}

// ToggleFormat converts the picker's hour/period fields between 12-hour
// and 24-hour form without changing the represented moment.
// 3 PM <-> 15, 12 AM <-> 00, 12 PM <-> 12.
func ToggleFormat(hour, minute int, period string, to24 bool) (int, int, string) {
	if to24 {
		switch strings.ToUpper(period) {
		case "AM":
			if hour == 12 {
				hour = 0
			}
		case "PM":
			if hour != 12 {
				hour += 12
			}
		}
		return hour, minute, ""
	}

	period = "AM"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		period = "PM"
	case hour > 12:
		hour -= 12
		period = "PM"
	}
	return hour, minute, period
}

// Compose builds the stored time string: "HH:MM" in 24-hour mode,
// "HH:MM AM/PM" in 12-hour mode.
func Compose(hour, minute int, period string, is24 bool) string {
	if is24 {
		return fmt.Sprintf("%02d:%02d", hour, minute)
	}
	return fmt.Sprintf("%02d:%02d %s", hour, minute, strings.ToUpper(period))
}
