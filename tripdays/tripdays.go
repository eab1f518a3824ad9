// Package tripdays expands a trip's date range into calendar days and
// resolves which city segment and hotel stay are active on a given day.
package tripdays

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"wander/models"
)

// DateLayout is the calendar key format used across trip documents.
const DateLayout = "2006-01-02"

var ErrBadRange = errors.New("trip end date is before start date")

// Days expands an inclusive start/end range into ascending yyyy-MM-dd
// keys, one per calendar day.
func Days(startDate, endDate string) ([]string, error) {
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("bad start date %q: %w", startDate, err)
	}
	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("bad end date %q: %w", endDate, err)
	}
	if end.Before(start) {
		return nil, ErrBadRange
	}

	days := []string{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(DateLayout))
	}
	return days, nil
}

// DayNumber is the 1-based position of day within the trip, for "Day N"
// display. 0 when day is before the start or either date is malformed.
func DayNumber(day, startDate string) int {
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return 0
	}
	d, err := time.Parse(DateLayout, day)
	if err != nil || d.Before(start) {
		return 0
	}
	return int(d.Sub(start).Hours()/24) + 1
}

// ResolveDateToken maps a caller-supplied target date onto a calendar
// key. Plain yyyy-MM-dd keys pass through; "day-N" tokens (used when the
// trip displays day numbers) resolve against the trip's start date.
func ResolveDateToken(token, startDate string) (string, error) {
	if n, ok := strings.CutPrefix(token, "day-"); ok {
		num, err := strconv.Atoi(n)
		if err != nil || num < 1 {
			return "", fmt.Errorf("bad day token %q", token)
		}
		start, err := time.Parse(DateLayout, startDate)
		if err != nil {
			return "", fmt.Errorf("bad start date %q: %w", startDate, err)
		}
		return start.AddDate(0, 0, num-1).Format(DateLayout), nil
	}
	if _, err := time.Parse(DateLayout, token); err != nil {
		return "", fmt.Errorf("bad date %q: %w", token, err)
	}
	return token, nil
}

// ActiveCity picks the city segment label for a day. Nothing resolves
// unless the trip is multi-city: single-city trips show no per-day city.
// Segments without dates are never matched; overlaps go to the first
// match in list order, so callers keep locations chronologically sorted.
func ActiveCity(day string, locations []models.Location, multiCity bool) string {
	if !multiCity || len(locations) == 0 {
		return ""
	}
	for _, loc := range locations {
		if loc.StartDate == "" || loc.EndDate == "" {
			continue
		}
		if day >= loc.StartDate && day <= loc.EndDate {
			return loc.Name
		}
	}
	return ""
}

// ActiveHotel picks the hotel stay covering a day, in precedence order:
// an undated single hotel covers the whole trip; otherwise the first
// stay whose [checkIn, checkOut) half-open range contains the day wins;
// failing that a single hotel is returned even when its own dates do not
// cover the day (last-resort behavior kept for single-hotel trips).
func ActiveHotel(day string, hotels []models.HotelBooking) *models.HotelBooking {
	if len(hotels) == 0 {
		return nil
	}

	if len(hotels) == 1 && hotels[0].CheckIn == "" && hotels[0].CheckOut == "" {
		return &hotels[0]
	}

	for i := range hotels {
		h := &hotels[i]
		if h.CheckIn == "" || h.CheckOut == "" {
			continue
		}
		if day >= h.CheckIn && day < h.CheckOut {
			return h
		}
	}

	if len(hotels) == 1 {
		return &hotels[0]
	}
	return nil
}
