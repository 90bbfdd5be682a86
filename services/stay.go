package services

import (
	"fmt"
	"time"
)

// dateOnly strips the time of day; all stay arithmetic works on local
// calendar days.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// stayNights counts the occupied nights of a half-open [checkIn, checkOut)
// window. Sub-24h stays crossing a day boundary count as one night.
func stayNights(checkIn, checkOut time.Time) int {
	ci := dateOnly(checkIn)
	co := dateOnly(checkOut)
	return int(co.Sub(ci).Hours() / 24)
}

// calendarDate renders the calendar day in the value's own location. ISO
// dates compare correctly as strings.
func calendarDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// validateStay enforces the uniform stay rules: strictly positive nights and
// no past check-in. The past check compares calendar dates, not instants, so
// a check-in parsed in UTC still counts as today in the server's local zone.
// Returned dates are normalized to midnight.
func validateStay(checkIn, checkOut time.Time) (time.Time, time.Time, error) {
	ci := dateOnly(checkIn)
	co := dateOnly(checkOut)

	if !ci.Before(co) {
		return ci, co, fmt.Errorf("%w: check-out must be after check-in", ErrInvalidDateRange)
	}
	if calendarDate(ci) < calendarDate(time.Now()) {
		return ci, co, fmt.Errorf("%w: check-in must not be in the past", ErrInvalidDateRange)
	}
	return ci, co, nil
}
