package booking

import (
	"time"

	"hotelhub/internal/domain"
)

// Overlaps reports whether the half-open date ranges [aFrom, aTo) and
// [bFrom, bTo) share at least one night. A checkout on day X never
// conflicts with a check-in on day X.
func Overlaps(aFrom, aTo, bFrom, bTo time.Time) bool {
	return aFrom.Before(bTo) && bFrom.Before(aTo)
}

// FreeUnits computes how many inventory units of a room remain bookable
// for [from, to). Each active booking that overlaps the range consumes
// exactly one unit. The result never goes below zero.
func FreeUnits(quantity int, active []domain.Booking, from, to time.Time) int {
	taken := 0
	for i := range active {
		b := &active[i]
		if !b.IsActive() {
			continue
		}
		if Overlaps(b.DateFrom, b.DateTo, from, to) {
			taken++
		}
	}

	free := quantity - taken
	if free < 0 {
		return 0
	}
	return free
}

// ToDay truncates a timestamp to its calendar day at UTC midnight.
// Booking ranges are stored in this form so that overlap arithmetic works
// on whole nights.
func ToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
