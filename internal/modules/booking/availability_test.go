package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotelhub/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps_HalfOpen(t *testing.T) {
	// Checkout on Jan 5 does not conflict with a check-in on Jan 5.
	assert.False(t, Overlaps(
		day(2025, 1, 1), day(2025, 1, 5),
		day(2025, 1, 5), day(2025, 1, 10),
	))

	// One shared night is a conflict.
	assert.True(t, Overlaps(
		day(2025, 1, 1), day(2025, 1, 5),
		day(2025, 1, 4), day(2025, 1, 10),
	))

	// Containment is a conflict.
	assert.True(t, Overlaps(
		day(2025, 1, 1), day(2025, 1, 10),
		day(2025, 1, 3), day(2025, 1, 4),
	))

	// Fully before.
	assert.False(t, Overlaps(
		day(2025, 1, 1), day(2025, 1, 3),
		day(2025, 1, 3), day(2025, 1, 5),
	))
}

func TestFreeUnits(t *testing.T) {
	active := []domain.Booking{
		{Status: domain.BookingPending, DateFrom: day(2025, 2, 1), DateTo: day(2025, 2, 5)},
		{Status: domain.BookingConfirmed, DateFrom: day(2025, 2, 3), DateTo: day(2025, 2, 6)},
	}

	assert.Equal(t, 1, FreeUnits(3, active, day(2025, 2, 2), day(2025, 2, 4)))

	// The second booking ends Feb 6, so Feb 6 onward is free again.
	assert.Equal(t, 3, FreeUnits(3, active, day(2025, 2, 6), day(2025, 2, 8)))
}

func TestFreeUnits_IgnoresInactive(t *testing.T) {
	active := []domain.Booking{
		{Status: domain.BookingCancelled, DateFrom: day(2025, 2, 1), DateTo: day(2025, 2, 5)},
		{Status: domain.BookingCompleted, DateFrom: day(2025, 2, 1), DateTo: day(2025, 2, 5)},
	}

	assert.Equal(t, 1, FreeUnits(1, active, day(2025, 2, 1), day(2025, 2, 5)))
}

func TestFreeUnits_FloorsAtZero(t *testing.T) {
	active := []domain.Booking{
		{Status: domain.BookingPending, DateFrom: day(2025, 2, 1), DateTo: day(2025, 2, 5)},
		{Status: domain.BookingPending, DateFrom: day(2025, 2, 1), DateTo: day(2025, 2, 5)},
		{Status: domain.BookingPending, DateFrom: day(2025, 2, 1), DateTo: day(2025, 2, 5)},
	}

	assert.Equal(t, 0, FreeUnits(1, active, day(2025, 2, 2), day(2025, 2, 3)))
}

func TestToDay(t *testing.T) {
	ts := time.Date(2025, 3, 7, 15, 42, 11, 0, time.FixedZone("X", 3*3600))
	got := ToDay(ts)
	assert.Equal(t, day(2025, 3, 7), got)
}
