package booking

import (
	"context"
	"time"

	"hotelhub/internal/domain"
)

// BookingRepository is the persistence contract for the booking engine.
// It holds no business rules beyond the atomicity guarantees documented
// per method.
type BookingRepository interface {
	// GetByID returns the booking only when it belongs to userID;
	// otherwise nil, nil. Ownership is filtered at the query boundary so
	// other users' bookings never leak.
	GetByID(ctx context.Context, bookingID, userID int64) (*domain.Booking, error)

	List(ctx context.Context, f domain.BookingFilter) ([]domain.Booking, error)

	// ListActive returns the caller's bookings with status pending or
	// confirmed.
	ListActive(ctx context.Context, userID int64) ([]domain.Booking, error)

	// FreeUnitsLeft is room.Quantity minus the count of active bookings
	// overlapping [from, to).
	FreeUnitsLeft(ctx context.Context, roomID int64, from, to time.Time) (int, error)

	// Add re-checks availability and inserts as one atomic unit. Returns
	// nil, nil when no capacity remains so concurrent attempts on the
	// last unit cannot both succeed.
	Add(ctx context.Context, userID, roomID int64, from, to time.Time) (*domain.Booking, error)

	// UpdateStatus writes the new status and returns the number of rows
	// affected. A non-empty expect makes the write conditional on the
	// current status still matching at write time; zero rows means the
	// caller lost a concurrent race. An empty expect writes unconditionally.
	UpdateStatus(ctx context.Context, bookingID int64, status, expect domain.BookingStatus) (int64, error)

	Delete(ctx context.Context, b *domain.Booking) error

	// HotelOwnerForBooking resolves the manager who owns the hotel this
	// booking belongs to, for notification fan-out.
	HotelOwnerForBooking(ctx context.Context, bookingID int64) (int64, error)
}

// RoomRepository is the read-only view of room inventory the engine needs.
type RoomRepository interface {
	GetByID(ctx context.Context, roomID int64) (*domain.Room, error)
}

type NotificationSender interface {
	NotifyBookingCreated(ctx context.Context, ownerUserID int64, b *domain.Booking) error
	NotifyBookingConfirmed(ctx context.Context, clientUserID, bookingID int64) error
	NotifyBookingCancelled(ctx context.Context, clientUserID, bookingID int64) error
}
