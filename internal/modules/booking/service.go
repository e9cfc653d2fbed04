package booking

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"hotelhub/internal/domain"
	"hotelhub/internal/logger"
)

type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
	notifs   NotificationSender
}

func NewService(bookings BookingRepository, rooms RoomRepository, notifs NotificationSender) *Service {
	return &Service{
		bookings: bookings,
		rooms:    rooms,
		notifs:   notifs,
	}
}

// CreateBooking reserves one unit of the room for [from, to). The
// capacity re-check and the insert happen atomically inside the
// repository; a nil result there means the room filled up underneath us.
func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	from := ToDay(req.DateFrom)
	to := ToDay(req.DateTo)

	if !from.Before(to) {
		return nil, ErrInvalidDates
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	b, err := s.bookings.Add(ctx, userID, req.RoomID, from, to)
	if err != nil {
		// The partial exclusion index on active bookings is the last
		// line of defence; a violation means another transaction took
		// the final unit between our count and our insert.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && (pgErr.Code == "23505" || pgErr.Code == "23P01") {
			return nil, ErrRoomUnavailable
		}
		return nil, err
	}
	if b == nil {
		return nil, ErrRoomUnavailable
	}

	if s.notifs != nil {
		ownerID, err := s.bookings.HotelOwnerForBooking(ctx, b.ID)
		if err == nil && ownerID > 0 {
			if err := s.notifs.NotifyBookingCreated(ctx, ownerID, b); err != nil {
				logger.WithContext(ctx).Warn("notify booking created failed",
					"error", err, "booking_id", b.ID)
			}
		}
	}

	return b, nil
}

// GetBooking returns the caller's booking or ErrNotFound; absent and
// not-owned are indistinguishable on purpose.
func (s *Service) GetBooking(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	return b, nil
}

func (s *Service) ListActive(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.ListActive(ctx, userID)
}

func (s *Service) ListByStatus(ctx context.Context, userID int64, status domain.BookingStatus) ([]domain.Booking, error) {
	return s.bookings.List(ctx, domain.BookingFilter{UserID: userID, Status: status})
}

func (s *Service) ListBookings(ctx context.Context, f domain.BookingFilter) ([]domain.Booking, error) {
	return s.bookings.List(ctx, f)
}

// FreeUnitsLeft exposes remaining capacity for a room and date range.
func (s *Service) FreeUnitsLeft(ctx context.Context, roomID int64, from, to time.Time) (int, error) {
	from, to = ToDay(from), ToDay(to)
	if !from.Before(to) {
		return 0, ErrInvalidDates
	}

	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return 0, err
	}
	if room == nil {
		return 0, ErrRoomNotFound
	}

	return s.bookings.FreeUnitsLeft(ctx, roomID, from, to)
}

// ConfirmBooking moves a pending booking to confirmed. The conditional
// update re-checks the status at write time, so two callers racing on the
// same booking cannot both win.
func (s *Service) ConfirmBooking(ctx context.Context, userID, bookingID int64) (int64, error) {
	b, err := s.bookings.GetByID(ctx, bookingID, userID)
	if err != nil {
		return 0, err
	}
	if b == nil {
		return 0, ErrNotFound
	}
	if b.Status != domain.BookingPending {
		return 0, ErrCannotConfirm
	}

	rows, err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingConfirmed, domain.BookingPending)
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		return 0, ErrCannotConfirm
	}

	if s.notifs != nil {
		if err := s.notifs.NotifyBookingConfirmed(ctx, b.UserID, b.ID); err != nil {
			logger.WithContext(ctx).Warn("notify booking confirmed failed",
				"error", err, "booking_id", b.ID)
		}
	}

	return bookingID, nil
}

// CancelBooking cancels a pending booking. Confirmed bookings stay as
// they are; releasing them needs a refund flow that lives elsewhere.
func (s *Service) CancelBooking(ctx context.Context, userID, bookingID int64) (int64, error) {
	b, err := s.bookings.GetByID(ctx, bookingID, userID)
	if err != nil {
		return 0, err
	}
	if b == nil {
		return 0, ErrNotFound
	}
	if b.Status != domain.BookingPending {
		return 0, ErrCannotCancel
	}

	rows, err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingCancelled, domain.BookingPending)
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		return 0, ErrCannotCancel
	}

	if s.notifs != nil {
		if err := s.notifs.NotifyBookingCancelled(ctx, b.UserID, b.ID); err != nil {
			logger.WithContext(ctx).Warn("notify booking cancelled failed",
				"error", err, "booking_id", b.ID)
		}
	}

	return bookingID, nil
}

// SetStatus is the administrative path: it bypasses the transition graph
// and writes any status unconditionally. The HTTP layer gates it behind
// the manager/admin role.
func (s *Service) SetStatus(ctx context.Context, userID, bookingID int64, status domain.BookingStatus) error {
	b, err := s.bookings.GetByID(ctx, bookingID, userID)
	if err != nil {
		return err
	}
	if b == nil {
		return ErrNotFound
	}

	rows, err := s.bookings.UpdateStatus(ctx, bookingID, status, "")
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCannotUpdate
	}

	logger.WithContext(ctx).Info("booking status overridden",
		"booking_id", bookingID, "from", b.Status, "to", status)
	return nil
}

// DeleteBooking removes a booking only once it has reached a terminal
// status. Deleting an active booking is a no-op, not an error.
func (s *Service) DeleteBooking(ctx context.Context, userID, bookingID int64) error {
	b, err := s.bookings.GetByID(ctx, bookingID, userID)
	if err != nil {
		return err
	}
	if b == nil {
		return ErrNotFound
	}

	if !b.IsTerminal() {
		return nil
	}

	return s.bookings.Delete(ctx, b)
}
