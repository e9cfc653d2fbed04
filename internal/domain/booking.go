package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// legal lifecycle transitions; cancelled and completed are terminal
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted},
}

// CanTransition reports whether a booking may move from one status to
// another. Confirmed bookings cannot be cancelled by the user; that
// requires a refund workflow this engine does not model.
func CanTransition(from, to BookingStatus) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return BookingStatus(s), true
	}
	return "", false
}

// BookingFilter narrows a booking listing. UserID is mandatory; the
// query is always scoped to the caller's own bookings. Zero values leave
// the other fields unconstrained.
type BookingFilter struct {
	UserID   int64
	RoomID   int64
	Status   BookingStatus
	DateFrom time.Time // bookings starting on or after
	DateTo   time.Time // bookings starting before
}

// Booking reserves one inventory unit of a room for the half-open date
// range [DateFrom, DateTo). The dates are calendar days at UTC midnight;
// the checkout day does not count against capacity.
type Booking struct {
	ID        int64         `json:"id"`
	Reference string        `json:"reference"`
	RoomID    int64         `json:"room_id"`
	UserID    int64         `json:"user_id"`
	DateFrom  time.Time     `json:"date_from"`
	DateTo    time.Time     `json:"date_to"`
	Price     float64       `json:"price"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	User *User `json:"user,omitempty"`
	Room *Room `json:"room,omitempty"`
}

// IsActive reports whether the booking still counts against room capacity.
func (b *Booking) IsActive() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}

func (b *Booking) IsTerminal() bool {
	return b.Status == BookingCancelled || b.Status == BookingCompleted
}

// TotalDays is the number of nights, derived from the date range so it can
// never drift from the stored dates.
func (b *Booking) TotalDays() int {
	return int(b.DateTo.Sub(b.DateFrom).Hours() / 24)
}

// TotalCost is the price snapshot times the number of nights.
func (b *Booking) TotalCost() float64 {
	return b.Price * float64(b.TotalDays())
}
