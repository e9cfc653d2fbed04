package notification

import (
	"context"
	"time"

	"hotelhub/internal/domain"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
)

type Event struct {
	Type      string    `json:"type"`
	BookingID int64     `json:"booking_id"`
	RoomID    int64     `json:"room_id,omitempty"`
	DateFrom  time.Time `json:"date_from,omitempty"`
	DateTo    time.Time `json:"date_to,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Sender delivers booking lifecycle events over the websocket hub.
// Offline recipients simply miss the push; delivery is best-effort.
type Sender struct {
	hub *Hub
}

func NewSender(hub *Hub) *Sender {
	return &Sender{hub: hub}
}

func (s *Sender) NotifyBookingCreated(ctx context.Context, ownerUserID int64, b *domain.Booking) error {
	s.hub.SendToUser(ownerUserID, Event{
		Type:      EventBookingCreated,
		BookingID: b.ID,
		RoomID:    b.RoomID,
		DateFrom:  b.DateFrom,
		DateTo:    b.DateTo,
		Timestamp: time.Now().UTC(),
	})
	return nil
}

func (s *Sender) NotifyBookingConfirmed(ctx context.Context, clientUserID, bookingID int64) error {
	s.hub.SendToUser(clientUserID, Event{
		Type:      EventBookingConfirmed,
		BookingID: bookingID,
		Timestamp: time.Now().UTC(),
	})
	return nil
}

func (s *Sender) NotifyBookingCancelled(ctx context.Context, clientUserID, bookingID int64) error {
	s.hub.SendToUser(clientUserID, Event{
		Type:      EventBookingCancelled,
		BookingID: bookingID,
		Timestamp: time.Now().UTC(),
	})
	return nil
}
