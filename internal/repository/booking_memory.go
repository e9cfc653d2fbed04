package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"hotelhub/internal/domain"
	"hotelhub/internal/modules/booking"
)

// InMemoryBookingRepository implements the booking persistence contract
// on a mutex-guarded map. It mirrors the SQL implementation's atomicity:
// Add holds the lock across the count-check-insert sequence and
// UpdateStatus re-checks the expected status under the same lock, so unit
// and concurrency tests exercise the engine without a database.
type InMemoryBookingRepository struct {
	mu       sync.Mutex
	nextID   int64
	bookings map[int64]*domain.Booking
	rooms    *InMemoryRoomRepository
}

func NewInMemoryBookingRepository(rooms *InMemoryRoomRepository) *InMemoryBookingRepository {
	return &InMemoryBookingRepository{
		nextID:   1,
		bookings: make(map[int64]*domain.Booking),
		rooms:    rooms,
	}
}

func (r *InMemoryBookingRepository) GetByID(ctx context.Context, bookingID, userID int64) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[bookingID]
	if !ok || b.UserID != userID {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *InMemoryBookingRepository) List(ctx context.Context, f domain.BookingFilter) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Booking
	for _, b := range r.bookings {
		if b.UserID != f.UserID {
			continue
		}
		if f.RoomID != 0 && b.RoomID != f.RoomID {
			continue
		}
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		if !f.DateFrom.IsZero() && b.DateFrom.Before(f.DateFrom) {
			continue
		}
		if !f.DateTo.IsZero() && !b.DateFrom.Before(f.DateTo) {
			continue
		}
		out = append(out, *b)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].DateFrom.Before(out[j].DateFrom) })
	return out, nil
}

func (r *InMemoryBookingRepository) ListActive(ctx context.Context, userID int64) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Booking
	for _, b := range r.bookings {
		if b.UserID == userID && b.IsActive() {
			out = append(out, *b)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].DateFrom.Before(out[j].DateFrom) })
	return out, nil
}

// activeForRoomLocked collects the active bookings for a room so
// availability goes through booking.FreeUnits, same as the SQL path
// feeds its overlap count into the same arithmetic.
func (r *InMemoryBookingRepository) activeForRoomLocked(roomID int64) []domain.Booking {
	var active []domain.Booking
	for _, b := range r.bookings {
		if b.RoomID == roomID && b.IsActive() {
			active = append(active, *b)
		}
	}
	return active
}

func (r *InMemoryBookingRepository) FreeUnitsLeft(ctx context.Context, roomID int64, from, to time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room := r.rooms.get(roomID)
	if room == nil {
		return 0, nil
	}

	return booking.FreeUnits(room.Quantity, r.activeForRoomLocked(roomID), from, to), nil
}

func (r *InMemoryBookingRepository) Add(ctx context.Context, userID, roomID int64, from, to time.Time) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room := r.rooms.get(roomID)
	if room == nil {
		return nil, nil
	}

	if booking.FreeUnits(room.Quantity, r.activeForRoomLocked(roomID), from, to) <= 0 {
		return nil, nil
	}

	now := time.Now().UTC()
	b := &domain.Booking{
		ID:        r.nextID,
		Reference: uuid.New().String(),
		RoomID:    roomID,
		UserID:    userID,
		DateFrom:  from,
		DateTo:    to,
		Price:     room.Price,
		Status:    domain.BookingPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.nextID++
	r.bookings[b.ID] = b

	cp := *b
	return &cp, nil
}

func (r *InMemoryBookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status, expect domain.BookingStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[bookingID]
	if !ok {
		return 0, nil
	}
	if expect != "" && b.Status != expect {
		return 0, nil
	}

	b.Status = status
	b.UpdatedAt = time.Now().UTC()
	return 1, nil
}

func (r *InMemoryBookingRepository) Delete(ctx context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.bookings, b.ID)
	return nil
}

func (r *InMemoryBookingRepository) HotelOwnerForBooking(ctx context.Context, bookingID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[bookingID]
	if !ok {
		return 0, nil
	}
	room := r.rooms.get(b.RoomID)
	if room == nil {
		return 0, nil
	}
	return r.rooms.ownerOf(room.HotelID), nil
}

// InMemoryRoomRepository is the matching read-only room store.
type InMemoryRoomRepository struct {
	mu     sync.RWMutex
	rooms  map[int64]domain.Room
	owners map[int64]int64 // hotel id -> owner user id
}

func NewInMemoryRoomRepository() *InMemoryRoomRepository {
	return &InMemoryRoomRepository{
		rooms:  make(map[int64]domain.Room),
		owners: make(map[int64]int64),
	}
}

func (r *InMemoryRoomRepository) Put(room domain.Room) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms[room.ID] = room
}

func (r *InMemoryRoomRepository) SetHotelOwner(hotelID, ownerID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.owners[hotelID] = ownerID
}

func (r *InMemoryRoomRepository) GetByID(ctx context.Context, roomID int64) (*domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[roomID]
	if !ok {
		return nil, nil
	}
	cp := room
	return &cp, nil
}

func (r *InMemoryRoomRepository) get(roomID int64) *domain.Room {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[roomID]
	if !ok {
		return nil
	}
	cp := room
	return &cp
}

func (r *InMemoryRoomRepository) ownerOf(hotelID int64) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.owners[hotelID]
}
