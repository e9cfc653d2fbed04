package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotelhub/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Reference string    `gorm:"column:reference;size:36;uniqueIndex"`
	RoomID    int64     `gorm:"column:room_id;index"`
	UserID    int64     `gorm:"column:user_id;index"`
	DateFrom  time.Time `gorm:"column:date_from"`
	DateTo    time.Time `gorm:"column:date_to"`
	Price     float64   `gorm:"column:price"`
	Status    string    `gorm:"column:status;size:16;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:        m.ID,
		Reference: m.Reference,
		RoomID:    m.RoomID,
		UserID:    m.UserID,
		DateFrom:  m.DateFrom,
		DateTo:    m.DateTo,
		Price:     m.Price,
		Status:    domain.BookingStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *BookingRepository) GetByID(ctx context.Context, bookingID, userID int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", bookingID, userID).
		First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking: %w", tx.Error)
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) List(ctx context.Context, f domain.BookingFilter) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("user_id = ?", f.UserID)

	if f.RoomID != 0 {
		q = q.Where("room_id = ?", f.RoomID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", string(f.Status))
	}
	if !f.DateFrom.IsZero() {
		q = q.Where("date_from >= ?", f.DateFrom)
	}
	if !f.DateTo.IsZero() {
		q = q.Where("date_from < ?", f.DateTo)
	}

	var rows []bookingModel
	if err := q.Order("date_from").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) ListActive(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("status IN ?", []string{string(domain.BookingPending), string(domain.BookingConfirmed)}).
		Order("date_from").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list active bookings: %w", err)
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// countOverlapping counts active bookings of the room whose half-open
// range intersects [from, to). Two ranges [a,b) and [c,d) overlap iff
// a < d and c < b.
func countOverlapping(tx *gorm.DB, roomID int64, from, to time.Time) (int64, error) {
	var cnt int64
	err := tx.Model(&bookingModel{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", []string{string(domain.BookingPending), string(domain.BookingConfirmed)}).
		Where("date_from < ? AND date_to > ?", to, from).
		Count(&cnt).Error
	return cnt, err
}

func (r *BookingRepository) FreeUnitsLeft(ctx context.Context, roomID int64, from, to time.Time) (int, error) {
	var room roomModel
	if err := r.db.WithContext(ctx).First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("get room: %w", err)
	}

	cnt, err := countOverlapping(r.db.WithContext(ctx), roomID, from, to)
	if err != nil {
		return 0, fmt.Errorf("count overlapping bookings: %w", err)
	}

	free := room.Quantity - int(cnt)
	if free < 0 {
		free = 0
	}
	return free, nil
}

// Add re-checks capacity and inserts within a single transaction. The
// room row is locked first so two concurrent attempts on the last free
// unit serialize: the second one sees the first insert and gets nil.
func (r *BookingRepository) Add(ctx context.Context, userID, roomID int64, from, to time.Time) (*domain.Booking, error) {
	var created *bookingModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the room row so concurrent inserts on the same room
		// serialize. SQLite has no FOR UPDATE; there the connection is
		// opened with _txlock=immediate (database.Connect) so the
		// transaction takes the write lock before counting, otherwise
		// two deferred writers would both pass the count and one would
		// fail the lock upgrade with a busy error instead of seeing the
		// room as full.
		q := tx
		if tx.Dialector.Name() == "postgres" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var room roomModel
		err := q.First(&room, roomID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("lock room: %w", err)
		}

		cnt, err := countOverlapping(tx, roomID, from, to)
		if err != nil {
			return fmt.Errorf("count overlapping bookings: %w", err)
		}
		if int(cnt) >= room.Quantity {
			return nil
		}

		now := time.Now().UTC()
		m := bookingModel{
			Reference: uuid.New().String(),
			RoomID:    roomID,
			UserID:    userID,
			DateFrom:  from,
			DateTo:    to,
			Price:     room.Price,
			Status:    string(domain.BookingPending),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tx.Create(&m).Error; err != nil {
			return fmt.Errorf("insert booking: %w", err)
		}

		created = &m
		return nil
	})
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, nil
	}
	return toDomainBooking(*created), nil
}

// UpdateStatus is a compare-and-swap on status: with a non-empty expect
// the WHERE clause re-checks the current status at write time, and the
// affected-row count tells the caller whether it won the race.
func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status, expect domain.BookingStatus) (int64, error) {
	q := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID)

	if expect != "" {
		q = q.Where("status = ?", string(expect))
	}

	tx := q.Updates(map[string]any{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	})
	if tx.Error != nil {
		return 0, fmt.Errorf("update booking status: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}

func (r *BookingRepository) Delete(ctx context.Context, b *domain.Booking) error {
	if err := r.db.WithContext(ctx).Delete(&bookingModel{}, b.ID).Error; err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	return nil
}

func (r *BookingRepository) HotelOwnerForBooking(ctx context.Context, bookingID int64) (int64, error) {
	var ownerID int64
	err := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Select("hotels.owner_id").
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Joins("JOIN hotels ON hotels.id = rooms.hotel_id").
		Where("bookings.id = ?", bookingID).
		Scan(&ownerID).Error
	if err != nil {
		return 0, fmt.Errorf("resolve hotel owner: %w", err)
	}
	return ownerID, nil
}

// HasCompletedBookingForHotel reports whether the user finished a stay at
// the hotel; reviews are limited to actual guests.
func (r *BookingRepository) HasCompletedBookingForHotel(ctx context.Context, userID, hotelID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Where("bookings.user_id = ?", userID).
		Where("rooms.hotel_id = ?", hotelID).
		Where("bookings.status = ?", string(domain.BookingCompleted)).
		Count(&cnt).Error
	if err != nil {
		return false, fmt.Errorf("count completed bookings: %w", err)
	}
	return cnt > 0, nil
}
