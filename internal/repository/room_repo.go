package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hotelhub/internal/domain"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	HotelID     int64     `gorm:"column:hotel_id;index"`
	Name        string    `gorm:"column:name"`
	Description *string   `gorm:"column:description"`
	Price       float64   `gorm:"column:price"`
	Quantity    int       `gorm:"column:quantity"`
	Capacity    int       `gorm:"column:capacity"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	var desc string
	if m.Description != nil {
		desc = *m.Description
	}

	return &domain.Room{
		ID:          m.ID,
		HotelID:     m.HotelID,
		Name:        m.Name,
		Description: desc,
		Price:       m.Price,
		Quantity:    m.Quantity,
		Capacity:    m.Capacity,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toRoomModel(r *domain.Room) roomModel {
	var desc *string
	if r.Description != "" {
		v := r.Description
		desc = &v
	}

	return roomModel{
		ID:          r.ID,
		HotelID:     r.HotelID,
		Name:        r.Name,
		Description: desc,
		Price:       r.Price,
		Quantity:    r.Quantity,
		Capacity:    r.Capacity,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("create room: %w", err)
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, roomID int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).First(&m, roomID)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get room: %w", tx.Error)
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	var rows []roomModel
	err := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	out := make([]domain.Room, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	m.UpdatedAt = time.Now().UTC()
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return fmt.Errorf("update room: %w", err)
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, roomID int64) error {
	if err := r.db.WithContext(ctx).Delete(&roomModel{}, roomID).Error; err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	return nil
}
