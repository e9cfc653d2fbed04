package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hotelhub/internal/domain"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

type hotelModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	OwnerID     int64     `gorm:"column:owner_id;index"`
	Name        string    `gorm:"column:name"`
	Description *string   `gorm:"column:description"`
	Address     string    `gorm:"column:address"`
	City        string    `gorm:"column:city;index"`
	Stars       int       `gorm:"column:stars"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (hotelModel) TableName() string { return "hotels" }

func toDomainHotel(m hotelModel) *domain.Hotel {
	var desc string
	if m.Description != nil {
		desc = *m.Description
	}

	return &domain.Hotel{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Description: desc,
		Address:     m.Address,
		City:        m.City,
		Stars:       m.Stars,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toHotelModel(h *domain.Hotel) hotelModel {
	var desc *string
	if h.Description != "" {
		v := h.Description
		desc = &v
	}

	return hotelModel{
		ID:          h.ID,
		OwnerID:     h.OwnerID,
		Name:        h.Name,
		Description: desc,
		Address:     h.Address,
		City:        h.City,
		Stars:       h.Stars,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

func (r *HotelRepository) Create(ctx context.Context, hotel *domain.Hotel) error {
	m := toHotelModel(hotel)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("create hotel: %w", err)
	}
	*hotel = *toDomainHotel(m)
	return nil
}

func (r *HotelRepository) GetByID(ctx context.Context, hotelID int64) (*domain.Hotel, error) {
	var m hotelModel
	tx := r.db.WithContext(ctx).First(&m, hotelID)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get hotel: %w", tx.Error)
	}
	return toDomainHotel(m), nil
}

func (r *HotelRepository) List(ctx context.Context, city string) ([]domain.Hotel, error) {
	q := r.db.WithContext(ctx).Model(&hotelModel{})
	if city != "" {
		q = q.Where("city = ?", city)
	}

	var rows []hotelModel
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}

	out := make([]domain.Hotel, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainHotel(m))
	}
	return out, nil
}

func (r *HotelRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Hotel, error) {
	var rows []hotelModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list hotels by owner: %w", err)
	}

	out := make([]domain.Hotel, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainHotel(m))
	}
	return out, nil
}

func (r *HotelRepository) Update(ctx context.Context, hotel *domain.Hotel) error {
	m := toHotelModel(hotel)
	m.UpdatedAt = time.Now().UTC()
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return fmt.Errorf("update hotel: %w", err)
	}
	*hotel = *toDomainHotel(m)
	return nil
}

func (r *HotelRepository) Delete(ctx context.Context, hotelID int64) error {
	if err := r.db.WithContext(ctx).Delete(&hotelModel{}, hotelID).Error; err != nil {
		return fmt.Errorf("delete hotel: %w", err)
	}
	return nil
}
