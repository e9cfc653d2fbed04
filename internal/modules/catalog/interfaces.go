package catalog

import (
	"context"

	"hotelhub/internal/domain"
)

type HotelRepository interface {
	Create(ctx context.Context, h *domain.Hotel) error
	GetByID(ctx context.Context, hotelID int64) (*domain.Hotel, error)
	List(ctx context.Context, city string) ([]domain.Hotel, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Hotel, error)
	Update(ctx context.Context, h *domain.Hotel) error
	Delete(ctx context.Context, hotelID int64) error
}

type RoomRepository interface {
	Create(ctx context.Context, r *domain.Room) error
	GetByID(ctx context.Context, roomID int64) (*domain.Room, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error)
	Update(ctx context.Context, r *domain.Room) error
	Delete(ctx context.Context, roomID int64) error
}
