package review

import (
	"context"

	"hotelhub/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]domain.Review, error)
	Delete(ctx context.Context, id int64) error
}

type HotelGetter interface {
	GetByID(ctx context.Context, hotelID int64) (*domain.Hotel, error)
}

// GuestChecker answers whether the user actually completed a stay at the
// hotel; reviews are restricted to real guests.
type GuestChecker interface {
	HasCompletedBookingForHotel(ctx context.Context, userID, hotelID int64) (bool, error)
}
