package review

import (
	"context"

	"hotelhub/internal/domain"
)

type Service struct {
	reviews ReviewRepository
	hotels  HotelGetter
	guests  GuestChecker
}

func NewService(reviews ReviewRepository, hotels HotelGetter, guests GuestChecker) *Service {
	return &Service{reviews: reviews, hotels: hotels, guests: guests}
}

func (s *Service) CreateReview(ctx context.Context, userID, hotelID int64, req CreateReviewRequest) (*domain.Review, error) {
	hotel, err := s.hotels.GetByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, ErrHotelNotFound
	}

	stayed, err := s.guests.HasCompletedBookingForHotel(ctx, userID, hotelID)
	if err != nil {
		return nil, err
	}
	if !stayed {
		return nil, ErrNotAGuest
	}

	review := &domain.Review{
		HotelID: hotelID,
		UserID:  userID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *Service) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Review, error) {
	return s.reviews.ListByHotel(ctx, hotelID)
}

func (s *Service) DeleteReview(ctx context.Context, userID, reviewID int64) error {
	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrNotFound
	}
	if review.UserID != userID {
		return ErrForbidden
	}

	return s.reviews.Delete(ctx, reviewID)
}
