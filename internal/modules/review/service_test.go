package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hotelhub/internal/domain"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, r *domain.Review) error {
	args := m.Called(ctx, r)
	r.ID = 1
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Review, error) {
	args := m.Called(ctx, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockHotelGetter struct {
	mock.Mock
}

func (m *MockHotelGetter) GetByID(ctx context.Context, hotelID int64) (*domain.Hotel, error) {
	args := m.Called(ctx, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

type MockGuestChecker struct {
	mock.Mock
}

func (m *MockGuestChecker) HasCompletedBookingForHotel(ctx context.Context, userID, hotelID int64) (bool, error) {
	args := m.Called(ctx, userID, hotelID)
	return args.Bool(0), args.Error(1)
}

func TestService_CreateReview_RequiresCompletedStay(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockHotels := new(MockHotelGetter)
	mockGuests := new(MockGuestChecker)

	mockHotels.On("GetByID", mock.Anything, int64(5)).Return(&domain.Hotel{ID: 5}, nil)
	mockGuests.On("HasCompletedBookingForHotel", mock.Anything, int64(7), int64(5)).Return(false, nil)

	service := NewService(mockReviews, mockHotels, mockGuests)

	_, err := service.CreateReview(context.Background(), 7, 5, CreateReviewRequest{Rating: 5})
	assert.ErrorIs(t, err, ErrNotAGuest)
	mockReviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateReview_Success(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockHotels := new(MockHotelGetter)
	mockGuests := new(MockGuestChecker)

	mockHotels.On("GetByID", mock.Anything, int64(5)).Return(&domain.Hotel{ID: 5}, nil)
	mockGuests.On("HasCompletedBookingForHotel", mock.Anything, int64(7), int64(5)).Return(true, nil)
	mockReviews.On("Create", mock.Anything, mock.AnythingOfType("*domain.Review")).Return(nil)

	service := NewService(mockReviews, mockHotels, mockGuests)

	review, err := service.CreateReview(context.Background(), 7, 5, CreateReviewRequest{
		Rating: 4, Comment: "clean and quiet",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(5), review.HotelID)
	assert.Equal(t, int64(7), review.UserID)
	assert.Equal(t, 4, review.Rating)
}

func TestService_DeleteReview_OnlyAuthor(t *testing.T) {
	mockReviews := new(MockReviewRepository)

	mockReviews.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Review{ID: 1, UserID: 7}, nil)

	service := NewService(mockReviews, new(MockHotelGetter), new(MockGuestChecker))

	err := service.DeleteReview(context.Background(), 8, 1)
	assert.ErrorIs(t, err, ErrForbidden)
	mockReviews.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
