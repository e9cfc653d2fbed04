package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hotelhub/internal/domain"
)

type MockHotelRepository struct {
	mock.Mock
}

func (m *MockHotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	args := m.Called(ctx, h)
	h.ID = 1
	return args.Error(0)
}

func (m *MockHotelRepository) GetByID(ctx context.Context, hotelID int64) (*domain.Hotel, error) {
	args := m.Called(ctx, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockHotelRepository) List(ctx context.Context, city string) ([]domain.Hotel, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

func (m *MockHotelRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Hotel, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

func (m *MockHotelRepository) Update(ctx context.Context, h *domain.Hotel) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHotelRepository) Delete(ctx context.Context, hotelID int64) error {
	args := m.Called(ctx, hotelID)
	return args.Error(0)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, r *domain.Room) error {
	args := m.Called(ctx, r)
	r.ID = 1
	return args.Error(0)
}

func (m *MockRoomRepository) GetByID(ctx context.Context, roomID int64) (*domain.Room, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	args := m.Called(ctx, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) Update(ctx context.Context, r *domain.Room) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRoomRepository) Delete(ctx context.Context, roomID int64) error {
	args := m.Called(ctx, roomID)
	return args.Error(0)
}

func TestService_CreateRoom_OwnershipEnforced(t *testing.T) {
	mockHotels := new(MockHotelRepository)
	mockRooms := new(MockRoomRepository)

	mockHotels.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Hotel{ID: 5, OwnerID: 1}, nil)

	service := NewService(mockHotels, mockRooms)

	_, err := service.CreateRoom(context.Background(), 2, 5, CreateRoomRequest{
		Name: "Suite", Price: 20000, Quantity: 1, Capacity: 2,
	})
	assert.ErrorIs(t, err, ErrForbidden)
	mockRooms.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateRoom_Success(t *testing.T) {
	mockHotels := new(MockHotelRepository)
	mockRooms := new(MockRoomRepository)

	mockHotels.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Hotel{ID: 5, OwnerID: 1}, nil)
	mockRooms.On("Create", mock.Anything, mock.AnythingOfType("*domain.Room")).Return(nil)

	service := NewService(mockHotels, mockRooms)

	room, err := service.CreateRoom(context.Background(), 1, 5, CreateRoomRequest{
		Name: "Suite", Price: 20000, Quantity: 3, Capacity: 2,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(5), room.HotelID)
	assert.Equal(t, 3, room.Quantity)
}

func TestService_UpdateRoom_RejectsZeroQuantity(t *testing.T) {
	mockHotels := new(MockHotelRepository)
	mockRooms := new(MockRoomRepository)

	mockRooms.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.Room{ID: 10, HotelID: 5, Quantity: 3}, nil)
	mockHotels.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Hotel{ID: 5, OwnerID: 1}, nil)

	service := NewService(mockHotels, mockRooms)

	zero := 0
	_, err := service.UpdateRoom(context.Background(), 1, 10, UpdateRoomRequest{Quantity: &zero})
	assert.ErrorIs(t, err, ErrValidation)
	mockRooms.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_DeleteHotel_NotFound(t *testing.T) {
	mockHotels := new(MockHotelRepository)
	mockHotels.On("GetByID", mock.Anything, int64(404)).Return(nil, nil)

	service := NewService(mockHotels, new(MockRoomRepository))

	err := service.DeleteHotel(context.Background(), 1, 404)
	assert.ErrorIs(t, err, ErrHotelNotFound)
}
