package catalog

import (
	"context"
	"errors"

	"hotelhub/internal/domain"
)

var (
	ErrForbidden     = errors.New("forbidden")
	ErrHotelNotFound = errors.New("hotel not found")
	ErrRoomNotFound  = errors.New("room not found")
	ErrValidation    = errors.New("validation error")
)

type Service struct {
	hotels HotelRepository
	rooms  RoomRepository
}

func NewService(hotels HotelRepository, rooms RoomRepository) *Service {
	return &Service{hotels: hotels, rooms: rooms}
}

/* ---------- HOTELS ---------- */

func (s *Service) CreateHotel(ctx context.Context, ownerID int64, req CreateHotelRequest) (*domain.Hotel, error) {
	hotel := &domain.Hotel{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		Stars:       req.Stars,
	}

	if err := s.hotels.Create(ctx, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

func (s *Service) GetHotel(ctx context.Context, hotelID int64) (*domain.Hotel, error) {
	hotel, err := s.hotels.GetByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, ErrHotelNotFound
	}
	return hotel, nil
}

func (s *Service) ListHotels(ctx context.Context, city string) ([]domain.Hotel, error) {
	return s.hotels.List(ctx, city)
}

func (s *Service) ListMyHotels(ctx context.Context, ownerID int64) ([]domain.Hotel, error) {
	return s.hotels.ListByOwner(ctx, ownerID)
}

func (s *Service) UpdateHotel(ctx context.Context, userID, hotelID int64, req UpdateHotelRequest) (*domain.Hotel, error) {
	hotel, err := s.hotels.GetByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, ErrHotelNotFound
	}
	if hotel.OwnerID != userID {
		return nil, ErrForbidden
	}

	if req.Name != nil {
		hotel.Name = *req.Name
	}
	if req.Description != nil {
		hotel.Description = *req.Description
	}
	if req.Address != nil {
		hotel.Address = *req.Address
	}
	if req.City != nil {
		hotel.City = *req.City
	}
	if req.Stars != nil {
		if *req.Stars < 0 || *req.Stars > 5 {
			return nil, ErrValidation
		}
		hotel.Stars = *req.Stars
	}

	if err := s.hotels.Update(ctx, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

func (s *Service) DeleteHotel(ctx context.Context, userID, hotelID int64) error {
	hotel, err := s.hotels.GetByID(ctx, hotelID)
	if err != nil {
		return err
	}
	if hotel == nil {
		return ErrHotelNotFound
	}
	if hotel.OwnerID != userID {
		return ErrForbidden
	}

	return s.hotels.Delete(ctx, hotelID)
}

/* ---------- ROOMS ---------- */

func (s *Service) CreateRoom(ctx context.Context, userID, hotelID int64, req CreateRoomRequest) (*domain.Room, error) {
	hotel, err := s.hotels.GetByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, ErrHotelNotFound
	}
	if hotel.OwnerID != userID {
		return nil, ErrForbidden
	}

	room := &domain.Room{
		HotelID:     hotelID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Capacity:    req.Capacity,
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) GetRoom(ctx context.Context, roomID int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

func (s *Service) ListRooms(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	return s.rooms.ListByHotel(ctx, hotelID)
}

func (s *Service) UpdateRoom(ctx context.Context, userID, roomID int64, req UpdateRoomRequest) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	hotel, err := s.hotels.GetByID(ctx, room.HotelID)
	if err != nil {
		return nil, err
	}
	if hotel == nil || hotel.OwnerID != userID {
		return nil, ErrForbidden
	}

	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrValidation
		}
		room.Price = *req.Price
	}
	if req.Quantity != nil {
		if *req.Quantity <= 0 {
			return nil, ErrValidation
		}
		room.Quantity = *req.Quantity
	}
	if req.Capacity != nil {
		if *req.Capacity <= 0 {
			return nil, ErrValidation
		}
		room.Capacity = *req.Capacity
	}

	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) DeleteRoom(ctx context.Context, userID, roomID int64) error {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return err
	}
	if room == nil {
		return ErrRoomNotFound
	}

	hotel, err := s.hotels.GetByID(ctx, room.HotelID)
	if err != nil {
		return err
	}
	if hotel == nil || hotel.OwnerID != userID {
		return ErrForbidden
	}

	return s.rooms.Delete(ctx, roomID)
}
