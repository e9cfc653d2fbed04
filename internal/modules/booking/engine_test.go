package booking_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelhub/internal/domain"
	"hotelhub/internal/modules/booking"
	"hotelhub/internal/repository"
)

// newEngine wires the real service onto the in-memory stores so the
// tests exercise the full create/confirm/cancel paths without a database.
func newEngine(rooms ...domain.Room) (*booking.Service, *repository.InMemoryBookingRepository) {
	roomRepo := repository.NewInMemoryRoomRepository()
	for _, room := range rooms {
		roomRepo.Put(room)
	}
	bookingRepo := repository.NewInMemoryBookingRepository(roomRepo)
	return booking.NewService(bookingRepo, roomRepo, nil), bookingRepo
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEngine_ConcurrentCreate_LastUnit(t *testing.T) {
	service, _ := newEngine(domain.Room{ID: 1, HotelID: 1, Name: "Single", Price: 9000, Quantity: 1, Capacity: 1})

	const callers = 20
	req := booking.CreateBookingRequest{
		RoomID:   1,
		DateFrom: date(2025, 7, 1),
		DateTo:   date(2025, 7, 5),
	}

	var wg sync.WaitGroup
	results := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			_, err := service.CreateBooking(context.Background(), userID, req)
			results <- err
		}(int64(i + 1))
	}
	wg.Wait()
	close(results)

	var wins, rejections int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, booking.ErrRoomUnavailable):
			rejections++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, wins)
	assert.Equal(t, callers-1, rejections)
}

func TestEngine_BackToBackStays_ShareOneUnit(t *testing.T) {
	service, _ := newEngine(domain.Room{ID: 1, HotelID: 1, Name: "Single", Price: 9000, Quantity: 1, Capacity: 1})
	ctx := context.Background()

	// Checkout day equals the next guest's checkin day; the ranges are
	// half-open so the two stays never overlap.
	_, err := service.CreateBooking(ctx, 1, booking.CreateBookingRequest{
		RoomID: 1, DateFrom: date(2025, 1, 1), DateTo: date(2025, 1, 5),
	})
	require.NoError(t, err)

	_, err = service.CreateBooking(ctx, 2, booking.CreateBookingRequest{
		RoomID: 1, DateFrom: date(2025, 1, 5), DateTo: date(2025, 1, 10),
	})
	assert.NoError(t, err)
}

func TestEngine_CapacityExhaustedThenReleased(t *testing.T) {
	service, _ := newEngine(domain.Room{ID: 1, HotelID: 1, Name: "Twin", Price: 12000, Quantity: 2, Capacity: 2})
	ctx := context.Background()

	from, to := date(2025, 8, 1), date(2025, 8, 3)
	book := func(userID int64) (*domain.Booking, error) {
		return service.CreateBooking(ctx, userID, booking.CreateBookingRequest{
			RoomID: 1, DateFrom: from, DateTo: to,
		})
	}

	first, err := book(1)
	require.NoError(t, err)
	_, err = book(2)
	require.NoError(t, err)

	free, err := service.FreeUnitsLeft(ctx, 1, from, to)
	require.NoError(t, err)
	assert.Equal(t, 0, free)

	_, err = book(3)
	assert.ErrorIs(t, err, booking.ErrRoomUnavailable)

	// Cancelling frees the unit for the same range.
	_, err = service.CancelBooking(ctx, 1, first.ID)
	require.NoError(t, err)

	free, err = service.FreeUnitsLeft(ctx, 1, from, to)
	require.NoError(t, err)
	assert.Equal(t, 1, free)

	_, err = book(3)
	assert.NoError(t, err)
}

func TestEngine_ConfirmedStillConsumesUnit(t *testing.T) {
	service, _ := newEngine(domain.Room{ID: 1, HotelID: 1, Name: "Single", Price: 9000, Quantity: 1, Capacity: 1})
	ctx := context.Background()

	from, to := date(2025, 9, 1), date(2025, 9, 4)
	b, err := service.CreateBooking(ctx, 1, booking.CreateBookingRequest{
		RoomID: 1, DateFrom: from, DateTo: to,
	})
	require.NoError(t, err)

	_, err = service.ConfirmBooking(ctx, 1, b.ID)
	require.NoError(t, err)

	_, err = service.CreateBooking(ctx, 2, booking.CreateBookingRequest{
		RoomID: 1, DateFrom: from, DateTo: to,
	})
	assert.ErrorIs(t, err, booking.ErrRoomUnavailable)
}

func TestEngine_ConcurrentConfirmAndCancel(t *testing.T) {
	service, _ := newEngine(domain.Room{ID: 1, HotelID: 1, Name: "Single", Price: 9000, Quantity: 1, Capacity: 1})
	ctx := context.Background()

	b, err := service.CreateBooking(ctx, 1, booking.CreateBookingRequest{
		RoomID: 1, DateFrom: date(2025, 10, 1), DateTo: date(2025, 10, 3),
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = service.ConfirmBooking(ctx, 1, b.ID)
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = service.CancelBooking(ctx, 1, b.ID)
	}()
	wg.Wait()

	// Exactly one writer wins; the loser observes the state it can no
	// longer transition from.
	if errs[0] == nil {
		assert.ErrorIs(t, errs[1], booking.ErrCannotCancel)
		got, err := service.GetBooking(ctx, 1, b.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingConfirmed, got.Status)
	} else {
		assert.ErrorIs(t, errs[0], booking.ErrCannotConfirm)
		require.NoError(t, errs[1])
		got, err := service.GetBooking(ctx, 1, b.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingCancelled, got.Status)
	}
}

func TestEngine_OtherRoomUnaffected(t *testing.T) {
	service, _ := newEngine(
		domain.Room{ID: 1, HotelID: 1, Name: "Single", Price: 9000, Quantity: 1, Capacity: 1},
		domain.Room{ID: 2, HotelID: 1, Name: "Double", Price: 14000, Quantity: 1, Capacity: 2},
	)
	ctx := context.Background()

	from, to := date(2025, 11, 1), date(2025, 11, 3)
	_, err := service.CreateBooking(ctx, 1, booking.CreateBookingRequest{
		RoomID: 1, DateFrom: from, DateTo: to,
	})
	require.NoError(t, err)

	_, err = service.CreateBooking(ctx, 2, booking.CreateBookingRequest{
		RoomID: 2, DateFrom: from, DateTo: to,
	})
	assert.NoError(t, err)
}
