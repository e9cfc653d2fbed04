package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotelhub/internal/domain"
	"hotelhub/internal/metrics"
	"hotelhub/internal/middleware"
	"hotelhub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/active", h.ListActive)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.POST("/bookings/:id/confirm", h.ConfirmBooking)
	rg.POST("/bookings/:id/cancel", h.CancelBooking)
	rg.DELETE("/bookings/:id", h.DeleteBooking)
	rg.GET("/rooms/:id/availability", h.RoomAvailability)
}

// RegisterManagerRoutes mounts the privileged status override.
func (h *Handler) RegisterManagerRoutes(rg *gin.RouterGroup) {
	rg.PATCH("/bookings/:id/status", h.SetStatus)
}

func toResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		Reference: b.Reference,
		RoomID:    b.RoomID,
		DateFrom:  b.DateFrom,
		DateTo:    b.DateTo,
		Status:    string(b.Status),
		Price:     b.Price,
		TotalDays: b.TotalDays(),
		TotalCost: b.TotalCost(),
	}
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDates):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date_from must be before date_to")
		case errors.Is(err, ErrRoomNotFound):
			response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room does not exist")
		case errors.Is(err, ErrRoomUnavailable):
			metrics.BookingRejected()
			response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Room has no free units for the selected dates")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	metrics.BookingCreated()
	response.Success(c, http.StatusCreated, gin.H{"booking": toResponse(b)})
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	b, err := h.service.GetBooking(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": toResponse(b)})
}

func (h *Handler) ListBookings(c *gin.Context) {
	f := domain.BookingFilter{UserID: middleware.UserID(c)}

	if v := c.Query("room_id"); v != "" {
		roomID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room_id")
			return
		}
		f.RoomID = roomID
	}
	if v := c.Query("status"); v != "" {
		status, ok := domain.ParseBookingStatus(v)
		if !ok {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown status")
			return
		}
		f.Status = status
	}
	if v := c.Query("date_from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date_from")
			return
		}
		f.DateFrom = t
	}
	if v := c.Query("date_to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date_to")
			return
		}
		f.DateTo = t
	}

	items, err := h.service.ListBookings(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}

	out := make([]BookingResponse, 0, len(items))
	for i := range items {
		out = append(out, toResponse(&items[i]))
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": out})
}

func (h *Handler) ListActive(c *gin.Context) {
	items, err := h.service.ListActive(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}

	out := make([]BookingResponse, 0, len(items))
	for i := range items {
		out = append(out, toResponse(&items[i]))
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": out})
}

func (h *Handler) ConfirmBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	bookingID, err := h.service.ConfirmBooking(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrCannotConfirm):
			response.Error(c, http.StatusConflict, "CANNOT_CONFIRM", "Only pending bookings can be confirmed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to confirm booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking_id": bookingID, "status": domain.BookingConfirmed})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	bookingID, err := h.service.CancelBooking(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrCannotCancel):
			response.Error(c, http.StatusConflict, "CANNOT_CANCEL", "Only pending bookings can be cancelled")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking_id": bookingID, "status": domain.BookingCancelled})
}

func (h *Handler) SetStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	status, valid := domain.ParseBookingStatus(req.Status)
	if !valid {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown status")
		return
	}

	err := h.service.SetStatus(c.Request.Context(), middleware.UserID(c), id, status)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrCannotUpdate):
			response.Error(c, http.StatusConflict, "CANNOT_UPDATE", "Status update failed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking_id": id, "status": status})
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	err := h.service.DeleteBooking(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking_id": id})
}

func (h *Handler) RoomAvailability(c *gin.Context) {
	roomID, ok := paramID(c)
	if !ok {
		return
	}

	from, err := time.Parse("2006-01-02", c.Query("date_from"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date_from")
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("date_to"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date_to")
		return
	}

	free, err := h.service.FreeUnitsLeft(c.Request.Context(), roomID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDates):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date_from must be before date_to")
		case errors.Is(err, ErrRoomNotFound):
			response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room does not exist")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check availability")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room_id": roomID, "free_units": free})
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}
