package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotelhub/internal/middleware"
	"hotelhub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public browse endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/hotels", h.ListHotels)
	rg.GET("/hotels/:id", h.GetHotel)
	rg.GET("/hotels/:id/rooms", h.ListRooms)
	rg.GET("/rooms/:id", h.GetRoom)
}

// RegisterManagerRoutes mounts the hotel administration endpoints.
func (h *Handler) RegisterManagerRoutes(rg *gin.RouterGroup) {
	rg.POST("/hotels", h.CreateHotel)
	rg.GET("/my/hotels", h.ListMyHotels)
	rg.PUT("/hotels/:id", h.UpdateHotel)
	rg.DELETE("/hotels/:id", h.DeleteHotel)
	rg.POST("/hotels/:id/rooms", h.CreateRoom)
	rg.PUT("/rooms/:id", h.UpdateRoom)
	rg.DELETE("/rooms/:id", h.DeleteRoom)
}

func (h *Handler) CreateHotel(c *gin.Context) {
	var req CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	hotel, err := h.service.CreateHotel(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create hotel")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"hotel": hotel})
}

func (h *Handler) GetHotel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	hotel, err := h.service.GetHotel(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrHotelNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get hotel")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hotel": hotel})
}

func (h *Handler) ListHotels(c *gin.Context) {
	hotels, err := h.service.ListHotels(c.Request.Context(), c.Query("city"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list hotels")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hotels": hotels})
}

func (h *Handler) ListMyHotels(c *gin.Context) {
	hotels, err := h.service.ListMyHotels(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list hotels")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hotels": hotels})
}

func (h *Handler) UpdateHotel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	hotel, err := h.service.UpdateHotel(c.Request.Context(), middleware.UserID(c), id, req)
	if err != nil {
		h.writeServiceError(c, err, "Failed to update hotel")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hotel": hotel})
}

func (h *Handler) DeleteHotel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteHotel(c.Request.Context(), middleware.UserID(c), id); err != nil {
		h.writeServiceError(c, err, "Failed to delete hotel")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hotel_id": id})
}

func (h *Handler) CreateRoom(c *gin.Context) {
	hotelID, ok := paramID(c)
	if !ok {
		return
	}

	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	room, err := h.service.CreateRoom(c.Request.Context(), middleware.UserID(c), hotelID, req)
	if err != nil {
		h.writeServiceError(c, err, "Failed to create room")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"room": room})
}

func (h *Handler) GetRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	room, err := h.service.GetRoom(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get room")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) ListRooms(c *gin.Context) {
	hotelID, ok := paramID(c)
	if !ok {
		return
	}

	rooms, err := h.service.ListRooms(c.Request.Context(), hotelID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list rooms")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	room, err := h.service.UpdateRoom(c.Request.Context(), middleware.UserID(c), id, req)
	if err != nil {
		h.writeServiceError(c, err, "Failed to update room")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) DeleteRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteRoom(c.Request.Context(), middleware.UserID(c), id); err != nil {
		h.writeServiceError(c, err, "Failed to delete room")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room_id": id})
}

func (h *Handler) writeServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrHotelNotFound), errors.Is(err, ErrRoomNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not own this resource")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid field values")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}
