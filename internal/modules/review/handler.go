package review

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

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/hotels/:id/reviews", h.ListByHotel)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/hotels/:id/reviews", h.CreateReview)
	rg.DELETE("/reviews/:id", h.DeleteReview)
}

func (h *Handler) CreateReview(c *gin.Context) {
	hotelID, ok := paramID(c)
	if !ok {
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	review, err := h.service.CreateReview(c.Request.Context(), middleware.UserID(c), hotelID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrHotelNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
		case errors.Is(err, ErrNotAGuest):
			response.Error(c, http.StatusForbidden, "NOT_A_GUEST", "Only guests with a completed stay can leave a review")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create review")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"review": review})
}

func (h *Handler) ListByHotel(c *gin.Context) {
	hotelID, ok := paramID(c)
	if !ok {
		return
	}

	reviews, err := h.service.ListByHotel(c.Request.Context(), hotelID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list reviews")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}

func (h *Handler) DeleteReview(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteReview(c.Request.Context(), middleware.UserID(c), id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only delete your own reviews")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete review")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"review_id": id})
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}
