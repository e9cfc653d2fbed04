package booking

import "time"

type CreateBookingRequest struct {
	RoomID   int64     `json:"room_id" binding:"required"`
	DateFrom time.Time `json:"date_from" binding:"required"`
	DateTo   time.Time `json:"date_to" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type BookingResponse struct {
	ID        int64     `json:"id"`
	Reference string    `json:"reference"`
	RoomID    int64     `json:"room_id"`
	DateFrom  time.Time `json:"date_from"`
	DateTo    time.Time `json:"date_to"`
	Status    string    `json:"status"`
	Price     float64   `json:"price"`
	TotalDays int       `json:"total_days"`
	TotalCost float64   `json:"total_cost"`
}
