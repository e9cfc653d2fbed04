package domain

import "time"

// Room is a bookable room type. Quantity is the number of interchangeable
// inventory units of this type; each active booking consumes exactly one.
type Room struct {
	ID          int64     `json:"id"`
	HotelID     int64     `json:"hotel_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Capacity    int       `json:"capacity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
