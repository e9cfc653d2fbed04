package domain

import "time"

type Review struct {
	ID        int64     `json:"id"`
	HotelID   int64     `json:"hotel_id"`
	UserID    int64     `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `json:"user,omitempty"`
}
