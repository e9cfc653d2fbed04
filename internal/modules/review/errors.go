package review

import "errors"

var (
	ErrHotelNotFound = errors.New("hotel not found")
	ErrNotFound      = errors.New("review not found")
	ErrForbidden     = errors.New("forbidden")
	ErrNotAGuest     = errors.New("no completed stay at this hotel")
)
