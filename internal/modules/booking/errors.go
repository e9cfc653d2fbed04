package booking

import "errors"

var (
	ErrInvalidDates    = errors.New("invalid booking dates")
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomUnavailable = errors.New("room cannot be booked")
	ErrNotFound        = errors.New("booking not found")
	ErrCannotConfirm   = errors.New("booking cannot be confirmed")
	ErrCannotCancel    = errors.New("booking cannot be cancelled")
	ErrCannotUpdate    = errors.New("booking cannot be updated")
)
