package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")
	ErrMissingPrice     = errors.New("destination has no price set")
)

// Reservation is a booking made by a user against a destination. It is
// immutable once created and visible only to its owner.
type Reservation struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	DestinationID string    `json:"destination_id"`
	People        int       `json:"people"`
	CheckIn       time.Time `json:"check_in"`
	CheckOut      time.Time `json:"check_out"`
	TotalPrice    float64   `json:"total_price"`
	CreatedAt     time.Time `json:"created_at"`
}

// Nights returns the whole-day span between two calendar dates. The
// computation works on calendar days rather than elapsed hours so that
// time-of-day and DST offsets in the inputs cannot skew the count.
func Nights(checkIn, checkOut time.Time) int {
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)
	return int(out.Sub(in) / (24 * time.Hour))
}
