package domain

import (
	"errors"
	"time"
)

var ErrDestinationNotFound = errors.New("destination not found")

// Destination is a bookable travel destination. Price is per person per day
// and may be unset until an administrator assigns one.
type Destination struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Region      string    `json:"region,omitempty"`
	Price       *float64  `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasPrice reports whether the destination can be booked: a nil or
// non-positive price means reservations against it must be rejected.
func (d *Destination) HasPrice() bool {
	return d.Price != nil && *d.Price > 0
}
