package handler

import (
	"time"

	"github.com/explora/travel-system/internal/core/domain"
)

const dateLayout = "2006-01-02"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Password string `json:"password" validate:"required"`
}

type registerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type tokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type verifyResponse struct {
	Valid  bool   `json:"valid"`
	Sub    string `json:"sub"`
	UserID string `json:"user_id"`
}

type makeAdminResponse struct {
	Username string `json:"username"`
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
}

// --- Destinations ---

type createDestinationRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Region      string   `json:"region"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
}

// updateDestinationRequest is a partial update: absent fields stay untouched.
type updateDestinationRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Region      *string  `json:"region"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
}

type destinationResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Region      string   `json:"region,omitempty"`
	Price       *float64 `json:"price"`
}

func toDestinationResponse(d *domain.Destination) destinationResponse {
	return destinationResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Region:      d.Region,
		Price:       d.Price,
	}
}

// --- Reservations ---

type createReservationRequest struct {
	DestinationID string `json:"destination_id" validate:"required"`
	People        int    `json:"people" validate:"omitempty,gte=1"`
	CheckIn       string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut      string `json:"check_out" validate:"required,datetime=2006-01-02"`
}

type reservationResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	DestinationID string  `json:"destination_id"`
	People        int     `json:"people"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	TotalPrice    float64 `json:"total_price"`
}

func toReservationResponse(r *domain.Reservation) reservationResponse {
	return reservationResponse{
		ID:            r.ID,
		UserID:        r.UserID,
		DestinationID: r.DestinationID,
		People:        r.People,
		CheckIn:       r.CheckIn.Format(dateLayout),
		CheckOut:      r.CheckOut.Format(dateLayout),
		TotalPrice:    r.TotalPrice,
	}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
