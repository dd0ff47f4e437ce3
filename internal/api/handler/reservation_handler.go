package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/explora/travel-system/internal/core/ports"
)

// ReservationHandler handles the booking endpoints.
type ReservationHandler struct {
	service ports.ReservationService
}

func NewReservationHandler(service ports.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

// Create handles POST /reservations. The owning user is always taken from
// the token claims; a user_id in the payload is ignored.
//
// @Summary      Create a reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReservationRequest  true  "Reservation details"
// @Success      200   {object}  reservationResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /reservations [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	var req createReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "check_in must be a date in 2006-01-02 format")
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "check_out must be a date in 2006-01-02 format")
	}

	res, err := h.service.Create(c.Request().Context(), ports.CreateReservationInput{
		UserID:        userID,
		DestinationID: req.DestinationID,
		People:        req.People,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toReservationResponse(res))
}

// List handles GET /reservations — returns only the caller's own rows.
//
// @Summary      List the caller's reservations
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   reservationResponse
// @Failure      401  {object}  errorResponse
// @Router       /reservations [get]
func (h *ReservationHandler) List(c echo.Context) error {
	userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	reservations, err := h.service.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	out := make([]reservationResponse, 0, len(reservations))
	for i := range reservations {
		out = append(out, toReservationResponse(&reservations[i]))
	}
	return c.JSON(http.StatusOK, out)
}
