package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/explora/travel-system/internal/core/ports"
)

// DestinationHandler handles the destination catalog endpoints.
type DestinationHandler struct {
	service ports.DestinationService
}

func NewDestinationHandler(service ports.DestinationService) *DestinationHandler {
	return &DestinationHandler{service: service}
}

// List handles GET /destinations — public, no auth required.
//
// @Summary      List all destinations
// @Tags         destinations
// @Produce      json
// @Success      200  {array}  destinationResponse
// @Router       /destinations [get]
func (h *DestinationHandler) List(c echo.Context) error {
	destinations, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]destinationResponse, 0, len(destinations))
	for i := range destinations {
		out = append(out, toDestinationResponse(&destinations[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Create handles POST /destinations — admin only.
//
// @Summary      Create a destination
// @Tags         destinations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDestinationRequest  true  "Destination details"
// @Success      200   {object}  destinationResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /destinations [post]
func (h *DestinationHandler) Create(c echo.Context) error {
	var req createDestinationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	dest, err := h.service.Create(c.Request().Context(), ports.CreateDestinationInput{
		Name:        req.Name,
		Description: req.Description,
		Region:      req.Region,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toDestinationResponse(dest))
}

// Update handles PATCH /destinations/:id — admin only. Only the fields
// present in the payload are applied.
//
// @Summary      Partially update a destination
// @Tags         destinations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Destination id"
// @Param        body  body      updateDestinationRequest  true  "Fields to update"
// @Success      200   {object}  destinationResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /destinations/{id} [patch]
func (h *DestinationHandler) Update(c echo.Context) error {
	var req updateDestinationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	dest, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.DestinationPatch{
		Name:        req.Name,
		Description: req.Description,
		Region:      req.Region,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toDestinationResponse(dest))
}

// Delete handles DELETE /destinations/:id — admin only.
//
// @Summary      Delete a destination
// @Tags         destinations
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Destination id"
// @Success      200 {object}  map[string]string
// @Failure      401 {object}  errorResponse
// @Failure      403 {object}  errorResponse
// @Failure      404 {object}  errorResponse
// @Router       /destinations/{id} [delete]
func (h *DestinationHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Destination deleted successfully"})
}
