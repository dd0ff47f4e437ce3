package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/explora/travel-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account with the default user role.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, registerResponse{ID: user.ID, Username: user.Username})
}

// Token authenticates a user and issues a bearer token.
//
// @Summary      Obtain a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      tokenRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  errorResponse
// @Router       /token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	var req tokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Verify checks a token's signature and expiry.
//
// @Summary      Verify a session token
// @Tags         auth
// @Produce      json
// @Param        token  query     string  true  "Token to verify"
// @Success      200    {object}  verifyResponse
// @Failure      401    {object}  errorResponse
// @Router       /verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	claims, err := h.authService.Verify(c.QueryParam("token"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, verifyResponse{
		Valid:  true,
		Sub:    claims.Subject,
		UserID: claims.UserID,
	})
}

// MakeAdmin elevates the named user to the admin role. Authorization is
// enforced by the ElevationGuard middleware on the route.
//
// @Summary      Elevate a user to admin
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username to elevate"
// @Success      200       {object}  makeAdminResponse
// @Failure      401       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /make-admin/{username} [post]
func (h *AuthHandler) MakeAdmin(c echo.Context) error {
	user, err := h.authService.Elevate(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, makeAdminResponse{
		Username: user.Username,
		UserID:   user.ID,
		Role:     string(user.Role),
	})
}
