package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/explora/travel-system/internal/core/domain"
	"github.com/explora/travel-system/internal/core/security"
)

type stubRedeemer struct {
	token    string
	redeemed bool
}

func (s *stubRedeemer) Redeem(_ context.Context, presented string) (bool, error) {
	if presented != s.token || s.redeemed {
		return false, nil
	}
	s.redeemed = true
	return true, nil
}

func runElevationGuard(t *testing.T, setup func(req *http.Request), redeemer TokenRedeemer) (int, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/make-admin/bob", nil)
	setup(req)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := ElevationGuard(security.NewTokenCodec("secret"), redeemer)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec.Code, called
}

func TestElevationGuard_AdminToken(t *testing.T) {
	code, called := runElevationGuard(t, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+signedToken(t, "secret", domain.RoleAdmin))
	}, &stubRedeemer{})

	if !called || code != http.StatusOK {
		t.Fatalf("expected admin token to pass, got code=%d called=%v", code, called)
	}
}

func TestElevationGuard_NonAdminToken(t *testing.T) {
	code, called := runElevationGuard(t, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+signedToken(t, "secret", domain.RoleUser))
	}, &stubRedeemer{})

	if called || code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin token, got code=%d called=%v", code, called)
	}
}

func TestElevationGuard_BootstrapTokenOnce(t *testing.T) {
	redeemer := &stubRedeemer{token: "one-time"}

	code, called := runElevationGuard(t, func(req *http.Request) {
		req.Header.Set(BootstrapHeader, "one-time")
	}, redeemer)
	if !called || code != http.StatusOK {
		t.Fatalf("first redemption must pass, got code=%d called=%v", code, called)
	}

	code, called = runElevationGuard(t, func(req *http.Request) {
		req.Header.Set(BootstrapHeader, "one-time")
	}, redeemer)
	if called || code != http.StatusUnauthorized {
		t.Fatalf("second redemption must fail with 401, got code=%d called=%v", code, called)
	}
}

func TestElevationGuard_NoCredentials(t *testing.T) {
	code, called := runElevationGuard(t, func(req *http.Request) {}, &stubRedeemer{token: "one-time"})

	if called || code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with no credentials, got code=%d called=%v", code, called)
	}
}
