package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/explora/travel-system/internal/core/domain"
	"github.com/explora/travel-system/internal/core/ports"
)

type stubReservationService struct {
	createFn func(ctx context.Context, in ports.CreateReservationInput) (*domain.Reservation, error)
	listFn   func(ctx context.Context, userID string) ([]domain.Reservation, error)
}

func (s *stubReservationService) Create(ctx context.Context, in ports.CreateReservationInput) (*domain.Reservation, error) {
	return s.createFn(ctx, in)
}

func (s *stubReservationService) ListByUser(ctx context.Context, userID string) ([]domain.Reservation, error) {
	return s.listFn(ctx, userID)
}

func TestReservationHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubReservationService{
		createFn: func(ctx context.Context, in ports.CreateReservationInput) (*domain.Reservation, error) {
			if in.UserID != "u1" {
				t.Fatalf("expected owner from token claims, got %q", in.UserID)
			}
			if in.DestinationID != "d1" || in.People != 2 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Reservation{
				ID:            "r1",
				UserID:        in.UserID,
				DestinationID: in.DestinationID,
				People:        in.People,
				CheckIn:       in.CheckIn,
				CheckOut:      in.CheckOut,
				TotalPrice:    60,
			}, nil
		},
	}
	handler := NewReservationHandler(stub)

	body := strings.NewReader(`{"destination_id":"d1","people":2,"check_in":"2024-01-01","check_out":"2024-01-04"}`)
	req := httptest.NewRequest(http.MethodPost, "/reservations", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "u1")

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["total_price"] != float64(60) {
		t.Fatalf("expected total_price 60, got %v", resp["total_price"])
	}
	if resp["check_in"] != "2024-01-01" || resp["check_out"] != "2024-01-04" {
		t.Fatalf("dates not rendered as calendar days: %+v", resp)
	}
}

func TestReservationHandler_Create_IgnoresClientUserID(t *testing.T) {
	e := newTestEcho()
	stub := &stubReservationService{
		createFn: func(ctx context.Context, in ports.CreateReservationInput) (*domain.Reservation, error) {
			if in.UserID != "token-user" {
				t.Fatalf("user_id must come from claims, got %q", in.UserID)
			}
			return &domain.Reservation{ID: "r1", UserID: in.UserID}, nil
		},
	}
	handler := NewReservationHandler(stub)

	// The payload tries to book on behalf of someone else.
	body := strings.NewReader(`{"destination_id":"d1","user_id":"victim","check_in":"2024-01-01","check_out":"2024-01-02"}`)
	req := httptest.NewRequest(http.MethodPost, "/reservations", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "token-user")

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReservationHandler_Create_BadDateFormat(t *testing.T) {
	e := newTestEcho()
	stub := &stubReservationService{
		createFn: func(ctx context.Context, in ports.CreateReservationInput) (*domain.Reservation, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewReservationHandler(stub)

	body := strings.NewReader(`{"destination_id":"d1","check_in":"01/01/2024","check_out":"2024-01-04"}`)
	req := httptest.NewRequest(http.MethodPost, "/reservations", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "u1")

	if err := handler.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestReservationHandler_Create_NoIdentity(t *testing.T) {
	e := newTestEcho()
	stub := &stubReservationService{
		createFn: func(ctx context.Context, in ports.CreateReservationInput) (*domain.Reservation, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewReservationHandler(stub)

	body := strings.NewReader(`{"destination_id":"d1","check_in":"2024-01-01","check_out":"2024-01-02"}`)
	req := httptest.NewRequest(http.MethodPost, "/reservations", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestReservationHandler_List_OwnOnly(t *testing.T) {
	e := newTestEcho()
	stub := &stubReservationService{
		listFn: func(ctx context.Context, userID string) ([]domain.Reservation, error) {
			if userID != "u1" {
				t.Fatalf("expected list scoped to u1, got %q", userID)
			}
			return []domain.Reservation{{ID: "r1", UserID: "u1"}}, nil
		},
	}
	handler := NewReservationHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/reservations", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "u1")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["user_id"] != "u1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
