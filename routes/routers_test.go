package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel-management/controllers"
	"hotel-management/dto"
	"hotel-management/errors"
	"hotel-management/models"
	"hotel-management/services"
	"hotel-management/services/logger"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type listOnlyHotel struct {
	controllers.HotelAPI
	operators []string
}

func (h *listOnlyHotel) GetAllGuests(_ context.Context, operator string) ([]models.GuestDetail, error) {
	h.operators = append(h.operators, operator)
	return []models.GuestDetail{}, nil
}

type noAuth struct{ controllers.AuthAPI }

func (noAuth) Logout(context.Context, services.Identity) error { return nil }

func (noAuth) Login(context.Context, dto.LoginInput) (*dto.LoginResponse, error) {
	return nil, errors.NewAppError(errors.ErrCodeUnauthorized, "Login failed", nil)
}

type tokens map[string]string

func (t tokens) Authenticate(_ context.Context, token string) (*services.Identity, error) {
	operator, ok := t[token]
	if !ok {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "invalid token", nil)
	}
	return &services.Identity{OperatorID: operator, SessionID: "s-" + operator}, nil
}

func newRouter(hotel *listOnlyHotel) *gin.Engine {
	r := gin.New()
	SetupRoutes(r, Dependencies{
		Hotel:  hotel,
		Auth:   noAuth{},
		Tokens: tokens{"t1": "op1", "t2": "op2"},
		Health: map[string]controllers.Pinger{},
		Logger: logger.Discard(),
	})
	return r
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newRouter(&listOnlyHotel{})
	protected := []struct{ method, path string }{
		{http.MethodGet, "/guests"},
		{http.MethodGet, "/bookings"},
		{http.MethodGet, "/guests/check-in-today"},
		{http.MethodGet, "/guests/stay"},
		{http.MethodGet, "/guests/check-out-today"},
		{http.MethodGet, "/guest/g1"},
		{http.MethodGet, "/reservation/r1"},
		{http.MethodPost, "/guest/search"},
		{http.MethodPost, "/guest/match"},
		{http.MethodPut, "/guest/register"},
		{http.MethodPut, "/booking/register"},
		{http.MethodPut, "/guest/update"},
		{http.MethodPut, "/reservation/update"},
		{http.MethodPut, "/guest/delete?id=g1"},
		{http.MethodPut, "/guest/checkIn?id=r1"},
		{http.MethodPut, "/checkOut?id=r1"},
		{http.MethodPost, "/logout"},
	}
	for _, p := range protected {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(p.method, p.path, nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", p.method, p.path, w.Code)
		}
	}
}

func TestOperatorComesFromToken(t *testing.T) {
	hotel := &listOnlyHotel{}
	r := newRouter(hotel)

	for _, token := range []string{"t1", "t2"} {
		if w := get(r, "/guests", token); w.Code != http.StatusOK {
			t.Fatalf("token %s: got %d", token, w.Code)
		}
	}
	if len(hotel.operators) != 2 || hotel.operators[0] != "op1" || hotel.operators[1] != "op2" {
		t.Fatalf("unexpected operators %v", hotel.operators)
	}
}

func TestOpenRoutes(t *testing.T) {
	r := newRouter(&listOnlyHotel{})

	if w := get(r, "/health", ""); w.Code != http.StatusOK {
		t.Fatalf("health: %d", w.Code)
	}
	if w := get(r, "/metrics", ""); w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "go_goroutines") {
		t.Fatalf("metrics: %d", w.Code)
	}
	if w := get(r, "/swagger/doc.json", ""); w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "/guest/checkIn") {
		t.Fatalf("swagger: %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("id=op1&password=wrong"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized || !strings.Contains(w.Body.String(), "Login failed") {
		t.Fatalf("login: %d %q", w.Code, w.Body.String())
	}
}
