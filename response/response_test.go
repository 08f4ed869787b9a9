package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-management/errors"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func render(err error) (*httptest.ResponseRecorder, ErrorBody) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	Error(c, err)

	var body ErrorBody
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{errors.NewNotFoundError(errors.ErrCodeGuestNotFound, "guest not found"), http.StatusNotFound},
		{errors.NewNotFoundError(errors.ErrCodeBookingNotFound, "booking plan not found"), http.StatusNotFound},
		{errors.NewAppError(errors.ErrCodeInvalidState, "only a checked-in reservation may check out", nil), http.StatusConflict},
		{errors.NewAppError(errors.ErrCodeDBDuplicate, "record already exists", nil), http.StatusConflict},
		{errors.NewValidationError(map[string]string{"phone": "must be 10 or 11 digits"}), http.StatusUnprocessableEntity},
		{errors.NewAppError(errors.ErrCodeInvalidToken, "invalid token", nil), http.StatusUnauthorized},
		{errors.NewAppError(errors.ErrCodeDBError, "database error", nil), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w, _ := render(tc.err)
		if w.Code != tc.status {
			t.Errorf("%v: got status %d, want %d", tc.err, w.Code, tc.status)
		}
	}
}

func TestErrorBodyCarriesFields(t *testing.T) {
	_, body := render(errors.NewValidationError(map[string]string{"guest.phone": "must be 10 or 11 digits"}))
	if body.Code != errors.ErrCodeValidation || body.Fields["guest.phone"] != "must be 10 or 11 digits" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestServerErrorHidesDetails(t *testing.T) {
	_, body := render(errors.NewAppError(errors.ErrCodeDBError, "pq: relation guests does not exist", nil))
	if body.Error != "Internal server error" {
		t.Fatalf("internal details leaked: %+v", body)
	}
}

func TestTokenErrorsAreGeneric(t *testing.T) {
	_, body := render(errors.NewAppError(errors.ErrCodeInvalidToken, "signature is invalid", nil))
	if body.Error != "Unauthorized" {
		t.Fatalf("expected generic unauthorized body, got %+v", body)
	}
	_, body = render(errors.NewAppError(errors.ErrCodeUnauthorized, "Login failed", nil))
	if body.Error != "Login failed" {
		t.Fatalf("expected login failure message, got %+v", body)
	}
}
