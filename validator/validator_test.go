package validator

import (
	"encoding/json"
	"testing"
	"time"

	"hotel-management/dto"
	"hotel-management/errors"
	"hotel-management/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	today := func() models.Date { return models.NewDate(2025, time.September, 30) }
	if err := Register(v, today); err != nil {
		t.Fatalf("register: %v", err)
	}
	return v
}

func validGuest() models.Guest {
	return models.Guest{
		Name: "Hanako Sato", KanaName: "サトウハナコ", Gender: "female", Age: 30,
		Region: "Tokyo", Email: "hanako@example.com", Phone: "08098765432",
	}
}

func TestRegistrationValid(t *testing.T) {
	v := newValidate(t)
	reg := dto.GuestRegistration{
		Guest:       validGuest(),
		BookingID:   "9b2f4c1e-3a7d-4e8f-9c0a-1b2c3d4e5f60",
		CheckInDate: models.NewDate(2025, time.September, 30),
		StayDays:    2,
	}
	if err := v.Struct(reg); err != nil {
		t.Fatalf("expected valid registration, got %v", err)
	}
}

func TestRegistrationFieldErrors(t *testing.T) {
	v := newValidate(t)
	guest := validGuest()
	guest.Phone = "0809-876"
	guest.Email = "not-an-email"
	reg := dto.GuestRegistration{
		Guest:       guest,
		BookingID:   "plan-1",
		CheckInDate: models.NewDate(2025, time.September, 29),
		StayDays:    0,
	}

	fields := FieldErrors(v.Struct(reg))
	want := map[string]string{
		"guest.phone": "must be 10 or 11 digits",
		"guest.email": "must be a valid email address",
		"bookingId":   "must be a UUID",
		"checkInDate": "must not be before today",
		"stayDays":    "is required",
	}
	for field, msg := range want {
		if fields[field] != msg {
			t.Errorf("field %s: got %q, want %q (all: %v)", field, fields[field], msg, fields)
		}
	}
}

func TestZeroDateIsMissing(t *testing.T) {
	v := newValidate(t)
	reg := dto.GuestRegistration{Guest: validGuest(), BookingID: "9b2f4c1e-3a7d-4e8f-9c0a-1b2c3d4e5f60", StayDays: 1}
	fields := FieldErrors(v.Struct(reg))
	if fields["checkInDate"] != "is required" {
		t.Fatalf("expected required check-in date, got %v", fields)
	}
}

func TestPhoneRule(t *testing.T) {
	v := newValidate(t)
	for phone, ok := range map[string]bool{
		"0312345678":   true,
		"08098765432":  true,
		"031234567":    false,
		"080987654321": false,
		"080-9876-543": false,
	} {
		g := validGuest()
		g.Phone = phone
		err := v.Struct(g)
		if (err == nil) != ok {
			t.Errorf("phone %q: valid=%v, err=%v", phone, ok, err)
		}
	}
}

func TestNegativePriceRejected(t *testing.T) {
	v := newValidate(t)
	b := models.Booking{Name: "Standard", Price: decimal.NewFromInt(-1)}
	fields := FieldErrors(v.Struct(b))
	if fields["price"] != "must be at least 0" {
		t.Fatalf("expected price error, got %v", fields)
	}
}

func TestBindError(t *testing.T) {
	v := newValidate(t)
	appErr := BindError(v.Struct(models.Booking{}))
	if appErr.Code != errors.ErrCodeValidation || appErr.Fields["name"] != "is required" {
		t.Fatalf("unexpected %+v", appErr)
	}

	var reg dto.GuestRegistration
	err := json.Unmarshal([]byte(`{"checkInDate":"30/09/2025"}`), &reg)
	if appErr := BindError(err); appErr.Code != errors.ErrCodeValidation || appErr.Message != "dates must use the format 2006-01-02" {
		t.Fatalf("unexpected %+v", appErr)
	}

	err = json.Unmarshal([]byte(`{"stayDays":"two"}`), &reg)
	if appErr := BindError(err); appErr.Fields["stayDays"] != "has the wrong type" {
		t.Fatalf("unexpected %+v", appErr)
	}
}
