package builders

import (
	"errors"
	"testing"
	"time"

	"hotel-management/models"

	"github.com/shopspring/decimal"
)

func TestBuildComputesCheckOutAndTotal(t *testing.T) {
	created := time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC)
	r, err := NewReservationBuilder().
		WithID("res-1").
		ForGuest("guest-1").
		WithBooking("booking-1", decimal.NewFromInt(10000)).
		WithStay(models.NewDate(2025, time.September, 30), 2).
		WithMemo("late arrival").
		WithOperator("op1").
		CreatedAt(created).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !r.TotalPrice.Equal(decimal.NewFromInt(20000)) {
		t.Fatalf("expected total 20000, got %s", r.TotalPrice)
	}
	if r.CheckOutDate.String() != "2025-10-02" {
		t.Fatalf("expected check-out 2025-10-02, got %s", r.CheckOutDate)
	}
	if r.Status != models.ReservationStatusNotCheckedIn {
		t.Fatalf("expected NOT_CHECKED_IN, got %s", r.Status)
	}
	if r.Memo != "late arrival" || r.OperatorID != "op1" || !r.CreatedAt.Equal(created) {
		t.Fatalf("unexpected fields %+v", r)
	}
}

func TestBuildRejectsInvalidInput(t *testing.T) {
	checkIn := models.NewDate(2025, time.September, 30)
	cases := []struct {
		name    string
		builder *ReservationBuilder
		want    error
	}{
		{
			name:    "zero stay",
			builder: NewReservationBuilder().ForGuest("g").WithBooking("b", decimal.NewFromInt(1)).WithStay(checkIn, 0),
			want:    ErrInvalidStayDays,
		},
		{
			name:    "missing check in",
			builder: NewReservationBuilder().ForGuest("g").WithBooking("b", decimal.NewFromInt(1)).WithStay(models.Date{}, 1),
			want:    ErrMissingCheckIn,
		},
		{
			name:    "missing guest",
			builder: NewReservationBuilder().WithBooking("b", decimal.NewFromInt(1)).WithStay(checkIn, 1),
			want:    ErrMissingReference,
		},
		{
			name:    "negative price",
			builder: NewReservationBuilder().ForGuest("g").WithBooking("b", decimal.NewFromInt(-1)).WithStay(checkIn, 1),
			want:    ErrNegativePrice,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.builder.Build(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestFromReservationRepricesOnEdit(t *testing.T) {
	existing := models.Reservation{
		ID: "res-1", GuestID: "g", BookingID: "b", StayDays: 2,
		CheckInDate: models.NewDate(2025, time.September, 30), TotalPrice: decimal.NewFromInt(20000),
		Status: models.ReservationStatusCheckedIn,
	}

	r, err := FromReservation(existing).WithStay(existing.CheckInDate, 3).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !r.TotalPrice.Equal(decimal.NewFromInt(30000)) || r.CheckOutDate.String() != "2025-10-03" {
		t.Fatalf("unexpected reprice %s %s", r.TotalPrice, r.CheckOutDate)
	}
	if r.Status != models.ReservationStatusCheckedIn {
		t.Fatalf("status must be preserved, got %s", r.Status)
	}

	r, err = FromReservation(existing).WithBooking("b2", decimal.NewFromInt(8000)).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !r.TotalPrice.Equal(decimal.NewFromInt(16000)) || r.BookingID != "b2" {
		t.Fatalf("unexpected booking change %+v", r)
	}
}
