package builders

import (
	"errors"
	"time"

	"hotel-management/models"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingCheckIn   = errors.New("check-in date is required")
	ErrInvalidStayDays  = errors.New("stay days must be at least 1")
	ErrNegativePrice    = errors.New("booking price must not be negative")
	ErrMissingReference = errors.New("guest id and booking id are required")
)

// ReservationBuilder giúp tạo reservation theo từng bước.
// Ngày check-out và tổng tiền luôn được tính lại trong Build.
type ReservationBuilder struct {
	reservation models.Reservation
	price       decimal.Decimal
}

// NewReservationBuilder tạo builder cho reservation mới, trạng thái ban đầu là NOT_CHECKED_IN
func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		reservation: models.Reservation{Status: models.ReservationStatusNotCheckedIn},
	}
}

// FromReservation bắt đầu từ một reservation có sẵn, dùng khi sửa
func FromReservation(r models.Reservation) *ReservationBuilder {
	b := &ReservationBuilder{reservation: r}
	if r.StayDays > 0 {
		b.price = r.TotalPrice.Div(decimal.NewFromInt(int64(r.StayDays)))
	}
	return b
}

func (b *ReservationBuilder) WithID(id string) *ReservationBuilder {
	b.reservation.ID = id
	return b
}

func (b *ReservationBuilder) ForGuest(guestID string) *ReservationBuilder {
	b.reservation.GuestID = guestID
	return b
}

// WithBooking gắn booking và giá một đêm của booking đó
func (b *ReservationBuilder) WithBooking(bookingID string, price decimal.Decimal) *ReservationBuilder {
	b.reservation.BookingID = bookingID
	b.price = price
	return b
}

func (b *ReservationBuilder) WithStay(checkIn models.Date, stayDays int) *ReservationBuilder {
	b.reservation.CheckInDate = checkIn
	b.reservation.StayDays = stayDays
	return b
}

func (b *ReservationBuilder) WithMemo(memo string) *ReservationBuilder {
	b.reservation.Memo = memo
	return b
}

func (b *ReservationBuilder) WithOperator(operator string) *ReservationBuilder {
	b.reservation.OperatorID = operator
	return b
}

func (b *ReservationBuilder) CreatedAt(t time.Time) *ReservationBuilder {
	b.reservation.CreatedAt = t
	return b
}

// Build tạo reservation hoàn chỉnh: check-out = check-in + số đêm, tổng tiền = giá × số đêm
func (b *ReservationBuilder) Build() (*models.Reservation, error) {
	r := b.reservation
	if r.GuestID == "" || r.BookingID == "" {
		return nil, ErrMissingReference
	}
	if r.CheckInDate.IsZero() {
		return nil, ErrMissingCheckIn
	}
	if r.StayDays < 1 {
		return nil, ErrInvalidStayDays
	}
	if b.price.IsNegative() {
		return nil, ErrNegativePrice
	}

	r.CheckOutDate = r.CheckInDate.AddDays(r.StayDays)
	r.TotalPrice = b.price.Mul(decimal.NewFromInt(int64(r.StayDays)))
	return &r, nil
}
