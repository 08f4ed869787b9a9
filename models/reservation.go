package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReservationStatus string

// Reservation status constants
const (
	ReservationStatusNotCheckedIn ReservationStatus = "NOT_CHECKED_IN"
	ReservationStatusCheckedIn    ReservationStatus = "CHECKED_IN"
	ReservationStatusCheckedOut   ReservationStatus = "CHECKED_OUT"
)

// ReservationStatuses theo đúng thứ tự vòng đời
var ReservationStatuses = []ReservationStatus{
	ReservationStatusNotCheckedIn,
	ReservationStatusCheckedIn,
	ReservationStatusCheckedOut,
}

func (s ReservationStatus) Valid() bool {
	for _, status := range ReservationStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Reservation struct {
	ID           string            `json:"id" gorm:"primaryKey;type:varchar(36)" binding:"omitempty,uuid"`
	GuestID      string            `json:"guestId" gorm:"type:varchar(36);not null;index" binding:"omitempty,uuid"`
	BookingID    string            `json:"bookingId" gorm:"type:varchar(36);not null;index" binding:"required,uuid"`
	CheckInDate  Date              `json:"checkInDate" gorm:"not null;index" binding:"required"`
	StayDays     int               `json:"stayDays" gorm:"not null" binding:"required,gte=1"`
	CheckOutDate Date              `json:"checkOutDate" gorm:"not null;index"`
	TotalPrice   decimal.Decimal   `json:"totalPrice" gorm:"type:numeric(14,2);not null"`
	Status       ReservationStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	Memo         string            `json:"memo"`
	CreatedAt    time.Time         `json:"createdAt"`
	OperatorID   string            `json:"-" gorm:"type:varchar(64);not null;index"`
}
