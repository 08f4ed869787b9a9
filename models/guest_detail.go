package models

// GuestDetail gom một khách với các reservation của khách đó và các booking mà chúng tham chiếu.
// Chỉ được dựng khi đọc, không lưu xuống DB.
type GuestDetail struct {
	Guest        Guest         `json:"guest"`
	Reservations []Reservation `json:"reservations"`
	Bookings     []Booking     `json:"bookings"`
}
