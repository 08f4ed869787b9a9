package dto

import "hotel-management/models"

// GuestMatchRequest là ba trường dùng để tìm khách trùng khớp tuyệt đối
type GuestMatchRequest struct {
	Name     string `json:"name" binding:"required"`
	KanaName string `json:"kanaName" binding:"required"`
	Phone    string `json:"phone" binding:"required,phone"`
}

// ToGuest dựng một guest tạm (chưa có id) từ điều kiện tìm kiếm
func (r GuestMatchRequest) ToGuest() models.Guest {
	return models.Guest{
		Name:     r.Name,
		KanaName: r.KanaName,
		Phone:    r.Phone,
	}
}

// GuestRegistration là payload đăng ký lưu trú: khách (mới hoặc đã match) cùng thông tin đặt phòng
type GuestRegistration struct {
	Guest       models.Guest `json:"guest"`
	BookingID   string       `json:"bookingId" binding:"required,uuid"`
	CheckInDate models.Date  `json:"checkInDate" binding:"required,notpast"`
	StayDays    int          `json:"stayDays" binding:"required,gte=1"`
	Memo        string       `json:"memo"`
}

// GuestSearchCondition tìm kiếm gần đúng theo tên, kana, số điện thoại và lọc theo ngày
type GuestSearchCondition struct {
	Name         string      `json:"name"`
	KanaName     string      `json:"kanaName"`
	Phone        string      `json:"phone" binding:"omitempty,numeric,max=11"`
	CheckInDate  models.Date `json:"checkInDate"`
	CheckOutDate models.Date `json:"checkOutDate"`
}

// HasText cho biết điều kiện có trường chữ nào để xếp hạng kết quả không
func (c GuestSearchCondition) HasText() bool {
	return c.Name != "" || c.KanaName != "" || c.Phone != ""
}

// RegisterGuestResult trả về sau khi đăng ký thành công
type RegisterGuestResult struct {
	GuestID     string             `json:"guestId"`
	Reservation models.Reservation `json:"reservation"`
}
