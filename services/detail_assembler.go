package services

import "hotel-management/models"

// AssembleGuestDetails ghép guest, booking và reservation thành GuestDetail.
// Mỗi guest đầu vào cho đúng một detail, giữ nguyên thứ tự của các slice đầu vào.
// Hàm thuần: không I/O, không sửa đầu vào.
func AssembleGuestDetails(guests []models.Guest, bookings []models.Booking, reservations []models.Reservation) []models.GuestDetail {
	byGuest := make(map[string][]models.Reservation, len(guests))
	for _, r := range reservations {
		byGuest[r.GuestID] = append(byGuest[r.GuestID], r)
	}

	details := make([]models.GuestDetail, 0, len(guests))
	for _, g := range guests {
		own := byGuest[g.ID]

		referenced := make(map[string]struct{}, len(own))
		for _, r := range own {
			referenced[r.BookingID] = struct{}{}
		}

		ownBookings := make([]models.Booking, 0, len(referenced))
		for _, b := range bookings {
			if _, ok := referenced[b.ID]; ok {
				ownBookings = append(ownBookings, b)
				// một booking xuất hiện hai lần trong đầu vào vẫn chỉ được lấy một lần
				delete(referenced, b.ID)
			}
		}

		ownReservations := make([]models.Reservation, len(own))
		copy(ownReservations, own)

		details = append(details, models.GuestDetail{
			Guest:        g,
			Reservations: ownReservations,
			Bookings:     ownBookings,
		})
	}
	return details
}
