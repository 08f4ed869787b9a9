package repository

import (
	"database/sql"

	"hotel-management/models"
)

// rowScanner là phần chung của *sql.Row và *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

const (
	guestColumns       = "id, name, kana_name, gender, age, region, email, phone, deleted, operator_id, created_at"
	bookingColumns     = "id, name, description, price, operator_id"
	reservationColumns = "id, guest_id, booking_id, check_in_date, stay_days, check_out_date, total_price, status, memo, created_at, operator_id"
	userColumns        = "id, password_hash, created_at"
)

func scanGuest(row rowScanner) (models.Guest, error) {
	var g models.Guest
	err := row.Scan(
		&g.ID,
		&g.Name,
		&g.KanaName,
		&g.Gender,
		&g.Age,
		&g.Region,
		&g.Email,
		&g.Phone,
		&g.Deleted,
		&g.OperatorID,
		&g.CreatedAt,
	)
	return g, err
}

func scanBooking(row rowScanner) (models.Booking, error) {
	var b models.Booking
	var description sql.NullString
	if err := row.Scan(&b.ID, &b.Name, &description, &b.Price, &b.OperatorID); err != nil {
		return models.Booking{}, err
	}
	b.Description = description.String
	return b, nil
}

func scanReservation(row rowScanner) (models.Reservation, error) {
	var r models.Reservation
	var status string
	var memo sql.NullString
	err := row.Scan(
		&r.ID,
		&r.GuestID,
		&r.BookingID,
		&r.CheckInDate,
		&r.StayDays,
		&r.CheckOutDate,
		&r.TotalPrice,
		&status,
		&memo,
		&r.CreatedAt,
		&r.OperatorID,
	)
	if err != nil {
		return models.Reservation{}, err
	}
	r.Status = models.ReservationStatus(status)
	r.Memo = memo.String
	return r, nil
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

// scanAll đọc hết rows bằng hàm map tương ứng và luôn đóng rows
func scanAll[T any](rows *sql.Rows, scan func(rowScanner) (T, error)) ([]T, error) {
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
