package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"hotel-management/dto"
	"hotel-management/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type txKey struct{}

// HotelRepository chạy SQL có tham số qua gorm. Mọi truy vấn guest/booking/reservation
// đều lọc theo operator_id, mọi lệnh insert đều ghi operator_id.
type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

// conn trả về transaction đang mở trong ctx nếu có
func (r *HotelRepository) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return r.db.WithContext(ctx)
}

// RunInTx chạy fn trong một transaction; các lời gọi repository dùng ctx được truyền vào fn
// sẽ đi qua cùng transaction đó
func (r *HotelRepository) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func (r *HotelRepository) queryGuests(ctx context.Context, query string, args ...interface{}) ([]models.Guest, error) {
	rows, err := r.conn(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, translateError(err)
	}
	return scanAll(rows, scanGuest)
}

func (r *HotelRepository) queryBookings(ctx context.Context, query string, args ...interface{}) ([]models.Booking, error) {
	rows, err := r.conn(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, translateError(err)
	}
	return scanAll(rows, scanBooking)
}

func (r *HotelRepository) queryReservations(ctx context.Context, query string, args ...interface{}) ([]models.Reservation, error) {
	rows, err := r.conn(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, translateError(err)
	}
	return scanAll(rows, scanReservation)
}

func (r *HotelRepository) exec(ctx context.Context, query string, args ...interface{}) (int64, error) {
	result := r.conn(ctx).Exec(query, args...)
	if result.Error != nil {
		return 0, translateError(result.Error)
	}
	return result.RowsAffected, nil
}

func noRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return translateError(err)
}

// ---- guests ----

func (r *HotelRepository) FindAllGuests(ctx context.Context, operator string) ([]models.Guest, error) {
	return r.queryGuests(ctx,
		"SELECT "+guestColumns+" FROM guests WHERE operator_id = ? AND deleted = false ORDER BY created_at, id",
		operator)
}

func (r *HotelRepository) FindGuestsByIDs(ctx context.Context, operator string, ids []string) ([]models.Guest, error) {
	if len(ids) == 0 {
		return []models.Guest{}, nil
	}
	return r.queryGuests(ctx,
		"SELECT "+guestColumns+" FROM guests WHERE operator_id = ? AND deleted = false AND id IN ? ORDER BY created_at, id",
		operator, ids)
}

func (r *HotelRepository) FindGuestByID(ctx context.Context, operator, id string) (*models.Guest, error) {
	row := r.conn(ctx).Raw(
		"SELECT "+guestColumns+" FROM guests WHERE id = ? AND operator_id = ? AND deleted = false",
		id, operator).Row()
	g, err := scanGuest(row)
	if err != nil {
		return nil, noRows(err)
	}
	return &g, nil
}

// MatchGuests so khớp tuyệt đối cả ba trường, cũ nhất đứng đầu
func (r *HotelRepository) MatchGuests(ctx context.Context, operator, name, kanaName, phone string) ([]models.Guest, error) {
	return r.queryGuests(ctx,
		"SELECT "+guestColumns+" FROM guests WHERE name = ? AND kana_name = ? AND phone = ? AND operator_id = ? AND deleted = false ORDER BY created_at, id",
		name, kanaName, phone, operator)
}

// SearchGuests tìm gần đúng (ILIKE) theo tên, kana, điện thoại và lọc theo ngày check-in/check-out
func (r *HotelRepository) SearchGuests(ctx context.Context, operator string, cond dto.GuestSearchCondition) ([]models.Guest, error) {
	where := []string{"g.operator_id = ?", "g.deleted = false"}
	args := []interface{}{operator}

	addLike := func(column, value string) {
		if value == "" {
			return
		}
		where = append(where, column+" ILIKE ?")
		args = append(args, "%"+escapeLike(value)+"%")
	}
	addLike("g.name", cond.Name)
	addLike("g.kana_name", cond.KanaName)
	addLike("g.phone", cond.Phone)

	if !cond.CheckInDate.IsZero() {
		where = append(where, "EXISTS (SELECT 1 FROM reservations r WHERE r.guest_id = g.id AND r.operator_id = g.operator_id AND r.check_in_date = ?)")
		args = append(args, cond.CheckInDate)
	}
	if !cond.CheckOutDate.IsZero() {
		where = append(where, "EXISTS (SELECT 1 FROM reservations r WHERE r.guest_id = g.id AND r.operator_id = g.operator_id AND r.check_out_date = ?)")
		args = append(args, cond.CheckOutDate)
	}

	query := "SELECT " + prefixColumns("g", guestColumns) + " FROM guests g WHERE " +
		strings.Join(where, " AND ") + " ORDER BY g.created_at, g.id"
	return r.queryGuests(ctx, query, args...)
}

func (r *HotelRepository) InsertGuest(ctx context.Context, g *models.Guest) error {
	_, err := r.exec(ctx,
		"INSERT INTO guests ("+guestColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		g.ID, g.Name, g.KanaName, g.Gender, g.Age, g.Region, g.Email, g.Phone, g.Deleted, g.OperatorID, g.CreatedAt)
	return err
}

func (r *HotelRepository) UpdateGuest(ctx context.Context, operator string, g *models.Guest) (int64, error) {
	return r.exec(ctx,
		"UPDATE guests SET name = ?, kana_name = ?, gender = ?, age = ?, region = ?, email = ?, phone = ? WHERE id = ? AND operator_id = ? AND deleted = false",
		g.Name, g.KanaName, g.Gender, g.Age, g.Region, g.Email, g.Phone, g.ID, operator)
}

// LogicalDeleteGuest chỉ bật cờ deleted, gọi lại nhiều lần vẫn cho cùng kết quả
func (r *HotelRepository) LogicalDeleteGuest(ctx context.Context, operator, id string) (int64, error) {
	return r.exec(ctx,
		"UPDATE guests SET deleted = true WHERE id = ? AND operator_id = ?",
		id, operator)
}

// ---- bookings ----

func (r *HotelRepository) FindAllBookings(ctx context.Context, operator string) ([]models.Booking, error) {
	return r.queryBookings(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE operator_id = ? ORDER BY name, id",
		operator)
}

func (r *HotelRepository) FindBookingPrice(ctx context.Context, operator, bookingID string) (decimal.Decimal, error) {
	var price decimal.Decimal
	row := r.conn(ctx).Raw("SELECT price FROM bookings WHERE id = ? AND operator_id = ?", bookingID, operator).Row()
	if err := row.Scan(&price); err != nil {
		return decimal.Zero, noRows(err)
	}
	return price, nil
}

func (r *HotelRepository) InsertBooking(ctx context.Context, b *models.Booking) error {
	_, err := r.exec(ctx,
		"INSERT INTO bookings ("+bookingColumns+") VALUES (?, ?, ?, ?, ?)",
		b.ID, b.Name, b.Description, b.Price, b.OperatorID)
	return err
}

// ---- reservations ----

func (r *HotelRepository) FindAllReservations(ctx context.Context, operator string) ([]models.Reservation, error) {
	return r.queryReservations(ctx,
		"SELECT "+reservationColumns+" FROM reservations WHERE operator_id = ? ORDER BY check_in_date, created_at, id",
		operator)
}

func (r *HotelRepository) FindReservationsByGuestIDs(ctx context.Context, operator string, guestIDs []string) ([]models.Reservation, error) {
	if len(guestIDs) == 0 {
		return []models.Reservation{}, nil
	}
	return r.queryReservations(ctx,
		"SELECT "+reservationColumns+" FROM reservations WHERE operator_id = ? AND guest_id IN ? ORDER BY check_in_date, created_at, id",
		operator, guestIDs)
}

func (r *HotelRepository) FindReservationsByCheckInDate(ctx context.Context, operator string, day models.Date) ([]models.Reservation, error) {
	return r.queryReservations(ctx,
		"SELECT "+reservationColumns+" FROM reservations WHERE operator_id = ? AND check_in_date = ? ORDER BY created_at, id",
		operator, day)
}

func (r *HotelRepository) FindReservationsByCheckOutDate(ctx context.Context, operator string, day models.Date) ([]models.Reservation, error) {
	return r.queryReservations(ctx,
		"SELECT "+reservationColumns+" FROM reservations WHERE operator_id = ? AND check_out_date = ? ORDER BY created_at, id",
		operator, day)
}

func (r *HotelRepository) FindReservationsByStatus(ctx context.Context, operator string, status models.ReservationStatus) ([]models.Reservation, error) {
	return r.queryReservations(ctx,
		"SELECT "+reservationColumns+" FROM reservations WHERE operator_id = ? AND status = ? ORDER BY check_in_date, created_at, id",
		operator, string(status))
}

func (r *HotelRepository) FindReservationByID(ctx context.Context, operator, id string) (*models.Reservation, error) {
	row := r.conn(ctx).Raw(
		"SELECT "+reservationColumns+" FROM reservations WHERE id = ? AND operator_id = ?",
		id, operator).Row()
	res, err := scanReservation(row)
	if err != nil {
		return nil, noRows(err)
	}
	return &res, nil
}

func (r *HotelRepository) FindReservationStatus(ctx context.Context, operator, id string) (models.ReservationStatus, error) {
	var status string
	row := r.conn(ctx).Raw("SELECT status FROM reservations WHERE id = ? AND operator_id = ?", id, operator).Row()
	if err := row.Scan(&status); err != nil {
		return "", noRows(err)
	}
	return models.ReservationStatus(status), nil
}

func (r *HotelRepository) InsertReservation(ctx context.Context, res *models.Reservation) error {
	_, err := r.exec(ctx,
		"INSERT INTO reservations ("+reservationColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		res.ID, res.GuestID, res.BookingID, res.CheckInDate, res.StayDays, res.CheckOutDate,
		res.TotalPrice, string(res.Status), res.Memo, res.CreatedAt, res.OperatorID)
	return err
}

// UpdateReservation sửa reservation chưa check-out; status không bị đụng tới
func (r *HotelRepository) UpdateReservation(ctx context.Context, operator string, res *models.Reservation) (int64, error) {
	return r.exec(ctx,
		"UPDATE reservations SET booking_id = ?, check_in_date = ?, stay_days = ?, check_out_date = ?, total_price = ?, memo = ? "+
			"WHERE id = ? AND operator_id = ? AND status <> ?",
		res.BookingID, res.CheckInDate, res.StayDays, res.CheckOutDate, res.TotalPrice, res.Memo,
		res.ID, operator, string(models.ReservationStatusCheckedOut))
}

// UpdateStatus chuyển trạng thái bằng một câu UPDATE có điều kiện, trả về số dòng bị ảnh hưởng (0 hoặc 1)
func (r *HotelRepository) UpdateStatus(ctx context.Context, operator, id string, from, to models.ReservationStatus) (int64, error) {
	return r.exec(ctx,
		"UPDATE reservations SET status = ? WHERE id = ? AND operator_id = ? AND status = ?",
		string(to), id, operator, string(from))
}

// ---- users ----

func (r *HotelRepository) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	row := r.conn(ctx).Raw("SELECT "+userColumns+" FROM users WHERE id = ?", id).Row()
	u, err := scanUser(row)
	if err != nil {
		return nil, noRows(err)
	}
	return &u, nil
}

func (r *HotelRepository) InsertUser(ctx context.Context, u *models.User) error {
	_, err := r.exec(ctx,
		"INSERT INTO users ("+userColumns+") VALUES (?, ?, ?)",
		u.ID, u.PasswordHash, u.CreatedAt)
	return err
}

// Ping dùng cho health check
func (r *HotelRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ", ")
	for i, p := range parts {
		parts[i] = alias + "." + p
	}
	return strings.Join(parts, ", ")
}
