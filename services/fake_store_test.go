package services

import (
	"context"
	"strings"
	"sync"

	"hotel-management/dto"
	"hotel-management/models"
	"hotel-management/repository"

	"github.com/shopspring/decimal"
)

// memStore là HotelStore trong bộ nhớ, lọc theo operator giống repository thật
type memStore struct {
	mu           sync.Mutex
	guests       []models.Guest
	bookings     []models.Booking
	reservations []models.Reservation
	users        map[string]models.User

	guestInserts       int
	reservationInserts int
	failWith           error
}

func newMemStore() *memStore {
	return &memStore{users: map[string]models.User{}}
}

func (m *memStore) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	guests := append([]models.Guest(nil), m.guests...)
	reservations := append([]models.Reservation(nil), m.reservations...)
	bookings := append([]models.Booking(nil), m.bookings...)
	gi, ri := m.guestInserts, m.reservationInserts
	m.mu.Unlock()

	if err := fn(ctx); err != nil {
		m.mu.Lock()
		m.guests, m.reservations, m.bookings = guests, reservations, bookings
		m.guestInserts, m.reservationInserts = gi, ri
		m.mu.Unlock()
		return err
	}
	return nil
}

func (m *memStore) MatchGuests(_ context.Context, operator, name, kanaName, phone string) ([]models.Guest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Guest{}
	for _, g := range m.guests {
		if g.OperatorID == operator && !g.Deleted && g.Name == name && g.KanaName == kanaName && g.Phone == phone {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *memStore) FindAllGuests(_ context.Context, operator string) ([]models.Guest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := []models.Guest{}
	for _, g := range m.guests {
		if g.OperatorID == operator && !g.Deleted {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *memStore) FindGuestsByIDs(_ context.Context, operator string, ids []string) ([]models.Guest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	want := map[string]bool{}
	for _, id := range ids {
		want[id] = true
	}
	out := []models.Guest{}
	for _, g := range m.guests {
		if g.OperatorID == operator && !g.Deleted && want[g.ID] {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *memStore) FindGuestByID(_ context.Context, operator, id string) (*models.Guest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, g := range m.guests {
		if g.ID == id && g.OperatorID == operator && !g.Deleted {
			found := g
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memStore) SearchGuests(_ context.Context, operator string, cond dto.GuestSearchCondition) ([]models.Guest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	contains := func(field, q string) bool {
		return q == "" || strings.Contains(strings.ToLower(field), strings.ToLower(q))
	}
	out := []models.Guest{}
	for _, g := range m.guests {
		if g.OperatorID != operator || g.Deleted {
			continue
		}
		if contains(g.Name, cond.Name) && contains(g.KanaName, cond.KanaName) && contains(g.Phone, cond.Phone) {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *memStore) InsertGuest(_ context.Context, g *models.Guest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.guests {
		if existing.ID == g.ID {
			return repository.ErrDuplicateKey
		}
	}
	m.guests = append(m.guests, *g)
	m.guestInserts++
	return nil
}

func (m *memStore) UpdateGuest(_ context.Context, operator string, g *models.Guest) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.guests {
		if existing.ID == g.ID && existing.OperatorID == operator && !existing.Deleted {
			updated := *g
			updated.OperatorID = existing.OperatorID
			updated.CreatedAt = existing.CreatedAt
			m.guests[i] = updated
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) LogicalDeleteGuest(_ context.Context, operator, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, g := range m.guests {
		if g.ID == id && g.OperatorID == operator {
			m.guests[i].Deleted = true
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) FindAllBookings(_ context.Context, operator string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Booking{}
	for _, b := range m.bookings {
		if b.OperatorID == operator {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memStore) FindBookingPrice(_ context.Context, operator, bookingID string) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.ID == bookingID && b.OperatorID == operator {
			return b.Price, nil
		}
	}
	return decimal.Zero, repository.ErrNotFound
}

func (m *memStore) InsertBooking(_ context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings = append(m.bookings, *b)
	return nil
}

func (m *memStore) filterReservations(keep func(models.Reservation) bool) []models.Reservation {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Reservation{}
	for _, r := range m.reservations {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func (m *memStore) FindAllReservations(_ context.Context, operator string) ([]models.Reservation, error) {
	return m.filterReservations(func(r models.Reservation) bool { return r.OperatorID == operator }), nil
}

func (m *memStore) FindReservationsByGuestIDs(_ context.Context, operator string, guestIDs []string) ([]models.Reservation, error) {
	want := map[string]bool{}
	for _, id := range guestIDs {
		want[id] = true
	}
	return m.filterReservations(func(r models.Reservation) bool { return r.OperatorID == operator && want[r.GuestID] }), nil
}

func (m *memStore) FindReservationsByCheckInDate(_ context.Context, operator string, day models.Date) ([]models.Reservation, error) {
	return m.filterReservations(func(r models.Reservation) bool { return r.OperatorID == operator && r.CheckInDate.Equal(day) }), nil
}

func (m *memStore) FindReservationsByCheckOutDate(_ context.Context, operator string, day models.Date) ([]models.Reservation, error) {
	return m.filterReservations(func(r models.Reservation) bool { return r.OperatorID == operator && r.CheckOutDate.Equal(day) }), nil
}

func (m *memStore) FindReservationsByStatus(_ context.Context, operator string, status models.ReservationStatus) ([]models.Reservation, error) {
	return m.filterReservations(func(r models.Reservation) bool { return r.OperatorID == operator && r.Status == status }), nil
}

func (m *memStore) FindReservationByID(_ context.Context, operator, id string) (*models.Reservation, error) {
	found := m.filterReservations(func(r models.Reservation) bool { return r.OperatorID == operator && r.ID == id })
	if len(found) == 0 {
		return nil, repository.ErrNotFound
	}
	return &found[0], nil
}

func (m *memStore) FindReservationStatus(ctx context.Context, operator, id string) (models.ReservationStatus, error) {
	r, err := m.FindReservationByID(ctx, operator, id)
	if err != nil {
		return "", err
	}
	return r.Status, nil
}

func (m *memStore) InsertReservation(_ context.Context, r *models.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reservations = append(m.reservations, *r)
	m.reservationInserts++
	return nil
}

func (m *memStore) UpdateReservation(_ context.Context, operator string, r *models.Reservation) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.reservations {
		if existing.ID == r.ID && existing.OperatorID == operator && existing.Status != models.ReservationStatusCheckedOut {
			updated := existing
			updated.BookingID = r.BookingID
			updated.CheckInDate = r.CheckInDate
			updated.StayDays = r.StayDays
			updated.CheckOutDate = r.CheckOutDate
			updated.TotalPrice = r.TotalPrice
			updated.Memo = r.Memo
			m.reservations[i] = updated
			return 1, nil
		}
	}
	return 0, nil
}

// UpdateStatus giữ khóa trong suốt thao tác so sánh và ghi, giống một câu UPDATE có điều kiện
func (m *memStore) UpdateStatus(_ context.Context, operator, id string, from, to models.ReservationStatus) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.reservations {
		if r.ID == id && r.OperatorID == operator && r.Status == from {
			m.reservations[i].Status = to
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) FindUserByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (m *memStore) InsertUser(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.ID]; ok {
		return repository.ErrDuplicateKey
	}
	m.users[u.ID] = *u
	return nil
}
