package services

import (
	"context"
	"errors"
	"time"
	_ "time/tzdata"

	"hotel-management/builders"
	"hotel-management/dto"
	apperrors "hotel-management/errors"
	"hotel-management/metrics"
	"hotel-management/models"
	"hotel-management/repository"
	"hotel-management/services/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const DefaultTimezone = "Asia/Tokyo"

var tracer = otel.Tracer("hotel-management/services")

// HotelStore là các thao tác lưu trữ mà HotelService cần. Mọi phương thức nhận operator đều lọc theo operator đó.
type HotelStore interface {
	GuestFinder

	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error

	FindAllGuests(ctx context.Context, operator string) ([]models.Guest, error)
	FindGuestsByIDs(ctx context.Context, operator string, ids []string) ([]models.Guest, error)
	FindGuestByID(ctx context.Context, operator, id string) (*models.Guest, error)
	SearchGuests(ctx context.Context, operator string, cond dto.GuestSearchCondition) ([]models.Guest, error)
	InsertGuest(ctx context.Context, g *models.Guest) error
	UpdateGuest(ctx context.Context, operator string, g *models.Guest) (int64, error)
	LogicalDeleteGuest(ctx context.Context, operator, id string) (int64, error)

	FindAllBookings(ctx context.Context, operator string) ([]models.Booking, error)
	FindBookingPrice(ctx context.Context, operator, bookingID string) (decimal.Decimal, error)
	InsertBooking(ctx context.Context, b *models.Booking) error

	FindAllReservations(ctx context.Context, operator string) ([]models.Reservation, error)
	FindReservationsByGuestIDs(ctx context.Context, operator string, guestIDs []string) ([]models.Reservation, error)
	FindReservationsByCheckInDate(ctx context.Context, operator string, day models.Date) ([]models.Reservation, error)
	FindReservationsByCheckOutDate(ctx context.Context, operator string, day models.Date) ([]models.Reservation, error)
	FindReservationsByStatus(ctx context.Context, operator string, status models.ReservationStatus) ([]models.Reservation, error)
	FindReservationByID(ctx context.Context, operator, id string) (*models.Reservation, error)
	FindReservationStatus(ctx context.Context, operator, id string) (models.ReservationStatus, error)
	InsertReservation(ctx context.Context, r *models.Reservation) error
	UpdateReservation(ctx context.Context, operator string, r *models.Reservation) (int64, error)
	UpdateStatus(ctx context.Context, operator, id string, from, to models.ReservationStatus) (int64, error)
}

type HotelService struct {
	store    HotelStore
	matcher  *GuestMatcher
	logger   logger.Logger
	location *time.Location
	now      func() time.Time
	newID    func() string
}

type HotelServiceOptions struct {
	Store    HotelStore
	Logger   logger.Logger
	Location *time.Location
	Now      func() time.Time
	NewID    func() string
}

func NewHotelService(opts HotelServiceOptions) *HotelService {
	s := &HotelService{
		store:    opts.Store,
		logger:   opts.Logger,
		location: opts.Location,
		now:      opts.Now,
		newID:    opts.NewID,
	}
	if s.logger == nil {
		s.logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	if s.location == nil {
		loc, err := time.LoadLocation(DefaultTimezone)
		if err != nil {
			loc = time.UTC
		}
		s.location = loc
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	s.matcher = NewGuestMatcher(opts.Store, s.logger)
	return s
}

// Today là ngày hiện tại theo múi giờ của khách sạn
func (s *HotelService) Today() models.Date {
	return models.DateOf(s.now().In(s.location))
}

// storeError đổi lỗi của repository sang AppError
func storeError(err error, notFound apperrors.ErrorCode, message string) error {
	switch {
	case err == nil:
		return nil
	case apperrors.IsAppError(err):
		return err
	case errors.Is(err, repository.ErrNotFound):
		return apperrors.NewNotFoundError(notFound, message)
	case errors.Is(err, repository.ErrDuplicateKey):
		return apperrors.NewAppError(apperrors.ErrCodeDBDuplicate, "record already exists", err)
	default:
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "database error", err)
	}
}

// ---- reads ----

func (s *HotelService) GetAllGuests(ctx context.Context, operator string) ([]models.GuestDetail, error) {
	guests, err := s.store.FindAllGuests(ctx, operator)
	if err != nil {
		return nil, storeError(err, apperrors.ErrCodeNotFound, "")
	}
	bookings, err := s.store.FindAllBookings(ctx, operator)
	if err != nil {
		return nil, storeError(err, apperrors.ErrCodeNotFound, "")
	}
	reservations, err := s.store.FindAllReservations(ctx, operator)
	if err != nil {
		return nil, storeError(err, apperrors.ErrCodeNotFound, "")
	}
	return AssembleGuestDetails(guests, bookings, reservations), nil
}

func (s *HotelService) GetAllBookings(ctx context.Context, operator string) ([]models.Booking, error) {
	bookings, err := s.store.FindAllBookings(ctx, operator)
	if err != nil {
		return nil, storeError(err, apperrors.ErrCodeNotFound, "")
	}
	return bookings, nil
}

func (s *HotelService) GetCheckInToday(ctx context.Context, operator string) ([]models.GuestDetail, error) {
	reservations, err := s.store.FindReservationsByCheckInDate(ctx, operator, s.Today())
	if err != nil {
		return nil, storeError(err, apperrors.ErrCodeNotFound, "")
	}
	return s.detailsForReservations(ctx, operator, reservations)
}

func (s *HotelService) GetCheckOutToday(ctx context.Context, operator string) ([]models.GuestDetail, error) {
	reservations, err := s.store.FindReservationsByCheckOutDate(ctx, operator, s.Today())
	if err != nil {
		return nil, storeError(err, apperrors.ErrCodeNotFound, "")
	}
	return s.detailsForReservations(ctx, operator, reservations)
}

// GetStaying trả về các khách đang lưu trú (reservation ở trạng thái CHECKED_IN)
func (s *HotelService) GetStaying(ctx context.Context, operator string) ([]models.GuestDetail, error) {
	reservations, err := s.store.FindReservationsByStatus(ctx, operator, models.ReservationStatusCheckedIn)
	if err != nil {
		return nil, storeError(err, apperrors.ErrCodeNotFound, "")
	}
	return s.detailsForReservations(ctx, operator, reservations)
}

// detailsForReservations dựng detail chỉ với các reservation đã chọn, không kèm reservation khác của khách
func (s *HotelService) detailsForReservations(ctx context.Context, operator string, reservations []models.Reservation) ([]models.GuestDetail, error) {
	if len(reservations) == 0 {
		return []models.GuestDetail{}, nil
	}
	seen := make(map[string]struct{}, len(reservations))
	guestIDs := make([]string, 0, len(reservations))
	for _, r := range reservations {
		if _, ok := seen[r.GuestID]; ok {
			continue
		}
		seen[r.GuestID] = struct{}{}
		guestIDs = append(guestIDs, r.GuestID)
	}

	guests, err := s.store.FindGuestsByIDs(ctx, operator, guestIDs)
	if err != nil {
		return nil, storeError(err, apperrors.ErrCodeNotFound, "")
	}
	bookings, err := s.store.FindAllBookings(ctx, operator)
	if err != nil {
		return nil, storeError(err, apperrors.ErrCodeNotFound, "")
	}
	return AssembleGuestDetails(guests, bookings, reservations), nil
}

func (s *HotelService) SearchGuests(ctx context.Context, operator string, cond dto.GuestSearchCondition) ([]models.GuestDetail, error) {
	guests, err := s.store.SearchGuests(ctx, operator, cond)
	if err != nil {
		return nil, storeError(err, apperrors.ErrCodeNotFound, "")
	}
	details, err := s.detailsForGuests(ctx, operator, guests)
	if err != nil {
		return nil, err
	}
	return RankGuestDetails(details, cond), nil
}

func (s *HotelService) GetGuestDetail(ctx context.Context, operator, guestID string) (*models.GuestDetail, error) {
	guest, err := s.store.FindGuestByID(ctx, operator, guestID)
	if err != nil {
		return nil, storeError(err, apperrors.ErrCodeGuestNotFound, "guest not found")
	}
	details, err := s.detailsForGuests(ctx, operator, []models.Guest{*guest})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *HotelService) detailsForGuests(ctx context.Context, operator string, guests []models.Guest) ([]models.GuestDetail, error) {
	ids := make([]string, len(guests))
	for i, g := range guests {
		ids[i] = g.ID
	}
	reservations, err := s.store.FindReservationsByGuestIDs(ctx, operator, ids)
	if err != nil {
		return nil, storeError(err, apperrors.ErrCodeNotFound, "")
	}
	bookings, err := s.store.FindAllBookings(ctx, operator)
	if err != nil {
		return nil, storeError(err, apperrors.ErrCodeNotFound, "")
	}
	return AssembleGuestDetails(guests, bookings, reservations), nil
}

func (s *HotelService) GetReservation(ctx context.Context, operator, reservationID string) (*models.Reservation, error) {
	r, err := s.store.FindReservationByID(ctx, operator, reservationID)
	if err != nil {
		return nil, storeError(err, apperrors.ErrCodeReservationNotFound, "reservation not found")
	}
	return r, nil
}

// MatchGuest trả về khách đã lưu nếu trùng khớp tuyệt đối, ngược lại trả về guest tạm chưa có id
func (s *HotelService) MatchGuest(ctx context.Context, operator string, criteria dto.GuestMatchRequest) (*dto.GuestRegistration, error) {
	guest, err := s.matcher.Match(ctx, operator, criteria)
	if err != nil {
		return nil, storeError(err, apperrors.ErrCodeNotFound, "")
	}
	if guest == nil {
		transient := criteria.ToGuest()
		guest = &transient
	}
	return &dto.GuestRegistration{Guest: *guest}, nil
}

// ---- writes ----

// RegisterGuest tạo guest (nếu chưa có id) và luôn tạo một reservation, trong cùng một transaction
func (s *HotelService) RegisterGuest(ctx context.Context, operator string, reg dto.GuestRegistration) (*dto.RegisterGuestResult, error) {
	ctx, span := tracer.Start(ctx, "HotelService.RegisterGuest")
	defer span.End()

	var result dto.RegisterGuestResult
	newGuest := reg.Guest.ID == ""

	err := s.store.RunInTx(ctx, func(ctx context.Context) error {
		price, err := s.store.FindBookingPrice(ctx, operator, reg.BookingID)
		if err != nil {
			return storeError(err, apperrors.ErrCodeBookingNotFound, "booking plan not found")
		}

		guest := reg.Guest
		if newGuest {
			guest.ID = s.newID()
			guest.OperatorID = operator
			guest.Deleted = false
			guest.CreatedAt = s.now()
			if err := s.store.InsertGuest(ctx, &guest); err != nil {
				return storeError(err, apperrors.ErrCodeNotFound, "")
			}
		} else if _, err := s.store.FindGuestByID(ctx, operator, guest.ID); err != nil {
			return storeError(err, apperrors.ErrCodeGuestNotFound, "guest not found")
		}

		reservation, err := builders.NewReservationBuilder().
			WithID(s.newID()).
			ForGuest(guest.ID).
			WithBooking(reg.BookingID, price).
			WithStay(reg.CheckInDate, reg.StayDays).
			WithMemo(reg.Memo).
			WithOperator(operator).
			CreatedAt(s.now()).
			Build()
		if err != nil {
			return apperrors.NewAppError(apperrors.ErrCodeValidation, err.Error(), err)
		}
		if err := s.store.InsertReservation(ctx, reservation); err != nil {
			return storeError(err, apperrors.ErrCodeNotFound, "")
		}

		result = dto.RegisterGuestResult{GuestID: guest.ID, Reservation: *reservation}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	metrics.ObserveRegistration(newGuest)
	span.SetAttributes(
		attribute.String("reservation.id", result.Reservation.ID),
		attribute.Bool("guest.new", newGuest),
	)
	s.logger.WithFields(logger.Fields{
		"operator":      operator,
		"guestId":       result.GuestID,
		"reservationId": result.Reservation.ID,
		"newGuest":      newGuest,
	}).Info("✅ guest registered")
	return &result, nil
}

func (s *HotelService) RegisterBooking(ctx context.Context, operator string, booking models.Booking) (*models.Booking, error) {
	booking.ID = s.newID()
	booking.OperatorID = operator
	if err := s.store.InsertBooking(ctx, &booking); err != nil {
		return nil, storeError(err, apperrors.ErrCodeNotFound, "")
	}
	s.logger.Info("✅ booking %s registered for operator %s", booking.ID, operator)
	return &booking, nil
}

func (s *HotelService) UpdateGuest(ctx context.Context, operator string, guest models.Guest) error {
	n, err := s.store.UpdateGuest(ctx, operator, &guest)
	if err != nil {
		return storeError(err, apperrors.ErrCodeGuestNotFound, "guest not found")
	}
	if n == 0 {
		return apperrors.NewNotFoundError(apperrors.ErrCodeGuestNotFound, "guest not found")
	}
	return nil
}

// UpdateReservation sửa booking, ngày check-in, số đêm và ghi chú; check-out và tổng tiền được tính lại
// theo giá hiện tại của booking. Reservation đã check-out thì không sửa được.
func (s *HotelService) UpdateReservation(ctx context.Context, operator string, reservation models.Reservation) error {
	return s.store.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.store.FindReservationByID(ctx, operator, reservation.ID)
		if err != nil {
			return storeError(err, apperrors.ErrCodeReservationNotFound, "reservation not found")
		}
		if current.Status == models.ReservationStatusCheckedOut {
			return apperrors.NewInvalidStateError(models.ErrReservationClosed)
		}

		price, err := s.store.FindBookingPrice(ctx, operator, reservation.BookingID)
		if err != nil {
			return storeError(err, apperrors.ErrCodeBookingNotFound, "booking plan not found")
		}

		updated, err := builders.FromReservation(*current).
			WithBooking(reservation.BookingID, price).
			WithStay(reservation.CheckInDate, reservation.StayDays).
			WithMemo(reservation.Memo).
			Build()
		if err != nil {
			return apperrors.NewAppError(apperrors.ErrCodeValidation, err.Error(), err)
		}

		n, err := s.store.UpdateReservation(ctx, operator, updated)
		if err != nil {
			return storeError(err, apperrors.ErrCodeReservationNotFound, "reservation not found")
		}
		if n == 0 {
			// đã bị check-out bởi một request khác giữa lúc đọc và lúc ghi
			return apperrors.NewInvalidStateError(models.ErrReservationClosed)
		}
		return nil
	})
}

// LogicalDeleteGuest bật cờ deleted; gọi lại trên guest đã xóa vẫn thành công
func (s *HotelService) LogicalDeleteGuest(ctx context.Context, operator, guestID string) error {
	n, err := s.store.LogicalDeleteGuest(ctx, operator, guestID)
	if err != nil {
		return storeError(err, apperrors.ErrCodeGuestNotFound, "guest not found")
	}
	if n == 0 {
		return apperrors.NewNotFoundError(apperrors.ErrCodeGuestNotFound, "guest not found")
	}
	s.logger.Info("guest %s marked as deleted by %s", guestID, operator)
	return nil
}

func (s *HotelService) CheckIn(ctx context.Context, operator, reservationID string) error {
	return s.transition(ctx, operator, reservationID, models.ActionCheckIn)
}

func (s *HotelService) CheckOut(ctx context.Context, operator, reservationID string) error {
	return s.transition(ctx, operator, reservationID, models.ActionCheckOut)
}

// transition chạy một câu UPDATE có điều kiện theo trạng thái nguồn. Nếu không dòng nào bị ảnh hưởng thì
// đọc lại trạng thái để phân biệt không tìm thấy với sai trạng thái.
func (s *HotelService) transition(ctx context.Context, operator, reservationID string, action models.ReservationAction) (err error) {
	ctx, span := tracer.Start(ctx, "HotelService."+string(action),
		trace.WithAttributes(attribute.String("reservation.id", reservationID)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	from, to, err := models.TransitionFor(action)
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidState, err.Error(), err)
	}

	n, err := s.store.UpdateStatus(ctx, operator, reservationID, from, to)
	if err != nil {
		metrics.ObserveTransition(string(action), "error")
		return storeError(err, apperrors.ErrCodeReservationNotFound, "reservation not found")
	}
	if n > 0 {
		metrics.ObserveTransition(string(action), "ok")
		s.logger.WithFields(logger.Fields{
			"operator":      operator,
			"reservationId": reservationID,
			"from":          from,
			"to":            to,
		}).Info("✅ reservation status changed")
		return nil
	}

	current, err := s.store.FindReservationStatus(ctx, operator, reservationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			metrics.ObserveTransition(string(action), "not_found")
		} else {
			metrics.ObserveTransition(string(action), "error")
		}
		return storeError(err, apperrors.ErrCodeReservationNotFound, "reservation not found")
	}

	_, stateErr := models.Apply(models.GetReservationState(current), action)
	if stateErr == nil {
		stateErr = defaultTransitionError(action)
	}
	metrics.ObserveTransition(string(action), "invalid_state")
	s.logger.WithFields(logger.Fields{
		"operator":      operator,
		"reservationId": reservationID,
		"status":        current,
	}).Warn("rejected %s: %v", action, stateErr)
	return apperrors.NewInvalidStateError(stateErr)
}

func defaultTransitionError(action models.ReservationAction) error {
	if action == models.ActionCheckOut {
		return models.ErrCheckOutNotAllowed
	}
	return models.ErrCheckInNotAllowed
}
