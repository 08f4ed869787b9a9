package controllers

import (
	"context"
	"fmt"

	"hotel-management/dto"
	"hotel-management/middleware"
	"hotel-management/models"
	"hotel-management/response"
	"hotel-management/validator"

	"github.com/gin-gonic/gin"
)

// HotelAPI là các nghiệp vụ lễ tân mà controller gọi tới, mọi hàm nhận operator của request
type HotelAPI interface {
	GetAllGuests(ctx context.Context, operator string) ([]models.GuestDetail, error)
	GetAllBookings(ctx context.Context, operator string) ([]models.Booking, error)
	GetCheckInToday(ctx context.Context, operator string) ([]models.GuestDetail, error)
	GetStaying(ctx context.Context, operator string) ([]models.GuestDetail, error)
	GetCheckOutToday(ctx context.Context, operator string) ([]models.GuestDetail, error)
	GetGuestDetail(ctx context.Context, operator, guestID string) (*models.GuestDetail, error)
	GetReservation(ctx context.Context, operator, reservationID string) (*models.Reservation, error)
	SearchGuests(ctx context.Context, operator string, cond dto.GuestSearchCondition) ([]models.GuestDetail, error)
	MatchGuest(ctx context.Context, operator string, criteria dto.GuestMatchRequest) (*dto.GuestRegistration, error)

	RegisterGuest(ctx context.Context, operator string, reg dto.GuestRegistration) (*dto.RegisterGuestResult, error)
	RegisterBooking(ctx context.Context, operator string, booking models.Booking) (*models.Booking, error)
	UpdateGuest(ctx context.Context, operator string, guest models.Guest) error
	UpdateReservation(ctx context.Context, operator string, reservation models.Reservation) error
	LogicalDeleteGuest(ctx context.Context, operator, guestID string) error
	CheckIn(ctx context.Context, operator, reservationID string) error
	CheckOut(ctx context.Context, operator, reservationID string) error
}

type HotelController struct {
	Hotel HotelAPI
}

func NewHotelController(hotel HotelAPI) HotelController {
	return HotelController{Hotel: hotel}
}

// bind đọc JSON body; lỗi được trả về dạng VALIDATION_ERROR
func bind(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		response.Error(c, validator.BindError(err))
		return false
	}
	return true
}

func requireQuery(c *gin.Context, key string) (string, bool) {
	value := c.Query(key)
	if value == "" {
		response.Error(c, validator.MissingField(key))
		return "", false
	}
	return value, true
}

func writeList[T any](c *gin.Context, list []T, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// GetAllGuests godoc
// @Summary  List all guests with their reservations and booking plans
// @Tags     guests
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} models.GuestDetail
// @Failure  401 {object} response.ErrorBody
// @Router   /guests [get]
func (h HotelController) GetAllGuests(c *gin.Context) {
	details, err := h.Hotel.GetAllGuests(c.Request.Context(), middleware.Operator(c))
	writeList(c, details, err)
}

// GetAllBookings godoc
// @Summary  List booking plans
// @Tags     bookings
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} models.Booking
// @Failure  401 {object} response.ErrorBody
// @Router   /bookings [get]
func (h HotelController) GetAllBookings(c *gin.Context) {
	bookings, err := h.Hotel.GetAllBookings(c.Request.Context(), middleware.Operator(c))
	writeList(c, bookings, err)
}

// GetCheckInToday godoc
// @Summary  Guests whose reservation starts today
// @Tags     guests
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} models.GuestDetail
// @Router   /guests/check-in-today [get]
func (h HotelController) GetCheckInToday(c *gin.Context) {
	details, err := h.Hotel.GetCheckInToday(c.Request.Context(), middleware.Operator(c))
	writeList(c, details, err)
}

// GetStaying godoc
// @Summary  Guests currently checked in
// @Tags     guests
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} models.GuestDetail
// @Router   /guests/stay [get]
func (h HotelController) GetStaying(c *gin.Context) {
	details, err := h.Hotel.GetStaying(c.Request.Context(), middleware.Operator(c))
	writeList(c, details, err)
}

// GetCheckOutToday godoc
// @Summary  Guests whose reservation ends today
// @Tags     guests
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} models.GuestDetail
// @Router   /guests/check-out-today [get]
func (h HotelController) GetCheckOutToday(c *gin.Context) {
	details, err := h.Hotel.GetCheckOutToday(c.Request.Context(), middleware.Operator(c))
	writeList(c, details, err)
}

// GetGuest godoc
// @Summary  Guest detail
// @Tags     guests
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "guest id"
// @Success  200 {object} models.GuestDetail
// @Failure  404 {object} response.ErrorBody
// @Router   /guest/{id} [get]
func (h HotelController) GetGuest(c *gin.Context) {
	detail, err := h.Hotel.GetGuestDetail(c.Request.Context(), middleware.Operator(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, detail)
}

// GetReservation godoc
// @Summary  Reservation by id
// @Tags     reservations
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "reservation id"
// @Success  200 {object} models.Reservation
// @Failure  404 {object} response.ErrorBody
// @Router   /reservation/{id} [get]
func (h HotelController) GetReservation(c *gin.Context) {
	reservation, err := h.Hotel.GetReservation(c.Request.Context(), middleware.Operator(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, reservation)
}

// SearchGuests godoc
// @Summary  Fuzzy search on name, kana and phone with optional date filters
// @Tags     guests
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    condition body dto.GuestSearchCondition true "search condition"
// @Success  200 {array} models.GuestDetail
// @Failure  422 {object} response.ErrorBody
// @Router   /guest/search [post]
func (h HotelController) SearchGuests(c *gin.Context) {
	var cond dto.GuestSearchCondition
	if !bind(c, &cond) {
		return
	}
	details, err := h.Hotel.SearchGuests(c.Request.Context(), middleware.Operator(c), cond)
	writeList(c, details, err)
}

// MatchGuest godoc
// @Summary  Exact match on name, kana and phone; returns a registration template
// @Tags     guests
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    criteria body dto.GuestMatchRequest true "match criteria"
// @Success  200 {object} dto.GuestRegistration
// @Failure  422 {object} response.ErrorBody
// @Router   /guest/match [post]
func (h HotelController) MatchGuest(c *gin.Context) {
	var criteria dto.GuestMatchRequest
	if !bind(c, &criteria) {
		return
	}
	registration, err := h.Hotel.MatchGuest(c.Request.Context(), middleware.Operator(c), criteria)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, registration)
}

// RegisterGuest godoc
// @Summary  Register a stay for a new or matched guest
// @Tags     guests
// @Accept   json
// @Produce  plain
// @Security BearerAuth
// @Param    registration body dto.GuestRegistration true "registration"
// @Success  200 {string} string
// @Failure  404 {object} response.ErrorBody
// @Failure  422 {object} response.ErrorBody
// @Router   /guest/register [put]
func (h HotelController) RegisterGuest(c *gin.Context) {
	var registration dto.GuestRegistration
	if !bind(c, &registration) {
		return
	}
	if _, err := h.Hotel.RegisterGuest(c.Request.Context(), middleware.Operator(c), registration); err != nil {
		response.Error(c, err)
		return
	}
	response.Text(c, "Guest registration completed.")
}

// RegisterBooking godoc
// @Summary  Create a booking plan
// @Tags     bookings
// @Accept   json
// @Produce  plain
// @Security BearerAuth
// @Param    booking body models.Booking true "booking plan"
// @Success  200 {string} string
// @Failure  422 {object} response.ErrorBody
// @Router   /booking/register [put]
func (h HotelController) RegisterBooking(c *gin.Context) {
	var booking models.Booking
	if !bind(c, &booking) {
		return
	}
	if _, err := h.Hotel.RegisterBooking(c.Request.Context(), middleware.Operator(c), booking); err != nil {
		response.Error(c, err)
		return
	}
	response.Text(c, "Booking plan registration completed.")
}

// UpdateGuest godoc
// @Summary  Update guest fields
// @Tags     guests
// @Accept   json
// @Produce  plain
// @Security BearerAuth
// @Param    guest body models.Guest true "guest"
// @Success  200 {string} string
// @Failure  404 {object} response.ErrorBody
// @Failure  422 {object} response.ErrorBody
// @Router   /guest/update [put]
func (h HotelController) UpdateGuest(c *gin.Context) {
	var guest models.Guest
	if !bind(c, &guest) {
		return
	}
	if guest.ID == "" {
		response.Error(c, validator.MissingField("id"))
		return
	}
	if err := h.Hotel.UpdateGuest(c.Request.Context(), middleware.Operator(c), guest); err != nil {
		response.Error(c, err)
		return
	}
	response.Text(c, "Guest update completed.")
}

// UpdateReservation godoc
// @Summary  Change plan, dates or memo of a reservation that is not checked out
// @Tags     reservations
// @Accept   json
// @Produce  plain
// @Security BearerAuth
// @Param    reservation body models.Reservation true "reservation"
// @Success  200 {string} string
// @Failure  404 {object} response.ErrorBody
// @Failure  409 {object} response.ErrorBody
// @Router   /reservation/update [put]
func (h HotelController) UpdateReservation(c *gin.Context) {
	var reservation models.Reservation
	if !bind(c, &reservation) {
		return
	}
	if reservation.ID == "" {
		response.Error(c, validator.MissingField("id"))
		return
	}
	if err := h.Hotel.UpdateReservation(c.Request.Context(), middleware.Operator(c), reservation); err != nil {
		response.Error(c, err)
		return
	}
	response.Text(c, "Reservation update completed.")
}

// DeleteGuest godoc
// @Summary  Soft-delete a guest
// @Tags     guests
// @Produce  plain
// @Security BearerAuth
// @Param    id   query string true  "guest id"
// @Param    name query string false "guest name used in the message"
// @Success  200 {string} string
// @Failure  404 {object} response.ErrorBody
// @Router   /guest/delete [put]
func (h HotelController) DeleteGuest(c *gin.Context) {
	id, ok := requireQuery(c, "id")
	if !ok {
		return
	}
	if err := h.Hotel.LogicalDeleteGuest(c.Request.Context(), middleware.Operator(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Text(c, fmt.Sprintf("Guest information for %s deleted.", c.Query("name")))
}

// CheckIn godoc
// @Summary  Check a reservation in
// @Tags     reservations
// @Produce  plain
// @Security BearerAuth
// @Param    id   query string true  "reservation id"
// @Param    name query string false "guest name used in the message"
// @Success  200 {string} string
// @Failure  404 {object} response.ErrorBody
// @Failure  409 {object} response.ErrorBody
// @Router   /guest/checkIn [put]
func (h HotelController) CheckIn(c *gin.Context) {
	id, ok := requireQuery(c, "id")
	if !ok {
		return
	}
	if err := h.Hotel.CheckIn(c.Request.Context(), middleware.Operator(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Text(c, fmt.Sprintf("Check-in completed for %s.", c.Query("name")))
}

// CheckOut godoc
// @Summary  Check a reservation out
// @Tags     reservations
// @Produce  plain
// @Security BearerAuth
// @Param    id   query string true  "reservation id"
// @Param    name query string false "guest name used in the message"
// @Success  200 {string} string
// @Failure  404 {object} response.ErrorBody
// @Failure  409 {object} response.ErrorBody
// @Router   /checkOut [put]
func (h HotelController) CheckOut(c *gin.Context) {
	id, ok := requireQuery(c, "id")
	if !ok {
		return
	}
	if err := h.Hotel.CheckOut(c.Request.Context(), middleware.Operator(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Text(c, fmt.Sprintf("Check-out completed for %s.", c.Query("name")))
}
