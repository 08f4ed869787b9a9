package models

import "errors"

var (
	ErrCheckInNotAllowed  = errors.New("only a not-yet-checked-in reservation may check in")
	ErrCheckOutNotAllowed = errors.New("only a checked-in reservation may check out")
	ErrReservationClosed  = errors.New("a checked-out reservation can no longer be edited")
)

// ReservationAction là hành động làm thay đổi trạng thái reservation
type ReservationAction string

const (
	ActionCheckIn  ReservationAction = "check_in"
	ActionCheckOut ReservationAction = "check_out"
)

// ReservationState định nghĩa interface cho các trạng thái reservation.
// Mỗi phương thức trả về trạng thái kế tiếp hoặc lỗi nếu không được phép chuyển.
type ReservationState interface {
	CheckIn() (ReservationStatus, error)
	CheckOut() (ReservationStatus, error)
}

// NotCheckedInState trạng thái chưa nhận phòng
type NotCheckedInState struct{}

func (s *NotCheckedInState) CheckIn() (ReservationStatus, error) {
	return ReservationStatusCheckedIn, nil
}

func (s *NotCheckedInState) CheckOut() (ReservationStatus, error) {
	return "", ErrCheckOutNotAllowed
}

// CheckedInState trạng thái đang lưu trú
type CheckedInState struct{}

func (s *CheckedInState) CheckIn() (ReservationStatus, error) {
	return "", ErrCheckInNotAllowed
}

func (s *CheckedInState) CheckOut() (ReservationStatus, error) {
	return ReservationStatusCheckedOut, nil
}

// CheckedOutState trạng thái đã trả phòng, không chuyển tiếp được nữa
type CheckedOutState struct{}

func (s *CheckedOutState) CheckIn() (ReservationStatus, error) {
	return "", ErrCheckInNotAllowed
}

func (s *CheckedOutState) CheckOut() (ReservationStatus, error) {
	return "", ErrCheckOutNotAllowed
}

// GetReservationState trả về state tương ứng với trạng thái reservation
func GetReservationState(status ReservationStatus) ReservationState {
	switch status {
	case ReservationStatusCheckedIn:
		return &CheckedInState{}
	case ReservationStatusCheckedOut:
		return &CheckedOutState{}
	default:
		return &NotCheckedInState{}
	}
}

// Apply chạy action trên state hiện tại
func Apply(state ReservationState, action ReservationAction) (ReservationStatus, error) {
	switch action {
	case ActionCheckIn:
		return state.CheckIn()
	case ActionCheckOut:
		return state.CheckOut()
	default:
		return "", errors.New("unknown reservation action: " + string(action))
	}
}

// TransitionFor trả về cặp (from, to) duy nhất mà action được phép thực hiện.
// Cặp này được dùng làm điều kiện cho câu UPDATE có điều kiện ở tầng repository.
func TransitionFor(action ReservationAction) (from, to ReservationStatus, err error) {
	var lastErr error
	for _, status := range ReservationStatuses {
		next, err := Apply(GetReservationState(status), action)
		if err == nil {
			return status, next, nil
		}
		lastErr = err
	}
	return "", "", lastErr
}
