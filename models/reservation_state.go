package models

import (
	"errors"

	"bookezy/constants"
)

// ReservationState định nghĩa interface cho các trạng thái đặt chỗ.
// Chỉ confirmed -> cancelled và confirmed -> completed là hợp lệ;
// hủy/hoàn thành không kiểm tra lại sức chứa (hủy luôn giải phóng chỗ).
type ReservationState interface {
	Cancel() (int, error)
	Complete() (int, error)
}

// ConfirmedState trạng thái đã xác nhận
type ConfirmedState struct{}

func (s *ConfirmedState) Cancel() (int, error) {
	return constants.ReservationStatusCancelled, nil
}

func (s *ConfirmedState) Complete() (int, error) {
	return constants.ReservationStatusCompleted, nil
}

// CompletedState trạng thái hoàn thành
type CompletedState struct{}

func (s *CompletedState) Cancel() (int, error) {
	return 0, errors.New("cannot cancel completed reservation")
}

func (s *CompletedState) Complete() (int, error) {
	return 0, errors.New("reservation already completed")
}

// CancelledState trạng thái đã hủy
type CancelledState struct{}

func (s *CancelledState) Cancel() (int, error) {
	return 0, errors.New("reservation already cancelled")
}

func (s *CancelledState) Complete() (int, error) {
	return 0, errors.New("cannot complete cancelled reservation")
}

// GetReservationState trả về state tương ứng với trạng thái đặt chỗ
func GetReservationState(status int) (ReservationState, error) {
	switch status {
	case constants.ReservationStatusConfirmed:
		return &ConfirmedState{}, nil
	case constants.ReservationStatusCompleted:
		return &CompletedState{}, nil
	case constants.ReservationStatusCancelled:
		return &CancelledState{}, nil
	default:
		return nil, errors.New("unknown reservation status")
	}
}

// TransitionStatus áp trạng thái đích lên trạng thái hiện tại qua state machine
func TransitionStatus(current, target int) (int, error) {
	state, err := GetReservationState(current)
	if err != nil {
		return 0, err
	}
	switch target {
	case constants.ReservationStatusCancelled:
		return state.Cancel()
	case constants.ReservationStatusCompleted:
		return state.Complete()
	default:
		return 0, errors.New("unsupported target status")
	}
}
