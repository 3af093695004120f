package services

import (
	stderrors "errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bookezy/constants"
	"bookezy/errors"
	"bookezy/models"
	"bookezy/services/logger"
)

// BookingService xử lý vòng đời đặt phòng khách sạn
type BookingService struct {
	db     *gorm.DB
	ledger *CapacityLedger
	logger logger.Logger
}

type BookingServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	l := opts.Logger
	if l == nil {
		l = logger.NewFromEnv()
	}
	return &BookingService{
		db:     opts.DB,
		ledger: NewCapacityLedger(opts.DB),
		logger: l,
	}
}

// CreateBookingInput dữ liệu đã parse từ controller
type CreateBookingInput struct {
	UserID         uint
	HotelID        uint
	CheckIn        time.Time
	CheckOut       time.Time
	NumberOfGuests int
	RoomsReserved  int // 0 nếu caller không chỉ định
}

// lockForUpdate khóa dòng property trong lúc kiểm-tra-rồi-ghi để hai request
// song song không cùng vượt qua bước kiểm tra sức chứa.
// SQLite không hỗ trợ FOR UPDATE; transaction ghi của nó vốn tuần tự.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// CreateBooking kiểm tra ngày, số khách và sức chứa rồi ghi lượt đặt
// với trạng thái confirmed. Toàn bộ kiểm-tra-rồi-ghi nằm trong một
// transaction giữ khóa dòng khách sạn.
func (s *BookingService) CreateBooking(input CreateBookingInput) (*models.Booking, error) {
	if !input.CheckIn.Before(input.CheckOut) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDateRange, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	minRooms, err := models.RequiredUnits(input.NumberOfGuests, constants.GuestsPerRoom)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidGuestCount, "Số khách phải lớn hơn 0", err)
	}

	rooms := input.RoomsReserved
	if rooms < minRooms {
		rooms = minRooms
	}

	var booking *models.Booking
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var hotel models.Hotel
		if err := lockForUpdate(tx).First(&hotel, input.HotelID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.ErrHotelNotFound
			}
			return err
		}

		// Sức chứa 0 nghĩa là không nhận đặt, áp dụng thống nhất
		// cho cả khách sạn lẫn nhà hàng.
		if hotel.TotalRooms <= 0 {
			return &errors.CapacityError{Available: 0, Requested: rooms, Unit: "phòng"}
		}

		available, err := s.ledger.AvailableUnits(tx, hotel.TotalRooms,
			BookingUnitQuery(input.HotelID, input.CheckIn, input.CheckOut, 0))
		if err != nil {
			return err
		}

		if rooms > available {
			if available < 0 {
				available = 0
			}
			return &errors.CapacityError{Available: available, Requested: rooms, Unit: "phòng"}
		}

		booking = &models.Booking{
			UserID:         input.UserID,
			HotelID:        input.HotelID,
			CheckIn:        input.CheckIn,
			CheckOut:       input.CheckOut,
			NumberOfGuests: input.NumberOfGuests,
			RoomsReserved:  rooms,
			Status:         constants.ReservationStatusConfirmed,
		}
		return tx.Create(booking).Error
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("đã tạo booking %d cho khách sạn %d (%d phòng)", booking.ID, booking.HotelID, booking.RoomsReserved)
	return booking, nil
}

// CheckAvailability chạy đúng các bước kiểm tra của CreateBooking nhưng
// không ghi gì, trả về kết quả dạng có/không cho UI thăm dò trước khi đặt.
func (s *BookingService) CheckAvailability(hotelID uint, checkIn, checkOut time.Time, numberOfGuests int) (bool, string, error) {
	if !checkIn.Before(checkOut) {
		return false, "Ngày trả phòng phải sau ngày nhận phòng", nil
	}

	minRooms, err := models.RequiredUnits(numberOfGuests, constants.GuestsPerRoom)
	if err != nil {
		return false, "Số khách phải lớn hơn 0", nil
	}

	var hotel models.Hotel
	if err := s.db.First(&hotel, hotelID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return false, "", errors.ErrHotelNotFound
		}
		return false, "", err
	}

	if hotel.TotalRooms <= 0 {
		return false, "Hết phòng", nil
	}

	available, err := s.ledger.AvailableUnits(nil, hotel.TotalRooms,
		BookingUnitQuery(hotelID, checkIn, checkOut, 0))
	if err != nil {
		return false, "", err
	}

	if minRooms > available {
		return false, "Hết phòng", nil
	}
	return true, "Còn phòng trống", nil
}

// ChangeStatus chuyển trạng thái qua state machine, không kiểm tra lại
// sức chứa: hủy luôn giải phóng chỗ, hoàn thành là trạng thái kết thúc.
func (s *BookingService) ChangeStatus(bookingID, userID uint, role int, target int) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Hotel").First(&booking, bookingID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrBookingNotFound
		}
		return nil, err
	}

	if !canManageBooking(&booking, userID, role) {
		return nil, errors.ErrUnauthorized
	}

	next, err := models.TransitionStatus(booking.Status, target)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidTransition, err.Error(), nil)
	}

	booking.Status = next
	if err := s.db.Model(&booking).Update("status", next).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// canManageBooking: admin, người đặt, hoặc chủ khách sạn
func canManageBooking(b *models.Booking, userID uint, role int) bool {
	if role == constants.RoleAdmin {
		return true
	}
	if b.UserID == userID {
		return true
	}
	return b.Hotel.OwnerID != nil && *b.Hotel.OwnerID == userID
}

// VisibleBookingsScope giới hạn danh sách theo vai trò: admin thấy tất cả,
// còn lại chỉ thấy lượt mình đặt hoặc lượt đặt vào khách sạn mình sở hữu.
func (s *BookingService) VisibleBookingsScope(userID uint, role int) func(tx *gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if role == constants.RoleAdmin {
			return tx
		}
		ownedHotels := s.db.Model(&models.Hotel{}).Select("id").Where("owner_id = ?", userID)
		return tx.Where("user_id = ? OR hotel_id IN (?)", userID, ownedHotels)
	}
}

// ListBookings trả về các lượt đặt nhìn thấy được, mới nhất trước
func (s *BookingService) ListBookings(userID uint, role int, page, limit int) ([]models.Booking, int64, error) {
	if page < 0 {
		page = 0
	}
	if limit <= 0 {
		limit = 10
	}

	base := s.db.Model(&models.Booking{}).Scopes(s.VisibleBookingsScope(userID, role))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []models.Booking
	err := s.db.Preload("User").Preload("Hotel").
		Scopes(s.VisibleBookingsScope(userID, role)).
		Order("created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

// GetBooking lấy chi tiết một lượt đặt nếu user có quyền xem
func (s *BookingService) GetBooking(bookingID, userID uint, role int) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("User").Preload("Hotel").First(&booking, bookingID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrBookingNotFound
		}
		return nil, err
	}
	if !canManageBooking(&booking, userID, role) {
		return nil, errors.ErrUnauthorized
	}
	return &booking, nil
}
