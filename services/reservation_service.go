package services

import (
	stderrors "errors"
	"time"

	"gorm.io/gorm"

	"bookezy/constants"
	"bookezy/errors"
	"bookezy/models"
	"bookezy/services/logger"
)

// ReservationService xử lý vòng đời đặt bàn nhà hàng. Cùng một ledger
// với BookingService, chỉ khác scope trùng lặp (trùng đúng ngày + giờ)
// và tỷ lệ khách trên bàn.
type ReservationService struct {
	db     *gorm.DB
	ledger *CapacityLedger
	logger logger.Logger
}

type ReservationServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewReservationService(opts ReservationServiceOptions) *ReservationService {
	l := opts.Logger
	if l == nil {
		l = logger.NewFromEnv()
	}
	return &ReservationService{
		db:     opts.DB,
		ledger: NewCapacityLedger(opts.DB),
		logger: l,
	}
}

// CreateReservationInput dữ liệu đã parse từ controller
type CreateReservationInput struct {
	UserID          uint
	RestaurantID    uint
	ReservationDate time.Time
	ReservationTime string // "19:30"
	NumberOfGuests  int
	TablesReserved  int // 0 nếu caller không chỉ định
	SpecialRequests string
}

// truncateToDate so sánh ngày bỏ qua giờ: đặt bàn trong ngày hôm nay
// vẫn được chấp nhận dù giờ đã qua.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CreateReservation kiểm tra ngày, số khách và số bàn trống rồi ghi lượt
// đặt với trạng thái confirmed, trong một transaction giữ khóa dòng nhà hàng.
func (s *ReservationService) CreateReservation(input CreateReservationInput) (*models.TableReservation, error) {
	if truncateToDate(input.ReservationDate).Before(truncateToDate(time.Now())) {
		return nil, errors.NewAppError(errors.ErrCodePastDate, "Ngày đặt bàn không được ở trong quá khứ", nil)
	}

	minTables, err := models.RequiredUnits(input.NumberOfGuests, constants.GuestsPerTable)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidGuestCount, "Số khách phải lớn hơn 0", err)
	}

	tables := input.TablesReserved
	if tables < minTables {
		tables = minTables
	}

	var reservation *models.TableReservation
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := lockForUpdate(tx).First(&restaurant, input.RestaurantID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.ErrRestaurantNotFound
			}
			return err
		}

		if restaurant.TotalTables <= 0 {
			return &errors.CapacityError{Available: 0, Requested: tables, Unit: "bàn"}
		}

		available, err := s.ledger.AvailableUnits(tx, restaurant.TotalTables,
			ReservationUnitQuery(input.RestaurantID, truncateToDate(input.ReservationDate), input.ReservationTime, 0))
		if err != nil {
			return err
		}

		if tables > available {
			if available < 0 {
				available = 0
			}
			return &errors.CapacityError{Available: available, Requested: tables, Unit: "bàn"}
		}

		reservation = &models.TableReservation{
			UserID:          input.UserID,
			RestaurantID:    input.RestaurantID,
			ReservationDate: truncateToDate(input.ReservationDate),
			ReservationTime: input.ReservationTime,
			NumberOfGuests:  input.NumberOfGuests,
			TablesReserved:  tables,
			SpecialRequests: input.SpecialRequests,
			Status:          constants.ReservationStatusConfirmed,
		}
		return tx.Create(reservation).Error
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("đã tạo đặt bàn %d cho nhà hàng %d (%d bàn)", reservation.ID, reservation.RestaurantID, reservation.TablesReserved)
	return reservation, nil
}

// CheckAvailability phiên bản chỉ-đọc của CreateReservation, trả về
// có/không cùng thông điệp cho UI.
func (s *ReservationService) CheckAvailability(restaurantID uint, date time.Time, timeSlot string, numberOfGuests int) (bool, string, error) {
	if truncateToDate(date).Before(truncateToDate(time.Now())) {
		return false, "Ngày đặt bàn không được ở trong quá khứ", nil
	}

	minTables, err := models.RequiredUnits(numberOfGuests, constants.GuestsPerTable)
	if err != nil {
		return false, "Số khách phải lớn hơn 0", nil
	}

	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, restaurantID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return false, "", errors.ErrRestaurantNotFound
		}
		return false, "", err
	}

	if restaurant.TotalTables <= 0 {
		return false, "Hết bàn", nil
	}

	available, err := s.ledger.AvailableUnits(nil, restaurant.TotalTables,
		ReservationUnitQuery(restaurantID, truncateToDate(date), timeSlot, 0))
	if err != nil {
		return false, "", err
	}

	if minTables > available {
		return false, "Hết bàn", nil
	}
	return true, "Còn bàn trống", nil
}

// ChangeStatus chuyển trạng thái đặt bàn qua state machine
func (s *ReservationService) ChangeStatus(reservationID, userID uint, role int, target int) (*models.TableReservation, error) {
	var reservation models.TableReservation
	if err := s.db.Preload("Restaurant").First(&reservation, reservationID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrReservationNotFound
		}
		return nil, err
	}

	if !canManageReservation(&reservation, userID, role) {
		return nil, errors.ErrUnauthorized
	}

	next, err := models.TransitionStatus(reservation.Status, target)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidTransition, err.Error(), nil)
	}

	reservation.Status = next
	if err := s.db.Model(&reservation).Update("status", next).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func canManageReservation(r *models.TableReservation, userID uint, role int) bool {
	if role == constants.RoleAdmin {
		return true
	}
	if r.UserID == userID {
		return true
	}
	return r.Restaurant.OwnerID != nil && *r.Restaurant.OwnerID == userID
}

// VisibleReservationsScope cùng quy tắc hiển thị với booking khách sạn
func (s *ReservationService) VisibleReservationsScope(userID uint, role int) func(tx *gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if role == constants.RoleAdmin {
			return tx
		}
		ownedRestaurants := s.db.Model(&models.Restaurant{}).Select("id").Where("owner_id = ?", userID)
		return tx.Where("user_id = ? OR restaurant_id IN (?)", userID, ownedRestaurants)
	}
}

// ListReservations trả về các lượt đặt bàn nhìn thấy được, mới nhất trước
func (s *ReservationService) ListReservations(userID uint, role int, page, limit int) ([]models.TableReservation, int64, error) {
	if page < 0 {
		page = 0
	}
	if limit <= 0 {
		limit = 10
	}

	base := s.db.Model(&models.TableReservation{}).Scopes(s.VisibleReservationsScope(userID, role))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reservations []models.TableReservation
	err := s.db.Preload("User").Preload("Restaurant").
		Scopes(s.VisibleReservationsScope(userID, role)).
		Order("created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&reservations).Error
	if err != nil {
		return nil, 0, err
	}
	return reservations, total, nil
}

// GetReservation lấy chi tiết một lượt đặt bàn nếu user có quyền xem
func (s *ReservationService) GetReservation(reservationID, userID uint, role int) (*models.TableReservation, error) {
	var reservation models.TableReservation
	if err := s.db.Preload("User").Preload("Restaurant").First(&reservation, reservationID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrReservationNotFound
		}
		return nil, err
	}
	if !canManageReservation(&reservation, userID, role) {
		return nil, errors.ErrUnauthorized
	}
	return &reservation, nil
}
