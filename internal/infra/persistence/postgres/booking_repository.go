package postgres

import (
	"context"

	"railbook/internal/domain/entity"
	domainerrors "railbook/internal/domain/errors"
	"railbook/internal/domain/repository"
	"railbook/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookingRepository implements the domain.BookingRepository interface using GORM.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// CreateBooking persists a new booking and fills in the generated ID. Callers
// reach this through the transaction manager so the payment row lands in the
// same transaction.
func (repo *bookingRepository) CreateBooking(ctx context.Context, booking *entity.Booking) error {
	bookingM := fromBookingDomain(booking)

	if err := repo.db.WithContext(ctx).Create(bookingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create booking")
	}

	booking.ID = bookingM.ID

	return nil
}

// CreatePayment persists the payment row referencing an existing booking.
func (repo *bookingRepository) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBookingNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID

	return nil
}

// FindBookingByID retrieves a single booking by its numeric ID.
func (repo *bookingRepository) FindBookingByID(ctx context.Context, id int64) (*entity.Booking, error) {
	var bookingM model.BookingModel
	if err := repo.db.WithContext(ctx).First(&bookingM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking by id")
	}

	return toBookingDomain(&bookingM), nil
}

// FindPaymentByBookingID retrieves the payment recorded for a booking.
func (repo *bookingRepository) FindPaymentByBookingID(ctx context.Context, bookingID int64) (*entity.Payment, error) {
	var paymentM model.PaymentModel
	if err := repo.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by booking id")
	}

	return toPaymentDomain(&paymentM), nil
}

// --- Mapper Functions ---

func toBookingDomain(data *model.BookingModel) *entity.Booking {
	if data == nil {
		return nil
	}

	return &entity.Booking{
		ID:         data.ID,
		UserID:     data.UserID,
		TrainNo:    data.TrainNo,
		FromCity:   data.FromCity,
		ToCity:     data.ToCity,
		BookedDate: data.BookedDate,
		TravelDate: data.TravelDate,
		TotalSeats: data.TotalSeats,
		TotalPrice: data.TotalPrice,
	}
}

func fromBookingDomain(data *entity.Booking) *model.BookingModel {
	if data == nil {
		return nil
	}

	return &model.BookingModel{
		ID:         data.ID,
		UserID:     data.UserID,
		TrainNo:    data.TrainNo,
		FromCity:   data.FromCity,
		ToCity:     data.ToCity,
		BookedDate: data.BookedDate,
		TravelDate: data.TravelDate,
		TotalSeats: data.TotalSeats,
		TotalPrice: data.TotalPrice,
	}
}

func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:        data.ID,
		UserID:    data.UserID,
		BookingID: data.BookingID,
		Method:    data.PaymentMethod,
		Amount:    data.Amount,
		Status:    entity.PaymentStatus(data.Status),
		PaidAt:    data.PaidAt,
	}
}

func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:            data.ID,
		UserID:        data.UserID,
		BookingID:     data.BookingID,
		PaymentMethod: data.Method,
		Amount:        data.Amount,
		Status:        string(data.Status),
		PaidAt:        data.PaidAt,
	}
}
