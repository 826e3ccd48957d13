package repository

import (
	"context"
	"errors"

	"railbook/internal/domain/entity"
)

// Domain-specific errors for booking persistence.
var (
	// ErrBookingNotFound is returned when a booking is not found.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrPaymentNotFound is returned when a booking has no payment record.
	ErrPaymentNotFound = errors.New("payment not found")
)

// BookingRepository defines the operations for booking and payment persistence.
// CreateBooking and CreatePayment are only ever called through the
// TransactionManager so that both rows commit or roll back as one unit.
type BookingRepository interface {
	// CreateBooking persists a new booking and fills in the generated ID.
	CreateBooking(ctx context.Context, booking *entity.Booking) error

	// CreatePayment persists the payment row referencing an existing booking.
	CreatePayment(ctx context.Context, payment *entity.Payment) error

	// FindBookingByID retrieves a single booking by its numeric ID.
	FindBookingByID(ctx context.Context, id int64) (*entity.Booking, error)

	// FindPaymentByBookingID retrieves the payment recorded for a booking.
	FindPaymentByBookingID(ctx context.Context, bookingID int64) (*entity.Payment, error)
}
