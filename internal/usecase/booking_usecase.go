package usecase

import (
	"context"
	"time"
)

// CreateBookingInput defines the data required to book seats on a train.
// BookedDate may be zero, in which case the current date is recorded.
type CreateBookingInput struct {
	UserID        int64
	TrainNo       string
	FromCity      string
	ToCity        string
	BookedDate    time.Time
	TravelDate    time.Time
	TotalSeats    int
	TotalPrice    int64
	PaymentMethod string
}

// BookingUsecase defines booking-related business operations. CreateBooking
// writes the booking and its payment as one atomic unit of work.
type BookingUsecase interface {
	// CreateBooking records a booking together with its settled payment and
	// returns the new booking's ID.
	CreateBooking(ctx context.Context, input *CreateBookingInput) (int64, error)

	// Invoice renders the PDF invoice for a booking.
	Invoice(ctx context.Context, bookingID int64) ([]byte, error)
}
