package entity

import "time"

// PaymentStatus enumerates the recorded settlement state of a payment.
type PaymentStatus string

const (
	// PaymentStatusSuccess is the only status produced in the current flow:
	// payments are recorded as already settled, there is no external gateway.
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
)

// PaymentMethodUnknown is recorded when the client does not supply a method.
const PaymentMethodUnknown = "UNKNOWN"

// Booking is a reservation of seats on a train, owned by a single account.
// A Booking is only ever created together with its Payment in one storage
// transaction; a committed booking without a payment must not exist.
type Booking struct {
	ID         int64
	UserID     int64
	TrainNo    string
	FromCity   string
	ToCity     string
	BookedDate time.Time // Date the booking was made; defaults to today.
	TravelDate time.Time
	TotalSeats int
	TotalPrice int64
}

// Payment records the settlement of exactly one booking.
type Payment struct {
	ID        int64
	UserID    int64
	BookingID int64
	Method    string // upi / netbanking / card / UNKNOWN
	Amount    int64  // Always equal to the booking's TotalPrice.
	Status    PaymentStatus
	PaidAt    time.Time
}
