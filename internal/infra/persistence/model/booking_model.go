package model

import "time"

// BookingModel mirrors the 'bookings' table. The route columns are denormalized
// from the train so the ticket stays printable even if the schedule changes.
type BookingModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	UserID     int64  `gorm:"not null;index"`
	TrainNo    string `gorm:"type:varchar(20);not null"`
	FromCity   string `gorm:"type:varchar(100);not null"`
	ToCity     string `gorm:"type:varchar(100);not null"`
	BookedDate time.Time
	TravelDate time.Time
	TotalSeats int
	TotalPrice int64
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}

// PaymentModel mirrors the 'payments' table. A payment row is only ever written
// in the same transaction as its booking.
type PaymentModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	UserID        int64  `gorm:"not null;index"`
	BookingID     int64  `gorm:"not null;index"`
	PaymentMethod string `gorm:"type:varchar(30);not null"`
	Amount        int64
	Status        string `gorm:"type:varchar(20);not null"`
	PaidAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
