package handler

import (
	"net/http"
	"testing"
	"time"

	domainerrors "railbook/internal/domain/errors"
	"railbook/internal/mocks"
	"railbook/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBookingHandler_CreateBooking(t *testing.T) {
	uc := new(mocks.MockBookingUsecase)

	var recordedInput *usecase.CreateBookingInput
	uc.On("CreateBooking", mock.Anything, mock.AnythingOfType("*usecase.CreateBookingInput")).
		Run(func(args mock.Arguments) {
			recordedInput = args.Get(1).(*usecase.CreateBookingInput)
		}).
		Return(int64(17), nil)

	e := newTestEcho()
	e.POST("/bookings", NewBookingHandler(uc, testLogger()).CreateBooking)

	rec := doJSON(e, http.MethodPost, "/bookings", `{
		"user_id": 3,
		"train_no": "12951",
		"from_city": "Mumbai",
		"to_city": "Delhi",
		"booked_date": "2025-03-07",
		"travel_date": "2025-03-14",
		"total_seats": 2,
		"total_price": 500,
		"payment_method": "upi"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"booking_id":17,"message":"Booking & payment saved"}`, rec.Body.String())

	require.NotNil(t, recordedInput)
	assert.Equal(t, int64(3), recordedInput.UserID)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), recordedInput.TravelDate)
	assert.Equal(t, time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC), recordedInput.BookedDate)
	assert.Equal(t, "upi", recordedInput.PaymentMethod)
}

func TestBookingHandler_CreateBooking_BadDate(t *testing.T) {
	uc := new(mocks.MockBookingUsecase)

	e := newTestEcho()
	e.POST("/bookings", NewBookingHandler(uc, testLogger()).CreateBooking)

	rec := doJSON(e, http.MethodPost, "/bookings", `{
		"user_id": 3,
		"train_no": "12951",
		"from_city": "Mumbai",
		"to_city": "Delhi",
		"travel_date": "14-03-2025",
		"total_seats": 2,
		"total_price": 500
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestBookingHandler_CreateBooking_MissingFields(t *testing.T) {
	uc := new(mocks.MockBookingUsecase)

	e := newTestEcho()
	e.POST("/bookings", NewBookingHandler(uc, testLogger()).CreateBooking)

	rec := doJSON(e, http.MethodPost, "/bookings", `{"user_id": 3}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestBookingHandler_Invoice(t *testing.T) {
	uc := new(mocks.MockBookingUsecase)
	uc.On("Invoice", mock.Anything, int64(17)).Return([]byte("%PDF-1.4 fake"), nil)

	e := newTestEcho()
	e.GET("/invoice/:booking_id", NewBookingHandler(uc, testLogger()).Invoice)

	rec := doJSON(e, http.MethodGet, "/invoice/17", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `invoice_17.pdf`)
	assert.Equal(t, "%PDF-1.4 fake", rec.Body.String())
}

func TestBookingHandler_Invoice_NotFound(t *testing.T) {
	uc := new(mocks.MockBookingUsecase)
	uc.On("Invoice", mock.Anything, int64(99)).Return(nil, domainerrors.ErrBookingNotFound)

	e := newTestEcho()
	e.GET("/invoice/:booking_id", NewBookingHandler(uc, testLogger()).Invoice)

	rec := doJSON(e, http.MethodGet, "/invoice/99", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Booking not found"}`, rec.Body.String())
}

func TestBookingHandler_Invoice_NonNumericID(t *testing.T) {
	uc := new(mocks.MockBookingUsecase)

	e := newTestEcho()
	e.GET("/invoice/:booking_id", NewBookingHandler(uc, testLogger()).Invoice)

	rec := doJSON(e, http.MethodGet, "/invoice/not-a-number", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Invoice", mock.Anything, mock.Anything)
}
