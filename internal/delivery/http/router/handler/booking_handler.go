package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"railbook/internal/delivery/http/response"
	domainerrors "railbook/internal/domain/errors"
	"railbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// dateLayout is the wire format for booking and travel dates.
const dateLayout = "2006-01-02"

// BookingHandler holds dependencies for booking-related handlers.
type BookingHandler struct {
	uc     usecase.BookingUsecase
	logger *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler, injected by Fx.
func NewBookingHandler(uc usecase.BookingUsecase, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{
		uc:     uc,
		logger: logger,
	}
}

type createBookingRequest struct {
	UserID        int64  `json:"user_id" validate:"required"`
	TrainNo       string `json:"train_no" validate:"required"`
	FromCity      string `json:"from_city" validate:"required"`
	ToCity        string `json:"to_city" validate:"required"`
	BookedDate    string `json:"booked_date"`
	TravelDate    string `json:"travel_date" validate:"required"`
	TotalSeats    int    `json:"total_seats" validate:"required,min=1"`
	TotalPrice    int64  `json:"total_price" validate:"required,min=0"`
	PaymentMethod string `json:"payment_method"`
}

type createBookingResponse struct {
	BookingID int64  `json:"booking_id"`
	Message   string `json:"message"`
}

// CreateBooking handles the booking request. The booking and its payment are
// committed as one transaction by the use case layer.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid booking payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	travelDate, err := time.Parse(dateLayout, req.TravelDate)
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("travel_date must be YYYY-MM-DD")
	}

	var bookedDate time.Time
	if req.BookedDate != "" {
		bookedDate, err = time.Parse(dateLayout, req.BookedDate)
		if err != nil {
			return domainerrors.ErrValidationFailed.WrapMessage("booked_date must be YYYY-MM-DD")
		}
	}

	bookingID, err := h.uc.CreateBooking(c.Request().Context(), &usecase.CreateBookingInput{
		UserID:        req.UserID,
		TrainNo:       req.TrainNo,
		FromCity:      req.FromCity,
		ToCity:        req.ToCity,
		BookedDate:    bookedDate,
		TravelDate:    travelDate,
		TotalSeats:    req.TotalSeats,
		TotalPrice:    req.TotalPrice,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, createBookingResponse{
		BookingID: bookingID,
		Message:   "Booking & payment saved",
	})
}

// Invoice streams the PDF invoice for a booking.
func (h *BookingHandler) Invoice(c echo.Context) error {
	bookingID, err := strconv.ParseInt(c.Param("booking_id"), 10, 64)
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "booking_id must be numeric")
	}

	pdf, err := h.uc.Invoice(c.Request().Context(), bookingID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="invoice_%d.pdf"`, bookingID))

	return c.Blob(http.StatusOK, "application/pdf", pdf)
}
