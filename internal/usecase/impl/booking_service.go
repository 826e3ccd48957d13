package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "railbook/internal/delivery/context"
	"railbook/internal/domain/entity"
	domainerrors "railbook/internal/domain/errors"
	"railbook/internal/domain/repository"
	"railbook/internal/domain/service"
	"railbook/internal/infra/metrics"
	"railbook/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	txManager   repository.TransactionManager
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
	renderer    service.InvoiceRenderer
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

// BookingServiceParams holds dependencies for bookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	BookingRepo repository.BookingRepository
	UserRepo    repository.UserRepository
	Renderer    service.InvoiceRenderer
	Metrics     *metrics.Metrics
	Logger      *slog.Logger
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	return &bookingService{
		txManager:   params.TxManager,
		bookingRepo: params.BookingRepo,
		userRepo:    params.UserRepo,
		renderer:    params.Renderer,
		metrics:     params.Metrics,
		logger:      params.Logger,
	}
}

func (srv *bookingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBooking records a booking together with its payment inside a single
// database transaction. Either both rows commit or neither does; a booking
// without a payment must never be observable.
func (srv *bookingService) CreateBooking(ctx context.Context, input *usecase.CreateBookingInput) (int64, error) {
	bookedDate := input.BookedDate
	if bookedDate.IsZero() {
		bookedDate = time.Now().Truncate(24 * time.Hour)
	}

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = entity.PaymentMethodUnknown
	}

	booking := &entity.Booking{
		UserID:     input.UserID,
		TrainNo:    input.TrainNo,
		FromCity:   input.FromCity,
		ToCity:     input.ToCity,
		BookedDate: bookedDate,
		TravelDate: input.TravelDate,
		TotalSeats: input.TotalSeats,
		TotalPrice: input.TotalPrice,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookingRepo := repoFactory.Bookings()

		if err := bookingRepo.CreateBooking(ctx, booking); err != nil {
			return errors.Wrap(err, "failed to create booking")
		}

		payment := &entity.Payment{
			UserID:    input.UserID,
			BookingID: booking.ID,
			Method:    paymentMethod,
			Amount:    input.TotalPrice,
			Status:    entity.PaymentStatusSuccess,
			PaidAt:    time.Now(),
		}

		return errors.Wrap(bookingRepo.CreatePayment(ctx, payment), "failed to create payment")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute booking transaction",
			slog.Int64("userID", input.UserID),
			slog.String("trainNo", input.TrainNo),
			slog.Any("error", err),
		)

		return 0, err
	}

	if srv.metrics != nil {
		srv.metrics.BookingsCreated.Inc()
	}
	srv.log(ctx).Info("Booking recorded",
		slog.Int64("bookingID", booking.ID),
		slog.Int64("userID", input.UserID),
		slog.String("trainNo", input.TrainNo),
	)

	return booking.ID, nil
}

// Invoice loads the booking with its owner and payment and renders the PDF.
// Any missing piece of the triple surfaces as a not-found error.
func (srv *bookingService) Invoice(ctx context.Context, bookingID int64) ([]byte, error) {
	booking, err := srv.bookingRepo.FindBookingByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, domainerrors.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to load booking for invoice")
	}

	user, err := srv.userRepo.FindByID(ctx, booking.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load account for invoice")
	}

	payment, err := srv.bookingRepo.FindPaymentByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to load payment for invoice")
	}

	pdf, err := srv.renderer.Render(&service.InvoiceData{
		Booking: booking,
		User:    user,
		Payment: payment,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to render invoice", slog.Int64("bookingID", bookingID), slog.Any("error", err))

		return nil, domainerrors.ErrInvoiceGeneration.WrapMessage("failed to render invoice pdf")
	}

	if srv.metrics != nil {
		srv.metrics.InvoicesServed.Inc()
	}

	return pdf, nil
}
