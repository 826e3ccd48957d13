package mocks

import (
	"context"

	"railbook/internal/domain/entity"
	"railbook/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockAccountUsecase mocks usecase.AccountUsecase.
type MockAccountUsecase struct {
	mock.Mock
}

func (m *MockAccountUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	args := m.Called(ctx, input)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if out, ok := args.Get(0).(*usecase.LoginOutput); ok {
		return out, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountUsecase) Profile(ctx context.Context, userID int64) (*entity.PublicUser, error) {
	args := m.Called(ctx, userID)
	if user, ok := args.Get(0).(*entity.PublicUser); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockTrainUsecase mocks usecase.TrainUsecase.
type MockTrainUsecase struct {
	mock.Mock
}

func (m *MockTrainUsecase) Search(ctx context.Context, fromCity, toCity string) ([]*entity.Train, error) {
	args := m.Called(ctx, fromCity, toCity)
	if trains, ok := args.Get(0).([]*entity.Train); ok {
		return trains, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTrainUsecase) Cities(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if cities, ok := args.Get(0).([]string); ok {
		return cities, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockBookingUsecase mocks usecase.BookingUsecase.
type MockBookingUsecase struct {
	mock.Mock
}

func (m *MockBookingUsecase) CreateBooking(ctx context.Context, input *usecase.CreateBookingInput) (int64, error) {
	args := m.Called(ctx, input)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingUsecase) Invoice(ctx context.Context, bookingID int64) ([]byte, error) {
	args := m.Called(ctx, bookingID)
	if pdf, ok := args.Get(0).([]byte); ok {
		return pdf, args.Error(1)
	}

	return nil, args.Error(1)
}
