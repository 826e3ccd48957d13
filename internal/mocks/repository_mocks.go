// Package mocks provides hand-written testify mocks for the domain
// interfaces used across use case tests.
package mocks

import (
	"context"

	"railbook/internal/domain/entity"
	"railbook/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

// MockBookingRepository mocks repository.BookingRepository.
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateBooking(ctx context.Context, booking *entity.Booking) error {
	args := m.Called(ctx, booking)

	return args.Error(0)
}

func (m *MockBookingRepository) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	args := m.Called(ctx, payment)

	return args.Error(0)
}

func (m *MockBookingRepository) FindBookingByID(ctx context.Context, id int64) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	if booking, ok := args.Get(0).(*entity.Booking); ok {
		return booking, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBookingRepository) FindPaymentByBookingID(ctx context.Context, bookingID int64) (*entity.Payment, error) {
	args := m.Called(ctx, bookingID)
	if payment, ok := args.Get(0).(*entity.Payment); ok {
		return payment, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockTrainRepository mocks repository.TrainRepository.
type MockTrainRepository struct {
	mock.Mock
}

func (m *MockTrainRepository) Search(ctx context.Context, fromCity, toCity string) ([]*entity.Train, error) {
	args := m.Called(ctx, fromCity, toCity)
	if trains, ok := args.Get(0).([]*entity.Train); ok {
		return trains, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTrainRepository) ListCities(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if cities, ok := args.Get(0).([]string); ok {
		return cities, args.Error(1)
	}

	return nil, args.Error(1)
}

// FakeRepositoryFactory hands out the fixed repositories it was built with.
type FakeRepositoryFactory struct {
	UserRepo    repository.UserRepository
	BookingRepo repository.BookingRepository
}

func (f *FakeRepositoryFactory) Users() repository.UserRepository {
	return f.UserRepo
}

func (f *FakeRepositoryFactory) Bookings() repository.BookingRepository {
	return f.BookingRepo
}

// FakeTransactionManager runs the callback immediately against the given
// factory, without any real transaction semantics.
type FakeTransactionManager struct {
	Factory repository.RepositoryFactory

	// ExecuteErr, when set, is returned without invoking the callback.
	ExecuteErr error
}

func (m *FakeTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.ExecuteErr != nil {
		return m.ExecuteErr
	}

	return fn(m.Factory)
}
