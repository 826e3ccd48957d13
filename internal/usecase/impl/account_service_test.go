package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"railbook/internal/domain/entity"
	domainerrors "railbook/internal/domain/errors"
	"railbook/internal/domain/repository"
	"railbook/internal/infra/metrics"
	"railbook/internal/mocks"
	"railbook/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAccountService(
	userRepo *mocks.MockUserRepository,
	hasher *mocks.MockPasswordHasher,
	tokenService *mocks.MockTokenService,
) usecase.AccountUsecase {
	return NewAccountService(AccountServiceParams{
		TxManager: &mocks.FakeTransactionManager{
			Factory: &mocks.FakeRepositoryFactory{UserRepo: userRepo},
		},
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Metrics:      metrics.New(),
		Logger:       testLogger(),
	})
}

func TestAccountService_Register_Success(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	hasher := new(mocks.MockPasswordHasher)

	hasher.On("Hash", "pw123").Return("hashed-credential", nil)
	userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(nil, repository.ErrUserNotFound)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = 1
		}).
		Return(nil)

	srv := newAccountService(userRepo, hasher, new(mocks.MockTokenService))

	user, err := srv.Register(context.Background(), &usecase.RegisterInput{
		Name:     "alice",
		Phone:    "9876543210",
		Email:    "alice@example.com",
		Password: "pw123",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "hashed-credential", user.PasswordHash)
	userRepo.AssertExpectations(t)
	hasher.AssertExpectations(t)
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	hasher := new(mocks.MockPasswordHasher)

	hasher.On("Hash", "pw123").Return("hashed-credential", nil)
	userRepo.On("FindByEmail", mock.Anything, "alice@example.com").
		Return(&entity.User{ID: 1, Email: "alice@example.com"}, nil)

	srv := newAccountService(userRepo, hasher, new(mocks.MockTokenService))

	user, err := srv.Register(context.Background(), &usecase.RegisterInput{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "pw123",
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	hasher := new(mocks.MockPasswordHasher)

	hasher.On("Hash", "pw123").Return("", errors.New("entropy source unavailable"))

	srv := newAccountService(userRepo, hasher, new(mocks.MockTokenService))

	user, err := srv.Register(context.Background(), &usecase.RegisterInput{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "pw123",
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_Login_Success(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	hasher := new(mocks.MockPasswordHasher)
	tokenService := new(mocks.MockTokenService)

	stored := &entity.User{
		ID:           42,
		Name:         "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed-credential",
	}

	userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(stored, nil)
	hasher.On("Check", "pw123", "hashed-credential").Return(true)
	tokenService.On("AccessTokenTTL").Return(60 * time.Minute)
	tokenService.On("Issue", int64(42), 60*time.Minute).Return("signed-token", nil)

	srv := newAccountService(userRepo, hasher, tokenService)

	out, err := srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "pw123",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.AccessToken)
	assert.Equal(t, "bearer", out.TokenType)
	require.NotNil(t, out.User)
	assert.Equal(t, int64(42), out.User.ID)
	assert.Equal(t, "alice", out.User.Name)
	tokenService.AssertExpectations(t)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)

	userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	srv := newAccountService(userRepo, new(mocks.MockPasswordHasher), new(mocks.MockTokenService))

	out, err := srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "pw123",
	})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	hasher := new(mocks.MockPasswordHasher)
	tokenService := new(mocks.MockTokenService)

	stored := &entity.User{ID: 42, Email: "alice@example.com", PasswordHash: "hashed-credential"}

	userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(stored, nil)
	hasher.On("Check", "wrong", "hashed-credential").Return(false)

	srv := newAccountService(userRepo, hasher, tokenService)

	out, err := srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	assert.Nil(t, out)
	// Same error as an unknown email, so the API cannot enumerate accounts.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	tokenService.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestAccountService_Profile(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)

	userRepo.On("FindByID", mock.Anything, int64(42)).
		Return(&entity.User{ID: 42, Name: "alice", Email: "alice@example.com", PasswordHash: "secret"}, nil)
	userRepo.On("FindByID", mock.Anything, int64(99)).Return(nil, repository.ErrUserNotFound)

	srv := newAccountService(userRepo, new(mocks.MockPasswordHasher), new(mocks.MockTokenService))

	profile, err := srv.Profile(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), profile.ID)
	assert.Equal(t, "alice", profile.Name)

	_, err = srv.Profile(context.Background(), 99)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
