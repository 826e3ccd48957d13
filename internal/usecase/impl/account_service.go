// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"railbook/config"
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

// tokenType is the scheme reported alongside issued access tokens.
const tokenType = "bearer"

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Metrics      *metrics.Metrics
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. The duplicate check and the insert run in
// one transaction so two concurrent registrations of the same email cannot
// both succeed; the unique index backs this up at the storage level.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	newUser := &entity.User{
		Name:         input.Name,
		Phone:        input.Phone,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.Users()

		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrEmailAlreadyRegistered
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing email")
		}

		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	if srv.metrics != nil {
		srv.metrics.Registrations.Inc()
	}
	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", newUser.ID))

	return newUser, nil
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password return the same error so accounts cannot be enumerated.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.recordLogin("failure")

			return nil, domainerrors.ErrInvalidCredentials
		}
		srv.log(ctx).Error("Failed to load account during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch during login", slog.Int64("userID", user.ID))
		srv.recordLogin("failure")

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(user.ID, srv.tokenService.AccessTokenTTL())
	if err != nil {
		srv.log(ctx).Error("Failed to issue token during login", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.recordLogin("success")
	srv.log(ctx).Debug("Login completed", slog.Int64("userID", user.ID))

	publicUser := user.Public()

	return &usecase.LoginOutput{
		AccessToken: token,
		TokenType:   tokenType,
		User:        &publicUser,
	}, nil
}

// Profile returns the public fields of the authenticated account.
func (srv *accountService) Profile(ctx context.Context, userID int64) (*entity.PublicUser, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	publicUser := user.Public()

	return &publicUser, nil
}

func (srv *accountService) recordLogin(outcome string) {
	if srv.metrics != nil {
		srv.metrics.Logins.WithLabelValues(outcome).Inc()
	}
}
