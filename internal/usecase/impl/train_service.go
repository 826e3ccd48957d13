package impl

import (
	"context"
	"log/slog"

	deliverycontext "railbook/internal/delivery/context"
	"railbook/internal/domain/entity"
	"railbook/internal/domain/repository"
	"railbook/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// trainService implements the TrainUsecase interface. It is a thin read layer
// over the train catalog.
type trainService struct {
	trainRepo repository.TrainRepository
	logger    *slog.Logger
}

// TrainServiceParams holds dependencies for trainService, injected by Fx.
type TrainServiceParams struct {
	fx.In

	TrainRepo repository.TrainRepository
	Logger    *slog.Logger
}

// NewTrainService is the constructor for trainService.
func NewTrainService(params TrainServiceParams) usecase.TrainUsecase {
	return &trainService{
		trainRepo: params.TrainRepo,
		logger:    params.Logger,
	}
}

func (srv *trainService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search returns all trains running between the two cities. An empty result
// is not an error; the route simply has no service.
func (srv *trainService) Search(ctx context.Context, fromCity, toCity string) ([]*entity.Train, error) {
	trains, err := srv.trainRepo.Search(ctx, fromCity, toCity)
	if err != nil {
		srv.log(ctx).Error("Failed to search trains",
			slog.String("fromCity", fromCity),
			slog.String("toCity", toCity),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to search trains")
	}

	return trains, nil
}

// Cities returns the sorted distinct set of served cities.
func (srv *trainService) Cities(ctx context.Context) ([]string, error) {
	cities, err := srv.trainRepo.ListCities(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list cities", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list cities")
	}

	return cities, nil
}
