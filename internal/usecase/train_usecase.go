package usecase

import (
	"context"

	"railbook/internal/domain/entity"
)

// TrainUsecase exposes the read-only train catalog.
type TrainUsecase interface {
	// Search returns all trains running between the two cities.
	Search(ctx context.Context, fromCity, toCity string) ([]*entity.Train, error)

	// Cities returns the sorted distinct set of served cities.
	Cities(ctx context.Context) ([]string, error)
}
