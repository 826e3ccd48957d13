package repository

import (
	"context"

	"railbook/internal/domain/entity"
)

// TrainRepository defines read-only operations over the train schedule.
// The schedule is seed data; this service never mutates it.
type TrainRepository interface {
	// Search returns all trains running between the two cities, exact match.
	Search(ctx context.Context, fromCity, toCity string) ([]*entity.Train, error)

	// ListCities returns the sorted distinct set of cities appearing as any
	// train's origin or destination.
	ListCities(ctx context.Context) ([]string, error)
}
