package postgres

import (
	"context"
	"sort"

	"railbook/internal/domain/entity"
	"railbook/internal/domain/repository"
	"railbook/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// trainRepository implements the domain.TrainRepository interface using GORM.
// The train catalog is read-only from the service's point of view.
type trainRepository struct {
	db *gorm.DB
}

// NewTrainRepository is the constructor for trainRepository.
func NewTrainRepository(db *gorm.DB) repository.TrainRepository {
	return &trainRepository{db: db}
}

// Search returns all trains running between the two cities.
func (repo *trainRepository) Search(ctx context.Context, fromCity, toCity string) ([]*entity.Train, error) {
	var trainMs []*model.TrainModel
	if err := repo.db.WithContext(ctx).
		Where("from_city = ? AND to_city = ?", fromCity, toCity).
		Order("departure_time").
		Find(&trainMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search trains")
	}

	trains := make([]*entity.Train, 0, len(trainMs))
	for _, trainM := range trainMs {
		trains = append(trains, toTrainDomain(trainM))
	}

	return trains, nil
}

// ListCities returns the sorted distinct set of cities appearing as any
// train's origin or destination.
func (repo *trainRepository) ListCities(ctx context.Context) ([]string, error) {
	var fromCities []string
	if err := repo.db.WithContext(ctx).
		Model(&model.TrainModel{}).
		Distinct("from_city").
		Pluck("from_city", &fromCities).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list origin cities")
	}

	var toCities []string
	if err := repo.db.WithContext(ctx).
		Model(&model.TrainModel{}).
		Distinct("to_city").
		Pluck("to_city", &toCities).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list destination cities")
	}

	seen := make(map[string]struct{}, len(fromCities)+len(toCities))
	cities := make([]string, 0, len(fromCities)+len(toCities))
	for _, city := range append(fromCities, toCities...) {
		if _, ok := seen[city]; ok {
			continue
		}
		seen[city] = struct{}{}
		cities = append(cities, city)
	}
	sort.Strings(cities)

	return cities, nil
}

func toTrainDomain(data *model.TrainModel) *entity.Train {
	if data == nil {
		return nil
	}

	return &entity.Train{
		ID:            data.ID,
		TrainNo:       data.TrainNo,
		TrainName:     data.TrainName,
		FromCity:      data.FromCity,
		ToCity:        data.ToCity,
		NoOfSeats:     data.NoOfSeats,
		ACPrice:       data.ACPrice,
		NonACPrice:    data.NonACPrice,
		DepartureTime: data.DepartureTime,
		ImageURL:      data.ImageURL,
	}
}
