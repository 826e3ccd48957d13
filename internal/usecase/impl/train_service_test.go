package impl

import (
	"context"
	"testing"

	"railbook/internal/domain/entity"
	"railbook/internal/mocks"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTrainService_Search(t *testing.T) {
	trainRepo := new(mocks.MockTrainRepository)

	expected := []*entity.Train{
		{ID: 1, TrainNo: "12951", FromCity: "Mumbai", ToCity: "Delhi"},
		{ID: 2, TrainNo: "12953", FromCity: "Mumbai", ToCity: "Delhi"},
	}
	trainRepo.On("Search", mock.Anything, "Mumbai", "Delhi").Return(expected, nil)
	trainRepo.On("Search", mock.Anything, "Mumbai", "Atlantis").Return([]*entity.Train{}, nil)

	srv := NewTrainService(TrainServiceParams{TrainRepo: trainRepo, Logger: testLogger()})

	trains, err := srv.Search(context.Background(), "Mumbai", "Delhi")
	require.NoError(t, err)
	assert.Equal(t, expected, trains)

	// An unserved route is an empty result, not an error.
	trains, err = srv.Search(context.Background(), "Mumbai", "Atlantis")
	require.NoError(t, err)
	assert.Empty(t, trains)
}

func TestTrainService_Search_RepoError(t *testing.T) {
	trainRepo := new(mocks.MockTrainRepository)
	trainRepo.On("Search", mock.Anything, "Mumbai", "Delhi").Return(nil, errors.New("connection reset"))

	srv := NewTrainService(TrainServiceParams{TrainRepo: trainRepo, Logger: testLogger()})

	trains, err := srv.Search(context.Background(), "Mumbai", "Delhi")
	assert.Error(t, err)
	assert.Nil(t, trains)
}

func TestTrainService_Cities(t *testing.T) {
	trainRepo := new(mocks.MockTrainRepository)
	trainRepo.On("ListCities", mock.Anything).Return([]string{"Chennai", "Delhi", "Mumbai"}, nil)

	srv := NewTrainService(TrainServiceParams{TrainRepo: trainRepo, Logger: testLogger()})

	cities, err := srv.Cities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Chennai", "Delhi", "Mumbai"}, cities)
}
