package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"railbook/internal/domain/entity"
	"railbook/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTrainHandler_ListTrains(t *testing.T) {
	uc := new(mocks.MockTrainUsecase)
	uc.On("Search", mock.Anything, "Mumbai", "Delhi").Return([]*entity.Train{
		{
			ID:            1,
			TrainNo:       "12951",
			TrainName:     "Rajdhani Express",
			FromCity:      "Mumbai",
			ToCity:        "Delhi",
			NoOfSeats:     120,
			ACPrice:       2500,
			NonACPrice:    900,
			DepartureTime: "17:00",
			ImageURL:      "https://example.com/rajdhani.jpg",
		},
	}, nil)

	e := newTestEcho()
	e.GET("/trains", NewTrainHandler(uc, testLogger()).ListTrains)

	rec := doJSON(e, http.MethodGet, "/trains?from_city=Mumbai&to_city=Delhi", "")

	require.Equal(t, http.StatusOK, rec.Code)

	// The client depends on these exact key names, including the trailing
	// underscores on the route fields.
	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Mumbai", body[0]["from_"])
	assert.Equal(t, "Delhi", body[0]["to_"])
	assert.Equal(t, "17:00", body[0]["departuretime"])
	assert.Equal(t, "12951", body[0]["train_no"])
	assert.Equal(t, float64(2500), body[0]["ac_price"])
}

func TestTrainHandler_ListTrains_EmptyRoute(t *testing.T) {
	uc := new(mocks.MockTrainUsecase)
	uc.On("Search", mock.Anything, "Mumbai", "Atlantis").Return([]*entity.Train{}, nil)

	e := newTestEcho()
	e.GET("/trains", NewTrainHandler(uc, testLogger()).ListTrains)

	rec := doJSON(e, http.MethodGet, "/trains?from_city=Mumbai&to_city=Atlantis", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestTrainHandler_ListCities(t *testing.T) {
	uc := new(mocks.MockTrainUsecase)
	uc.On("Cities", mock.Anything).Return([]string{"Chennai", "Delhi", "Mumbai"}, nil)

	e := newTestEcho()
	e.GET("/cities", NewTrainHandler(uc, testLogger()).ListCities)

	rec := doJSON(e, http.MethodGet, "/cities", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["Chennai","Delhi","Mumbai"]`, rec.Body.String())
}
