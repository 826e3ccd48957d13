package handler

import (
	"log/slog"
	"net/http"

	"railbook/internal/domain/entity"
	"railbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TrainHandler holds dependencies for train catalog handlers.
type TrainHandler struct {
	uc     usecase.TrainUsecase
	logger *slog.Logger
}

// NewTrainHandler is the constructor for TrainHandler, injected by Fx.
func NewTrainHandler(uc usecase.TrainUsecase, logger *slog.Logger) *TrainHandler {
	return &TrainHandler{
		uc:     uc,
		logger: logger,
	}
}

// trainResponse mirrors the field names the web client expects, including the
// trailing underscores on the reserved-word route columns.
type trainResponse struct {
	ID            int64  `json:"id"`
	TrainNo       string `json:"train_no"`
	TrainName     string `json:"train_name"`
	FromCity      string `json:"from_"`
	ToCity        string `json:"to_"`
	NoOfSeats     int    `json:"no_of_seats"`
	ACPrice       int64  `json:"ac_price"`
	NonACPrice    int64  `json:"non_ac_price"`
	DepartureTime string `json:"departuretime"`
	ImageURL      string `json:"image_url"`
}

// ListTrains handles the train search request.
func (h *TrainHandler) ListTrains(c echo.Context) error {
	fromCity := c.QueryParam("from_city")
	toCity := c.QueryParam("to_city")

	trains, err := h.uc.Search(c.Request().Context(), fromCity, toCity)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]trainResponse, 0, len(trains))
	for _, train := range trains {
		resp = append(resp, toTrainResponse(train))
	}

	return c.JSON(http.StatusOK, resp)
}

// ListCities returns the sorted distinct set of served cities.
func (h *TrainHandler) ListCities(c echo.Context) error {
	cities, err := h.uc.Cities(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, cities)
}

func toTrainResponse(train *entity.Train) trainResponse {
	return trainResponse{
		ID:            train.ID,
		TrainNo:       train.TrainNo,
		TrainName:     train.TrainName,
		FromCity:      train.FromCity,
		ToCity:        train.ToCity,
		NoOfSeats:     train.NoOfSeats,
		ACPrice:       train.ACPrice,
		NonACPrice:    train.NonACPrice,
		DepartureTime: train.DepartureTime,
		ImageURL:      train.ImageURL,
	}
}
