package database

import (
	"context"
	"errors"

	"train-occupancy/models"
)

// ErrTrainNotFound is returned when no train exists for the requested id
var ErrTrainNotFound = errors.New("train not found")

// TrainStore is the read side the query engine depends on
type TrainStore interface {
	FindTrainByID(ctx context.Context, id int) (*models.Train, error)
	ListAllTrains(ctx context.Context) ([]models.Train, error)
}

// Repository adds the write operations used for train creation and seeding
type Repository interface {
	TrainStore
	SaveTrain(ctx context.Context, train *models.Train) (int, error)
	AddTicket(ctx context.Context, trainID int, ticket models.Ticket) (int, error)
}
