package services

import (
	"errors"
	"fmt"

	"train-occupancy/models"
)

var (
	// ErrNotOnRoute matches any NotOnRouteError via errors.Is
	ErrNotOnRoute = errors.New("train is not passing from this station")

	// ErrInvalidTrain is returned when a train creation request fails validation
	ErrInvalidTrain = errors.New("invalid train")
)

// NotOnRouteError is returned by the boarding count query when the station
// is not part of the train's route.
type NotOnRouteError struct {
	TrainID int
	Station models.Station
}

func (e *NotOnRouteError) Error() string {
	return fmt.Sprintf("train %d is not passing from station %s", e.TrainID, e.Station)
}

func (e *NotOnRouteError) Is(target error) bool {
	return target == ErrNotOnRoute
}
