package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"train-occupancy/database"
	"train-occupancy/models"
)

// TrainService answers occupancy queries over trains held in a store
type TrainService struct {
	store database.TrainStore
}

func NewTrainService(store database.TrainStore) *TrainService {
	return &TrainService{store: store}
}

// AddTrain validates and stores a new train, returning its id. The store
// must also be able to write trains.
func (s *TrainService) AddTrain(ctx context.Context, req models.AddTrainRequest) (int, error) {
	repo, ok := s.store.(database.Repository)
	if !ok {
		return 0, fmt.Errorf("train store is read-only")
	}

	departure, err := models.ParseTimeOfDay(req.DepartureTime)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidTrain, err)
	}

	train := &models.Train{
		Route:         append(models.Route(nil), req.StationRoute...),
		NoOfSeats:     req.NoOfSeats,
		DepartureTime: departure,
	}
	if err := train.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidTrain, err)
	}

	id, err := repo.SaveTrain(ctx, train)
	if err != nil {
		return 0, err
	}

	log.Info().Int("trainId", id).Str("route", train.Route.String()).Int("seats", train.NoOfSeats).Msg("Train added")
	return id, nil
}

// CalculateAvailableSeats returns the free seats between two stations of a train
func (s *TrainService) CalculateAvailableSeats(ctx context.Context, req models.SeatAvailabilityRequest) (int, error) {
	train, err := s.findTrain(ctx, req.TrainID)
	if err != nil {
		return 0, err
	}

	seats := AvailableSeats(train, req.FromStation, req.ToStation)

	log.Debug().
		Int("trainId", req.TrainID).
		Str("from", req.FromStation.String()).
		Str("to", req.ToStation.String()).
		Int("available", seats).
		Msg("Calculated available seats")

	return seats, nil
}

// CalculatePeopleBoardingAtStation returns how many passengers board at the station
func (s *TrainService) CalculatePeopleBoardingAtStation(ctx context.Context, trainID int, station models.Station) (int, error) {
	train, err := s.findTrain(ctx, trainID)
	if err != nil {
		return 0, err
	}

	count, err := PeopleBoardingAt(train, station)
	if err != nil {
		return 0, err
	}

	log.Debug().Int("trainId", trainID).Str("station", station.String()).Int("count", count).Msg("Calculated boarding count")
	return count, nil
}

// CalculateOldestPassenger returns the age of the oldest person on the train
func (s *TrainService) CalculateOldestPassenger(ctx context.Context, trainID int) (int, error) {
	train, err := s.findTrain(ctx, trainID)
	if err != nil {
		return 0, err
	}

	return OldestPassenger(train), nil
}

// TrainsBetweenTimes lists the trains passing the station within [start, end]
func (s *TrainService) TrainsBetweenTimes(ctx context.Context, station models.Station, start, end time.Time) ([]int, error) {
	trains, err := s.store.ListAllTrains(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing trains: %w", err)
	}

	ids := TrainsThroughStation(trains, station, start, end)

	log.Debug().
		Str("station", station.String()).
		Str("start", start.Format(models.TimeOfDayLayout)).
		Str("end", end.Format(models.TimeOfDayLayout)).
		Int("matches", len(ids)).
		Msg("Searched trains in window")

	return ids, nil
}

func (s *TrainService) findTrain(ctx context.Context, id int) (*models.Train, error) {
	train, err := s.store.FindTrainByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("train %d: %w", id, err)
	}
	return train, nil
}
