package database

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"train-occupancy/models"
)

// Fixture is the YAML layout accepted by Seed
type Fixture struct {
	Trains []TrainFixture `yaml:"trains"`
}

type TrainFixture struct {
	Route         []string        `yaml:"route"`
	NoOfSeats     int             `yaml:"no_of_seats"`
	DepartureTime string          `yaml:"departure_time"`
	Tickets       []TicketFixture `yaml:"tickets"`
}

type TicketFixture struct {
	From          string `yaml:"from"`
	To            string `yaml:"to"`
	PassengerAges []int  `yaml:"passenger_ages"`
}

// Seed loads trains and their booked tickets from a YAML fixture and returns
// the ids assigned to the trains, in fixture order.
//
// The whole fixture is decoded and validated before anything is written, so
// bad data leaves the store untouched. Each train is saved with its tickets
// in one call; a store failure part way through keeps the trains saved before it.
func Seed(ctx context.Context, repo Repository, r io.Reader) ([]int, error) {
	var fixture Fixture
	if err := yaml.NewDecoder(r).Decode(&fixture); err != nil {
		return nil, fmt.Errorf("error decoding fixture: %w", err)
	}

	trains := make([]*models.Train, 0, len(fixture.Trains))
	for i, tf := range fixture.Trains {
		train, err := tf.toTrain()
		if err != nil {
			return nil, fmt.Errorf("fixture train %d: %w", i, err)
		}
		trains = append(trains, train)
	}

	ids := make([]int, 0, len(trains))
	for _, train := range trains {
		id, err := repo.SaveTrain(ctx, train)
		if err != nil {
			return ids, err
		}

		log.Debug().Int("trainId", id).Int("tickets", len(train.BookedTickets)).Msg("Seeded train")
		ids = append(ids, id)
	}

	return ids, nil
}

func (tf TrainFixture) toTrain() (*models.Train, error) {
	if len(tf.Route) == 0 {
		return nil, models.ErrEmptyRoute
	}

	route := make(models.Route, 0, len(tf.Route))
	for _, name := range tf.Route {
		st, err := models.ParseStation(name)
		if err != nil {
			return nil, err
		}
		route = append(route, st)
	}

	departure, err := models.ParseTimeOfDay(tf.DepartureTime)
	if err != nil {
		return nil, err
	}

	train := &models.Train{
		Route:         route,
		NoOfSeats:     tf.NoOfSeats,
		DepartureTime: departure,
	}

	for j, ticketFixture := range tf.Tickets {
		ticket, err := ticketFixture.toTicket()
		if err != nil {
			return nil, fmt.Errorf("ticket %d: %w", j, err)
		}
		train.BookedTickets = append(train.BookedTickets, ticket)
	}

	if err := train.Validate(); err != nil {
		return nil, err
	}
	return train, nil
}

func (tf TicketFixture) toTicket() (models.Ticket, error) {
	from, err := models.ParseStation(tf.From)
	if err != nil {
		return models.Ticket{}, err
	}
	to, err := models.ParseStation(tf.To)
	if err != nil {
		return models.Ticket{}, err
	}

	passengers := make([]models.Passenger, len(tf.PassengerAges))
	for i, age := range tf.PassengerAges {
		passengers[i] = models.Passenger{Age: age}
	}

	return models.Ticket{FromStation: from, ToStation: to, Passengers: passengers}, nil
}
