package services

import (
	"time"

	"train-occupancy/models"
)

// HopDuration is the assumed travel time between two consecutive stations
// on any route. Arrival at route position i is departure + i*HopDuration.
const HopDuration = 60 * time.Minute

// AvailableSeats computes the free seats between two stations.
//
// Every booked passenger is subtracted from capacity, then each ticket
// releases one seat if the query ends at or before the ticket's boarding
// station, or starts at or after it. The release is per ticket, not per
// passenger, and the start test compares against the ticket's boarding
// station rather than its destination. Callers rely on these exact numbers.
//
// Returns 0 when either station is not on the route. The result is not
// clamped and goes negative on an overbooked train.
func AvailableSeats(train *models.Train, from, to models.Station) int {
	index := BuildRouteIndex(train.Route)

	fromPos, ok := index.Position(from)
	if !ok {
		return 0
	}
	toPos, ok := index.Position(to)
	if !ok {
		return 0
	}

	booked := 0
	for _, ticket := range train.BookedTickets {
		booked += len(ticket.Passengers)
	}

	available := train.NoOfSeats - booked

	for _, ticket := range train.BookedTickets {
		boardingPos, ok := index.Position(ticket.FromStation)
		if !ok {
			continue
		}
		if toPos <= boardingPos || fromPos >= boardingPos {
			available++
		}
	}

	return available
}

// PeopleBoardingAt counts the passengers whose tickets start at the station
func PeopleBoardingAt(train *models.Train, station models.Station) (int, error) {
	if !train.Route.Contains(station) {
		return 0, &NotOnRouteError{TrainID: train.ID, Station: station}
	}

	count := 0
	for _, ticket := range train.BookedTickets {
		if ticket.FromStation == station {
			count += len(ticket.Passengers)
		}
	}
	return count, nil
}

// OldestPassenger returns the highest passenger age on the train, or 0 when
// nobody is travelling.
func OldestPassenger(train *models.Train) int {
	oldest := 0
	for _, ticket := range train.BookedTickets {
		for _, p := range ticket.Passengers {
			if p.Age > oldest {
				oldest = p.Age
			}
		}
	}
	return oldest
}

// TrainsThroughStation returns the ids of trains arriving at the station
// within [start, end], both inclusive, at minute precision. A train is listed
// once per qualifying visit, in the order the trains are given.
func TrainsThroughStation(trains []models.Train, station models.Station, start, end time.Time) []int {
	startMin := models.MinutesSinceMidnight(start)
	endMin := models.MinutesSinceMidnight(end)
	hopMin := int(HopDuration / time.Minute)

	ids := []int{}
	for _, train := range trains {
		departureMin := models.MinutesSinceMidnight(train.DepartureTime)
		for i, st := range train.Route {
			if st != station {
				continue
			}
			arrival := departureMin + i*hopMin
			if arrival >= startMin && arrival <= endMin {
				ids = append(ids, train.ID)
			}
		}
	}
	return ids
}
