package models

import (
	"fmt"
	"time"
)

// TimeOfDayLayout is the wall-clock format used for departure times and query windows
const TimeOfDayLayout = "15:04"

// AddTrainRequest represents a train creation request
type AddTrainRequest struct {
	StationRoute  []Station `json:"station_route" binding:"required,min=1"`
	NoOfSeats     int       `json:"no_of_seats" binding:"min=0"`
	DepartureTime string    `json:"departure_time" binding:"required"`
}

// AddTrainResponse carries the id assigned to a new train
type AddTrainResponse struct {
	TrainID int `json:"train_id"`
}

// SeatAvailabilityRequest asks for free seats between two stations
type SeatAvailabilityRequest struct {
	TrainID     int     `json:"train_id"`
	FromStation Station `json:"from_station"`
	ToStation   Station `json:"to_station"`
}

// SeatAvailabilityResponse represents the seat availability result
type SeatAvailabilityResponse struct {
	TrainID        int `json:"train_id"`
	AvailableSeats int `json:"available_seats"`
}

// BoardingResponse represents the number of people boarding at a station
type BoardingResponse struct {
	TrainID int     `json:"train_id"`
	Station Station `json:"station"`
	Count   int     `json:"count"`
}

// OldestPassengerResponse represents the oldest passenger's age
type OldestPassengerResponse struct {
	TrainID int `json:"train_id"`
	Age     int `json:"age"`
}

// TrainsInWindowResponse lists trains passing a station within a time window
type TrainsInWindowResponse struct {
	Station  Station `json:"station"`
	TrainIDs []int   `json:"train_ids"`
}

// ParseTimeOfDay parses an "HH:MM" wall-clock time
func ParseTimeOfDay(value string) (time.Time, error) {
	t, err := time.Parse(TimeOfDayLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, expected HH:MM: %w", value, err)
	}
	return t, nil
}

// MinutesSinceMidnight drops everything below minute precision
func MinutesSinceMidnight(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
