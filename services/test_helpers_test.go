package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"train-occupancy/models"
)

func clock(t *testing.T, value string) time.Time {
	t.Helper()
	tod, err := models.ParseTimeOfDay(value)
	require.NoError(t, err)
	return tod
}

func ticket(from, to models.Station, ages ...int) models.Ticket {
	passengers := make([]models.Passenger, len(ages))
	for i, age := range ages {
		passengers[i] = models.Passenger{ID: i + 1, Age: age}
	}
	return models.Ticket{FromStation: from, ToStation: to, Passengers: passengers}
}

// fourStopTrain runs DELHI, AGRA, KANPUR, LUCKNOW with 2 seats and tickets
// DELHI->KANPUR and AGRA->LUCKNOW, one passenger each.
func fourStopTrain() *models.Train {
	return &models.Train{
		ID:        1,
		Route:     models.Route{models.Delhi, models.Agra, models.Kanpur, models.Lucknow},
		NoOfSeats: 2,
		BookedTickets: []models.Ticket{
			ticket(models.Delhi, models.Kanpur, 30),
			ticket(models.Agra, models.Lucknow, 45),
		},
	}
}
