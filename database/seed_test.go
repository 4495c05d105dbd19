package database

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"train-occupancy/models"
)

func TestSeed_FromFixture(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	f, err := os.Open("testdata/trains.yaml")
	require.NoError(t, err)
	defer f.Close()

	ids, err := Seed(ctx, store, f)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids)

	first, err := store.FindTrainByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.Route{models.Delhi, models.Agra, models.Kanpur, models.Lucknow}, first.Route)
	assert.Equal(t, 600, models.MinutesSinceMidnight(first.DepartureTime))
	assert.Len(t, first.BookedTickets, 2)

	second, err := store.FindTrainByID(ctx, 2)
	require.NoError(t, err)
	require.Len(t, second.BookedTickets, 1)
	assert.Equal(t, models.Mumbai, second.BookedTickets[0].FromStation)
	assert.Len(t, second.BookedTickets[0].Passengers, 3)
}

func TestSeed_InvalidFixtures(t *testing.T) {
	testCases := []struct {
		name    string
		fixture string
	}{
		{name: "Malformed", fixture: "trains: [\n"},
		{name: "EmptyRoute", fixture: "trains:\n  - no_of_seats: 1\n    departure_time: \"10:00\"\n"},
		{name: "UnknownStation", fixture: "trains:\n  - route: [GOTHAM]\n    departure_time: \"10:00\"\n"},
		{name: "BadTime", fixture: "trains:\n  - route: [DELHI]\n    departure_time: \"late\"\n"},
		{name: "NegativeSeats", fixture: "trains:\n  - route: [DELHI, AGRA]\n    no_of_seats: -5\n    departure_time: \"10:00\"\n"},
		{name: "BadTicketStation", fixture: ticketFixture("NOWHERE", "DELHI", 30)},
		{name: "TicketBoardingOffRoute", fixture: ticketFixture("PUNE", "AGRA", 30)},
		{name: "TicketDestinationOffRoute", fixture: ticketFixture("DELHI", "KANPUR", 30)},
		{name: "TicketBackwards", fixture: ticketFixture("AGRA", "DELHI", 30)},
		{name: "NegativeAge", fixture: ticketFixture("DELHI", "AGRA", -3)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			store := NewMemoryStore()

			_, err := Seed(ctx, store, strings.NewReader(tc.fixture))
			assert.Error(t, err)

			trains, err := store.ListAllTrains(ctx)
			require.NoError(t, err)
			assert.Empty(t, trains)
		})
	}
}

func TestSeed_LaterBadTrainWritesNothing(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	fixture := `trains:
  - route: [DELHI, AGRA]
    no_of_seats: 2
    departure_time: "10:00"
  - route: [MUMBAI, SURAT]
    no_of_seats: 2
    departure_time: "11:00"
    tickets:
      - from: SURAT
        to: MUMBAI
        passenger_ages: [20]
`
	_, err := Seed(ctx, store, strings.NewReader(fixture))
	assert.ErrorIs(t, err, models.ErrInvalidTicket)

	trains, err := store.ListAllTrains(ctx)
	require.NoError(t, err)
	assert.Empty(t, trains)
}

// ticketFixture builds a DELHI,AGRA train with a single one-passenger ticket
func ticketFixture(from, to string, age int) string {
	return fmt.Sprintf(`trains:
  - route: [DELHI, AGRA]
    no_of_seats: 2
    departure_time: "10:00"
    tickets:
      - from: %s
        to: %s
        passenger_ages: [%d]
`, from, to, age)
}
