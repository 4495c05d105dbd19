package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStation(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    Station
		wantErr bool
	}{
		{name: "Upper", input: "DELHI", want: Delhi},
		{name: "Lower", input: "agra", want: Agra},
		{name: "Padded", input: " Pune ", want: Pune},
		{name: "Unknown", input: "GOTHAM", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseStation(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnknownStation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStation_UnmarshalJSON(t *testing.T) {
	var req SeatAvailabilityRequest
	err := json.Unmarshal([]byte(`{"train_id":3,"from_station":"delhi","to_station":"KANPUR"}`), &req)
	require.NoError(t, err)
	assert.Equal(t, Delhi, req.FromStation)
	assert.Equal(t, Kanpur, req.ToStation)

	err = json.Unmarshal([]byte(`{"from_station":"NOWHERE"}`), &req)
	assert.ErrorIs(t, err, ErrUnknownStation)
}

func TestRoute_RoundTrip(t *testing.T) {
	route := Route{Delhi, Agra, Kanpur, Lucknow}

	encoded := route.String()
	assert.Equal(t, "DELHI,AGRA,KANPUR,LUCKNOW", encoded)

	decoded, err := ParseRoute(encoded)
	require.NoError(t, err)
	assert.Equal(t, route, decoded)
}

func TestParseRoute_Errors(t *testing.T) {
	_, err := ParseRoute("")
	assert.ErrorIs(t, err, ErrEmptyRoute)

	_, err = ParseRoute("DELHI,,AGRA")
	assert.ErrorIs(t, err, ErrUnknownStation)
}

func TestRoute_Contains(t *testing.T) {
	route := Route{Delhi, Agra, Delhi}

	assert.True(t, route.Contains(Delhi))
	assert.True(t, route.Contains(Agra))
	assert.False(t, route.Contains(Pune))
}

func TestTrain_CloneIsDeep(t *testing.T) {
	train := Train{
		ID:    1,
		Route: Route{Delhi, Agra},
		BookedTickets: []Ticket{
			{FromStation: Delhi, ToStation: Agra, Passengers: []Passenger{{Age: 30}}},
		},
	}

	c := train.Clone()
	c.Route[0] = Pune
	c.BookedTickets[0].Passengers[0].Age = 99

	assert.Equal(t, Delhi, train.Route[0])
	assert.Equal(t, 30, train.BookedTickets[0].Passengers[0].Age)
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("10:30")
	require.NoError(t, err)
	assert.Equal(t, 630, MinutesSinceMidnight(tod))

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)

	_, err = ParseTimeOfDay("noon")
	assert.Error(t, err)
}
