package database

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"train-occupancy/models"
)

func TestGroupTickets(t *testing.T) {
	records := []ticketRow{
		{ticketID: 1, trainID: 10, from: "DELHI", to: "AGRA", passengerID: valid(1), age: valid(30)},
		{ticketID: 1, trainID: 10, from: "DELHI", to: "AGRA", passengerID: valid(2), age: valid(55)},
		{ticketID: 2, trainID: 10, from: "AGRA", to: "KANPUR"},
		{ticketID: 3, trainID: 11, from: "MUMBAI", to: "SURAT", passengerID: valid(3), age: valid(8)},
	}

	grouped, err := groupTickets(records)
	require.NoError(t, err)
	require.Len(t, grouped[10], 2)
	require.Len(t, grouped[11], 1)

	first := grouped[10][0]
	assert.Equal(t, models.Delhi, first.FromStation)
	assert.Equal(t, models.Agra, first.ToStation)
	assert.Equal(t, []models.Passenger{{ID: 1, Age: 30}, {ID: 2, Age: 55}}, first.Passengers)

	assert.NotNil(t, grouped[10][1].Passengers)
	assert.Empty(t, grouped[10][1].Passengers)
	assert.Equal(t, 8, grouped[11][0].Passengers[0].Age)
}

func TestGroupTickets_UnknownStation(t *testing.T) {
	_, err := groupTickets([]ticketRow{{ticketID: 1, trainID: 1, from: "ATLANTIS", to: "AGRA"}})
	assert.ErrorIs(t, err, models.ErrUnknownStation)
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int) = r.values[0].(int)
	*dest[1].(*string) = r.values[1].(string)
	*dest[2].(*int) = r.values[2].(int)
	*dest[3].(*time.Time) = r.values[3].(time.Time)
	return nil
}

func TestScanTrain(t *testing.T) {
	departure := time.Date(0, 1, 1, 14, 15, 0, 0, time.UTC)

	train, err := scanTrain(fakeRow{values: []any{3, "DELHI,AGRA,DELHI", 40, departure}})
	require.NoError(t, err)
	assert.Equal(t, 3, train.ID)
	assert.Equal(t, models.Route{models.Delhi, models.Agra, models.Delhi}, train.Route)
	assert.Equal(t, 40, train.NoOfSeats)
	assert.Equal(t, 855, models.MinutesSinceMidnight(train.DepartureTime))
}

func TestScanTrain_Errors(t *testing.T) {
	_, err := scanTrain(fakeRow{err: sql.ErrNoRows})
	assert.True(t, errors.Is(err, sql.ErrNoRows))

	_, err = scanTrain(fakeRow{values: []any{3, "", 40, time.Time{}}})
	assert.ErrorIs(t, err, models.ErrEmptyRoute)
}

func valid(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: true}
}
