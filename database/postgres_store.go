package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"train-occupancy/models"
)

const departureTimeFormat = "15:04:05"

// PostgresStore reads and writes trains in PostgreSQL
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// FindTrainByID loads a train together with its tickets and passengers
func (s *PostgresStore) FindTrainByID(ctx context.Context, id int) (*models.Train, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, route, no_of_seats, departure_time
		FROM trains
		WHERE id = $1
	`, id)

	train, err := scanTrain(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTrainNotFound
		}
		return nil, err
	}

	tickets, err := s.loadTickets(ctx, []int{id})
	if err != nil {
		return nil, err
	}
	train.BookedTickets = tickets[id]

	return train, nil
}

// ListAllTrains loads every train ordered by id
func (s *PostgresStore) ListAllTrains(ctx context.Context) ([]models.Train, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, route, no_of_seats, departure_time
		FROM trains
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("error querying trains: %w", err)
	}
	defer rows.Close()

	var trains []models.Train
	var ids []int
	for rows.Next() {
		train, err := scanTrain(rows)
		if err != nil {
			return nil, err
		}
		trains = append(trains, *train)
		ids = append(ids, train.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return trains, nil
	}

	tickets, err := s.loadTickets(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range trains {
		trains[i].BookedTickets = tickets[trains[i].ID]
	}

	return trains, nil
}

// SaveTrain inserts a train and its booked tickets in one transaction and
// returns the generated id. Nothing is written when validation fails.
func (s *PostgresStore) SaveTrain(ctx context.Context, train *models.Train) (id int, err error) {
	if err := train.Validate(); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer rollbackOnError(tx, &err, "save train")

	err = tx.QueryRowContext(ctx, `
		INSERT INTO trains (route, no_of_seats, departure_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`, train.Route.String(), train.NoOfSeats, train.DepartureTime.Format(departureTimeFormat)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create train: %w", err)
	}

	for i := range train.BookedTickets {
		if err = insertTicket(ctx, tx, id, &train.BookedTickets[i]); err != nil {
			return 0, err
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit train: %w", err)
	}

	train.ID = id
	return id, nil
}

// AddTicket books a ticket and its passengers against an existing train
func (s *PostgresStore) AddTicket(ctx context.Context, trainID int, ticket models.Ticket) (id int, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer rollbackOnError(tx, &err, "add ticket")

	var encoded string
	err = tx.QueryRowContext(ctx, `SELECT route FROM trains WHERE id = $1 FOR UPDATE`, trainID).Scan(&encoded)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrTrainNotFound
		}
		return 0, err
	}

	route, err := models.ParseRoute(encoded)
	if err != nil {
		return 0, fmt.Errorf("train %d has invalid route: %w", trainID, err)
	}
	if err = (models.Train{ID: trainID, Route: route}).ValidateTicket(ticket); err != nil {
		return 0, err
	}

	ticket.Passengers = append([]models.Passenger(nil), ticket.Passengers...)
	if err = insertTicket(ctx, tx, trainID, &ticket); err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit ticket: %w", err)
	}

	return ticket.ID, nil
}

func insertTicket(ctx context.Context, tx *sql.Tx, trainID int, ticket *models.Ticket) error {
	err := tx.QueryRowContext(ctx, `
		INSERT INTO tickets (train_id, from_station, to_station)
		VALUES ($1, $2, $3)
		RETURNING id
	`, trainID, ticket.FromStation.String(), ticket.ToStation.String()).Scan(&ticket.ID)
	if err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	ticket.TrainID = trainID

	for i := range ticket.Passengers {
		err = tx.QueryRowContext(ctx, `
			INSERT INTO passengers (ticket_id, age)
			VALUES ($1, $2)
			RETURNING id
		`, ticket.ID, ticket.Passengers[i].Age).Scan(&ticket.Passengers[i].ID)
		if err != nil {
			return fmt.Errorf("failed to add passenger: %w", err)
		}
	}
	return nil
}

// rollbackOnError rolls the transaction back when the surrounding call failed
func rollbackOnError(tx *sql.Tx, err *error, operation string) {
	if *err == nil {
		return
	}
	if rbErr := tx.Rollback(); rbErr != nil {
		log.Error().Err(rbErr).Str("operation", operation).Msg("Failed to rollback transaction")
	}
}

func (s *PostgresStore) loadTickets(ctx context.Context, trainIDs []int) (map[int][]models.Ticket, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.id, t.train_id, t.from_station, t.to_station, p.id, p.age
		FROM tickets t
		LEFT JOIN passengers p ON p.ticket_id = t.id
		WHERE t.train_id = ANY($1)
		ORDER BY t.train_id, t.id, p.id
	`, pq.Array(trainIDs))
	if err != nil {
		return nil, fmt.Errorf("error querying tickets: %w", err)
	}
	defer rows.Close()

	var records []ticketRow
	for rows.Next() {
		var r ticketRow
		if err := rows.Scan(&r.ticketID, &r.trainID, &r.from, &r.to, &r.passengerID, &r.age); err != nil {
			return nil, fmt.Errorf("error scanning ticket: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return groupTickets(records)
}

// ticketRow is one row of the tickets/passengers join
type ticketRow struct {
	ticketID    int
	trainID     int
	from        string
	to          string
	passengerID sql.NullInt64
	age         sql.NullInt64
}

// groupTickets folds join rows (ordered by train, ticket) into tickets per train
func groupTickets(records []ticketRow) (map[int][]models.Ticket, error) {
	byTrain := make(map[int][]models.Ticket)

	for _, r := range records {
		tickets := byTrain[r.trainID]
		if n := len(tickets); n == 0 || tickets[n-1].ID != r.ticketID {
			from, err := models.ParseStation(r.from)
			if err != nil {
				return nil, fmt.Errorf("ticket %d: %w", r.ticketID, err)
			}
			to, err := models.ParseStation(r.to)
			if err != nil {
				return nil, fmt.Errorf("ticket %d: %w", r.ticketID, err)
			}
			tickets = append(tickets, models.Ticket{
				ID:          r.ticketID,
				TrainID:     r.trainID,
				FromStation: from,
				ToStation:   to,
				Passengers:  []models.Passenger{},
			})
		}

		if r.passengerID.Valid {
			last := &tickets[len(tickets)-1]
			last.Passengers = append(last.Passengers, models.Passenger{
				ID:  int(r.passengerID.Int64),
				Age: int(r.age.Int64),
			})
		}
		byTrain[r.trainID] = tickets
	}

	return byTrain, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrain(row rowScanner) (*models.Train, error) {
	var train models.Train
	var route string

	if err := row.Scan(&train.ID, &route, &train.NoOfSeats, &train.DepartureTime); err != nil {
		return nil, err
	}

	parsed, err := models.ParseRoute(route)
	if err != nil {
		return nil, fmt.Errorf("train %d has invalid route: %w", train.ID, err)
	}
	train.Route = parsed

	return &train, nil
}
