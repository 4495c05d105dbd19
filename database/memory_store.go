package database

import (
	"context"
	"sort"
	"sync"

	"train-occupancy/models"
)

// MemoryStore keeps trains in process. Every read returns a copy, so a query
// always works on a consistent snapshot.
type MemoryStore struct {
	mu              sync.RWMutex
	trains          map[int]models.Train
	nextTrainID     int
	nextTicketID    int
	nextPassengerID int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		trains:          make(map[int]models.Train),
		nextTrainID:     1,
		nextTicketID:    1,
		nextPassengerID: 1,
	}
}

func (s *MemoryStore) FindTrainByID(_ context.Context, id int) (*models.Train, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	train, ok := s.trains[id]
	if !ok {
		return nil, ErrTrainNotFound
	}
	c := train.Clone()
	return &c, nil
}

func (s *MemoryStore) ListAllTrains(_ context.Context) ([]models.Train, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trains := make([]models.Train, 0, len(s.trains))
	for _, train := range s.trains {
		trains = append(trains, train.Clone())
	}
	sort.Slice(trains, func(i, j int) bool { return trains[i].ID < trains[j].ID })
	return trains, nil
}

// SaveTrain stores the train together with its booked tickets. Nothing is
// stored when the train or any ticket is invalid.
func (s *MemoryStore) SaveTrain(_ context.Context, train *models.Train) (int, error) {
	if err := train.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	train.ID = s.nextTrainID
	s.nextTrainID++
	for i := range train.BookedTickets {
		s.assignTicketIDs(train.ID, &train.BookedTickets[i])
	}
	s.trains[train.ID] = train.Clone()
	return train.ID, nil
}

func (s *MemoryStore) AddTicket(_ context.Context, trainID int, ticket models.Ticket) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	train, ok := s.trains[trainID]
	if !ok {
		return 0, ErrTrainNotFound
	}
	if err := train.ValidateTicket(ticket); err != nil {
		return 0, err
	}

	ticket.Passengers = append([]models.Passenger(nil), ticket.Passengers...)
	s.assignTicketIDs(trainID, &ticket)

	train.BookedTickets = append(train.BookedTickets, ticket)
	s.trains[trainID] = train
	return ticket.ID, nil
}

// assignTicketIDs must be called with the write lock held
func (s *MemoryStore) assignTicketIDs(trainID int, ticket *models.Ticket) {
	ticket.ID = s.nextTicketID
	ticket.TrainID = trainID
	s.nextTicketID++

	for i := range ticket.Passengers {
		ticket.Passengers[i].ID = s.nextPassengerID
		s.nextPassengerID++
	}
}
