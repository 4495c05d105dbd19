package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeSeats is returned for a train with fewer than zero seats
	ErrNegativeSeats = errors.New("number of seats cannot be negative")

	// ErrInvalidTicket is returned for a ticket that does not fit its train
	ErrInvalidTicket = errors.New("invalid ticket")
)

// Validate checks the train's own fields and every booked ticket against its route
func (t Train) Validate() error {
	if len(t.Route) == 0 {
		return ErrEmptyRoute
	}
	if t.NoOfSeats < 0 {
		return ErrNegativeSeats
	}

	for i, ticket := range t.BookedTickets {
		if err := t.ValidateTicket(ticket); err != nil {
			return fmt.Errorf("ticket %d: %w", i, err)
		}
	}
	return nil
}

// ValidateTicket checks that the ticket travels forward between two stations
// on the train's route and that every passenger age is non-negative. Positions
// follow the last occurrence of a repeated station.
func (t Train) ValidateTicket(ticket Ticket) error {
	positions := make(map[Station]int, len(t.Route))
	for i, st := range t.Route {
		positions[st] = i
	}

	fromPos, ok := positions[ticket.FromStation]
	if !ok {
		return fmt.Errorf("%w: boarding station %s is not on the route", ErrInvalidTicket, ticket.FromStation)
	}
	toPos, ok := positions[ticket.ToStation]
	if !ok {
		return fmt.Errorf("%w: destination %s is not on the route", ErrInvalidTicket, ticket.ToStation)
	}
	if fromPos >= toPos {
		return fmt.Errorf("%w: %s does not come before %s", ErrInvalidTicket, ticket.FromStation, ticket.ToStation)
	}

	for i, p := range ticket.Passengers {
		if p.Age < 0 {
			return fmt.Errorf("%w: passenger %d has negative age %d", ErrInvalidTicket, i, p.Age)
		}
	}
	return nil
}
