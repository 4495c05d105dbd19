package models

import "time"

// Train represents a train running along a fixed route
type Train struct {
	ID            int       `json:"id"`
	Route         Route     `json:"route"`
	NoOfSeats     int       `json:"no_of_seats"`
	DepartureTime time.Time `json:"departure_time"` // only hour and minute are meaningful
	BookedTickets []Ticket  `json:"booked_tickets"`
}

// Ticket is a booking for one or more passengers over part of a train's route
type Ticket struct {
	ID          int         `json:"id"`
	TrainID     int         `json:"train_id"`
	FromStation Station     `json:"from_station"`
	ToStation   Station     `json:"to_station"`
	Passengers  []Passenger `json:"passengers"`
}

// Passenger represents a passenger travelling on a ticket
type Passenger struct {
	ID  int `json:"id"`
	Age int `json:"age"`
}

// Clone returns a deep copy so callers can't mutate shared ticket lists
func (t Train) Clone() Train {
	c := t
	c.Route = append(Route(nil), t.Route...)
	c.BookedTickets = make([]Ticket, len(t.BookedTickets))
	for i, ticket := range t.BookedTickets {
		ticket.Passengers = append([]Passenger(nil), ticket.Passengers...)
		c.BookedTickets[i] = ticket
	}
	return c
}
