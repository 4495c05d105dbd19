package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyRoute is returned when a route has no stations
var ErrEmptyRoute = errors.New("route must contain at least one station")

const routeSeparator = ","

// Route is the ordered list of stations a train visits
type Route []Station

// String returns the comma-joined form the route is persisted in
func (r Route) String() string {
	names := make([]string, len(r))
	for i, st := range r {
		names[i] = st.String()
	}
	return strings.Join(names, routeSeparator)
}

// Contains reports whether the station appears anywhere on the route
func (r Route) Contains(station Station) bool {
	for _, st := range r {
		if st == station {
			return true
		}
	}
	return false
}

// ParseRoute decodes a comma-joined route
func ParseRoute(encoded string) (Route, error) {
	if strings.TrimSpace(encoded) == "" {
		return nil, ErrEmptyRoute
	}

	parts := strings.Split(encoded, routeSeparator)
	route := make(Route, 0, len(parts))
	for i, part := range parts {
		st, err := ParseStation(part)
		if err != nil {
			return nil, fmt.Errorf("route position %d: %w", i, err)
		}
		route = append(route, st)
	}
	return route, nil
}
