package services

import "train-occupancy/models"

// RouteIndex maps each station on a route to its 0-based position.
// When a station repeats, the last occurrence wins.
type RouteIndex map[models.Station]int

// BuildRouteIndex derives a RouteIndex from an ordered route
func BuildRouteIndex(route models.Route) RouteIndex {
	index := make(RouteIndex, len(route))
	for i, st := range route {
		index[st] = i
	}
	return index
}

// Position returns where the station sits on the route
func (ri RouteIndex) Position(station models.Station) (int, bool) {
	pos, ok := ri[station]
	return pos, ok
}
