package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStation is returned when a name does not match any known station
var ErrUnknownStation = errors.New("unknown station")

// Station represents a named station on the network
type Station string

const (
	Delhi    Station = "DELHI"
	Mumbai   Station = "MUMBAI"
	Kolkata  Station = "KOLKATA"
	Chennai  Station = "CHENNAI"
	Pune     Station = "PUNE"
	Agra     Station = "AGRA"
	Kanpur   Station = "KANPUR"
	Jaipur   Station = "JAIPUR"
	Lucknow  Station = "LUCKNOW"
	Bhopal   Station = "BHOPAL"
	Nagpur   Station = "NAGPUR"
	Surat    Station = "SURAT"
	Patna    Station = "PATNA"
	Amritsar Station = "AMRITSAR"
)

var stations = map[Station]struct{}{
	Delhi: {}, Mumbai: {}, Kolkata: {}, Chennai: {}, Pune: {}, Agra: {}, Kanpur: {},
	Jaipur: {}, Lucknow: {}, Bhopal: {}, Nagpur: {}, Surat: {}, Patna: {}, Amritsar: {},
}

// ParseStation converts a station name (any case) into a Station
func ParseStation(name string) (Station, error) {
	st := Station(strings.ToUpper(strings.TrimSpace(name)))
	if _, ok := stations[st]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStation, name)
	}
	return st, nil
}

func (s Station) String() string {
	return string(s)
}

// UnmarshalText validates station names coming from JSON bodies and query strings
func (s *Station) UnmarshalText(text []byte) error {
	st, err := ParseStation(string(text))
	if err != nil {
		return err
	}
	*s = st
	return nil
}
