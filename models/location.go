package models

import "time"

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ConfirmedLocation is the service location the user settled on,
// persisted across reloads in the progress store.
type ConfirmedLocation struct {
	Coordinates Coordinates `json:"coordinates"`
	Address     string      `json:"address,omitempty"`
	Timestamp   time.Time   `json:"timestamp"`
}

// GeocodeResult is one match from the forward geocoder.
type GeocodeResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}
