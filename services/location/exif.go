package location

import (
	"errors"
	"fmt"
	"io"

	"tatya/models"

	"github.com/rwcarlsen/goexif/exif"
)

// ErrNoGPSData means the image carried no usable GPS tags; the user is
// asked to drop a pin manually instead.
var ErrNoGPSData = errors.New("no location found in image")

// FromImage extracts the GPS position embedded in a field photo's EXIF
// block. Images without EXIF or without GPS tags return ErrNoGPSData.
func FromImage(r io.Reader) (models.Coordinates, error) {
	meta, err := exif.Decode(r)
	if err != nil {
		return models.Coordinates{}, ErrNoGPSData
	}
	lat, lng, err := meta.LatLong()
	if err != nil {
		return models.Coordinates{}, ErrNoGPSData
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return models.Coordinates{}, fmt.Errorf("image carries out-of-range coordinates (%f, %f)", lat, lng)
	}
	return models.Coordinates{Lat: lat, Lng: lng}, nil
}
