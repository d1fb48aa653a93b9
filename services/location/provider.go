// Package location resolves the service location: device position with
// a fixed fallback center, forward and reverse geocoding, and GPS
// extraction from uploaded field photos.
package location

import (
	"context"
	"time"

	"tatya/config"
	"tatya/models"
	"tatya/utils"

	"go.uber.org/zap"
)

// Provider reports the device's current position. Implementations may
// fail or be denied permission; callers fall back to DefaultCenter.
type Provider interface {
	CurrentPosition(ctx context.Context) (models.Coordinates, error)
}

// DefaultCenter is the map center used when no device position is
// available (Mumbai unless configured otherwise).
func DefaultCenter() models.Coordinates {
	return models.Coordinates{
		Lat: config.AppConfig.DefaultLat,
		Lng: config.AppConfig.DefaultLng,
	}
}

// Resolver picks the initial map position. The selection is never
// empty: a denied or failed provider yields the default center.
type Resolver struct {
	provider Provider
	logger   *zap.Logger
}

func NewResolver(provider Provider) *Resolver {
	return &Resolver{
		provider: provider,
		logger:   utils.GetLogger(),
	}
}

// InitialPosition returns the device position when the provider can
// supply one, otherwise the default center. The second return reports
// whether the position came from the device.
func (r *Resolver) InitialPosition(ctx context.Context) (models.Coordinates, bool) {
	if r.provider == nil {
		return DefaultCenter(), false
	}
	pos, err := r.provider.CurrentPosition(ctx)
	if err != nil {
		r.logger.Info("Device location unavailable, using default center", zap.Error(err))
		return DefaultCenter(), false
	}
	return pos, true
}

// Confirm stamps a picked coordinate as the confirmed service location.
func Confirm(coords models.Coordinates, address string) models.ConfirmedLocation {
	return models.ConfirmedLocation{
		Coordinates: coords,
		Address:     address,
		Timestamp:   time.Now().UTC(),
	}
}
