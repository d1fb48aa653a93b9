package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tatya/config"
	"tatya/models"
	"tatya/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// maxSearchResults caps the suggestion list shown under the search box.
const maxSearchResults = 5

// Geocoder talks to a Nominatim-compatible endpoint. The public
// instance allows one request per second, so every call goes through
// the limiter.
type Geocoder struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

func NewGeocoder() *Geocoder {
	rps := config.AppConfig.GeocoderRPS
	if rps <= 0 {
		rps = 1.0
	}
	return &Geocoder{
		baseURL: config.AppConfig.GeocoderBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		logger:  utils.GetLogger(),
	}
}

// Search forward-geocodes a free-text query into up to five candidate
// places. An empty query returns no results without a network call.
func (g *Geocoder) Search(ctx context.Context, query string) ([]models.GeocodeResult, error) {
	if query == "" {
		return nil, nil
	}
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=%d",
		g.baseURL, url.QueryEscape(query), maxSearchResults)
	var results []models.GeocodeResult
	if err := g.get(ctx, endpoint, &results); err != nil {
		return nil, fmt.Errorf("failed to search for %q: %w", query, err)
	}
	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}
	return results, nil
}

// Reverse resolves coordinates into a display address. A failure here
// is not fatal for the flow; callers show the bare coordinates.
func (g *Geocoder) Reverse(ctx context.Context, coords models.Coordinates) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/reverse?lat=%s&lon=%s&format=json",
		g.baseURL,
		strconv.FormatFloat(coords.Lat, 'f', -1, 64),
		strconv.FormatFloat(coords.Lng, 'f', -1, 64))
	var result models.GeocodeResult
	if err := g.get(ctx, endpoint, &result); err != nil {
		return "", fmt.Errorf("failed to reverse geocode: %w", err)
	}
	return result.DisplayName, nil
}

// Coordinates parses the string lat/lon pair Nominatim returns.
func Coordinates(result models.GeocodeResult) (models.Coordinates, error) {
	lat, err := strconv.ParseFloat(result.Lat, 64)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("invalid latitude %q: %w", result.Lat, err)
	}
	lng, err := strconv.ParseFloat(result.Lon, 64)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("invalid longitude %q: %w", result.Lon, err)
	}
	return models.Coordinates{Lat: lat, Lng: lng}, nil
}

func (g *Geocoder) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	// Nominatim's usage policy requires an identifying agent.
	req.Header.Set("User-Agent", "tatya-client/1.0")

	resp, err := g.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.logger.Warn("Geocoder returned non-OK status", zap.Int("status", resp.StatusCode))
		return fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
