package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"context"

	"wayfare/pkg/utils"
)

// GeocodeResult is the coordinate+address value a map click or search
// resolves to. The planner only ever consumes this value, never the
// provider's internals.
type GeocodeResult struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

type GeocodeServiceInterface interface {
	Search(ctx context.Context, query string) (*GeocodeResult, error)
}

type NominatimGeocoder struct {
	HTTP    *http.Client
	BaseURL string
}

// NewNominatimGeocoder builds the forward-geocoding client. The HTTP client
// carries a bounded timeout so a stalled provider fails visibly instead of
// hanging the request.
func NewNominatimGeocoder() *NominatimGeocoder {
	base := os.Getenv("GEOCODER_URL")
	if base == "" {
		base = "https://nominatim.openstreetmap.org"
	}
	return &NominatimGeocoder{
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		BaseURL: base,
	}
}

func (g *NominatimGeocoder) Search(ctx context.Context, query string) (*GeocodeResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, utils.ErrInvalidInput
	}

	u, err := url.Parse(g.BaseURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGeocodeUnavailable, err)
	}
	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", "1")
	u.RawQuery = q.Encode()

	req, _ := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	req.Header.Set("User-Agent", "wayfare/1.0")
	resp, err := g.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGeocodeUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("%w: bad status %s", utils.ErrGeocodeUnavailable, resp.Status)
	}

	var payload []struct {
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", utils.ErrGeocodeUnavailable, err)
	}
	if len(payload) == 0 {
		return nil, utils.ErrLocationNotFound
	}

	lat, err := strconv.ParseFloat(payload[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad latitude %q", utils.ErrGeocodeUnavailable, payload[0].Lat)
	}
	lng, err := strconv.ParseFloat(payload[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad longitude %q", utils.ErrGeocodeUnavailable, payload[0].Lon)
	}

	return &GeocodeResult{
		Latitude:  lat,
		Longitude: lng,
		Address:   payload[0].DisplayName,
	}, nil
}
