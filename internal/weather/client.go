// Package weather fetches live outdoor conditions from the OpenWeatherMap
// API and turns them into EnvironmentalReading values the decision core can
// consume. It is a boundary collaborator: the core never calls out here.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"smart_climate"
)

const (
	defaultBaseURL = "https://api.openweathermap.org"
	defaultTimeout = 10 * time.Second

	currentWeatherPath = "/data/2.5/weather"
	airPollutionPath   = "/data/2.5/air_pollution"
)

// Config carries everything the client needs. The API key lives here, passed
// in by the caller, never read from process-wide state.
type Config struct {
	APIKey  string
	BaseURL string // defaults to the public OpenWeatherMap endpoint
	City    string
	Country string
	Timeout time.Duration
}

// Client talks to OpenWeatherMap over HTTP.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient builds a client from cfg, filling in base URL and timeout defaults.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// currentWeatherResponse mirrors the fields we use from /data/2.5/weather.
type currentWeatherResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
}

// airPollutionResponse mirrors the fields we use from /data/2.5/air_pollution.
type airPollutionResponse struct {
	List []struct {
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
	} `json:"list"`
}

// FetchReading retrieves the current weather for the configured city, then the
// AQI for its coordinates, and combines both into one reading.
func (c *Client) FetchReading(ctx context.Context) (smart_climate.EnvironmentalReading, error) {
	var zero smart_climate.EnvironmentalReading

	var weather currentWeatherResponse
	q := url.Values{}
	q.Set("q", c.cfg.City+","+c.cfg.Country)
	q.Set("appid", c.cfg.APIKey)
	q.Set("units", "metric")
	if err := c.getJSON(ctx, currentWeatherPath, q, &weather); err != nil {
		return zero, fmt.Errorf("fetch current weather: %w", err)
	}

	var pollution airPollutionResponse
	q = url.Values{}
	q.Set("lat", fmt.Sprintf("%g", weather.Coord.Lat))
	q.Set("lon", fmt.Sprintf("%g", weather.Coord.Lon))
	q.Set("appid", c.cfg.APIKey)
	if err := c.getJSON(ctx, airPollutionPath, q, &pollution); err != nil {
		return zero, fmt.Errorf("fetch air pollution: %w", err)
	}
	if len(pollution.List) == 0 {
		return zero, fmt.Errorf("air pollution response for %s,%s has no entries", c.cfg.City, c.cfg.Country)
	}

	return smart_climate.EnvironmentalReading{
		TemperatureC: weather.Main.Temp,
		HumidityPct:  weather.Main.Humidity,
		AQI:          pollution.List[0].Main.AQI,
	}, nil
}

// getJSON performs a GET against path with query params and decodes the body.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	reqURL := c.cfg.BaseURL + path + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", path, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
