package weather

import (
	"context"
	"fmt"

	"runwear/internal/clothing"
)

// Query selects a location by ZIP or by coordinates.
type Query struct {
	Zip string
	Lat *float64
	Lon *float64
}

// Recommendation is the clothing advice attached to a forecast.
type Recommendation struct {
	Bucket    int                `json:"bucket"`
	Condition clothing.Condition `json:"condition"`
	ImageURLs []string           `json:"imageUrls"`
}

// Result pairs the current forecast with its recommendation.
type Result struct {
	Forecast       Forecast       `json:"forecast"`
	Recommendation Recommendation `json:"recommendation"`
}

// Service resolves a forecast and recommends clothing for it.
type Service struct {
	Client   *Client
	Clothing *clothing.Service
}

// NewService constructs a Service.
func NewService(client *Client, clothingSvc *clothing.Service) *Service {
	return &Service{Client: client, Clothing: clothingSvc}
}

// Forecast looks up the current period for q and recommends clothing for it.
func (s *Service) Forecast(ctx context.Context, q Query) (Result, error) {
	var (
		loc    Location
		source string
	)
	if q.Zip != "" {
		resolved, err := s.Client.ResolveZip(ctx, q.Zip)
		if err != nil {
			return Result{}, fmt.Errorf("resolve zip %s: %w", q.Zip, err)
		}
		loc = resolved
		source = "zip " + q.Zip
	} else {
		loc = Location{Latitude: *q.Lat, Longitude: *q.Lon}
		source = fmt.Sprintf("coordinates %.4f,%.4f", loc.Latitude, loc.Longitude)
	}

	p, err := s.Client.CurrentPeriod(ctx, loc)
	if err != nil {
		return Result{}, fmt.Errorf("forecast %.4f,%.4f: %w", loc.Latitude, loc.Longitude, err)
	}
	wind, err := ParseWindSpeed(p.WindSpeed)
	if err != nil {
		return Result{}, err
	}

	forecast := Forecast{
		Latitude:                   loc.Latitude,
		Longitude:                  loc.Longitude,
		Temperature:                p.Temperature,
		TemperatureUnit:            p.TemperatureUnit,
		ShortForecast:              p.ShortForecast,
		WindSpeed:                  p.WindSpeed,
		WindSpeedMph:               wind,
		ProbabilityOfPrecipitation: p.ProbabilityOfPrecipitation.Value,
		Source:                     source,
	}
	rec := s.Clothing.Recommend(ctx, clothing.Request{Temp: p.Temperature, WindSpeed: wind})
	return Result{
		Forecast: forecast,
		Recommendation: Recommendation{
			Bucket:    rec.Bucket,
			Condition: rec.Condition,
			ImageURLs: rec.ImageURLs,
		},
	}, nil
}
