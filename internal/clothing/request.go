package clothing

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Request is a validated recommendation request.
type Request struct {
	Temp      float64 `json:"temp"`
	WindSpeed float64 `json:"windSpeed"`
}

// ParseRequest decodes and validates a JSON request body.
// Decode failures are returned as-is; shape and type problems wrap ErrValidation.
func ParseRequest(body []byte) (Request, error) {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return Request{}, err
	}
	fields, ok := raw.(map[string]any)
	if !ok {
		return Request{}, fmt.Errorf("%w: request body must be a JSON object", ErrValidation)
	}

	tempRaw, hasTemp := fields["temp"]
	windRaw, hasWind := fields["windSpeed"]
	if !hasTemp || !hasWind {
		return Request{}, fmt.Errorf("%w: temperature or wind speed data missing", ErrValidation)
	}

	temp, tempOK := tempRaw.(float64)
	wind, windOK := windRaw.(float64)
	if !tempOK || !windOK {
		return Request{}, fmt.Errorf("%w: temperature and wind speed must be numeric", ErrValidation)
	}

	return Request{Temp: temp, WindSpeed: wind}, nil
}
