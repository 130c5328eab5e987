package weather

import "errors"

var (
	// ErrLocationNotFound means the ZIP lookup returned no place.
	ErrLocationNotFound = errors.New("location not found")
	// ErrNoForecast means the hourly forecast had no periods.
	ErrNoForecast = errors.New("no forecast periods available")
	// ErrUpstreamUnavailable means the circuit breaker rejected the call.
	ErrUpstreamUnavailable = errors.New("weather upstream unavailable")
	// ErrUpstream covers unexpected statuses and undecodable payloads.
	ErrUpstream = errors.New("weather upstream error")
)
