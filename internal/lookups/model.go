package lookups

import "time"

// Lookup is the stored record of one successful recommendation.
type Lookup struct {
	ID        string    `json:"id"`
	Temp      float64   `json:"temp"`
	WindSpeed float64   `json:"windSpeed"`
	Bucket    int       `json:"bucket"`
	Condition string    `json:"condition"`
	Items     []string  `json:"items"`
	ImageURLs []string  `json:"imageUrls"`
	CreatedAt time.Time `json:"createdAt"`
}
