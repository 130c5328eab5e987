package weather

// Location is a resolved coordinate pair.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Forecast is the current hourly period for a location.
type Forecast struct {
	Latitude                   float64  `json:"latitude"`
	Longitude                  float64  `json:"longitude"`
	Temperature                float64  `json:"temperature"`
	TemperatureUnit            string   `json:"temperatureUnit"`
	ShortForecast              string   `json:"shortForecast"`
	WindSpeed                  string   `json:"windSpeed"`
	WindSpeedMph               float64  `json:"windSpeedMph"`
	ProbabilityOfPrecipitation *float64 `json:"probabilityOfPrecipitation"`
	Source                     string   `json:"source"`
}

type zipResponse struct {
	Places []struct {
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"places"`
}

type pointsResponse struct {
	Properties struct {
		ForecastHourly string `json:"forecastHourly"`
	} `json:"properties"`
}

type hourlyResponse struct {
	Properties struct {
		Periods []Period `json:"periods"`
	} `json:"properties"`
}

// Period is one hourly forecast entry.
type Period struct {
	Temperature                float64 `json:"temperature"`
	TemperatureUnit            string  `json:"temperatureUnit"`
	ShortForecast              string  `json:"shortForecast"`
	WindSpeed                  string  `json:"windSpeed"`
	ProbabilityOfPrecipitation struct {
		Value *float64 `json:"value"`
	} `json:"probabilityOfPrecipitation"`
}
