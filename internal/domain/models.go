package domain

// LocationCandidate is one location returned by a search query
type LocationCandidate struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Region  string  `json:"region"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	URL     string  `json:"url"`
}

// Label returns the "Name, Country" text shown in the candidate dropdown
func (c LocationCandidate) Label() string {
	if c.Country == "" {
		return c.Name
	}
	return c.Name + ", " + c.Country
}

// Condition describes the weather condition reported by the API
type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

// CurrentConditions holds the current weather at the forecast location
type CurrentConditions struct {
	TempC       float64   `json:"temp_c"`
	FeelsLikeC  float64   `json:"feelslike_c"`
	Condition   Condition `json:"condition"`
	WindKph     float64   `json:"wind_kph"`
	Humidity    int       `json:"humidity"`
	VisKm       float64   `json:"vis_km"`
	LastUpdated string    `json:"last_updated"`
}

// LocationInfo describes the location a forecast was resolved to
type LocationInfo struct {
	Name      string `json:"name"`
	Region    string `json:"region"`
	Country   string `json:"country"`
	TzID      string `json:"tz_id"`
	Localtime string `json:"localtime"`
}

// DaySummary is the per-day aggregate of a forecast day
type DaySummary struct {
	AvgTempC  *float64  `json:"avgtemp_c"`
	MaxTempC  float64   `json:"maxtemp_c"`
	MinTempC  float64   `json:"mintemp_c"`
	Condition Condition `json:"condition"`
}

// DayForecast is one calendar day of a forecast
type DayForecast struct {
	Date string      `json:"date"` // YYYY-MM-DD
	Day  *DaySummary `json:"day"`
}

// Forecast is the ordered sequence of forecast days
type Forecast struct {
	ForecastDay []DayForecast `json:"forecastday"`
}

// ForecastState is everything the screen knows about the selected location.
// It is always replaced as a whole, never merged.
type ForecastState struct {
	Current  *CurrentConditions `json:"current"`
	Location *LocationInfo      `json:"location"`
	Forecast *Forecast          `json:"forecast"`
}

// HasWeatherData reports whether both current conditions and location are present
func (s ForecastState) HasWeatherData() bool {
	return s.Current != nil && s.Location != nil
}

// Days returns the forecast days, or nil when there is no forecast
func (s ForecastState) Days() []DayForecast {
	if s.Forecast == nil {
		return nil
	}
	return s.Forecast.ForecastDay
}
