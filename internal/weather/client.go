package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"skyglance/internal/domain"
)

// errorCodeNoLocation is the API error code for "No matching location found."
const errorCodeNoLocation = 1006

// Client is the read-only view of the weather API used by the forecast flow
type Client interface {
	SearchLocations(ctx context.Context, prefix string) ([]domain.LocationCandidate, error)
	GetForecast(ctx context.Context, city string, days int) (domain.ForecastState, error)
}

// HTTPClient talks to a weatherapi.com compatible HTTP API
type HTTPClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient creates a new API client
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// apiError is the error envelope returned by the API on non-200 responses
type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// SearchLocations returns locations whose name starts with prefix, in API order.
// prefix is sent as typed; only a blank prefix is rejected.
func (c *HTTPClient) SearchLocations(ctx context.Context, prefix string) ([]domain.LocationCandidate, error) {
	if strings.TrimSpace(prefix) == "" {
		return nil, domain.ErrEmptyQuery
	}

	params := url.Values{}
	params.Add("key", c.apiKey)
	params.Add("q", prefix)

	body, err := c.get(ctx, "search.json", params)
	if err != nil {
		return nil, err
	}

	var locations []domain.LocationCandidate
	if err := json.Unmarshal(body, &locations); err != nil {
		return nil, fmt.Errorf("%w: failed to parse search response: %w", domain.ErrInvalidResponse, err)
	}
	if locations == nil {
		locations = []domain.LocationCandidate{}
	}

	return locations, nil
}

// GetForecast returns current conditions and a days-long forecast for city
func (c *HTTPClient) GetForecast(ctx context.Context, city string, days int) (domain.ForecastState, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return domain.ForecastState{}, domain.ErrEmptyQuery
	}

	params := url.Values{}
	params.Add("key", c.apiKey)
	params.Add("q", city)
	params.Add("days", strconv.Itoa(days))

	body, err := c.get(ctx, "forecast.json", params)
	if err != nil {
		return domain.ForecastState{}, err
	}

	var state domain.ForecastState
	if err := json.Unmarshal(body, &state); err != nil {
		return domain.ForecastState{}, fmt.Errorf("%w: failed to parse forecast response: %w", domain.ErrInvalidResponse, err)
	}
	if state.Location == nil {
		return domain.ForecastState{}, fmt.Errorf("%w: forecast response has no location", domain.ErrInvalidResponse)
	}

	return state, nil
}

// get performs a GET against endpoint and returns the body of a 200 response
func (c *HTTPClient) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrNetwork, endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %w", domain.ErrNetwork, err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Code == errorCodeNoLocation {
			return nil, fmt.Errorf("%w: %s", domain.ErrCityNotFound, apiErr.Error.Message)
		}
		msg := apiErr.Error.Message
		if msg == "" {
			msg = strings.TrimSpace(string(body))
		}
		return nil, fmt.Errorf("%w: API error (status %d): %s", domain.ErrInvalidResponse, resp.StatusCode, msg)
	}

	return body, nil
}

var _ Client = (*HTTPClient)(nil)
