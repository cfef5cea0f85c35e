package aladhan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.aladhan.com/v1"

// Client communicates with the upstream astronomical-calculation API.
type Client struct {
	httpClient *http.Client
	// BaseURL is the API base URL. Exported for testing with httptest.
	BaseURL string
}

// NewClient creates a new API client with sensible defaults.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		BaseURL: defaultBaseURL,
	}
}

// CalendarByCoordinates fetches the prayer-times calendar for one
// Gregorian month at the given coordinates and calculation method.
func (c *Client) CalendarByCoordinates(ctx context.Context, lat, lon float64, method, month, year int) ([]CalendarDay, error) {
	endpoint := fmt.Sprintf("%s/calendar/%d/%d", c.BaseURL, year, month)

	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%f", lat))
	params.Set("longitude", fmt.Sprintf("%f", lon))
	if method >= 0 {
		params.Set("method", fmt.Sprintf("%d", method))
	}

	var resp CalendarResponse
	if err := c.doRequest(ctx, endpoint, params, &resp); err != nil {
		return nil, err
	}
	if resp.Code != http.StatusOK {
		return nil, fmt.Errorf("API error: code=%d status=%s", resp.Code, resp.Status)
	}
	return resp.Data, nil
}

// CalendarByCity fetches the prayer-times calendar for one Gregorian
// month for a named city and country.
func (c *Client) CalendarByCity(ctx context.Context, city, country string, method, month, year int) ([]CalendarDay, error) {
	endpoint := fmt.Sprintf("%s/calendarByCity/%d/%d", c.BaseURL, year, month)

	params := url.Values{}
	params.Set("city", city)
	params.Set("country", country)
	if method >= 0 {
		params.Set("method", fmt.Sprintf("%d", method))
	}

	var resp CalendarResponse
	if err := c.doRequest(ctx, endpoint, params, &resp); err != nil {
		return nil, err
	}
	if resp.Code != http.StatusOK {
		return nil, fmt.Errorf("API error: code=%d status=%s", resp.Code, resp.Status)
	}
	return resp.Data, nil
}

// GregorianToHijri fetches the day-by-day Hijri conversion table for
// one Gregorian month.
func (c *Client) GregorianToHijri(ctx context.Context, month, year int) ([]ConversionDay, error) {
	endpoint := fmt.Sprintf("%s/gToHCalendar/%d/%d", c.BaseURL, month, year)

	var resp ConversionResponse
	if err := c.doRequest(ctx, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Code != http.StatusOK {
		return nil, fmt.Errorf("API error: code=%d status=%s", resp.Code, resp.Status)
	}
	return resp.Data, nil
}

// Methods fetches the calculation-method catalog, keyed by method code.
func (c *Client) Methods(ctx context.Context) (map[string]MethodEntry, error) {
	endpoint := fmt.Sprintf("%s/methods", c.BaseURL)

	var resp MethodsResponse
	if err := c.doRequest(ctx, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Code != http.StatusOK {
		return nil, fmt.Errorf("API error: code=%d status=%s", resp.Code, resp.Status)
	}
	return resp.Data, nil
}

func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values, out any) error {
	reqURL := endpoint
	if len(params) > 0 {
		reqURL = fmt.Sprintf("%s?%s", endpoint, params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("building API request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode API response: %w", err)
	}
	return nil
}
