// Package display polls the relay and renders the two forecast cards.
package display

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/i474232898/weather-motion-relay/internal/forecast"
)

var errUnexpectedStatus = errors.New("unexpected relay status")

// Client fetches reports from the relay's GET /weather endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// FetchReport performs one GET /weather. Any non-2xx status is an error.
func (c *Client) FetchReport(ctx context.Context) (forecast.Report, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather", nil)
	if err != nil {
		return forecast.Report{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return forecast.Report{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return forecast.Report{}, fmt.Errorf("%w: %d", errUnexpectedStatus, resp.StatusCode)
	}

	var report forecast.Report
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return forecast.Report{}, fmt.Errorf("decode weather report: %w", err)
	}
	return report, nil
}
