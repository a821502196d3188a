package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/i474232898/weather-motion-relay/internal/forecast"
)

// TsukumijimaProvider implements forecast.Provider for the
// weather.tsukumijima.net feed (livedoor weather compatible).
type TsukumijimaProvider struct {
	name    string
	baseURL string
	cityID  string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

func NewTsukumijimaProvider(client *http.Client, baseURL, cityID string, breaker BreakerConfig, logger *zap.Logger) *TsukumijimaProvider {
	return &TsukumijimaProvider{
		name:    "tsukumijima",
		baseURL: strings.TrimRight(baseURL, "/"),
		cityID:  cityID,
		client:  client,
		circuit: newCircuitBreaker("tsukumijima", breaker, logger),
		logger:  logger,
	}
}

func (p *TsukumijimaProvider) Name() string {
	return p.name
}

// FetchForecast returns the decoded feed for the configured city.
func (p *TsukumijimaProvider) FetchForecast(ctx context.Context) (forecast.Upstream, error) {
	buildRequest := func(ctx context.Context) (*http.Request, error) {
		u := fmt.Sprintf("%s/api/forecast/city/%s", p.baseURL, url.PathEscape(p.cityID))
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	}

	resp, err := doRequest(ctx, p.client, p.circuit, buildRequest)
	if err != nil {
		return forecast.Upstream{}, err
	}
	defer resp.Body.Close()

	var payload forecast.Upstream
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return forecast.Upstream{}, fmt.Errorf("decode forecast feed: %w", err)
	}

	p.logger.Debug("forecast feed fetched",
		zap.String("city", p.cityID),
		zap.String("publicTime", payload.PublicTime),
		zap.Int("entries", len(payload.Forecasts)),
	)
	return payload, nil
}
