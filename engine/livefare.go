package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/fly2any/alt-airports-api/config"
	"github.com/fly2any/alt-airports-api/pkg/logger"
	"github.com/hashicorp/go-retryablehttp"
)

// LiveFareSource quotes a live fare for the baseline route only. It is a
// pure substitution at the PriceEstimate boundary: when a quote succeeds the
// estimate carries confidence "live"; any failure means the caller keeps its
// historical or heuristic estimate.
type LiveFareSource interface {
	Quote(ctx context.Context, origin, destination, dateBucket string, cabin Cabin) (PriceEstimate, error)
}

// HTTPLiveFareSource queries an external flight-search API over HTTP with
// retries.
type HTTPLiveFareSource struct {
	client  *retryablehttp.Client
	baseURL string
}

// NewHTTPLiveFareSource creates a live fare client. Returns nil when the
// source is disabled or unconfigured, which callers treat as "no override".
func NewHTTPLiveFareSource(cfg config.LiveFareConfig) *HTTPLiveFareSource {
	if !cfg.Enabled || cfg.BaseURL == "" {
		return nil
	}
	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.HTTPClient.Timeout = cfg.Timeout
	client.Logger = nil
	return &HTTPLiveFareSource{client: client, baseURL: cfg.BaseURL}
}

type liveFareResponse struct {
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
}

// Quote implements LiveFareSource.
func (s *HTTPLiveFareSource) Quote(ctx context.Context, origin, destination, dateBucket string, cabin Cabin) (PriceEstimate, error) {
	q := url.Values{}
	q.Set("origin", origin)
	q.Set("destination", destination)
	q.Set("date_bucket", dateBucket)
	q.Set("cabin", string(cabin))

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/v1/quote?"+q.Encode(), nil)
	if err != nil {
		return PriceEstimate{}, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return PriceEstimate{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return PriceEstimate{}, fmt.Errorf("live fare quote: unexpected status %d", resp.StatusCode)
	}

	var body liveFareResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return PriceEstimate{}, fmt.Errorf("live fare quote: %w", err)
	}
	if body.Price <= 0 {
		return PriceEstimate{}, fmt.Errorf("live fare quote: non-positive price")
	}

	cur := body.Currency
	if cur == "" {
		cur = "USD"
	}
	logger.WithFields(map[string]interface{}{
		"origin":      origin,
		"destination": destination,
	}).Debug("Live fare override applied")

	return PriceEstimate{
		Amount:     body.Price,
		Currency:   cur,
		Confidence: ConfidenceLive,
		DateBucket: dateBucket,
	}, nil
}
