// Package visibility is the typed client SDK for the AI visibility API,
// used by dashboards and internal tooling.
package visibility

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/visibly/ai-visibility-api/internal/domain"
)

// DefaultBaseURL is used when the configuration leaves BaseURL empty.
const DefaultBaseURL = "http://localhost:8000"

type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

type Client interface {
	Health(ctx context.Context) (*HealthStatus, error)
	GetCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, categoryID string) (*domain.Category, error)
	GetCategoryLeaderboard(ctx context.Context, categoryID string) ([]domain.LeaderboardBrand, error)
	GetBrandDetails(ctx context.Context, brandID string) (*domain.BrandDetails, error)
	GetBrandTimeseries(ctx context.Context, brandID string, days int, aiSource string) ([]domain.TimeSeriesData, error)
	GetBrandPlatformScores(ctx context.Context, brandID string) ([]domain.PlatformScore, error)
}

type VisibilityClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg Config) Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &VisibilityClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// wireEnvelope is the {success, data} wrapper every endpoint responds with.
type wireEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
}

// get performs the request and decodes the envelope's data field into out.
// Failures are logged with the endpoint name before being returned.
func (c *VisibilityClient) get(ctx context.Context, endpoint, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		logrus.WithError(err).WithField("endpoint", endpoint).Error("error creating request")
		return err
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("endpoint", endpoint).Error("request failed")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		httpErr := &HTTPError{Status: resp.StatusCode}
		logrus.WithError(httpErr).WithField("endpoint", endpoint).Error("unexpected response status")
		return httpErr
	}

	var envelope wireEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		logrus.WithError(err).WithField("endpoint", endpoint).Error("error decoding response")
		return err
	}

	if !envelope.Success {
		apiErr := envelope.Error
		if apiErr == nil {
			apiErr = &APIError{Message: "request was not successful"}
		}
		logrus.WithError(apiErr).WithField("endpoint", endpoint).Error("api reported failure")
		return apiErr
	}

	if out != nil && envelope.Data != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			logrus.WithError(err).WithField("endpoint", endpoint).Error("error decoding payload")
			return fmt.Errorf("error decoding %s payload: %w", endpoint, err)
		}
	}

	return nil
}
