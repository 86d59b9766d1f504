package visibility

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_TransportErrorCarriesStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	_, err := client.GetCategories(context.Background())
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestClient_EnvelopeFailureYieldsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":false,"error":{"code":"RES_001","message":"Category not found"}}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	category, err := client.GetCategory(context.Background(), "missing")
	require.Error(t, err)
	assert.Nil(t, category)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "RES_001", apiErr.Code)
	assert.Equal(t, "Category not found", apiErr.Message)
}

func TestClient_SuccessReturnsDataUnchanged(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "no-cache", r.Header.Get("Cache-Control"))
		assert.Equal(t, "/categories", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":[{"id":"cat1","name":"CRM Software","description":"CRM platforms"}]}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	categories, err := client.GetCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "cat1", categories[0].ID)
	assert.Equal(t, "CRM Software", categories[0].Name)
	assert.Equal(t, "CRM platforms", categories[0].Description)
}

func TestClient_TimeseriesQueryParameters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/brands/b1/timeseries", r.URL.Path)
		assert.Equal(t, "14", r.URL.Query().Get("days"))
		assert.Equal(t, "chatgpt", r.URL.Query().Get("ai_source"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":[{"brand_id":"b1","date":"2026-08-01T00:00:00Z","ai_source":"chatgpt","mention_count":3,"response_count":10,"visibility_score":30}]}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	series, err := client.GetBrandTimeseries(context.Background(), "b1", 14, "chatgpt")
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, "b1", series[0].BrandID)
	assert.Equal(t, 30.0, series[0].VisibilityScore)
}

func TestClient_HealthAndDefaults(t *testing.T) {
	defaulted := NewClient(Config{}).(*VisibilityClient)
	assert.Equal(t, DefaultBaseURL, defaulted.baseURL)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"status":"healthy","service":"ai-visibility-api"}}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	status, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
}
