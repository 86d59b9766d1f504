package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/visibly/ai-visibility-api/infrastructure/repository/mocks"
	"github.com/visibly/ai-visibility-api/internal/api/handler/router"
	"github.com/visibly/ai-visibility-api/internal/config"
	"github.com/visibly/ai-visibility-api/internal/domain"
	"github.com/visibly/ai-visibility-api/internal/usecases/analytics"
	"go.uber.org/mock/gomock"
)

type handlerMocks struct {
	categoryRepo *mocks.MockCategoryRepository
	brandRepo    *mocks.MockBrandRepository
	responseRepo *mocks.MockResponseRepository
	statsRepo    *mocks.MockVisibilityStatsRepository
}

func newTestRouter(t *testing.T) (router.Router, handlerMocks) {
	ctrl := gomock.NewController(t)

	m := handlerMocks{
		categoryRepo: mocks.NewMockCategoryRepository(ctrl),
		brandRepo:    mocks.NewMockBrandRepository(ctrl),
		responseRepo: mocks.NewMockResponseRepository(ctrl),
		statsRepo:    mocks.NewMockVisibilityStatsRepository(ctrl),
	}

	service := analytics.NewService(
		m.categoryRepo,
		m.brandRepo,
		mocks.NewMockPromptRepository(ctrl),
		m.responseRepo,
		m.statsRepo,
		&config.Config{Worker: config.Worker{Sources: []string{"chatgpt", "gemini"}}},
	)

	rt := router.New(
		router.WithRoutes(Categories(service)...),
		router.WithRoutes(Brands(service)...),
		router.WithRoutes(Responses(service)...),
	)

	return rt, m
}

func TestGetCategory_Success(t *testing.T) {
	rt, m := newTestRouter(t)

	m.categoryRepo.EXPECT().
		GetCategoryByID("cat1").
		Return(&domain.Category{ID: "cat1", Name: "CRM Software"}, nil)

	m.statsRepo.EXPECT().
		GetLeaderboard("cat1").
		Return([]*domain.LeaderboardBrand{
			{ID: "b1", Name: "Salesforce", VisibilityScore: 88.888},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/categories/cat1", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool            `json:"success"`
		Data    domain.Category `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, "CRM Software", body.Data.Name)
	require.Len(t, body.Data.TopBrands, 1)
	assert.Equal(t, 88.89, body.Data.TopBrands[0].VisibilityScore)
}

func TestGetCategory_NotFound(t *testing.T) {
	rt, m := newTestRouter(t)

	m.categoryRepo.EXPECT().
		GetCategoryByID("missing").
		Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/categories/missing", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.False(t, body.Success)
	assert.Equal(t, "RES_001", body.Error.Code)
}

func TestGetBrandTimeseries_InvalidDays(t *testing.T) {
	rt, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/brands/b1/timeseries?days=abc", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBrand_NotFound(t *testing.T) {
	rt, m := newTestRouter(t)

	m.brandRepo.EXPECT().
		GetBrandDetails("missing").
		Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/brands/missing", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
