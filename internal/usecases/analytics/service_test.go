package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/visibly/ai-visibility-api/infrastructure/repository"
	"github.com/visibly/ai-visibility-api/infrastructure/repository/mocks"
	"github.com/visibly/ai-visibility-api/internal/config"
	"github.com/visibly/ai-visibility-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	categoryRepo *mocks.MockCategoryRepository
	brandRepo    *mocks.MockBrandRepository
	promptRepo   *mocks.MockPromptRepository
	responseRepo *mocks.MockResponseRepository
	statsRepo    *mocks.MockVisibilityStatsRepository
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		categoryRepo: mocks.NewMockCategoryRepository(ctrl),
		brandRepo:    mocks.NewMockBrandRepository(ctrl),
		promptRepo:   mocks.NewMockPromptRepository(ctrl),
		responseRepo: mocks.NewMockResponseRepository(ctrl),
		statsRepo:    mocks.NewMockVisibilityStatsRepository(ctrl),
	}

	cfg := &config.Config{
		Worker: config.Worker{Sources: []string{"chatgpt", "gemini"}},
	}

	service := NewService(m.categoryRepo, m.brandRepo, m.promptRepo, m.responseRepo, m.statsRepo, cfg)
	return service, m
}

func TestGetBrandDetails_ScoreDerivation(t *testing.T) {
	service, m := newTestService(t)

	m.brandRepo.EXPECT().
		GetBrandDetails("b1").
		Return(&domain.BrandDetails{
			ID:            "b1",
			Name:          "Salesforce",
			MentionCount:  1,
			ResponseCount: 3,
		}, nil)

	series := make([]*domain.TimeSeriesData, 8)
	for i := range series {
		series[i] = &domain.TimeSeriesData{BrandID: "b1", MentionCount: 1, ResponseCount: 2}
	}
	series[7].MentionCount = 3
	series[7].ResponseCount = 4

	m.statsRepo.EXPECT().
		GetTimeseries("b1", gomock.Any(), "").
		Return(series, nil)

	details, err := service.GetBrandDetails("b1")
	require.NoError(t, err)
	require.NotNil(t, details)

	assert.Equal(t, 33.33, details.VisibilityScore)
	assert.Equal(t, 0.33, details.MentionRate)
	assert.Equal(t, 50.0, details.WeeklyChange)
	assert.Equal(t, "up", details.TrendDirection)
}

func TestGetBrandDetails_NoResponses(t *testing.T) {
	service, m := newTestService(t)

	m.brandRepo.EXPECT().
		GetBrandDetails("b1").
		Return(&domain.BrandDetails{ID: "b1", Name: "Salesforce"}, nil)

	m.statsRepo.EXPECT().
		GetTimeseries("b1", gomock.Any(), "").
		Return(nil, nil)

	details, err := service.GetBrandDetails("b1")
	require.NoError(t, err)

	assert.Equal(t, 0.0, details.VisibilityScore)
	assert.Equal(t, 0.0, details.MentionRate)
	assert.Equal(t, "", details.TrendDirection)
}

func TestGetBrandDetails_NotFound(t *testing.T) {
	service, m := newTestService(t)

	m.brandRepo.EXPECT().
		GetBrandDetails("missing").
		Return(nil, nil)

	details, err := service.GetBrandDetails("missing")
	require.NoError(t, err)
	assert.Nil(t, details)
}

func TestGetCategoryLeaderboard_WithoutCacheFallsBackToRepository(t *testing.T) {
	service, m := newTestService(t)

	m.statsRepo.EXPECT().
		GetLeaderboard("cat1").
		Return([]*domain.LeaderboardBrand{
			{ID: "b1", Name: "Salesforce", VisibilityScore: 66.666666},
			{ID: "b2", Name: "HubSpot", VisibilityScore: 33.333333},
		}, nil)

	leaderboard, err := service.GetCategoryLeaderboard(context.Background(), "cat1")
	require.NoError(t, err)
	require.Len(t, leaderboard, 2)

	assert.Equal(t, 66.67, leaderboard[0].VisibilityScore)
	assert.Equal(t, 33.33, leaderboard[1].VisibilityScore)
}

func TestGetCategoryAnalytics(t *testing.T) {
	service, m := newTestService(t)

	m.categoryRepo.EXPECT().
		GetCategoryByID("cat1").
		Return(&domain.Category{
			ID:          "cat1",
			Name:        "CRM Software",
			BrandCount:  4,
			PromptCount: 10,
		}, nil)

	m.responseRepo.EXPECT().
		GetCategoryResponseCounts("cat1").
		Return(&repository.CategoryResponseCounts{
			Total:     15,
			Completed: 12,
			BySource:  map[string]int{"chatgpt": 8, "gemini": 7},
		}, nil)

	m.statsRepo.EXPECT().
		GetLeaderboard("cat1").
		Return([]*domain.LeaderboardBrand{
			{ID: "b1", Name: "Salesforce", VisibilityScore: 80},
		}, nil)

	analytics, err := service.GetCategoryAnalytics(context.Background(), "cat1")
	require.NoError(t, err)
	require.NotNil(t, analytics)

	assert.Equal(t, "CRM Software", analytics.CategoryName)
	assert.Equal(t, 4, analytics.TotalBrands)
	assert.Equal(t, 10, analytics.TotalPrompts)
	assert.Equal(t, 15, analytics.TotalResponses)
	// 12 completed out of 10 prompts x 2 sources
	assert.Equal(t, 60.0, analytics.CompletionRate)
	require.Len(t, analytics.TopBrands, 1)
	assert.Equal(t, "Salesforce", analytics.TopBrands[0].Name)
}

func TestGetCategoryAnalytics_UnknownCategory(t *testing.T) {
	service, m := newTestService(t)

	m.categoryRepo.EXPECT().
		GetCategoryByID("missing").
		Return(nil, nil)

	analytics, err := service.GetCategoryAnalytics(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, analytics)
}

func TestGetCategories_FillsTopBrands(t *testing.T) {
	service, m := newTestService(t)

	m.categoryRepo.EXPECT().
		ListCategories().
		Return([]*domain.Category{{ID: "cat1", Name: "CRM Software"}}, nil)

	m.statsRepo.EXPECT().
		GetLeaderboard("cat1").
		Return([]*domain.LeaderboardBrand{
			{ID: "b1", Name: "Salesforce", VisibilityScore: 90},
			{ID: "b2", Name: "HubSpot", VisibilityScore: 85},
			{ID: "b3", Name: "Pipedrive", VisibilityScore: 60},
			{ID: "b4", Name: "Zoho CRM", VisibilityScore: 55},
			{ID: "b5", Name: "Freshsales", VisibilityScore: 40},
			{ID: "b6", Name: "Close", VisibilityScore: 30},
		}, nil)

	categories, err := service.GetCategories()
	require.NoError(t, err)
	require.Len(t, categories, 1)

	topBrands := categories[0].TopBrands
	require.Len(t, topBrands, topBrandsPerCategory)
	assert.Equal(t, "Salesforce", topBrands[0].Name)
	assert.Equal(t, "Freshsales", topBrands[4].Name)
}

func TestGetScores(t *testing.T) {
	service, m := newTestService(t)

	m.statsRepo.EXPECT().
		ListScores("cat1", "chatgpt").
		Return([]*domain.VisibilityScore{
			{BrandID: "b1", AISource: "chatgpt", MentionCount: 7, ResponseCount: 9},
		}, nil)

	scores, err := service.GetScores("cat1", "chatgpt")
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 77.78, scores[0].VisibilityScore)
}
