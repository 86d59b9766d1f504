package analytics

import (
	"context"

	"github.com/visibly/ai-visibility-api/internal/domain"
)

// Analyzer exposes the read side of the visibility data: categories,
// brands, leaderboards and score projections consumed by the dashboard.
type Analyzer interface {
	GetCategories() ([]*domain.Category, error)
	GetCategory(categoryID string) (*domain.Category, error)
	GetCategoryBrands(categoryID string) ([]*domain.Brand, error)
	GetCategoryPrompts(categoryID string) ([]*domain.Prompt, error)
	GetCategoryLeaderboard(ctx context.Context, categoryID string) ([]*domain.LeaderboardBrand, error)
	GetCategoryAnalytics(ctx context.Context, categoryID string) (*domain.CategoryAnalytics, error)
	GetBrandDetails(brandID string) (*domain.BrandDetails, error)
	GetBrandTimeseries(brandID string, days int, aiSource string) ([]*domain.TimeSeriesData, error)
	GetBrandPlatformScores(brandID string) ([]*domain.PlatformScore, error)
	GetScores(categoryID, aiSource string) ([]*domain.VisibilityScore, error)
	GetResponse(responseID string) (*domain.Response, error)
}
