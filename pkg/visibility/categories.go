package visibility

import (
	"context"
	"fmt"
	"net/url"

	"github.com/visibly/ai-visibility-api/internal/domain"
)

func (c *VisibilityClient) GetCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.get(ctx, "categories", "/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *VisibilityClient) GetCategory(ctx context.Context, categoryID string) (*domain.Category, error) {
	var category domain.Category
	path := fmt.Sprintf("/categories/%s", url.PathEscape(categoryID))
	if err := c.get(ctx, "category", path, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *VisibilityClient) GetCategoryLeaderboard(ctx context.Context, categoryID string) ([]domain.LeaderboardBrand, error) {
	var leaderboard []domain.LeaderboardBrand
	path := fmt.Sprintf("/categories/%s/leaderboard", url.PathEscape(categoryID))
	if err := c.get(ctx, "category_leaderboard", path, &leaderboard); err != nil {
		return nil, err
	}
	return leaderboard, nil
}
