package visibility

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/visibly/ai-visibility-api/internal/domain"
)

func (c *VisibilityClient) GetBrandDetails(ctx context.Context, brandID string) (*domain.BrandDetails, error) {
	var details domain.BrandDetails
	path := fmt.Sprintf("/brands/%s", url.PathEscape(brandID))
	if err := c.get(ctx, "brand_details", path, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (c *VisibilityClient) GetBrandTimeseries(ctx context.Context, brandID string, days int, aiSource string) ([]domain.TimeSeriesData, error) {
	params := url.Values{}
	if days > 0 {
		params.Set("days", strconv.Itoa(days))
	}
	if aiSource != "" {
		params.Set("ai_source", aiSource)
	}

	path := fmt.Sprintf("/brands/%s/timeseries", url.PathEscape(brandID))
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var series []domain.TimeSeriesData
	if err := c.get(ctx, "brand_timeseries", path, &series); err != nil {
		return nil, err
	}
	return series, nil
}

func (c *VisibilityClient) GetBrandPlatformScores(ctx context.Context, brandID string) ([]domain.PlatformScore, error) {
	var scores []domain.PlatformScore
	path := fmt.Sprintf("/brands/%s/platforms", url.PathEscape(brandID))
	if err := c.get(ctx, "brand_platforms", path, &scores); err != nil {
		return nil, err
	}
	return scores, nil
}
