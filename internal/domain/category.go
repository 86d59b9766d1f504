package domain

import "time"

// Category groups brands and prompts around a product segment.
// TopBrands is always ordered by descending visibility score.
type Category struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	BrandCount    int        `json:"brand_count"`
	PromptCount   int        `json:"prompt_count"`
	ResponseCount int        `json:"response_count"`
	TopBrands     []TopBrand `json:"top_brands"`
	CreatedAt     time.Time  `json:"created_at"`
}

// TopBrand is the compact brand summary embedded in a category.
type TopBrand struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	VisibilityScore float64 `json:"visibility_score"`
}

// CategoryAnalytics aggregates scraping progress for a category.
type CategoryAnalytics struct {
	CategoryID        string             `json:"category_id"`
	CategoryName      string             `json:"category_name"`
	TotalBrands       int                `json:"total_brands"`
	TotalPrompts      int                `json:"total_prompts"`
	TotalResponses    int                `json:"total_responses"`
	ResponsesBySource map[string]int     `json:"responses_by_source"`
	CompletionRate    float64            `json:"completion_rate"`
	TopBrands         []LeaderboardBrand `json:"top_brands"`
}
