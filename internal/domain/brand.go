package domain

import "time"

// Brand is a tracked product or company inside a category.
type Brand struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CategoryID string    `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// BrandDetails carries the aggregate visibility figures for a single brand.
// VisibilityScore is a 0-100 value with two-decimal precision.
type BrandDetails struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	CategoryID      string    `json:"category_id"`
	CategoryName    string    `json:"category_name"`
	VisibilityScore float64   `json:"visibility_score"`
	MentionCount    int       `json:"mention_count"`
	ResponseCount   int       `json:"response_count"`
	MentionRate     float64   `json:"mention_rate"`
	WeeklyChange    float64   `json:"weekly_change"`
	TrendDirection  string    `json:"trend_direction,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// LeaderboardBrand is the read-only ranking projection.
type LeaderboardBrand struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	VisibilityScore float64 `json:"visibility_score"`
	MentionCount    int     `json:"mention_count"`
}
