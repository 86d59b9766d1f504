package domain

import "time"

// AI sources tracked by the service.
const (
	SourceChatGPT    = "chatgpt"
	SourceGemini     = "gemini"
	SourcePerplexity = "perplexity"
)

// TimeSeriesData is a per-(brand, date, source) aggregate.
type TimeSeriesData struct {
	BrandID         string    `json:"brand_id"`
	Date            time.Time `json:"date"`
	AISource        string    `json:"ai_source"`
	MentionCount    int       `json:"mention_count"`
	ResponseCount   int       `json:"response_count"`
	VisibilityScore float64   `json:"visibility_score"`
}

// PlatformScore is a per-(brand, source) aggregate.
type PlatformScore struct {
	BrandID         string  `json:"brand_id"`
	AISource        string  `json:"ai_source"`
	MentionCount    int     `json:"mention_count"`
	ResponseCount   int     `json:"response_count"`
	VisibilityScore float64 `json:"visibility_score"`
}

// VisibilityScore is the stats-view row behind /visibility/scores.
// AISource is empty for rows from the combined view.
type VisibilityScore struct {
	BrandID         string  `json:"brand_id"`
	BrandName       string  `json:"brand_name"`
	CategoryID      string  `json:"category_id"`
	CategoryName    string  `json:"category_name"`
	AISource        string  `json:"ai_source,omitempty"`
	MentionCount    int     `json:"mention_count"`
	ResponseCount   int     `json:"response_count"`
	VisibilityScore float64 `json:"visibility_score"`
}
