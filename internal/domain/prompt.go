package domain

import "time"

// Prompt is a question periodically sent to the AI platforms.
type Prompt struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	CategoryID string    `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Response lifecycle states.
const (
	ResponseStatusProcessing = "processing"
	ResponseStatusCompleted  = "completed"
	ResponseStatusFailed     = "failed"
)

// Response is one AI platform answer to a prompt, with the brands
// detected in the answer text.
type Response struct {
	ID              string     `json:"id"`
	PromptID        string     `json:"prompt_id"`
	PromptText      string     `json:"prompt_text"`
	ResponseText    string     `json:"response_text,omitempty"`
	AISource        string     `json:"ai_source"`
	BrandsMentioned []string   `json:"brands_mentioned"`
	Status          string     `json:"status"`
	ErrorMessage    *string    `json:"error_message,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// BrandExtraction is the structured data the LLM extractor produces for
// one mentioned brand.
type BrandExtraction struct {
	Citations []Citation `json:"citations"`
	Context   string     `json:"context"`
	Sentiment string     `json:"sentiment"`
	Keywords  []string   `json:"keywords"`
}

// Citation is a URL reference attached to a brand mention.
type Citation struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	Position int    `json:"position"`
}
