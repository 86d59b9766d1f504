// Package extraction queries AI platforms and pulls structured brand data
// out of their answers through an OpenAI-compatible chat API.
package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
	"github.com/visibly/ai-visibility-api/internal/config"
	"github.com/visibly/ai-visibility-api/internal/domain"
)

// Querier asks an AI platform a prompt and returns its raw answer.
type Querier interface {
	Query(ctx context.Context, prompt string) (string, error)
}

// Extractor produces per-brand structured data from an answer.
type Extractor interface {
	ExtractBrandData(ctx context.Context, promptText, responseText string, brandsMentioned []string) (map[string]domain.BrandExtraction, error)
}

// OpenAIClient implements Querier and Extractor on top of the Chat
// Completions API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(cfg config.OpenAI) *OpenAIClient {
	var c *openai.Client
	if cfg.BaseURL != "" {
		cc := openai.DefaultConfig(cfg.APIKey)
		cc.BaseURL = cfg.BaseURL
		c = openai.NewClientWithConfig(cc)
	} else {
		c = openai.NewClient(cfg.APIKey)
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAIClient{client: c, model: model}
}

// Query sends the prompt as a plain user message, the way a dashboard user
// would ask it, and returns the answer text.
func (o *OpenAIClient) Query(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 120*time.Second)
	defer cancel()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		logrus.WithError(err).Error("chat completion request failed")
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

const extractionSystemPrompt = `Extract structured data from an AI response about brand mentions.
For each brand, extract:
1. Citations: URLs in the text - extract URL, infer a title, note position
2. Context: 2-3 sentence summary of how the brand is mentioned
3. Sentiment: positive/neutral/negative ("neutral" when unclear)
4. Keywords: 3-5 key themes
Return valid JSON only, shaped as:
{"brands":{"BrandName":{"citations":[{"url":"https://...","title":"...","position":1}],"context":"...","sentiment":"positive","keywords":["w1","w2"]}}}
Only include brands that are actually mentioned. Empty citations array when there are no URLs.`

type extractionResult struct {
	Brands map[string]domain.BrandExtraction `json:"brands"`
}

// ExtractBrandData runs a single LLM call covering citations, context,
// sentiment and keywords for every mentioned brand.
func (o *OpenAIClient) ExtractBrandData(ctx context.Context, promptText, responseText string, brandsMentioned []string) (map[string]domain.BrandExtraction, error) {
	if len(brandsMentioned) == 0 {
		return map[string]domain.BrandExtraction{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 120*time.Second)
	defer cancel()

	user := fmt.Sprintf("PROMPT: %q\n\nRESPONSE:\n%s\n\nBRANDS: %s",
		promptText, responseText, strings.Join(brandsMentioned, ", "))

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: extractionSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		logrus.WithError(err).Error("extraction request failed")
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("extraction returned no choices")
	}

	var result extractionResult
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &result); err != nil {
		logrus.WithError(err).Error("extraction returned invalid JSON")
		return nil, err
	}

	if result.Brands == nil {
		result.Brands = map[string]domain.BrandExtraction{}
	}

	return result.Brands, nil
}

// DetectMentions finds which of the tracked brand names appear in the
// response text, case-insensitively. Order follows the tracked list.
func DetectMentions(responseText string, brandNames []string) []string {
	lowered := strings.ToLower(responseText)

	mentioned := make([]string, 0)
	for _, name := range brandNames {
		if strings.Contains(lowered, strings.ToLower(name)) {
			mentioned = append(mentioned, name)
		}
	}

	return mentioned
}
