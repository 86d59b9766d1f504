package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/visibly/ai-visibility-api/infrastructure/repository/mocks"
	"github.com/visibly/ai-visibility-api/internal/config"
	"github.com/visibly/ai-visibility-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type fakeQuerier struct {
	answer string
	err    error
}

func (f *fakeQuerier) Query(ctx context.Context, prompt string) (string, error) {
	return f.answer, f.err
}

type fakeExtractor struct {
	extractions map[string]domain.BrandExtraction
	err         error
	gotBrands   []string
}

func (f *fakeExtractor) ExtractBrandData(ctx context.Context, promptText, responseText string, brandsMentioned []string) (map[string]domain.BrandExtraction, error) {
	f.gotBrands = brandsMentioned
	return f.extractions, f.err
}

func workerConfig() config.Worker {
	return config.Worker{
		Sources:             []string{"chatgpt"},
		BatchSize:           10,
		RequestDelaySeconds: 0,
		RescrapeWindowHours: 2,
		Enabled:             true,
	}
}

func TestRunCycle_CompletesPromptWithMentions(t *testing.T) {
	ctrl := gomock.NewController(t)

	promptRepo := mocks.NewMockPromptRepository(ctrl)
	brandRepo := mocks.NewMockBrandRepository(ctrl)
	responseRepo := mocks.NewMockResponseRepository(ctrl)

	prompt := &domain.Prompt{ID: "p1", Text: "What is the best CRM?", CategoryID: "cat1"}

	promptRepo.EXPECT().
		ListPendingPrompts("chatgpt", gomock.Any(), 10).
		Return([]*domain.Prompt{prompt}, nil)

	var createdID string
	responseRepo.EXPECT().
		CreateResponse(gomock.Any()).
		DoAndReturn(func(response *domain.Response) error {
			assert.Equal(t, "p1", response.PromptID)
			assert.Equal(t, "chatgpt", response.AISource)
			assert.Equal(t, domain.ResponseStatusProcessing, response.Status)
			assert.NotEmpty(t, response.ID)
			createdID = response.ID
			return nil
		})

	brandRepo.EXPECT().
		ListBrandNamesByCategory("cat1").
		Return([]string{"Salesforce", "HubSpot", "Pipedrive"}, nil)

	extractor := &fakeExtractor{
		extractions: map[string]domain.BrandExtraction{
			"Salesforce": {Sentiment: "positive"},
		},
	}

	responseRepo.EXPECT().
		MarkCompleted(gomock.Any(), "Salesforce and HUBSPOT are both solid picks.", []string{"Salesforce", "HubSpot"}, extractor.extractions).
		DoAndReturn(func(responseID, responseText string, brandsMentioned []string, extractions map[string]domain.BrandExtraction) error {
			assert.Equal(t, createdID, responseID)
			return nil
		})

	w := New(promptRepo, brandRepo, responseRepo,
		&fakeQuerier{answer: "Salesforce and HUBSPOT are both solid picks."},
		extractor,
		workerConfig(),
	)

	w.RunCycle(context.Background())

	assert.Equal(t, []string{"Salesforce", "HubSpot"}, extractor.gotBrands)
}

func TestRunCycle_QueryFailureMarksResponseFailed(t *testing.T) {
	ctrl := gomock.NewController(t)

	promptRepo := mocks.NewMockPromptRepository(ctrl)
	brandRepo := mocks.NewMockBrandRepository(ctrl)
	responseRepo := mocks.NewMockResponseRepository(ctrl)

	prompt := &domain.Prompt{ID: "p1", Text: "What is the best CRM?", CategoryID: "cat1"}

	promptRepo.EXPECT().
		ListPendingPrompts("chatgpt", gomock.Any(), 10).
		Return([]*domain.Prompt{prompt}, nil)

	responseRepo.EXPECT().
		CreateResponse(gomock.Any()).
		Return(nil)

	responseRepo.EXPECT().
		MarkFailed(gomock.Any(), "platform unavailable").
		Return(nil)

	w := New(promptRepo, brandRepo, responseRepo,
		&fakeQuerier{err: errors.New("platform unavailable")},
		&fakeExtractor{},
		workerConfig(),
	)

	w.RunCycle(context.Background())
}

func TestRunCycle_ExtractionFailureStillCompletes(t *testing.T) {
	ctrl := gomock.NewController(t)

	promptRepo := mocks.NewMockPromptRepository(ctrl)
	brandRepo := mocks.NewMockBrandRepository(ctrl)
	responseRepo := mocks.NewMockResponseRepository(ctrl)

	prompt := &domain.Prompt{ID: "p1", Text: "What is the best CRM?", CategoryID: "cat1"}

	promptRepo.EXPECT().
		ListPendingPrompts("chatgpt", gomock.Any(), 10).
		Return([]*domain.Prompt{prompt}, nil)

	responseRepo.EXPECT().
		CreateResponse(gomock.Any()).
		Return(nil)

	brandRepo.EXPECT().
		ListBrandNamesByCategory("cat1").
		Return([]string{"Salesforce"}, nil)

	responseRepo.EXPECT().
		MarkCompleted(gomock.Any(), gomock.Any(), []string{"Salesforce"}, map[string]domain.BrandExtraction{}).
		Return(nil)

	w := New(promptRepo, brandRepo, responseRepo,
		&fakeQuerier{answer: "Salesforce wins."},
		&fakeExtractor{err: errors.New("llm timeout")},
		workerConfig(),
	)

	w.RunCycle(context.Background())
}

func TestRunCycle_NoPendingPrompts(t *testing.T) {
	ctrl := gomock.NewController(t)

	promptRepo := mocks.NewMockPromptRepository(ctrl)
	brandRepo := mocks.NewMockBrandRepository(ctrl)
	responseRepo := mocks.NewMockResponseRepository(ctrl)

	promptRepo.EXPECT().
		ListPendingPrompts("chatgpt", gomock.Any(), 10).
		Return(nil, nil)

	w := New(promptRepo, brandRepo, responseRepo, &fakeQuerier{}, &fakeExtractor{}, workerConfig())
	w.RunCycle(context.Background())
}

func TestRunCycle_RescrapeWindowCutoff(t *testing.T) {
	ctrl := gomock.NewController(t)

	promptRepo := mocks.NewMockPromptRepository(ctrl)

	promptRepo.EXPECT().
		ListPendingPrompts("chatgpt", gomock.Any(), 10).
		DoAndReturn(func(aiSource string, since time.Time, limit int) ([]*domain.Prompt, error) {
			expected := time.Now().Add(-2 * time.Hour)
			require.WithinDuration(t, expected, since, time.Minute)
			return nil, nil
		})

	w := New(promptRepo, mocks.NewMockBrandRepository(ctrl), mocks.NewMockResponseRepository(ctrl),
		&fakeQuerier{}, &fakeExtractor{}, workerConfig())

	w.RunCycle(context.Background())
}
