package analytics

import (
	"context"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/visibly/ai-visibility-api/infrastructure/cache"
	"github.com/visibly/ai-visibility-api/infrastructure/repository"
	"github.com/visibly/ai-visibility-api/internal/config"
	"github.com/visibly/ai-visibility-api/internal/domain"
	"github.com/visibly/ai-visibility-api/internal/usecases/trending"
	"github.com/visibly/ai-visibility-api/pkg/utils"
)

const (
	topBrandsPerCategory  = 5
	topBrandsInAnalytics  = 10
	defaultTimeseriesDays = 30
)

type Service struct {
	categoryRepo     repository.CategoryRepository
	brandRepo        repository.BrandRepository
	promptRepo       repository.PromptRepository
	responseRepo     repository.ResponseRepository
	statsRepo        repository.VisibilityStatsRepository
	leaderboardCache cache.LeaderboardCache
	cfg              *config.Config
}

func NewService(
	categoryRepo repository.CategoryRepository,
	brandRepo repository.BrandRepository,
	promptRepo repository.PromptRepository,
	responseRepo repository.ResponseRepository,
	statsRepo repository.VisibilityStatsRepository,
	cfg *config.Config,
) *Service {
	return &Service{
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
		promptRepo:   promptRepo,
		responseRepo: responseRepo,
		statsRepo:    statsRepo,
		cfg:          cfg,
	}
}

// WithCache attaches the Redis leaderboard cache. Without it every
// leaderboard read goes straight to Postgres.
func (s *Service) WithCache(leaderboardCache cache.LeaderboardCache) *Service {
	s.leaderboardCache = leaderboardCache
	return s
}

func (s *Service) GetCategories() ([]*domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories()
	if err != nil {
		return nil, err
	}

	for _, category := range categories {
		if err := s.fillTopBrands(category); err != nil {
			return nil, err
		}
	}

	return categories, nil
}

func (s *Service) GetCategory(categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.GetCategoryByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}

	if err := s.fillTopBrands(category); err != nil {
		return nil, err
	}

	return category, nil
}

// fillTopBrands embeds the highest scoring brands into the category,
// ordered by descending visibility score.
func (s *Service) fillTopBrands(category *domain.Category) error {
	leaderboard, err := s.statsRepo.GetLeaderboard(category.ID)
	if err != nil {
		return err
	}

	limit := topBrandsPerCategory
	if len(leaderboard) < limit {
		limit = len(leaderboard)
	}

	topBrands := make([]domain.TopBrand, 0, limit)
	for _, entry := range leaderboard[:limit] {
		topBrands = append(topBrands, domain.TopBrand{
			ID:              entry.ID,
			Name:            entry.Name,
			VisibilityScore: utils.RoundWithTwoDecimalPlace(entry.VisibilityScore),
		})
	}

	category.TopBrands = topBrands
	return nil
}

func (s *Service) GetCategoryBrands(categoryID string) ([]*domain.Brand, error) {
	return s.brandRepo.ListBrandsByCategory(categoryID)
}

func (s *Service) GetCategoryPrompts(categoryID string) ([]*domain.Prompt, error) {
	return s.promptRepo.ListPromptsByCategory(categoryID)
}

// GetCategoryLeaderboard reads from the Redis cache when available and
// falls back to Postgres on a miss or cache error. Cache failures never
// fail the request.
func (s *Service) GetCategoryLeaderboard(ctx context.Context, categoryID string) ([]*domain.LeaderboardBrand, error) {
	if s.leaderboardCache != nil {
		entries, err := s.leaderboardCache.GetLeaderboard(ctx, categoryID)
		if err != nil {
			logrus.WithError(err).WithField("category_id", categoryID).
				Warn("leaderboard cache read failed, falling back to database")
		} else if len(entries) > 0 {
			return entries, nil
		}
	}

	leaderboard, err := s.statsRepo.GetLeaderboard(categoryID)
	if err != nil {
		return nil, err
	}

	for _, entry := range leaderboard {
		entry.VisibilityScore = utils.RoundWithTwoDecimalPlace(entry.VisibilityScore)
	}

	return leaderboard, nil
}

func (s *Service) GetCategoryAnalytics(ctx context.Context, categoryID string) (*domain.CategoryAnalytics, error) {
	category, err := s.categoryRepo.GetCategoryByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}

	counts, err := s.responseRepo.GetCategoryResponseCounts(categoryID)
	if err != nil {
		return nil, err
	}

	leaderboard, err := s.GetCategoryLeaderboard(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if len(leaderboard) > topBrandsInAnalytics {
		leaderboard = leaderboard[:topBrandsInAnalytics]
	}

	topBrands := make([]domain.LeaderboardBrand, 0, len(leaderboard))
	for _, entry := range leaderboard {
		topBrands = append(topBrands, *entry)
	}

	// each prompt is expected to be answered once per tracked source
	expectedResponses := category.PromptCount * len(s.cfg.Worker.Sources)
	completionRate := 0.0
	if expectedResponses > 0 {
		completionRate = float64(counts.Completed) / float64(expectedResponses) * 100
	}

	return &domain.CategoryAnalytics{
		CategoryID:        category.ID,
		CategoryName:      category.Name,
		TotalBrands:       category.BrandCount,
		TotalPrompts:      category.PromptCount,
		TotalResponses:    counts.Total,
		ResponsesBySource: counts.BySource,
		CompletionRate:    utils.RoundWithTwoDecimalPlace(completionRate),
		TopBrands:         topBrands,
	}, nil
}

func (s *Service) GetBrandDetails(brandID string) (*domain.BrandDetails, error) {
	details, err := s.brandRepo.GetBrandDetails(brandID)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, nil
	}

	details.VisibilityScore = deriveScore(details.MentionCount, details.ResponseCount)
	if details.ResponseCount > 0 {
		details.MentionRate = utils.RoundWithTwoDecimalPlace(
			float64(details.MentionCount) / float64(details.ResponseCount))
	}

	series, err := s.GetBrandTimeseries(brandID, defaultTimeseriesDays, "")
	if err != nil {
		return nil, err
	}

	// an infinite change (previous score of zero) cannot be serialized
	if trend := trending.WeekOverWeek(series); trend != nil && !math.IsInf(trend.ChangePercent, 0) {
		details.WeeklyChange = trend.ChangePercent
		details.TrendDirection = trend.Direction
	}

	return details, nil
}

func (s *Service) GetBrandTimeseries(brandID string, days int, aiSource string) ([]*domain.TimeSeriesData, error) {
	if days <= 0 {
		days = defaultTimeseriesDays
	}

	since := time.Now().AddDate(0, 0, -days)

	series, err := s.statsRepo.GetTimeseries(brandID, since, aiSource)
	if err != nil {
		return nil, err
	}

	for _, point := range series {
		point.VisibilityScore = deriveScore(point.MentionCount, point.ResponseCount)
	}

	return series, nil
}

func (s *Service) GetBrandPlatformScores(brandID string) ([]*domain.PlatformScore, error) {
	scores, err := s.statsRepo.GetPlatformScores(brandID)
	if err != nil {
		return nil, err
	}

	for _, score := range scores {
		score.VisibilityScore = deriveScore(score.MentionCount, score.ResponseCount)
	}

	return scores, nil
}

func (s *Service) GetScores(categoryID, aiSource string) ([]*domain.VisibilityScore, error) {
	scores, err := s.statsRepo.ListScores(categoryID, aiSource)
	if err != nil {
		return nil, err
	}

	for _, score := range scores {
		score.VisibilityScore = deriveScore(score.MentionCount, score.ResponseCount)
	}

	return scores, nil
}

// GetResponse returns one raw AI response with its detected mentions,
// mainly for inspecting what the worker stored for a prompt.
func (s *Service) GetResponse(responseID string) (*domain.Response, error) {
	return s.responseRepo.GetResponseByID(responseID)
}

// deriveScore computes the 0-100 visibility score with two-decimal
// precision. No responses means a score of zero, not a division error.
func deriveScore(mentionCount, responseCount int) float64 {
	if responseCount == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(float64(mentionCount) / float64(responseCount) * 100)
}
