package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/visibly/ai-visibility-api/infrastructure/repository/mocks"
	"github.com/visibly/ai-visibility-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type fakeLeaderboardCache struct {
	stored map[string][]*domain.LeaderboardBrand
	err    error
}

func newFakeLeaderboardCache() *fakeLeaderboardCache {
	return &fakeLeaderboardCache{stored: map[string][]*domain.LeaderboardBrand{}}
}

func (f *fakeLeaderboardCache) StoreLeaderboard(ctx context.Context, categoryID string, entries []*domain.LeaderboardBrand) error {
	if f.err != nil {
		return f.err
	}
	f.stored[categoryID] = entries
	return nil
}

func (f *fakeLeaderboardCache) GetLeaderboard(ctx context.Context, categoryID string) ([]*domain.LeaderboardBrand, error) {
	return f.stored[categoryID], f.err
}

func (f *fakeLeaderboardCache) Ping(ctx context.Context) error {
	return f.err
}

func TestSyncVisibilityStats(t *testing.T) {
	ctrl := gomock.NewController(t)

	categoryRepo := mocks.NewMockCategoryRepository(ctrl)
	statsRepo := mocks.NewMockVisibilityStatsRepository(ctrl)
	leaderboardCache := newFakeLeaderboardCache()

	statsRepo.EXPECT().RebuildStats().Return(nil)

	categoryRepo.EXPECT().
		ListCategories().
		Return([]*domain.Category{{ID: "cat1"}, {ID: "cat2"}}, nil)

	leaderboard := []*domain.LeaderboardBrand{{ID: "b1", Name: "Salesforce", VisibilityScore: 80}}
	statsRepo.EXPECT().GetLeaderboard("cat1").Return(leaderboard, nil)
	statsRepo.EXPECT().GetLeaderboard("cat2").Return(nil, errors.New("query failed"))

	service := &VisibilitySyncService{
		categoryRepo:     categoryRepo,
		statsRepo:        statsRepo,
		leaderboardCache: leaderboardCache,
	}

	service.syncVisibilityStats(context.Background())

	assert.Equal(t, leaderboard, leaderboardCache.stored["cat1"])
	_, ok := leaderboardCache.stored["cat2"]
	assert.False(t, ok, "a failed leaderboard must not be cached")

	assert.False(t, service.syncRunning)
	assert.WithinDuration(t, time.Now(), service.lastSyncCompletedAt, time.Minute)
}

func TestSyncVisibilityStats_RebuildFailureSkipsRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)

	categoryRepo := mocks.NewMockCategoryRepository(ctrl)
	statsRepo := mocks.NewMockVisibilityStatsRepository(ctrl)

	statsRepo.EXPECT().RebuildStats().Return(errors.New("rebuild failed"))

	service := &VisibilitySyncService{
		categoryRepo:     categoryRepo,
		statsRepo:        statsRepo,
		leaderboardCache: newFakeLeaderboardCache(),
	}

	service.syncVisibilityStats(context.Background())
	assert.False(t, service.syncRunning)
}

func TestSyncVisibilityStats_CacheErrorDoesNotAbort(t *testing.T) {
	ctrl := gomock.NewController(t)

	categoryRepo := mocks.NewMockCategoryRepository(ctrl)
	statsRepo := mocks.NewMockVisibilityStatsRepository(ctrl)

	leaderboardCache := newFakeLeaderboardCache()
	leaderboardCache.err = errors.New("redis down")

	statsRepo.EXPECT().RebuildStats().Return(nil)
	categoryRepo.EXPECT().
		ListCategories().
		Return([]*domain.Category{{ID: "cat1"}}, nil)
	statsRepo.EXPECT().
		GetLeaderboard("cat1").
		Return([]*domain.LeaderboardBrand{{ID: "b1"}}, nil)

	service := &VisibilitySyncService{
		categoryRepo:     categoryRepo,
		statsRepo:        statsRepo,
		leaderboardCache: leaderboardCache,
	}

	service.syncVisibilityStats(context.Background())
	assert.False(t, service.syncRunning)
}
