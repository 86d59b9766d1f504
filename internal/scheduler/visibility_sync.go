package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/visibly/ai-visibility-api/infrastructure/cache"
	"github.com/visibly/ai-visibility-api/infrastructure/repository"
	"github.com/visibly/ai-visibility-api/internal/config"
)

// VisibilitySyncConfig holds the scheduling knobs for the stats rebuild.
type VisibilitySyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// VisibilitySyncService periodically rebuilds the aggregated visibility
// stats from raw responses and refreshes the Redis leaderboards.
type VisibilitySyncService struct {
	scheduler           *gocron.Scheduler
	config              VisibilitySyncConfig
	categoryRepo        repository.CategoryRepository
	statsRepo           repository.VisibilityStatsRepository
	leaderboardCache    cache.LeaderboardCache
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewVisibilitySyncService(
	categoryRepo repository.CategoryRepository,
	statsRepo repository.VisibilityStatsRepository,
	leaderboardCache cache.LeaderboardCache,
	appConfig *config.Config,
) *VisibilitySyncService {
	syncConfig := VisibilitySyncConfig{
		CronSchedule: appConfig.VisibilitySync.CronSchedule,
		SyncEnabled:  appConfig.VisibilitySync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Visibility sync scheduler configuration loaded")

	return &VisibilitySyncService{
		scheduler:        gocron.NewScheduler(time.Local),
		config:           syncConfig,
		categoryRepo:     categoryRepo,
		statsRepo:        statsRepo,
		leaderboardCache: leaderboardCache,
		syncRunning:      false,
	}
}

// Start schedules the sync and stops it when the context is cancelled.
func (s *VisibilitySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Visibility sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting visibility sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncVisibilityStats(ctx)
	})
	if err != nil {
		return fmt.Errorf("error scheduling visibility sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping visibility sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow triggers a sync outside the cron schedule, used at startup so
// the dashboard is never empty until the first tick.
func (s *VisibilitySyncService) RunNow(ctx context.Context) {
	s.syncVisibilityStats(ctx)
}

func (s *VisibilitySyncService) syncVisibilityStats(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Visibility sync already in progress, skipping")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Starting visibility stats rebuild")

	if err := s.statsRepo.RebuildStats(); err != nil {
		logrus.WithError(err).Error("Error rebuilding visibility stats")
		return
	}

	s.refreshLeaderboards(ctx)

	logrus.WithField("duration", time.Since(s.lastSyncStartedAt).String()).
		Info("Visibility stats rebuild finished")
}

// refreshLeaderboards recomputes every category leaderboard and pushes it
// into Redis. Cache errors are logged and skipped so a Redis outage never
// blocks the rebuild.
func (s *VisibilitySyncService) refreshLeaderboards(ctx context.Context) {
	if s.leaderboardCache == nil {
		return
	}

	categories, err := s.categoryRepo.ListCategories()
	if err != nil {
		logrus.WithError(err).Error("Error listing categories for leaderboard refresh")
		return
	}

	for _, category := range categories {
		leaderboard, err := s.statsRepo.GetLeaderboard(category.ID)
		if err != nil {
			logrus.WithError(err).WithField("category_id", category.ID).
				Error("Error computing category leaderboard")
			continue
		}

		if err := s.leaderboardCache.StoreLeaderboard(ctx, category.ID, leaderboard); err != nil {
			logrus.WithError(err).WithField("category_id", category.ID).
				Warn("Error storing category leaderboard in cache")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"category_id": category.ID,
			"brands":      len(leaderboard),
		}).Debug("Category leaderboard refreshed")
	}
}
