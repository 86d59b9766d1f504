package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/visibly/ai-visibility-api/infrastructure/database/postgres"
	"github.com/visibly/ai-visibility-api/internal/domain"
)

const (
	statsTable = "brand_visibility_stats s"
)

// rebuildStatsQuery recomputes the daily per-brand, per-source aggregates
// from the completed responses. A brand counts as mentioned when its name
// appears in the response's brands_mentioned array.
const rebuildStatsQuery = `
INSERT INTO brand_visibility_stats (brand_id, ai_source, date, mention_count, response_count)
SELECT
	b.id,
	r.ai_source,
	DATE(r.created_at),
	COUNT(*) FILTER (WHERE b.name = ANY(r.brands_mentioned)),
	COUNT(*)
FROM brands b
JOIN prompts p ON p.category_id = b.category_id
JOIN responses r ON r.prompt_id = p.id AND r.status = 'completed'
GROUP BY b.id, r.ai_source, DATE(r.created_at)
ON CONFLICT (brand_id, ai_source, date) DO UPDATE SET
	mention_count = EXCLUDED.mention_count,
	response_count = EXCLUDED.response_count,
	updated_at = CURRENT_TIMESTAMP
`

type VisibilityStatsRepository interface {
	RebuildStats() error
	GetLeaderboard(categoryID string) ([]*domain.LeaderboardBrand, error)
	GetTimeseries(brandID string, since time.Time, aiSource string) ([]*domain.TimeSeriesData, error)
	GetPlatformScores(brandID string) ([]*domain.PlatformScore, error)
	ListScores(categoryID, aiSource string) ([]*domain.VisibilityScore, error)
}

type visibilityStatsRepository struct {
	conn *postgres.Connection
}

func NewVisibilityStatsRepository(conn *postgres.Connection) VisibilityStatsRepository {
	return &visibilityStatsRepository{
		conn: conn,
	}
}

func (r *visibilityStatsRepository) RebuildStats() error {
	if _, err := r.conn.Exec(rebuildStatsQuery); err != nil {
		return fmt.Errorf("rebuilding visibility stats: %w", err)
	}
	return nil
}

func (r *visibilityStatsRepository) GetLeaderboard(categoryID string) ([]*domain.LeaderboardBrand, error) {
	sqlQuery, args, err := squirrel.
		Select(
			"b.id",
			"b.name",
			scoreExpr,
			"COALESCE(SUM(s.mention_count), 0)",
		).
		From(brandsTable).
		LeftJoin("brand_visibility_stats s ON s.brand_id = b.id").
		Where(squirrel.Eq{"b.category_id": categoryID}).
		GroupBy("b.id", "b.name").
		OrderBy("3 DESC", "b.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building leaderboard query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("running leaderboard query: %w", err)
	}
	defer rows.Close()

	leaderboard := make([]*domain.LeaderboardBrand, 0)
	for rows.Next() {
		entry := &domain.LeaderboardBrand{}
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.VisibilityScore, &entry.MentionCount); err != nil {
			return nil, fmt.Errorf("scanning leaderboard entry: %w", err)
		}
		leaderboard = append(leaderboard, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating leaderboard rows: %w", err)
	}

	return leaderboard, nil
}

func (r *visibilityStatsRepository) GetTimeseries(brandID string, since time.Time, aiSource string) ([]*domain.TimeSeriesData, error) {
	queryBuilder := squirrel.
		Select(
			"s.brand_id",
			"s.date",
			"s.ai_source",
			"s.mention_count",
			"s.response_count",
		).
		From(statsTable).
		Where(squirrel.Eq{"s.brand_id": brandID}).
		Where(squirrel.GtOrEq{"s.date": since}).
		OrderBy("s.date ASC").
		PlaceholderFormat(squirrel.Dollar)

	if aiSource != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"s.ai_source": aiSource})
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building timeseries query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("running timeseries query: %w", err)
	}
	defer rows.Close()

	series := make([]*domain.TimeSeriesData, 0)
	for rows.Next() {
		point := &domain.TimeSeriesData{}
		err := rows.Scan(
			&point.BrandID,
			&point.Date,
			&point.AISource,
			&point.MentionCount,
			&point.ResponseCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning timeseries point: %w", err)
		}
		series = append(series, point)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating timeseries rows: %w", err)
	}

	return series, nil
}

func (r *visibilityStatsRepository) GetPlatformScores(brandID string) ([]*domain.PlatformScore, error) {
	sqlQuery, args, err := squirrel.
		Select(
			"s.brand_id",
			"s.ai_source",
			"SUM(s.mention_count)",
			"SUM(s.response_count)",
		).
		From(statsTable).
		Where(squirrel.Eq{"s.brand_id": brandID}).
		GroupBy("s.brand_id", "s.ai_source").
		OrderBy("s.ai_source ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building platform scores query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("running platform scores query: %w", err)
	}
	defer rows.Close()

	scores := make([]*domain.PlatformScore, 0)
	for rows.Next() {
		score := &domain.PlatformScore{}
		err := rows.Scan(
			&score.BrandID,
			&score.AISource,
			&score.MentionCount,
			&score.ResponseCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning platform score: %w", err)
		}
		scores = append(scores, score)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating platform score rows: %w", err)
	}

	return scores, nil
}

// scoreExpr derives the visibility score inside the query so that ordering
// happens server side. Brands with no responses score zero.
const scoreExpr = `CASE WHEN COALESCE(SUM(s.response_count), 0) = 0 THEN 0
	ELSE SUM(s.mention_count)::float / SUM(s.response_count) * 100 END`

// ListScores returns stats rows, per source when aiSource is set and
// combined across sources otherwise.
func (r *visibilityStatsRepository) ListScores(categoryID, aiSource string) ([]*domain.VisibilityScore, error) {
	queryBuilder := squirrel.
		Select(
			"b.id",
			"b.name",
			"c.id",
			"c.name",
			"COALESCE(SUM(s.mention_count), 0)",
			"COALESCE(SUM(s.response_count), 0)",
		).
		From(brandsTable).
		Join("categories c ON c.id = b.category_id").
		LeftJoin("brand_visibility_stats s ON s.brand_id = b.id").
		GroupBy("b.id", "b.name", "c.id", "c.name").
		OrderBy(scoreExpr+" DESC", "b.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if categoryID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"b.category_id": categoryID})
	}

	if aiSource != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"s.ai_source": aiSource})
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building scores query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("running scores query: %w", err)
	}
	defer rows.Close()

	scores := make([]*domain.VisibilityScore, 0)
	for rows.Next() {
		score := &domain.VisibilityScore{AISource: aiSource}
		err := rows.Scan(
			&score.BrandID,
			&score.BrandName,
			&score.CategoryID,
			&score.CategoryName,
			&score.MentionCount,
			&score.ResponseCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning score: %w", err)
		}
		scores = append(scores, score)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating score rows: %w", err)
	}

	return scores, nil
}
