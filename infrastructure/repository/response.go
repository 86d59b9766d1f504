package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/visibly/ai-visibility-api/infrastructure/database/postgres"
	"github.com/visibly/ai-visibility-api/internal/domain"
)

const (
	responsesTable = "responses r"
)

// CategoryResponseCounts aggregates response totals for category analytics.
type CategoryResponseCounts struct {
	Total     int
	Completed int
	BySource  map[string]int
}

type ResponseRepository interface {
	CreateResponse(response *domain.Response) error
	MarkCompleted(responseID, responseText string, brandsMentioned []string, extractions map[string]domain.BrandExtraction) error
	MarkFailed(responseID, errorMessage string) error
	GetResponseByID(responseID string) (*domain.Response, error)
	GetCategoryResponseCounts(categoryID string) (*CategoryResponseCounts, error)
}

type responseRepository struct {
	conn *postgres.Connection
}

func NewResponseRepository(conn *postgres.Connection) ResponseRepository {
	return &responseRepository{
		conn: conn,
	}
}

func (r *responseRepository) CreateResponse(response *domain.Response) error {
	sqlQuery, args, err := squirrel.
		Insert("responses").
		Columns("id", "prompt_id", "prompt_text", "ai_source", "brands_mentioned", "status").
		Values(
			response.ID,
			response.PromptID,
			response.PromptText,
			response.AISource,
			pq.Array(response.BrandsMentioned),
			response.Status,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building response insert: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("inserting response: %w", err)
	}

	return nil
}

func (r *responseRepository) MarkCompleted(responseID, responseText string, brandsMentioned []string, extractions map[string]domain.BrandExtraction) error {
	var extractionJSON interface{}
	if len(extractions) > 0 {
		raw, err := json.Marshal(extractions)
		if err != nil {
			return fmt.Errorf("encoding extractions: %w", err)
		}
		extractionJSON = raw
	}

	sqlQuery, args, err := squirrel.
		Update("responses").
		Set("response_text", responseText).
		Set("brands_mentioned", pq.Array(brandsMentioned)).
		Set("extractions", extractionJSON).
		Set("status", domain.ResponseStatusCompleted).
		Set("completed_at", time.Now()).
		Where(squirrel.Eq{"id": responseID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building response update: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("updating response: %w", err)
	}

	return nil
}

func (r *responseRepository) MarkFailed(responseID, errorMessage string) error {
	sqlQuery, args, err := squirrel.
		Update("responses").
		Set("status", domain.ResponseStatusFailed).
		Set("error_message", errorMessage).
		Set("completed_at", time.Now()).
		Where(squirrel.Eq{"id": responseID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building response update: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("updating response: %w", err)
	}

	return nil
}

func (r *responseRepository) GetResponseByID(responseID string) (*domain.Response, error) {
	sqlQuery, args, err := squirrel.
		Select(
			"r.id",
			"r.prompt_id",
			"r.prompt_text",
			"COALESCE(r.response_text, '')",
			"r.ai_source",
			"r.brands_mentioned",
			"r.status",
			"r.error_message",
			"r.created_at",
			"r.completed_at",
		).
		From(responsesTable).
		Where(squirrel.Eq{"r.id": responseID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building response query: %w", err)
	}

	response := &domain.Response{}
	row := r.conn.QueryRow(sqlQuery, args...)
	err = row.Scan(
		&response.ID,
		&response.PromptID,
		&response.PromptText,
		&response.ResponseText,
		&response.AISource,
		pq.Array(&response.BrandsMentioned),
		&response.Status,
		&response.ErrorMessage,
		&response.CreatedAt,
		&response.CompletedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning response: %w", err)
	}

	return response, nil
}

func (r *responseRepository) GetCategoryResponseCounts(categoryID string) (*CategoryResponseCounts, error) {
	sqlQuery, args, err := squirrel.
		Select("r.ai_source", "r.status", "COUNT(*)").
		From(responsesTable).
		Join("prompts p ON p.id = r.prompt_id").
		Where(squirrel.Eq{"p.category_id": categoryID}).
		GroupBy("r.ai_source", "r.status").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building response counts query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("running response counts query: %w", err)
	}
	defer rows.Close()

	counts := &CategoryResponseCounts{
		BySource: make(map[string]int),
	}

	for rows.Next() {
		var source, status string
		var count int
		if err := rows.Scan(&source, &status, &count); err != nil {
			return nil, fmt.Errorf("scanning response counts: %w", err)
		}

		counts.Total += count
		counts.BySource[source] += count
		if status == domain.ResponseStatusCompleted {
			counts.Completed += count
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating response count rows: %w", err)
	}

	return counts, nil
}
