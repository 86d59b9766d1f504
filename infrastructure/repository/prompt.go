package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/visibly/ai-visibility-api/infrastructure/database/postgres"
	"github.com/visibly/ai-visibility-api/internal/domain"
)

const (
	promptsTable = "prompts p"
)

type PromptRepository interface {
	ListPromptsByCategory(categoryID string) ([]*domain.Prompt, error)
	GetPromptByID(promptID string) (*domain.Prompt, error)
	ListPendingPrompts(aiSource string, since time.Time, limit int) ([]*domain.Prompt, error)
}

type promptRepository struct {
	conn *postgres.Connection
}

func NewPromptRepository(conn *postgres.Connection) PromptRepository {
	return &promptRepository{
		conn: conn,
	}
}

func (r *promptRepository) ListPromptsByCategory(categoryID string) ([]*domain.Prompt, error) {
	queryBuilder := promptSelect().
		Where(squirrel.Eq{"p.category_id": categoryID}).
		OrderBy("p.created_at ASC")

	return r.queryPrompts(queryBuilder)
}

func (r *promptRepository) GetPromptByID(promptID string) (*domain.Prompt, error) {
	sqlQuery, args, err := promptSelect().
		Where(squirrel.Eq{"p.id": promptID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building prompt query: %w", err)
	}

	prompt := &domain.Prompt{}
	row := r.conn.QueryRow(sqlQuery, args...)
	if err := row.Scan(&prompt.ID, &prompt.Text, &prompt.CategoryID, &prompt.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning prompt: %w", err)
	}

	return prompt, nil
}

// ListPendingPrompts returns prompts with no response at all from the given
// source since the cutoff time. Failed attempts count too, so a prompt is
// not re-asked every cycle while the platform keeps erroring.
func (r *promptRepository) ListPendingPrompts(aiSource string, since time.Time, limit int) ([]*domain.Prompt, error) {
	queryBuilder := promptSelect().
		Where(pendingPromptsFilter(aiSource, since)).
		OrderBy("p.created_at ASC").
		Limit(uint64(limit))

	return r.queryPrompts(queryBuilder)
}

func pendingPromptsFilter(aiSource string, since time.Time) squirrel.Sqlizer {
	return squirrel.Expr(
		`NOT EXISTS (
			SELECT 1 FROM responses r
			WHERE r.prompt_id = p.id
			AND r.ai_source = ?
			AND r.created_at >= ?
		)`, aiSource, since,
	)
}

func promptSelect() squirrel.SelectBuilder {
	return squirrel.
		Select("p.id", "p.text", "p.category_id", "p.created_at").
		From(promptsTable).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *promptRepository) queryPrompts(queryBuilder squirrel.SelectBuilder) ([]*domain.Prompt, error) {
	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building prompts query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("running prompts query: %w", err)
	}
	defer rows.Close()

	prompts := make([]*domain.Prompt, 0)
	for rows.Next() {
		prompt := &domain.Prompt{}
		if err := rows.Scan(&prompt.ID, &prompt.Text, &prompt.CategoryID, &prompt.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning prompt: %w", err)
		}
		prompts = append(prompts, prompt)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating prompt rows: %w", err)
	}

	return prompts, nil
}
