// Package repository contains the data access implementations
package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/visibly/ai-visibility-api/infrastructure/database/postgres"
	"github.com/visibly/ai-visibility-api/internal/domain"
)

const (
	categoriesTable = "categories c"
)

type CategoryRepository interface {
	ListCategories() ([]*domain.Category, error)
	GetCategoryByID(categoryID string) (*domain.Category, error)
}

type categoryRepository struct {
	conn *postgres.Connection
}

func NewCategoryRepository(conn *postgres.Connection) CategoryRepository {
	return &categoryRepository{
		conn: conn,
	}
}

func (r *categoryRepository) ListCategories() ([]*domain.Category, error) {
	queryBuilder := categorySelect().
		OrderBy("c.created_at ASC", "c.id ASC")

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building categories query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("running categories query: %w", err)
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category rows: %w", err)
	}

	return categories, nil
}

func (r *categoryRepository) GetCategoryByID(categoryID string) (*domain.Category, error) {
	sqlQuery, args, err := categorySelect().
		Where(squirrel.Eq{"c.id": categoryID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building category query: %w", err)
	}

	row := r.conn.QueryRow(sqlQuery, args...)
	category, err := scanCategoryRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning category: %w", err)
	}

	return category, nil
}

// categorySelect builds the base category projection with brand, prompt and
// response counts resolved by correlated subqueries.
func categorySelect() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"c.id",
			"c.name",
			"COALESCE(c.description, '')",
			"(SELECT COUNT(*) FROM brands b WHERE b.category_id = c.id)",
			"(SELECT COUNT(*) FROM prompts p WHERE p.category_id = c.id)",
			"(SELECT COUNT(*) FROM responses r JOIN prompts p ON p.id = r.prompt_id WHERE p.category_id = c.id)",
			"c.created_at",
		).
		From(categoriesTable).
		PlaceholderFormat(squirrel.Dollar)
}

func scanCategory(rows *sql.Rows) (*domain.Category, error) {
	category := &domain.Category{}

	err := rows.Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.BrandCount,
		&category.PromptCount,
		&category.ResponseCount,
		&category.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return category, nil
}

func scanCategoryRow(row *sql.Row) (*domain.Category, error) {
	category := &domain.Category{}

	err := row.Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.BrandCount,
		&category.PromptCount,
		&category.ResponseCount,
		&category.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return category, nil
}
