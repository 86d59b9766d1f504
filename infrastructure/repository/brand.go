package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/visibly/ai-visibility-api/infrastructure/database/postgres"
	"github.com/visibly/ai-visibility-api/internal/domain"
)

const (
	brandsTable = "brands b"
)

type BrandRepository interface {
	ListBrandsByCategory(categoryID string) ([]*domain.Brand, error)
	GetBrandByID(brandID string) (*domain.Brand, error)
	GetBrandDetails(brandID string) (*domain.BrandDetails, error)
	ListBrandNamesByCategory(categoryID string) ([]string, error)
}

type brandRepository struct {
	conn *postgres.Connection
}

func NewBrandRepository(conn *postgres.Connection) BrandRepository {
	return &brandRepository{
		conn: conn,
	}
}

func (r *brandRepository) ListBrandsByCategory(categoryID string) ([]*domain.Brand, error) {
	sqlQuery, args, err := squirrel.
		Select("b.id", "b.name", "b.category_id", "b.created_at").
		From(brandsTable).
		Where(squirrel.Eq{"b.category_id": categoryID}).
		OrderBy("b.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building brands query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("running brands query: %w", err)
	}
	defer rows.Close()

	brands := make([]*domain.Brand, 0)
	for rows.Next() {
		brand := &domain.Brand{}
		if err := rows.Scan(&brand.ID, &brand.Name, &brand.CategoryID, &brand.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning brand: %w", err)
		}
		brands = append(brands, brand)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating brand rows: %w", err)
	}

	return brands, nil
}

func (r *brandRepository) GetBrandByID(brandID string) (*domain.Brand, error) {
	sqlQuery, args, err := squirrel.
		Select("b.id", "b.name", "b.category_id", "b.created_at").
		From(brandsTable).
		Where(squirrel.Eq{"b.id": brandID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building brand query: %w", err)
	}

	brand := &domain.Brand{}
	row := r.conn.QueryRow(sqlQuery, args...)
	if err := row.Scan(&brand.ID, &brand.Name, &brand.CategoryID, &brand.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning brand: %w", err)
	}

	return brand, nil
}

// GetBrandDetails resolves the brand together with its aggregate mention and
// response counts across all sources. The visibility score itself is derived
// by the analytics service, not here.
func (r *brandRepository) GetBrandDetails(brandID string) (*domain.BrandDetails, error) {
	sqlQuery, args, err := squirrel.
		Select(
			"b.id",
			"b.name",
			"b.category_id",
			"c.name",
			"COALESCE(SUM(s.mention_count), 0)",
			"COALESCE(SUM(s.response_count), 0)",
			"b.created_at",
		).
		From(brandsTable).
		Join("categories c ON c.id = b.category_id").
		LeftJoin("brand_visibility_stats s ON s.brand_id = b.id").
		Where(squirrel.Eq{"b.id": brandID}).
		GroupBy("b.id", "b.name", "b.category_id", "c.name", "b.created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building brand details query: %w", err)
	}

	details := &domain.BrandDetails{}
	row := r.conn.QueryRow(sqlQuery, args...)
	err = row.Scan(
		&details.ID,
		&details.Name,
		&details.CategoryID,
		&details.CategoryName,
		&details.MentionCount,
		&details.ResponseCount,
		&details.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning brand details: %w", err)
	}

	return details, nil
}

func (r *brandRepository) ListBrandNamesByCategory(categoryID string) ([]string, error) {
	sqlQuery, args, err := squirrel.
		Select("b.name").
		From(brandsTable).
		Where(squirrel.Eq{"b.category_id": categoryID}).
		OrderBy("b.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building brand names query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("running brand names query: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning brand name: %w", err)
		}
		names = append(names, name)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating brand name rows: %w", err)
	}

	return names, nil
}
