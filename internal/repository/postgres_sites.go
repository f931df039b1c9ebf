package repository

import (
	"context"
	"database/sql"
	"fmt"

	"heatwise-api/internal/domain"
)

// PostgresSitesRepository implements SitesRepository on Postgres.
// sites.company_id carries no FK constraint, so rows may reference a
// company that no longer exists.
type PostgresSitesRepository struct {
	db *sql.DB
}

func NewPostgresSitesRepository(db *sql.DB) *PostgresSitesRepository {
	return &PostgresSitesRepository{db: db}
}

var _ SitesRepository = (*PostgresSitesRepository)(nil)

func (r *PostgresSitesRepository) FindAll(ctx context.Context) ([]domain.Site, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, nickname, url, company_id FROM sites ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	defer rows.Close()

	sites := []domain.Site{}
	for rows.Next() {
		var s domain.Site
		if err := rows.Scan(&s.ID, &s.Nickname, &s.URL, &s.CompanyID); err != nil {
			return nil, fmt.Errorf("failed to scan site: %w", err)
		}
		sites = append(sites, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sites: %w", err)
	}
	return sites, nil
}

func (r *PostgresSitesRepository) FindByID(ctx context.Context, id int64) (*domain.Site, error) {
	var s domain.Site
	err := r.db.QueryRowContext(ctx,
		`SELECT id, nickname, url, company_id FROM sites WHERE id = $1`, id,
	).Scan(&s.ID, &s.Nickname, &s.URL, &s.CompanyID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get site: %w", err)
	}
	return &s, nil
}

func (r *PostgresSitesRepository) Save(ctx context.Context, site *domain.Site) (*domain.Site, error) {
	if site == nil {
		return nil, fmt.Errorf("site is required")
	}

	saved := *site
	if site.ID == 0 {
		err := r.db.QueryRowContext(ctx,
			`INSERT INTO sites (nickname, url, company_id)
			 VALUES ($1, $2, $3)
			 RETURNING id`,
			site.Nickname, site.URL, site.CompanyID,
		).Scan(&saved.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to create site: %w", err)
		}
		return &saved, nil
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE sites SET nickname = $2, url = $3, company_id = $4 WHERE id = $1`,
		site.ID, site.Nickname, site.URL, site.CompanyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update site: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return &saved, nil
}

func (r *PostgresSitesRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sites WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete site: %w", err)
	}
	return nil
}
