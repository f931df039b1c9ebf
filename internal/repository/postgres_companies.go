package repository

import (
	"context"
	"database/sql"
	"fmt"

	"heatwise-api/internal/domain"
)

// PostgresCompaniesRepository implements CompaniesRepository on Postgres.
type PostgresCompaniesRepository struct {
	db *sql.DB
}

func NewPostgresCompaniesRepository(db *sql.DB) *PostgresCompaniesRepository {
	return &PostgresCompaniesRepository{db: db}
}

var _ CompaniesRepository = (*PostgresCompaniesRepository)(nil)

const companyColumns = `id, name, tax_id, plan_id, phone, email, password`

func scanCompany(row interface{ Scan(dest ...any) error }, c *domain.Company) error {
	return row.Scan(&c.ID, &c.Name, &c.TaxID, &c.PlanID, &c.Phone, &c.Email, &c.Password)
}

func (r *PostgresCompaniesRepository) FindAll(ctx context.Context) ([]domain.Company, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+companyColumns+` FROM companies ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	companies := []domain.Company{}
	for rows.Next() {
		var c domain.Company
		if err := scanCompany(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate companies: %w", err)
	}
	return companies, nil
}

func (r *PostgresCompaniesRepository) FindByID(ctx context.Context, id int64) (*domain.Company, error) {
	var c domain.Company
	err := scanCompany(r.db.QueryRowContext(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`, id), &c)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &c, nil
}

func (r *PostgresCompaniesRepository) FindByEmail(ctx context.Context, email string) (*domain.Company, error) {
	// email is not unique; take the oldest match.
	var c domain.Company
	err := scanCompany(r.db.QueryRowContext(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE email = $1 ORDER BY id LIMIT 1`, email), &c)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get company by email: %w", err)
	}
	return &c, nil
}

func (r *PostgresCompaniesRepository) Save(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	if company == nil {
		return nil, fmt.Errorf("company is required")
	}

	saved := *company
	if company.ID == 0 {
		err := r.db.QueryRowContext(ctx,
			`INSERT INTO companies (name, tax_id, plan_id, phone, email, password)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id`,
			company.Name, company.TaxID, company.PlanID, company.Phone, company.Email, company.Password,
		).Scan(&saved.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to create company: %w", err)
		}
		return &saved, nil
	}

	// Full replace: every column is overwritten.
	result, err := r.db.ExecContext(ctx,
		`UPDATE companies
		 SET name = $2, tax_id = $3, plan_id = $4, phone = $5, email = $6, password = $7
		 WHERE id = $1`,
		company.ID, company.Name, company.TaxID, company.PlanID, company.Phone, company.Email, company.Password,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
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

func (r *PostgresCompaniesRepository) DeleteByID(ctx context.Context, id int64) error {
	// No-op when absent; the service layer decides whether absence is an error.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM companies WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}
