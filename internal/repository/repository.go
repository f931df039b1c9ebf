package repository

import (
	"context"
	"errors"

	"heatwise-api/internal/domain"
)

// ErrNotFound is returned by lookups when no record matches.
var ErrNotFound = errors.New("record not found")

// CompaniesRepository is the storage contract for companies.
// Save inserts when the id is zero (storage assigns one) and performs a
// full-replace update otherwise. DeleteByID no-ops on absent ids; existence
// checks belong to the caller.
type CompaniesRepository interface {
	FindAll(ctx context.Context) ([]domain.Company, error)
	FindByID(ctx context.Context, id int64) (*domain.Company, error)
	// FindByEmail returns the first match in storage order. email is not
	// unique, so duplicates resolve to the oldest record.
	FindByEmail(ctx context.Context, email string) (*domain.Company, error)
	Save(ctx context.Context, company *domain.Company) (*domain.Company, error)
	DeleteByID(ctx context.Context, id int64) error
}

// SitesRepository is the storage contract for sites.
type SitesRepository interface {
	FindAll(ctx context.Context) ([]domain.Site, error)
	FindByID(ctx context.Context, id int64) (*domain.Site, error)
	Save(ctx context.Context, site *domain.Site) (*domain.Site, error)
	DeleteByID(ctx context.Context, id int64) error
}
