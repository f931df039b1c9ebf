package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"heatwise-api/internal/domain"
	"heatwise-api/internal/repository"
	"heatwise-api/internal/store"

	"go.uber.org/zap"
)

// companiesRegion is the cache region holding the full company list.
const companiesRegion = "companies:all"

// CompanyService implements the company CRUD surface and login.
type CompanyService struct {
	repo   repository.CompaniesRepository
	cache  *store.ListCache
	logger *zap.Logger
}

func NewCompanyService(repo repository.CompaniesRepository, cache *store.ListCache, logger *zap.Logger) *CompanyService {
	return &CompanyService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// List returns every company in storage order. The result is served from
// the companies cache region; the first call after a write recomputes it.
func (s *CompanyService) List(ctx context.Context) ([]domain.Company, error) {
	raw, err := s.cache.GetOrCompute(ctx, companiesRegion, func(ctx context.Context) (string, error) {
		companies, err := s.repo.FindAll(ctx)
		if err != nil {
			return "", err
		}
		b, err := json.Marshal(companies)
		if err != nil {
			return "", fmt.Errorf("failed to encode companies for cache: %w", err)
		}
		return string(b), nil
	})
	if err != nil {
		return nil, err
	}

	var companies []domain.Company
	if err := json.Unmarshal([]byte(raw), &companies); err != nil {
		return nil, fmt.Errorf("failed to decode cached companies: %w", err)
	}
	return companies, nil
}

// Create validates and persists a new company. Storage assigns the id; any
// id in the payload is ignored.
func (s *CompanyService) Create(ctx context.Context, company domain.Company) (*domain.Company, error) {
	if err := company.Validate(); err != nil {
		return nil, err
	}

	company.ID = 0
	created, err := s.repo.Save(ctx, &company)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Evict(ctx, companiesRegion); err != nil {
		return nil, err
	}

	s.logger.Info("company created", zap.Int64("id", created.ID), zap.String("name", created.Name))
	return created, nil
}

// Show returns the company with the given id.
func (s *CompanyService) Show(ctx context.Context, id int64) (*domain.Company, error) {
	company, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, err
	}
	return company, nil
}

// Update replaces the company with the given id in full. The path id wins
// over any id in the payload. Nothing is written when the id is unknown.
func (s *CompanyService) Update(ctx context.Context, id int64, company domain.Company) (*domain.Company, error) {
	if _, err := s.Show(ctx, id); err != nil {
		return nil, err
	}
	if err := company.Validate(); err != nil {
		return nil, err
	}

	company.ID = id
	updated, err := s.repo.Save(ctx, &company)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Evict(ctx, companiesRegion); err != nil {
		return nil, err
	}

	s.logger.Info("company updated", zap.Int64("id", id))
	return updated, nil
}

// Delete removes the company with the given id. Dependent sites are left in
// place with dangling owner references; there is no cascade.
func (s *CompanyService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Show(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	if err := s.cache.Evict(ctx, companiesRegion); err != nil {
		return err
	}

	s.logger.Info("company deleted", zap.Int64("id", id))
	return nil
}

// Login returns the company profile when email and password match a stored
// record. Unknown email and wrong password produce the same error; no token
// or session is issued.
func (s *CompanyService) Login(ctx context.Context, email, password string) (*domain.Company, error) {
	company, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Info("login rejected", zap.String("email", email))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	// Byte-for-byte plaintext comparison against the stored credential.
	if company.Password != password {
		s.logger.Info("login rejected", zap.String("email", email))
		return nil, domain.ErrInvalidCredentials
	}

	s.logger.Info("login accepted", zap.Int64("id", company.ID))
	return company, nil
}
