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

// sitesRegion is the cache region holding the full site list. It is
// independent of the companies region: writes to one never evict the other.
const sitesRegion = "sites:all"

// SiteService implements the site CRUD surface.
type SiteService struct {
	repo   repository.SitesRepository
	cache  *store.ListCache
	logger *zap.Logger
}

func NewSiteService(repo repository.SitesRepository, cache *store.ListCache, logger *zap.Logger) *SiteService {
	return &SiteService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// List returns every site in storage order, served from the sites cache
// region. Sites whose owning company was deleted are still returned.
func (s *SiteService) List(ctx context.Context) ([]domain.Site, error) {
	raw, err := s.cache.GetOrCompute(ctx, sitesRegion, func(ctx context.Context) (string, error) {
		sites, err := s.repo.FindAll(ctx)
		if err != nil {
			return "", err
		}
		b, err := json.Marshal(sites)
		if err != nil {
			return "", fmt.Errorf("failed to encode sites for cache: %w", err)
		}
		return string(b), nil
	})
	if err != nil {
		return nil, err
	}

	var sites []domain.Site
	if err := json.Unmarshal([]byte(raw), &sites); err != nil {
		return nil, fmt.Errorf("failed to decode cached sites: %w", err)
	}
	return sites, nil
}

// Create validates and persists a new site. The owner reference is not
// checked against the companies table.
func (s *SiteService) Create(ctx context.Context, site domain.Site) (*domain.Site, error) {
	if err := site.Validate(); err != nil {
		return nil, err
	}

	site.ID = 0
	created, err := s.repo.Save(ctx, &site)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Evict(ctx, sitesRegion); err != nil {
		return nil, err
	}

	s.logger.Info("site created", zap.Int64("id", created.ID), zap.String("nickname", created.Nickname))
	return created, nil
}

// Show returns the site with the given id.
func (s *SiteService) Show(ctx context.Context, id int64) (*domain.Site, error) {
	site, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrSiteNotFound
		}
		return nil, err
	}
	return site, nil
}

// Update replaces the site with the given id in full; the path id wins over
// any id in the payload.
func (s *SiteService) Update(ctx context.Context, id int64, site domain.Site) (*domain.Site, error) {
	if _, err := s.Show(ctx, id); err != nil {
		return nil, err
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}

	site.ID = id
	updated, err := s.repo.Save(ctx, &site)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Evict(ctx, sitesRegion); err != nil {
		return nil, err
	}

	s.logger.Info("site updated", zap.Int64("id", id))
	return updated, nil
}

// Delete removes the site with the given id.
func (s *SiteService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Show(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	if err := s.cache.Evict(ctx, sitesRegion); err != nil {
		return err
	}

	s.logger.Info("site deleted", zap.Int64("id", id))
	return nil
}
