package repository

import (
	"context"
	"sort"
	"sync"

	"heatwise-api/internal/domain"
)

// MemorySitesRepository keeps sites in process memory. Like its Postgres
// counterpart it does not check that company_id points at a live company.
type MemorySitesRepository struct {
	mu     sync.RWMutex
	sites  map[int64]domain.Site
	nextID int64
}

func NewMemorySitesRepository() *MemorySitesRepository {
	return &MemorySitesRepository{
		sites:  map[int64]domain.Site{},
		nextID: 1,
	}
}

var _ SitesRepository = (*MemorySitesRepository)(nil)

func (r *MemorySitesRepository) FindAll(_ context.Context) ([]domain.Site, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]domain.Site, 0, len(r.sites))
	for _, s := range r.sites {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *MemorySitesRepository) FindByID(_ context.Context, id int64) (*domain.Site, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sites[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r *MemorySitesRepository) Save(_ context.Context, site *domain.Site) (*domain.Site, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := *site
	if saved.ID == 0 {
		saved.ID = r.nextID
		r.nextID++
	} else if _, ok := r.sites[saved.ID]; !ok {
		return nil, ErrNotFound
	}
	r.sites[saved.ID] = saved
	return &saved, nil
}

func (r *MemorySitesRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sites, id)
	return nil
}
