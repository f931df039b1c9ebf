package repository

import (
	"context"
	"sort"
	"sync"

	"heatwise-api/internal/domain"
)

// MemoryCompaniesRepository keeps companies in process memory. It backs the
// API when the database is disabled or unreachable, and doubles as the
// repository used by unit tests.
type MemoryCompaniesRepository struct {
	mu        sync.RWMutex
	companies map[int64]domain.Company
	nextID    int64
}

func NewMemoryCompaniesRepository() *MemoryCompaniesRepository {
	return &MemoryCompaniesRepository{
		companies: map[int64]domain.Company{},
		nextID:    1,
	}
}

var _ CompaniesRepository = (*MemoryCompaniesRepository)(nil)

func (r *MemoryCompaniesRepository) FindAll(_ context.Context) ([]domain.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]domain.Company, 0, len(r.companies))
	for _, c := range r.companies {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *MemoryCompaniesRepository) FindByID(_ context.Context, id int64) (*domain.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.companies[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r *MemoryCompaniesRepository) FindByEmail(_ context.Context, email string) (*domain.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Oldest match wins, mirroring the Postgres implementation.
	var found *domain.Company
	for _, c := range r.companies {
		if c.Email != email {
			continue
		}
		if found == nil || c.ID < found.ID {
			c := c
			found = &c
		}
	}
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

func (r *MemoryCompaniesRepository) Save(_ context.Context, company *domain.Company) (*domain.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := *company
	if saved.ID == 0 {
		saved.ID = r.nextID
		r.nextID++
	} else if _, ok := r.companies[saved.ID]; !ok {
		return nil, ErrNotFound
	}
	r.companies[saved.ID] = saved
	return &saved, nil
}

func (r *MemoryCompaniesRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.companies, id)
	return nil
}
