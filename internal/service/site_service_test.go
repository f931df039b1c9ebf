package service

import (
	"context"
	"testing"

	"heatwise-api/internal/domain"
	"heatwise-api/internal/repository"
	"heatwise-api/internal/store"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testSite(companyID int64) domain.Site {
	return domain.Site{
		Nickname:  "Shop",
		URL:       "https://shop.example.com",
		CompanyID: companyID,
	}
}

func TestSiteService_CRUD(t *testing.T) {
	logger := zap.NewNop()
	cache := store.NewListCache(newFakeKV(), logger)
	svc := NewSiteService(repository.NewMemorySitesRepository(), cache, logger)
	ctx := context.Background()

	created, err := svc.Create(ctx, testSite(1))
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.Show(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)

	replacement := testSite(1)
	replacement.Nickname = "Store"
	updated, err := svc.Update(ctx, created.ID, replacement)
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)

	sites, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, sites, 1)
	require.Equal(t, "Store", sites[0].Nickname)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Show(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrSiteNotFound)
	require.ErrorIs(t, svc.Delete(ctx, created.ID), domain.ErrSiteNotFound)
	_, err = svc.Update(ctx, created.ID, replacement)
	require.ErrorIs(t, err, domain.ErrSiteNotFound)
}

func TestSiteService_CreateRejectsInvalidURL(t *testing.T) {
	logger := zap.NewNop()
	cache := store.NewListCache(newFakeKV(), logger)
	svc := NewSiteService(repository.NewMemorySitesRepository(), cache, logger)

	in := testSite(1)
	in.URL = "not a url"
	_, err := svc.Create(context.Background(), in)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestSiteWritesDoNotEvictCompanyRegion(t *testing.T) {
	logger := zap.NewNop()
	kv := newFakeKV()
	cache := store.NewListCache(kv, logger)

	companies := NewCompanyService(repository.NewMemoryCompaniesRepository(), cache, logger)
	sites := NewSiteService(repository.NewMemorySitesRepository(), cache, logger)
	ctx := context.Background()

	_, err := companies.Create(ctx, testCompany())
	require.NoError(t, err)
	_, err = companies.List(ctx) // populate companies region
	require.NoError(t, err)
	cachedCompanies := kv.data["companies:all"]
	require.NotEmpty(t, cachedCompanies)

	_, err = sites.Create(ctx, testSite(1))
	require.NoError(t, err)

	require.Equal(t, cachedCompanies, kv.data["companies:all"],
		"a site write must not evict the companies region")

	_, err = sites.List(ctx) // populate sites region
	require.NoError(t, err)
	cachedSites := kv.data["sites:all"]
	require.NotEmpty(t, cachedSites)

	_, err = companies.Create(ctx, testCompany())
	require.NoError(t, err)
	require.Equal(t, cachedSites, kv.data["sites:all"],
		"a company write must not evict the sites region")
}

func TestDeletingCompanyLeavesDanglingSiteOwner(t *testing.T) {
	logger := zap.NewNop()
	kv := newFakeKV()
	cache := store.NewListCache(kv, logger)

	companies := NewCompanyService(repository.NewMemoryCompaniesRepository(), cache, logger)
	sites := NewSiteService(repository.NewMemorySitesRepository(), cache, logger)
	ctx := context.Background()

	owner, err := companies.Create(ctx, testCompany())
	require.NoError(t, err)

	site, err := sites.Create(ctx, testSite(owner.ID))
	require.NoError(t, err)

	require.NoError(t, companies.Delete(ctx, owner.ID))

	// No cascade: the site survives with a dangling owner reference.
	listed, err := sites.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, site.ID, listed[0].ID)
	require.Equal(t, owner.ID, listed[0].CompanyID)

	_, err = companies.Show(ctx, listed[0].CompanyID)
	require.ErrorIs(t, err, domain.ErrCompanyNotFound)
}
