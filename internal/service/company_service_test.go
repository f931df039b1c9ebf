package service

import (
	"context"
	"testing"
	"time"

	"heatwise-api/internal/domain"
	"heatwise-api/internal/repository"
	"heatwise-api/internal/store"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeKV struct {
	data map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", store.ErrMiss
	}
	return v, nil
}

func (f *fakeKV) Set(_ context.Context, key, value string, _ time.Duration) error {
	f.data[key] = value
	return nil
}

func (f *fakeKV) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

func newCompanyService(kv *fakeKV) *CompanyService {
	logger := zap.NewNop()
	return NewCompanyService(
		repository.NewMemoryCompaniesRepository(),
		store.NewListCache(kv, logger),
		logger,
	)
}

func testCompany() domain.Company {
	return domain.Company{
		Name:     "Acme",
		TaxID:    "123",
		PlanID:   domain.PlanBasic,
		Phone:    "555",
		Email:    "a@x.com",
		Password: "s3cr3t",
	}
}

func TestCompanyService_CreateThenShowRoundtrip(t *testing.T) {
	svc := newCompanyService(newFakeKV())
	ctx := context.Background()

	in := testCompany()
	created, err := svc.Create(ctx, in)
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.Show(ctx, created.ID)
	require.NoError(t, err)

	want := in
	want.ID = created.ID
	require.Equal(t, &want, got)
}

func TestCompanyService_CreateIgnoresPayloadID(t *testing.T) {
	svc := newCompanyService(newFakeKV())

	in := testCompany()
	in.ID = 999
	created, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	require.NotEqual(t, int64(999), created.ID)
}

func TestCompanyService_CreateRejectsInvalidPayload(t *testing.T) {
	svc := newCompanyService(newFakeKV())

	in := testCompany()
	in.Email = "nope"
	_, err := svc.Create(context.Background(), in)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)

	// Nothing persisted.
	companies, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, companies)
}

func TestCompanyService_UpdateNonexistentWritesNothing(t *testing.T) {
	svc := newCompanyService(newFakeKV())
	ctx := context.Background()

	_, err := svc.Update(ctx, 42, testCompany())
	require.ErrorIs(t, err, domain.ErrCompanyNotFound)

	companies, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, companies)
}

func TestCompanyService_UpdateForcesPathID(t *testing.T) {
	svc := newCompanyService(newFakeKV())
	ctx := context.Background()

	created, err := svc.Create(ctx, testCompany())
	require.NoError(t, err)

	replacement := testCompany()
	replacement.ID = 777 // body id is ignored
	replacement.Name = "Acme 2"
	updated, err := svc.Update(ctx, created.ID, replacement)
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "Acme 2", updated.Name)

	got, err := svc.Show(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Acme 2", got.Name)
}

func TestCompanyService_DeleteNonexistent(t *testing.T) {
	svc := newCompanyService(newFakeKV())
	err := svc.Delete(context.Background(), 42)
	require.ErrorIs(t, err, domain.ErrCompanyNotFound)
}

func TestCompanyService_ListReflectsEveryWrite(t *testing.T) {
	svc := newCompanyService(newFakeKV())
	ctx := context.Background()

	// Prime the cache with an empty list.
	companies, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, companies)

	created, err := svc.Create(ctx, testCompany())
	require.NoError(t, err)

	companies, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, companies, 1)

	replacement := testCompany()
	replacement.Name = "Renamed"
	_, err = svc.Update(ctx, created.ID, replacement)
	require.NoError(t, err)

	companies, err = svc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "Renamed", companies[0].Name)

	require.NoError(t, svc.Delete(ctx, created.ID))

	companies, err = svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, companies)
}

func TestCompanyService_ListServedFromCache(t *testing.T) {
	kv := newFakeKV()
	svc := newCompanyService(kv)
	ctx := context.Background()

	_, err := svc.Create(ctx, testCompany())
	require.NoError(t, err)

	_, err = svc.List(ctx)
	require.NoError(t, err)

	// Poison the cached entry; a cache-served read will reflect it.
	kv.data["companies:all"] = `[]`
	companies, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, companies, "list must be served from the cache region")
}

func TestCompanyService_Login(t *testing.T) {
	svc := newCompanyService(newFakeKV())
	ctx := context.Background()

	created, err := svc.Create(ctx, testCompany())
	require.NoError(t, err)

	got, err := svc.Login(ctx, "a@x.com", "s3cr3t")
	require.NoError(t, err)
	require.Equal(t, created, got)

	_, err = svc.Login(ctx, "a@x.com", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "unknown@x.com", "s3cr3t")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// Case-sensitive, exact comparison.
	_, err = svc.Login(ctx, "a@x.com", "S3cr3t")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
