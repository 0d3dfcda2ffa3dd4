package tenants

import (
	"context"
	"testing"
	"time"

	"github.com/angelmondragon/shopinsights-backend/pkg/db"
	"github.com/angelmondragon/shopinsights-backend/pkg/db/dbtest"
	"github.com/angelmondragon/shopinsights-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/shopinsights-backend/pkg/errors"
	"github.com/angelmondragon/shopinsights-backend/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

func newTestService(t *testing.T) (Service, *db.Client) {
	t.Helper()
	client := dbtest.New(t)
	clock := &fakeClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	svc, err := NewService(NewRepository(client.DB()), client, clock.Now)
	require.NoError(t, err)
	return svc, client
}

func strPtr(s string) *string { return &s }

func parserFor(input UpdateInput) UpdateParser {
	return func() (UpdateInput, error) { return input, nil }
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	client := dbtest.New(t)
	_, err := NewService(nil, client, nil)
	assert.Error(t, err)
	_, err = NewService(NewRepository(client.DB()), nil, nil)
	assert.Error(t, err)
}

func TestCreateNormalizesAndRoundTrips(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{
		Name:               "  Acme Store ",
		ShopifyDomain:      " ACME-Store.myshopify.com ",
		ShopifyAccessToken: " shpat_123 ",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Acme Store", created.Name)
	assert.Equal(t, "acme-store.myshopify.com", created.ShopifyDomain)
	assert.Equal(t, "shpat_123", created.ShopifyAccessToken)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestCreateRejectsDuplicateDomainCaseInsensitively(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{Name: "A", ShopifyDomain: "shop.myshopify.com", ShopifyAccessToken: "t"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateInput{Name: "B", ShopifyDomain: "SHOP.myshopify.com", ShopifyAccessToken: "t"})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeDuplicateShopifyDomain, typed.Code())
	assert.Equal(t, pkgerrors.KindConflict, typed.Kind())
	assert.Equal(t, "Shopify domain already exists", typed.Message())
}

func TestGetMissingTenant(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Get(context.Background(), 999)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeTenantNotFound))
}

func TestListSearchesNameAndDomainNewestFirst(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, in := range []CreateInput{
		{Name: "Acme Store", ShopifyDomain: "acme.myshopify.com", ShopifyAccessToken: "t"},
		{Name: "Fashion Boutique", ShopifyDomain: "fashion.myshopify.com", ShopifyAccessToken: "t"},
		{Name: "Tech Gadgets", ShopifyDomain: "gadgets-acme.myshopify.com", ShopifyAccessToken: "t"},
	} {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, ListFilter{Page: pagination.Params{Limit: 10}})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Tech Gadgets", all[0].Name)
	assert.Equal(t, "Acme Store", all[2].Name)

	matched, err := svc.List(ctx, ListFilter{Search: "acme", Page: pagination.Params{Limit: 10}})
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "Tech Gadgets", matched[0].Name)
	assert.Equal(t, "Acme Store", matched[1].Name)

	paged, err := svc.List(ctx, ListFilter{Page: pagination.Params{Limit: 1, Offset: 1}})
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, "Fashion Boutique", paged[0].Name)

	none, err := svc.List(ctx, ListFilter{Search: "nothing", Page: pagination.Params{Limit: 10}})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestUpdateIsPartialAndRefreshesUpdatedAt(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Name: "Acme", ShopifyDomain: "acme.myshopify.com", ShopifyAccessToken: "old"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, parserFor(UpdateInput{ShopifyAccessToken: strPtr(" new ")}))
	require.NoError(t, err)
	assert.Equal(t, "Acme", updated.Name)
	assert.Equal(t, "acme.myshopify.com", updated.ShopifyDomain)
	assert.Equal(t, "new", updated.ShopifyAccessToken)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Greater(t, updated.UpdatedAt, created.UpdatedAt)
}

func TestUpdateDomainUniquenessExcludesSelf(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateInput{Name: "A", ShopifyDomain: "a.myshopify.com", ShopifyAccessToken: "t"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateInput{Name: "B", ShopifyDomain: "b.myshopify.com", ShopifyAccessToken: "t"})
	require.NoError(t, err)

	same, err := svc.Update(ctx, a.ID, parserFor(UpdateInput{ShopifyDomain: strPtr("A.MYSHOPIFY.COM")}))
	require.NoError(t, err)
	assert.Equal(t, "a.myshopify.com", same.ShopifyDomain)

	_, err = svc.Update(ctx, a.ID, parserFor(UpdateInput{ShopifyDomain: strPtr("b.myshopify.com")}))
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeDuplicateShopifyDomain))
}

func TestUpdateMissingTenantSkipsParser(t *testing.T) {
	svc, _ := newTestService(t)
	called := false
	_, err := svc.Update(context.Background(), 999, func() (UpdateInput, error) {
		called = true
		return UpdateInput{}, pkgerrors.Validation(pkgerrors.CodeInvalidName, "Name cannot be empty")
	})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeTenantNotFound))
	assert.False(t, called)
}

func TestUpdateParserErrorAborts(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, CreateInput{Name: "Acme", ShopifyDomain: "acme.myshopify.com", ShopifyAccessToken: "t"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, func() (UpdateInput, error) {
		return UpdateInput{}, pkgerrors.Validation(pkgerrors.CodeInvalidName, "Name cannot be empty")
	})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeInvalidName))

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestDeleteReturnsPriorState(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, CreateInput{Name: "Acme", ShopifyDomain: "acme.myshopify.com", ShopifyAccessToken: "t"})
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, deleted)

	_, err = svc.Get(ctx, created.ID)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeTenantNotFound))

	_, err = svc.Delete(ctx, created.ID)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeTenantNotFound))
}

func TestDeleteReferencedTenantFails(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, CreateInput{Name: "Acme", ShopifyDomain: "acme.myshopify.com", ShopifyAccessToken: "t"})
	require.NoError(t, err)

	now := time.Now().UTC()
	require.NoError(t, client.DB().Create(&models.Customer{
		TenantID: created.ID, ShopifyCustomerID: "c1", Email: "a@b.co",
		FirstName: "A", LastName: "B", CreatedAt: now, UpdatedAt: now,
	}).Error)

	_, err = svc.Delete(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.KindInternal, pkgerrors.As(err).Kind())

	_, err = svc.Get(ctx, created.ID)
	assert.NoError(t, err)
}
