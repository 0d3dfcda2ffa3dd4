package orders

import (
	"context"
	"testing"
	"time"

	"github.com/angelmondragon/shopinsights-backend/internal/tenancy"
	"github.com/angelmondragon/shopinsights-backend/pkg/db"
	"github.com/angelmondragon/shopinsights-backend/pkg/db/dbtest"
	"github.com/angelmondragon/shopinsights-backend/pkg/db/models"
	"github.com/angelmondragon/shopinsights-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopinsights-backend/pkg/errors"
	"github.com/angelmondragon/shopinsights-backend/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc    Service
	client *db.Client
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	client := dbtest.New(t)
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		now = now.Add(time.Second)
		return now
	}
	svc, err := NewService(NewRepository(client.DB()), tenancy.NewGuard(client.DB()), client, clock)
	require.NoError(t, err)
	return &fixture{svc: svc, client: client}
}

func (f *fixture) tenant(t *testing.T, domain string) int64 {
	t.Helper()
	now := time.Now().UTC()
	tenant := &models.Tenant{Name: domain, ShopifyDomain: domain, ShopifyAccessToken: "t", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, f.client.DB().Create(tenant).Error)
	return tenant.ID
}

func (f *fixture) customer(t *testing.T, tenantID int64) int64 {
	t.Helper()
	now := time.Now().UTC()
	customer := &models.Customer{
		TenantID: tenantID, ShopifyCustomerID: "c", Email: "c@shop.co",
		FirstName: "C", LastName: "D", CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, f.client.DB().Create(customer).Error)
	return customer.ID
}

func order(tenantID, customerID int64, status enums.OrderStatus, date string) CreateInput {
	return CreateInput{
		TenantID:       tenantID,
		ShopifyOrderID: "o-" + date,
		CustomerID:     customerID,
		TotalPrice:     49.5,
		Status:         status,
		OrderDate:      date,
	}
}

func dates(list []OrderDTO) []string {
	out := make([]string, 0, len(list))
	for _, o := range list {
		out = append(out, o.OrderDate)
	}
	return out
}

func TestCreateRoundTrips(t *testing.T) {
	f := newFixture(t)
	tenantID := f.tenant(t, "one.myshopify.com")
	customerID := f.customer(t, tenantID)

	created, err := f.svc.Create(context.Background(), order(tenantID, customerID, enums.OrderStatusPending, "2025-01-15T10:00:00Z"))
	require.NoError(t, err)
	assert.Equal(t, "2025-01-15T10:00:00Z", created.OrderDate)
	assert.Equal(t, enums.OrderStatusPending, created.Status)
	assert.Equal(t, 49.5, created.TotalPrice)

	fetched, err := f.svc.Get(context.Background(), created.ID, tenancy.Unscoped())
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestCreateRejectsCrossTenantCustomer(t *testing.T) {
	f := newFixture(t)
	t1 := f.tenant(t, "one.myshopify.com")
	t2 := f.tenant(t, "two.myshopify.com")
	foreign := f.customer(t, t2)

	_, err := f.svc.Create(context.Background(), order(t1, foreign, enums.OrderStatusPending, "2025-01-01"))
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeCustomerNotFound, typed.Code())
	assert.Equal(t, pkgerrors.KindValidation, typed.Kind())
	assert.Equal(t, "Customer not found or does not belong to the specified tenant", typed.Message())

	var count int64
	require.NoError(t, f.client.DB().Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateUnknownTenantIsValidationFailure(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Create(context.Background(), order(77, 1, enums.OrderStatusPending, "2025-01-01"))
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeTenantNotFound, typed.Code())
	assert.Equal(t, pkgerrors.KindValidation, typed.Kind())
}

func TestCreateRejectsUnknownStatus(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Create(context.Background(), order(1, 1, "shipped", "2025-01-01"))
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeInvalidStatus))
}

func TestListFiltersAndOrdersByOrderDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	t1 := f.tenant(t, "one.myshopify.com")
	t2 := f.tenant(t, "two.myshopify.com")
	c1 := f.customer(t, t1)
	c2 := f.customer(t, t1)
	other := f.customer(t, t2)

	for _, in := range []CreateInput{
		order(t1, c1, enums.OrderStatusCompleted, "2025-02-01"),
		order(t1, c1, enums.OrderStatusPending, "2025-03-01"),
		order(t1, c2, enums.OrderStatusCompleted, "2025-01-01"),
		order(t2, other, enums.OrderStatusCompleted, "2025-04-01"),
	} {
		_, err := f.svc.Create(ctx, in)
		require.NoError(t, err)
	}

	page := pagination.Params{Limit: pagination.DefaultLimit}
	scope := tenancy.ForTenant(t1)

	all, err := f.svc.List(ctx, ListFilter{Scope: scope, Page: page})
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03-01", "2025-02-01", "2025-01-01"}, dates(all))

	completed := enums.OrderStatusCompleted
	byStatus, err := f.svc.List(ctx, ListFilter{Scope: scope, Status: &completed, Page: page})
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-02-01", "2025-01-01"}, dates(byStatus))

	byCustomer, err := f.svc.List(ctx, ListFilter{Scope: scope, CustomerID: &c1, Page: page})
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03-01", "2025-02-01"}, dates(byCustomer))

	ranged, err := f.svc.List(ctx, ListFilter{Scope: scope, StartDate: "2025-01-01", EndDate: "2025-02-01", Page: page})
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-02-01", "2025-01-01"}, dates(ranged))

	bogus := enums.OrderStatus("shipped")
	_, err = f.svc.List(ctx, ListFilter{Scope: scope, Status: &bogus, Page: page})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeInvalidStatus))
}

func TestUpdateStatusAndPrice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tenantID := f.tenant(t, "one.myshopify.com")
	customerID := f.customer(t, tenantID)
	created, err := f.svc.Create(ctx, order(tenantID, customerID, enums.OrderStatusCompleted, "2025-01-01"))
	require.NoError(t, err)

	// completed back to pending is allowed.
	pending := enums.OrderStatusPending
	updated, err := f.svc.Update(ctx, created.ID, func() (UpdateInput, error) {
		return UpdateInput{Status: &pending}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusPending, updated.Status)
	assert.Equal(t, created.TotalPrice, updated.TotalPrice)
	assert.Equal(t, created.OrderDate, updated.OrderDate)
	assert.Greater(t, updated.UpdatedAt, created.UpdatedAt)

	price := 75.25
	updated, err = f.svc.Update(ctx, created.ID, func() (UpdateInput, error) {
		return UpdateInput{TotalPrice: &price}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 75.25, updated.TotalPrice)
	assert.Equal(t, enums.OrderStatusPending, updated.Status)
}

func TestUpdateAndDeleteMissingOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Update(ctx, 123, func() (UpdateInput, error) { return UpdateInput{}, nil })
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeOrderNotFound))
	_, err = f.svc.Delete(ctx, 123)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeOrderNotFound))
}

func TestDeleteReturnsPriorState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tenantID := f.tenant(t, "one.myshopify.com")
	customerID := f.customer(t, tenantID)
	created, err := f.svc.Create(ctx, order(tenantID, customerID, enums.OrderStatusRefunded, "2025-01-01"))
	require.NoError(t, err)

	deleted, err := f.svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, deleted)
}
