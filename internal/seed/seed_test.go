package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/shopinsights-backend/internal/customers"
	"github.com/angelmondragon/shopinsights-backend/internal/orders"
	"github.com/angelmondragon/shopinsights-backend/internal/products"
	"github.com/angelmondragon/shopinsights-backend/internal/tenancy"
	"github.com/angelmondragon/shopinsights-backend/internal/tenants"
	"github.com/angelmondragon/shopinsights-backend/pkg/db/dbtest"
	"github.com/angelmondragon/shopinsights-backend/pkg/logger"
	"github.com/angelmondragon/shopinsights-backend/pkg/pagination"
)

var seedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newServices(t *testing.T) Services {
	t.Helper()
	client := dbtest.New(t)
	guard := tenancy.NewGuard(client.DB())

	ts, err := tenants.NewService(tenants.NewRepository(client.DB()), client, nil)
	require.NoError(t, err)
	cs, err := customers.NewService(customers.NewRepository(client.DB()), guard, client, nil)
	require.NoError(t, err)
	ps, err := products.NewService(products.NewRepository(client.DB()), guard, client, nil)
	require.NoError(t, err)
	os, err := orders.NewService(orders.NewRepository(client.DB()), guard, client, nil)
	require.NoError(t, err)
	return Services{Tenants: ts, Customers: cs, Products: ps, Orders: os}
}

func smallOptions() Options {
	return Options{Seed: 7, Now: seedNow, CustomersPerTenant: 5, ProductsPerTenant: 3, OrdersPerTenant: 40}
}

func TestRunSeedsEveryTenant(t *testing.T) {
	svcs := newServices(t)
	s, err := New(svcs, logger.Nop(), smallOptions())
	require.NoError(t, err)

	report, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Report{TenantsCreated: 3, Customers: 15, Products: 9, Orders: 120}, report)

	ctx := context.Background()
	page := pagination.Params{Limit: pagination.MaxLimit}
	list, err := svcs.Tenants.List(ctx, tenants.ListFilter{Page: page})
	require.NoError(t, err)
	require.Len(t, list, 3)

	for _, tenant := range list {
		scope := tenancy.ForTenant(tenant.ID)
		os, err := svcs.Orders.List(ctx, orders.ListFilter{Scope: scope, Page: page})
		require.NoError(t, err)
		require.Len(t, os, 40)

		oldest := seedNow.AddDate(0, -12, 0)
		perCustomer := map[int64]int{}
		for _, o := range os {
			assert.True(t, o.Status.IsValid(), "status %q", o.Status)
			assert.GreaterOrEqual(t, o.TotalPrice, 20.0)
			assert.LessOrEqual(t, o.TotalPrice, 800.0)
			date, err := time.Parse(time.RFC3339, o.OrderDate)
			require.NoError(t, err)
			assert.False(t, date.After(seedNow))
			assert.True(t, date.After(oldest), "order date %s too old", o.OrderDate)
			perCustomer[o.CustomerID]++
		}

		cs, err := svcs.Customers.List(ctx, customers.ListFilter{Scope: scope, Page: page})
		require.NoError(t, err)
		for _, c := range cs {
			assert.Equal(t, perCustomer[c.ID], c.OrdersCount, "customer %d", c.ID)
		}
	}
}

func TestRunIsIdempotent(t *testing.T) {
	svcs := newServices(t)
	first, err := New(svcs, nil, smallOptions())
	require.NoError(t, err)
	_, err = first.Run(context.Background())
	require.NoError(t, err)

	second, err := New(svcs, nil, smallOptions())
	require.NoError(t, err)
	report, err := second.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Report{TenantsSkipped: 3}, report)
}

func TestOrderPriceDistribution(t *testing.T) {
	s, err := New(newServices(t), nil, smallOptions())
	require.NoError(t, err)

	buckets := map[string]int{}
	const draws = 10000
	for i := 0; i < draws; i++ {
		p := s.orderPrice()
		require.True(t, p >= 20 && p <= 800, "price %v", p)
		switch {
		case p < 100:
			buckets["small"]++
		case p < 300:
			buckets["medium"]++
		case p < 500:
			buckets["large"]++
		default:
			buckets["xl"]++
		}
	}
	assert.InDelta(t, 0.40, float64(buckets["small"])/draws, 0.03)
	assert.InDelta(t, 0.35, float64(buckets["medium"])/draws, 0.03)
	assert.InDelta(t, 0.20, float64(buckets["large"])/draws, 0.03)
	assert.InDelta(t, 0.05, float64(buckets["xl"])/draws, 0.02)
}

func TestNewRequiresServices(t *testing.T) {
	_, err := New(Services{}, nil, Options{})
	assert.Error(t, err)
}
