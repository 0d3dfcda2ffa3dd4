// Package seed loads a deterministic sample dataset through the resource
// services, so seeded rows obey the same validation as API writes.
package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/shopinsights-backend/internal/customers"
	"github.com/angelmondragon/shopinsights-backend/internal/orders"
	"github.com/angelmondragon/shopinsights-backend/internal/products"
	"github.com/angelmondragon/shopinsights-backend/internal/tenants"
	"github.com/angelmondragon/shopinsights-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopinsights-backend/pkg/errors"
	"github.com/angelmondragon/shopinsights-backend/pkg/logger"
	"github.com/angelmondragon/shopinsights-backend/pkg/types"
)

const (
	DefaultCustomersPerTenant = 50
	DefaultProductsPerTenant  = 8
	DefaultOrdersPerTenant    = 200
)

type Services struct {
	Tenants   tenants.Service
	Customers customers.Service
	Products  products.Service
	Orders    orders.Service
}

type Options struct {
	// Seed makes runs reproducible; the same seed yields the same dataset.
	Seed               uint64
	Now                time.Time
	CustomersPerTenant int
	ProductsPerTenant  int
	OrdersPerTenant    int
}

func (o *Options) defaults() {
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	if o.CustomersPerTenant <= 0 {
		o.CustomersPerTenant = DefaultCustomersPerTenant
	}
	if o.ProductsPerTenant <= 0 {
		o.ProductsPerTenant = DefaultProductsPerTenant
	}
	if o.OrdersPerTenant <= 0 {
		o.OrdersPerTenant = DefaultOrdersPerTenant
	}
}

// Report counts what a run wrote.
type Report struct {
	TenantsCreated int
	TenantsSkipped int
	Customers      int
	Products       int
	Orders         int
}

type Seeder struct {
	svcs Services
	logg *logger.Logger
	opts Options
	rng  *rand.Rand
}

func New(svcs Services, logg *logger.Logger, opts Options) (*Seeder, error) {
	if svcs.Tenants == nil || svcs.Customers == nil || svcs.Products == nil || svcs.Orders == nil {
		return nil, errors.New("all four services are required")
	}
	if logg == nil {
		logg = logger.Nop()
	}
	opts.defaults()
	return &Seeder{
		svcs: svcs,
		logg: logg,
		opts: opts,
		rng:  rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
	}, nil
}

// Run creates every sample tenant with its customers, products and orders.
// Tenants whose domain is already taken are skipped with their data.
func (s *Seeder) Run(ctx context.Context) (Report, error) {
	var report Report
	for _, in := range sampleTenants {
		tctx := s.logg.WithField(ctx, "shopify_domain", in.ShopifyDomain)

		tenant, err := s.svcs.Tenants.Create(tctx, in)
		if pkgerrors.HasCode(err, pkgerrors.CodeDuplicateShopifyDomain) {
			s.logg.Info(tctx, "seed.tenant_exists")
			report.TenantsSkipped++
			continue
		}
		if err != nil {
			return report, fmt.Errorf("create tenant %s: %w", in.ShopifyDomain, err)
		}
		report.TenantsCreated++
		tctx = s.logg.WithTenantID(tctx, tenant.ID)

		n, err := s.seedProducts(tctx, tenant)
		report.Products += n
		if err != nil {
			return report, err
		}

		custs, err := s.seedCustomers(tctx, tenant)
		report.Customers += len(custs)
		if err != nil {
			return report, err
		}

		n, err = s.seedOrders(tctx, tenant, custs)
		report.Orders += n
		if err != nil {
			return report, err
		}
		s.logg.Info(tctx, "seed.tenant_done")
	}
	return report, nil
}

func (s *Seeder) seedProducts(ctx context.Context, tenant *tenants.TenantDTO) (int, error) {
	titles := productCatalog[tenant.ShopifyDomain]
	for i := 0; i < s.opts.ProductsPerTenant; i++ {
		title := titles[i%len(titles)]
		if i >= len(titles) {
			title = fmt.Sprintf("%s %d", title, i/len(titles)+1)
		}
		inventory := s.rng.IntN(500)
		_, err := s.svcs.Products.Create(ctx, products.CreateInput{
			TenantID:         tenant.ID,
			ShopifyProductID: fmt.Sprintf("prod_%d_%04d", tenant.ID, i+1),
			Title:            title,
			Price:            money(5 + s.rng.Float64()*195),
			Inventory:        &inventory,
		})
		if err != nil {
			return i, fmt.Errorf("create product %q: %w", title, err)
		}
	}
	return s.opts.ProductsPerTenant, nil
}

func (s *Seeder) seedCustomers(ctx context.Context, tenant *tenants.TenantDTO) ([]customers.CustomerDTO, error) {
	shop := strings.TrimSuffix(tenant.ShopifyDomain, ".myshopify.com")
	out := make([]customers.CustomerDTO, 0, s.opts.CustomersPerTenant)
	for i := 0; i < s.opts.CustomersPerTenant; i++ {
		first := firstNames[s.rng.IntN(len(firstNames))]
		last := lastNames[s.rng.IntN(len(lastNames))]
		c, err := s.svcs.Customers.Create(ctx, customers.CreateInput{
			TenantID:          tenant.ID,
			ShopifyCustomerID: fmt.Sprintf("cust_%d_%04d", tenant.ID, i+1),
			Email:             fmt.Sprintf("%s.%s%d@%s.example.com", first, last, i+1, shop),
			FirstName:         first,
			LastName:          last,
		})
		if err != nil {
			return out, fmt.Errorf("create customer %d: %w", i+1, err)
		}
		out = append(out, *c)
	}
	return out, nil
}

// seedOrders spreads orders over the last year, 40% in the last three months,
// 35% in months four to eight and the rest in months nine to twelve. The
// customers' aggregates are then set from the orders written for them.
func (s *Seeder) seedOrders(ctx context.Context, tenant *tenants.TenantDTO, custs []customers.CustomerDTO) (int, error) {
	if len(custs) == 0 {
		return 0, nil
	}
	total := s.opts.OrdersPerTenant
	recent := total * 40 / 100
	middle := total * 35 / 100

	spent := make(map[int64]decimal.Decimal, len(custs))
	count := make(map[int64]int, len(custs))

	for i := 0; i < total; i++ {
		var monthsAgo int
		switch {
		case i < recent:
			monthsAgo = s.rng.IntN(3)
		case i < recent+middle:
			monthsAgo = 3 + s.rng.IntN(5)
		default:
			monthsAgo = 8 + s.rng.IntN(4)
		}
		date := s.orderDate(monthsAgo)
		customer := custs[s.rng.IntN(len(custs))]
		price := s.orderPrice()

		_, err := s.svcs.Orders.Create(ctx, orders.CreateInput{
			TenantID:       tenant.ID,
			ShopifyOrderID: fmt.Sprintf("order_%016d", s.rng.Uint64N(1e16)),
			CustomerID:     customer.ID,
			TotalPrice:     price,
			Status:         s.orderStatus(date, i, total),
			OrderDate:      types.FormatTimestamp(date),
		})
		if err != nil {
			return i, fmt.Errorf("create order %d: %w", i+1, err)
		}
		spent[customer.ID] = spent[customer.ID].Add(decimal.NewFromFloat(price))
		count[customer.ID]++
	}

	for _, c := range custs {
		if count[c.ID] == 0 {
			continue
		}
		totalSpent := spent[c.ID].Round(2).InexactFloat64()
		ordersCount := count[c.ID]
		_, err := s.svcs.Customers.Update(ctx, c.ID, func() (customers.UpdateInput, error) {
			return customers.UpdateInput{TotalSpent: &totalSpent, OrdersCount: &ordersCount}, nil
		})
		if err != nil {
			return total, fmt.Errorf("update customer %d aggregates: %w", c.ID, err)
		}
	}
	return total, nil
}

// orderDate is monthsAgo months back plus up to 30 days, never later than Now.
func (s *Seeder) orderDate(monthsAgo int) time.Time {
	now := s.opts.Now.UTC()
	d := now.AddDate(0, -monthsAgo, s.rng.IntN(30))
	if d.After(now) {
		d = now
	}
	return d
}

// orderPrice draws 40% from $20-100, 35% from $100-300, 20% from $300-500
// and 5% from $500-800.
func (s *Seeder) orderPrice() float64 {
	r := s.rng.Float64()
	switch {
	case r < 0.40:
		return money(20 + s.rng.Float64()*80)
	case r < 0.75:
		return money(100 + s.rng.Float64()*200)
	case r < 0.95:
		return money(300 + s.rng.Float64()*200)
	default:
		return money(500 + s.rng.Float64()*300)
	}
}

// orderStatus assigns by position so the mix holds at any volume: roughly 65%
// completed, then processing and pending for recent orders only, then
// cancelled and refunded.
func (s *Seeder) orderStatus(date time.Time, index, total int) enums.OrderStatus {
	age := s.opts.Now.Sub(date)
	ratio := float64(index) / float64(total)
	switch {
	case ratio < 0.65:
		return enums.OrderStatusCompleted
	case ratio < 0.80:
		if age < 7*24*time.Hour {
			return enums.OrderStatusProcessing
		}
		return enums.OrderStatusCompleted
	case ratio < 0.90:
		if age < 3*24*time.Hour {
			return enums.OrderStatusPending
		}
		return enums.OrderStatusProcessing
	case ratio < 0.97:
		return enums.OrderStatusCancelled
	default:
		return enums.OrderStatusRefunded
	}
}

// money rounds to cents; the result is always positive for positive input.
func money(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
