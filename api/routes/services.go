package routes

import (
	"time"

	"go.uber.org/multierr"

	"github.com/angelmondragon/shopinsights-backend/internal/customers"
	"github.com/angelmondragon/shopinsights-backend/internal/orders"
	"github.com/angelmondragon/shopinsights-backend/internal/products"
	"github.com/angelmondragon/shopinsights-backend/internal/tenancy"
	"github.com/angelmondragon/shopinsights-backend/internal/tenants"
	"github.com/angelmondragon/shopinsights-backend/pkg/db"
)

// NewServices builds every resource service over one client. clock may be nil.
func NewServices(client *db.Client, clock func() time.Time) (Services, error) {
	var (
		svcs Services
		err  error
		errs error
	)
	guard := tenancy.NewGuard(client.DB())

	svcs.Tenants, err = tenants.NewService(tenants.NewRepository(client.DB()), client, clock)
	errs = multierr.Append(errs, err)
	svcs.Customers, err = customers.NewService(customers.NewRepository(client.DB()), guard, client, clock)
	errs = multierr.Append(errs, err)
	svcs.Products, err = products.NewService(products.NewRepository(client.DB()), guard, client, clock)
	errs = multierr.Append(errs, err)
	svcs.Orders, err = orders.NewService(orders.NewRepository(client.DB()), guard, client, clock)
	errs = multierr.Append(errs, err)

	if errs != nil {
		return Services{}, errs
	}
	return svcs, nil
}
