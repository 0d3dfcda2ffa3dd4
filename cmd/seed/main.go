package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/angelmondragon/shopinsights-backend/api/routes"
	"github.com/angelmondragon/shopinsights-backend/internal/seed"
	"github.com/angelmondragon/shopinsights-backend/pkg/config"
	"github.com/angelmondragon/shopinsights-backend/pkg/db"
	"github.com/angelmondragon/shopinsights-backend/pkg/logger"
	"github.com/angelmondragon/shopinsights-backend/pkg/migrate"
)

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	randSeed := flag.Uint64("seed", 1, "random seed; the same seed reproduces the same dataset")
	customersPer := flag.Int("customers", seed.DefaultCustomersPerTenant, "customers per tenant")
	productsPer := flag.Int("products", seed.DefaultProductsPerTenant, "products per tenant")
	ordersPer := flag.Int("orders", seed.DefaultOrdersPerTenant, "orders per tenant")
	flag.Parse()

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	requireResource(ctx, logg, "database", err)
	defer dbClient.Close()

	requireResource(ctx, logg, "migrations", migrate.MaybeRun(ctx, cfg, logg, dbClient))

	svcs, err := routes.NewServices(dbClient, nil)
	requireResource(ctx, logg, "services", err)

	seeder, err := seed.New(seed.Services{
		Tenants:   svcs.Tenants,
		Customers: svcs.Customers,
		Products:  svcs.Products,
		Orders:    svcs.Orders,
	}, logg, seed.Options{
		Seed:               *randSeed,
		CustomersPerTenant: *customersPer,
		ProductsPerTenant:  *productsPer,
		OrdersPerTenant:    *ordersPer,
	})
	requireResource(ctx, logg, "seeder", err)

	report, err := seeder.Run(ctx)
	if err != nil {
		logg.Error(ctx, "seed failed", err)
		os.Exit(1)
	}

	ctx = logg.WithFields(ctx, map[string]any{
		"tenants_created": report.TenantsCreated,
		"tenants_skipped": report.TenantsSkipped,
		"customers":       report.Customers,
		"products":        report.Products,
		"orders":          report.Orders,
	})
	logg.Info(ctx, "seed completed")
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
