package tenants

import (
	"context"

	"github.com/angelmondragon/shopinsights-backend/internal/repo"
	"github.com/angelmondragon/shopinsights-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines persistence operations for the tenants table.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, tenant *models.Tenant) error
	FindByID(ctx context.Context, id int64) (*models.Tenant, error)
	FindByDomain(ctx context.Context, domain string) (*models.Tenant, error)
	List(ctx context.Context, q *repo.ListQuery) ([]models.Tenant, error)
	Update(ctx context.Context, id int64, updates map[string]any) (*models.Tenant, error)
	Delete(ctx context.Context, id int64) error
}
