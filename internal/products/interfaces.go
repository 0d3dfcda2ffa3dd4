package products

import (
	"context"

	"github.com/angelmondragon/shopinsights-backend/internal/repo"
	"github.com/angelmondragon/shopinsights-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines persistence operations for the products table.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id int64, preds ...repo.Predicate) (*models.Product, error)
	List(ctx context.Context, q *repo.ListQuery) ([]models.Product, error)
	Update(ctx context.Context, id int64, updates map[string]any) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
}
