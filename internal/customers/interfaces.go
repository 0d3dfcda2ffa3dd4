package customers

import (
	"context"

	"github.com/angelmondragon/shopinsights-backend/internal/repo"
	"github.com/angelmondragon/shopinsights-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines persistence operations for the customers table.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, customer *models.Customer) error
	// FindByID matches id plus any extra predicates (typically a tenant scope).
	FindByID(ctx context.Context, id int64, preds ...repo.Predicate) (*models.Customer, error)
	List(ctx context.Context, q *repo.ListQuery) ([]models.Customer, error)
	Update(ctx context.Context, id int64, updates map[string]any) (*models.Customer, error)
	Delete(ctx context.Context, id int64) error
}
