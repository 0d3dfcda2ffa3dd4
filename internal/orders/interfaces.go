package orders

import (
	"context"

	"github.com/angelmondragon/shopinsights-backend/internal/repo"
	"github.com/angelmondragon/shopinsights-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines persistence operations for the orders table.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id int64, preds ...repo.Predicate) (*models.Order, error)
	List(ctx context.Context, q *repo.ListQuery) ([]models.Order, error)
	Update(ctx context.Context, id int64, updates map[string]any) (*models.Order, error)
	Delete(ctx context.Context, id int64) error
}
