package tenants

import (
	"context"

	"github.com/angelmondragon/shopinsights-backend/internal/repo"
	"github.com/angelmondragon/shopinsights-backend/pkg/db/models"
	"gorm.io/gorm"
)

type repository struct {
	base repo.Base
}

// NewRepository builds a tenants repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{base: r.base.WithTx(tx)}
}

func (r *repository) Create(ctx context.Context, tenant *models.Tenant) error {
	return r.base.DB(ctx).Create(tenant).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.Tenant, error) {
	return r.first(ctx, repo.Eq("id", id))
}

// FindByDomain matches the stored, already lowercased domain exactly.
func (r *repository) FindByDomain(ctx context.Context, domain string) (*models.Tenant, error) {
	return r.first(ctx, repo.Eq("shopify_domain", domain))
}

func (r *repository) first(ctx context.Context, preds ...repo.Predicate) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := r.base.Take(ctx, &tenant, preds...); err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *repository) List(ctx context.Context, q *repo.ListQuery) ([]models.Tenant, error) {
	tenants := []models.Tenant{}
	if err := q.Apply(r.base.DB(ctx).Model(&models.Tenant{})).Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

// Update applies the column map and returns the reloaded row.
func (r *repository) Update(ctx context.Context, id int64, updates map[string]any) (*models.Tenant, error) {
	if err := r.base.DB(ctx).Model(&models.Tenant{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res := r.base.DB(ctx).Where("id = ?", id).Delete(&models.Tenant{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
