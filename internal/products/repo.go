package products

import (
	"context"

	"github.com/angelmondragon/shopinsights-backend/internal/repo"
	"github.com/angelmondragon/shopinsights-backend/pkg/db/models"
	"gorm.io/gorm"
)

type repository struct {
	base repo.Base
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{base: r.base.WithTx(tx)}
}

func (r *repository) Create(ctx context.Context, product *models.Product) error {
	return r.base.DB(ctx).Create(product).Error
}

func (r *repository) FindByID(ctx context.Context, id int64, preds ...repo.Predicate) (*models.Product, error) {
	var product models.Product
	if err := r.base.Take(ctx, &product, append([]repo.Predicate{repo.Eq("id", id)}, preds...)...); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *repository) List(ctx context.Context, q *repo.ListQuery) ([]models.Product, error) {
	products := []models.Product{}
	if err := q.Apply(r.base.DB(ctx).Model(&models.Product{})).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repository) Update(ctx context.Context, id int64, updates map[string]any) (*models.Product, error) {
	if err := r.base.DB(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res := r.base.DB(ctx).Where("id = ?", id).Delete(&models.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
