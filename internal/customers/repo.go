package customers

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

func (r *repository) Create(ctx context.Context, customer *models.Customer) error {
	return r.base.DB(ctx).Create(customer).Error
}

func (r *repository) FindByID(ctx context.Context, id int64, preds ...repo.Predicate) (*models.Customer, error) {
	var customer models.Customer
	if err := r.base.Take(ctx, &customer, append([]repo.Predicate{repo.Eq("id", id)}, preds...)...); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *repository) List(ctx context.Context, q *repo.ListQuery) ([]models.Customer, error) {
	customers := []models.Customer{}
	if err := q.Apply(r.base.DB(ctx).Model(&models.Customer{})).Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *repository) Update(ctx context.Context, id int64, updates map[string]any) (*models.Customer, error) {
	if err := r.base.DB(ctx).Model(&models.Customer{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res := r.base.DB(ctx).Where("id = ?", id).Delete(&models.Customer{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
