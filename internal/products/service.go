package products

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/shopinsights-backend/internal/repo"
	"github.com/angelmondragon/shopinsights-backend/internal/tenancy"
	"github.com/angelmondragon/shopinsights-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/shopinsights-backend/pkg/errors"
	"github.com/angelmondragon/shopinsights-backend/pkg/types"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type Service interface {
	Create(ctx context.Context, input CreateInput) (*ProductDTO, error)
	Get(ctx context.Context, id int64, scope tenancy.Scope) (*ProductDTO, error)
	List(ctx context.Context, filter ListFilter) ([]ProductDTO, error)
	Update(ctx context.Context, id int64, parse UpdateParser) (*ProductDTO, error)
	Delete(ctx context.Context, id int64) (*ProductDTO, error)
}

type service struct {
	repo  Repository
	guard *tenancy.Guard
	tx    txRunner
	clock func() time.Time
}

func NewService(repo Repository, guard *tenancy.Guard, tx txRunner, clock func() time.Time) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("products repository required")
	}
	if guard == nil {
		return nil, fmt.Errorf("tenancy guard required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if clock == nil {
		clock = time.Now
	}
	return &service{repo: repo, guard: guard, tx: tx, clock: clock}, nil
}

func notFound() error {
	return pkgerrors.NotFound(pkgerrors.CodeProductNotFound, "Product not found")
}

func (s *service) Create(ctx context.Context, input CreateInput) (*ProductDTO, error) {
	now := types.StoredNow(s.clock)
	product := &models.Product{
		TenantID:         input.TenantID,
		ShopifyProductID: strings.TrimSpace(input.ShopifyProductID),
		Title:            strings.TrimSpace(input.Title),
		Price:            input.Price,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if input.Inventory != nil {
		product.Inventory = *input.Inventory
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.guard.WithTx(tx).EnsureTenant(ctx, product.TenantID, pkgerrors.KindNotFound); err != nil {
			return err
		}
		if err := s.repo.WithTx(tx).Create(ctx, product); err != nil {
			return pkgerrors.Internal(err, "create product")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return FromModel(product), nil
}

func (s *service) Get(ctx context.Context, id int64, scope tenancy.Scope) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id, scope.Predicate())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound()
		}
		return nil, pkgerrors.Internal(err, "get product")
	}
	return FromModel(product), nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]ProductDTO, error) {
	if _, ok := filter.Scope.TenantID(); !ok {
		return nil, pkgerrors.Validation(pkgerrors.CodeTenantIDRequired, "tenantId is required for listing products")
	}
	q := repo.NewListQuery().
		Where(
			filter.Scope.Predicate(),
			repo.Contains("title", filter.Search),
			repo.Optional("price", filter.MinPrice, repo.Gte),
			repo.Optional("price", filter.MaxPrice, repo.Lte),
		).
		OrderDesc("created_at").
		Page(filter.Page)

	rows, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, pkgerrors.Internal(err, "list products")
	}
	out := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, id int64, parse UpdateParser) (*ProductDTO, error) {
	var updated *models.Product
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound()
			}
			return pkgerrors.Internal(err, "load product")
		}

		input, err := parse()
		if err != nil {
			return err
		}

		updates := map[string]any{"updated_at": types.StoredNow(s.clock)}
		if input.Title != nil {
			updates["title"] = strings.TrimSpace(*input.Title)
		}
		if input.Price != nil {
			updates["price"] = *input.Price
		}
		if input.Inventory != nil {
			updates["inventory"] = *input.Inventory
		}

		updated, err = repo.Update(ctx, id, updates)
		if err != nil {
			return pkgerrors.Internal(err, "update product")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return FromModel(updated), nil
}

func (s *service) Delete(ctx context.Context, id int64) (*ProductDTO, error) {
	var prior *models.Product
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		product, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound()
			}
			return pkgerrors.Internal(err, "load product")
		}
		if err := repo.Delete(ctx, id); err != nil {
			return pkgerrors.Internal(err, "delete product")
		}
		prior = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return FromModel(prior), nil
}
