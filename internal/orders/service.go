package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/shopinsights-backend/internal/repo"
	"github.com/angelmondragon/shopinsights-backend/internal/tenancy"
	"github.com/angelmondragon/shopinsights-backend/pkg/db/models"
	"github.com/angelmondragon/shopinsights-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopinsights-backend/pkg/errors"
	"github.com/angelmondragon/shopinsights-backend/pkg/types"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes tenant-scoped order CRUD. Orders are listed newest
// orderDate first.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*OrderDTO, error)
	Get(ctx context.Context, id int64, scope tenancy.Scope) (*OrderDTO, error)
	List(ctx context.Context, filter ListFilter) ([]OrderDTO, error)
	Update(ctx context.Context, id int64, parse UpdateParser) (*OrderDTO, error)
	Delete(ctx context.Context, id int64) (*OrderDTO, error)
}

type service struct {
	repo  Repository
	guard *tenancy.Guard
	tx    txRunner
	clock func() time.Time
}

func NewService(repo Repository, guard *tenancy.Guard, tx txRunner, clock func() time.Time) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
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
	return pkgerrors.NotFound(pkgerrors.CodeOrderNotFound, "Order not found")
}

func invalidStatus() error {
	return pkgerrors.Validation(pkgerrors.CodeInvalidStatus,
		"Invalid status. Must be one of: "+enums.OrderStatusList())
}

// Create checks that the tenant exists and that the customer belongs to it.
// Both failures are reported as 400.
func (s *service) Create(ctx context.Context, input CreateInput) (*OrderDTO, error) {
	if !input.Status.IsValid() {
		return nil, invalidStatus()
	}
	now := types.StoredNow(s.clock)
	order := &models.Order{
		TenantID:       input.TenantID,
		ShopifyOrderID: strings.TrimSpace(input.ShopifyOrderID),
		CustomerID:     input.CustomerID,
		TotalPrice:     input.TotalPrice,
		Status:         input.Status,
		OrderDate:      strings.TrimSpace(input.OrderDate),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		guard := s.guard.WithTx(tx)
		if err := guard.EnsureTenant(ctx, order.TenantID, pkgerrors.KindValidation); err != nil {
			return err
		}
		if err := guard.EnsureCustomerInTenant(ctx, order.CustomerID, order.TenantID); err != nil {
			return err
		}
		if err := s.repo.WithTx(tx).Create(ctx, order); err != nil {
			return pkgerrors.Internal(err, "create order")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return FromModel(order), nil
}

func (s *service) Get(ctx context.Context, id int64, scope tenancy.Scope) (*OrderDTO, error) {
	order, err := s.repo.FindByID(ctx, id, scope.Predicate())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound()
		}
		return nil, pkgerrors.Internal(err, "get order")
	}
	return FromModel(order), nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]OrderDTO, error) {
	if _, ok := filter.Scope.TenantID(); !ok {
		return nil, pkgerrors.Validation(pkgerrors.CodeTenantIDRequired, "tenantId is required for listing orders")
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, invalidStatus()
	}
	q := repo.NewListQuery().
		Where(
			filter.Scope.Predicate(),
			repo.Optional("customer_id", filter.CustomerID, repo.Eq),
			repo.Optional("status", filter.Status, repo.Eq),
			repo.OptionalString("order_date", filter.StartDate, repo.Gte),
			repo.OptionalString("order_date", filter.EndDate, repo.Lte),
		).
		OrderDesc("order_date").
		Page(filter.Page)

	rows, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, pkgerrors.Internal(err, "list orders")
	}
	out := make([]OrderDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, id int64, parse UpdateParser) (*OrderDTO, error) {
	var updated *models.Order
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound()
			}
			return pkgerrors.Internal(err, "load order")
		}

		input, err := parse()
		if err != nil {
			return err
		}

		updates := map[string]any{"updated_at": types.StoredNow(s.clock)}
		if input.Status != nil {
			if !input.Status.IsValid() {
				return invalidStatus()
			}
			updates["status"] = *input.Status
		}
		if input.TotalPrice != nil {
			updates["total_price"] = *input.TotalPrice
		}

		updated, err = repo.Update(ctx, id, updates)
		if err != nil {
			return pkgerrors.Internal(err, "update order")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return FromModel(updated), nil
}

func (s *service) Delete(ctx context.Context, id int64) (*OrderDTO, error) {
	var prior *models.Order
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		order, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound()
			}
			return pkgerrors.Internal(err, "load order")
		}
		if err := repo.Delete(ctx, id); err != nil {
			return pkgerrors.Internal(err, "delete order")
		}
		prior = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return FromModel(prior), nil
}
