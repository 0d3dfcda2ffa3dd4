package customers

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

// Service exposes tenant-scoped customer CRUD. Update and Delete address a
// customer by id alone.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*CustomerDTO, error)
	Get(ctx context.Context, id int64, scope tenancy.Scope) (*CustomerDTO, error)
	List(ctx context.Context, filter ListFilter) ([]CustomerDTO, error)
	Update(ctx context.Context, id int64, parse UpdateParser) (*CustomerDTO, error)
	Delete(ctx context.Context, id int64) (*CustomerDTO, error)
}

type service struct {
	repo  Repository
	guard *tenancy.Guard
	tx    txRunner
	clock func() time.Time
}

func NewService(repo Repository, guard *tenancy.Guard, tx txRunner, clock func() time.Time) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("customers repository required")
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
	return pkgerrors.NotFound(pkgerrors.CodeCustomerNotFound, "Customer not found")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *service) Create(ctx context.Context, input CreateInput) (*CustomerDTO, error) {
	now := types.StoredNow(s.clock)
	customer := &models.Customer{
		TenantID:          input.TenantID,
		ShopifyCustomerID: strings.TrimSpace(input.ShopifyCustomerID),
		Email:             normalizeEmail(input.Email),
		FirstName:         strings.TrimSpace(input.FirstName),
		LastName:          strings.TrimSpace(input.LastName),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if input.TotalSpent != nil {
		customer.TotalSpent = *input.TotalSpent
	}
	if input.OrdersCount != nil {
		customer.OrdersCount = *input.OrdersCount
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.guard.WithTx(tx).EnsureTenant(ctx, customer.TenantID, pkgerrors.KindNotFound); err != nil {
			return err
		}
		if err := s.repo.WithTx(tx).Create(ctx, customer); err != nil {
			return pkgerrors.Internal(err, "create customer")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return FromModel(customer), nil
}

// Get fetches by id. A tenant scope narrows the match; a customer of another
// tenant is reported as not found.
func (s *service) Get(ctx context.Context, id int64, scope tenancy.Scope) (*CustomerDTO, error) {
	customer, err := s.repo.FindByID(ctx, id, scope.Predicate())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound()
		}
		return nil, pkgerrors.Internal(err, "get customer")
	}
	return FromModel(customer), nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]CustomerDTO, error) {
	if _, ok := filter.Scope.TenantID(); !ok {
		return nil, pkgerrors.Validation(pkgerrors.CodeTenantIDRequired, "tenantId is required for listing customers")
	}
	q := repo.NewListQuery().
		Where(
			filter.Scope.Predicate(),
			repo.AnyOf(
				repo.Contains("email", filter.Search),
				repo.Contains("first_name", filter.Search),
				repo.Contains("last_name", filter.Search),
			),
		).
		OrderDesc("created_at").
		Page(filter.Page)

	rows, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, pkgerrors.Internal(err, "list customers")
	}
	out := make([]CustomerDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, id int64, parse UpdateParser) (*CustomerDTO, error) {
	var updated *models.Customer
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound()
			}
			return pkgerrors.Internal(err, "load customer")
		}

		input, err := parse()
		if err != nil {
			return err
		}

		updates := map[string]any{"updated_at": types.StoredNow(s.clock)}
		if input.Email != nil {
			updates["email"] = normalizeEmail(*input.Email)
		}
		if input.FirstName != nil {
			updates["first_name"] = strings.TrimSpace(*input.FirstName)
		}
		if input.LastName != nil {
			updates["last_name"] = strings.TrimSpace(*input.LastName)
		}
		if input.TotalSpent != nil {
			updates["total_spent"] = *input.TotalSpent
		}
		if input.OrdersCount != nil {
			updates["orders_count"] = *input.OrdersCount
		}

		updated, err = repo.Update(ctx, id, updates)
		if err != nil {
			return pkgerrors.Internal(err, "update customer")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return FromModel(updated), nil
}

// Delete removes the customer and returns its last state. Customers that
// still have orders are rejected by the store.
func (s *service) Delete(ctx context.Context, id int64) (*CustomerDTO, error) {
	var prior *models.Customer
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		customer, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound()
			}
			return pkgerrors.Internal(err, "load customer")
		}
		if err := repo.Delete(ctx, id); err != nil {
			return pkgerrors.Internal(err, "delete customer")
		}
		prior = customer
		return nil
	})
	if err != nil {
		return nil, err
	}
	return FromModel(prior), nil
}
