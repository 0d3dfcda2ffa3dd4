package tenants

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/shopinsights-backend/internal/repo"
	"github.com/angelmondragon/shopinsights-backend/pkg/db"
	"github.com/angelmondragon/shopinsights-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/shopinsights-backend/pkg/errors"
	"github.com/angelmondragon/shopinsights-backend/pkg/types"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes tenant CRUD.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*TenantDTO, error)
	Get(ctx context.Context, id int64) (*TenantDTO, error)
	List(ctx context.Context, filter ListFilter) ([]TenantDTO, error)
	Update(ctx context.Context, id int64, parse UpdateParser) (*TenantDTO, error)
	Delete(ctx context.Context, id int64) (*TenantDTO, error)
}

type service struct {
	repo  Repository
	tx    txRunner
	clock func() time.Time
}

// NewService builds the tenant service. clock may be nil.
func NewService(repo Repository, tx txRunner, clock func() time.Time) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("tenants repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if clock == nil {
		clock = time.Now
	}
	return &service{repo: repo, tx: tx, clock: clock}, nil
}

func notFound() error {
	return pkgerrors.NotFound(pkgerrors.CodeTenantNotFound, "Tenant not found")
}

func duplicateDomain() error {
	return pkgerrors.New(pkgerrors.KindConflict, pkgerrors.CodeDuplicateShopifyDomain, "Shopify domain already exists")
}

func normalizeDomain(domain string) string {
	return strings.ToLower(strings.TrimSpace(domain))
}

func (s *service) Create(ctx context.Context, input CreateInput) (*TenantDTO, error) {
	now := types.StoredNow(s.clock)
	tenant := &models.Tenant{
		Name:               strings.TrimSpace(input.Name),
		ShopifyDomain:      normalizeDomain(input.ShopifyDomain),
		ShopifyAccessToken: strings.TrimSpace(input.ShopifyAccessToken),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := ensureDomainFree(ctx, repo, tenant.ShopifyDomain, 0); err != nil {
			return err
		}
		if err := repo.Create(ctx, tenant); err != nil {
			if db.IsUniqueViolation(err, "") {
				return duplicateDomain()
			}
			return pkgerrors.Internal(err, "create tenant")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return FromModel(tenant), nil
}

// ensureDomainFree fails when another tenant already owns domain. selfID is
// excluded so an update may keep its own domain.
func ensureDomainFree(ctx context.Context, repo Repository, domain string, selfID int64) error {
	existing, err := repo.FindByDomain(ctx, domain)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return pkgerrors.Internal(err, "lookup shopify domain")
	}
	if existing.ID != selfID {
		return duplicateDomain()
	}
	return nil
}

func (s *service) Get(ctx context.Context, id int64) (*TenantDTO, error) {
	tenant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound()
		}
		return nil, pkgerrors.Internal(err, "get tenant")
	}
	return FromModel(tenant), nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]TenantDTO, error) {
	q := repo.NewListQuery().
		Where(repo.AnyOf(
			repo.Contains("name", filter.Search),
			repo.Contains("shopify_domain", filter.Search),
		)).
		OrderDesc("created_at").
		Page(filter.Page)

	rows, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, pkgerrors.Internal(err, "list tenants")
	}
	out := make([]TenantDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, id int64, parse UpdateParser) (*TenantDTO, error) {
	var updated *models.Tenant
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound()
			}
			return pkgerrors.Internal(err, "load tenant")
		}

		input, err := parse()
		if err != nil {
			return err
		}

		updates := map[string]any{"updated_at": types.StoredNow(s.clock)}
		if input.Name != nil {
			updates["name"] = strings.TrimSpace(*input.Name)
		}
		if input.ShopifyDomain != nil {
			domain := normalizeDomain(*input.ShopifyDomain)
			if err := ensureDomainFree(ctx, repo, domain, id); err != nil {
				return err
			}
			updates["shopify_domain"] = domain
		}
		if input.ShopifyAccessToken != nil {
			updates["shopify_access_token"] = strings.TrimSpace(*input.ShopifyAccessToken)
		}

		updated, err = repo.Update(ctx, id, updates)
		if err != nil {
			if db.IsUniqueViolation(err, "") {
				return duplicateDomain()
			}
			return pkgerrors.Internal(err, "update tenant")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return FromModel(updated), nil
}

// Delete removes the tenant and returns its last state. Tenants still
// referenced by customers, products or orders are rejected by the store.
func (s *service) Delete(ctx context.Context, id int64) (*TenantDTO, error) {
	var prior *models.Tenant
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		tenant, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound()
			}
			return pkgerrors.Internal(err, "load tenant")
		}
		if err := repo.Delete(ctx, id); err != nil {
			return pkgerrors.Internal(err, "delete tenant")
		}
		prior = tenant
		return nil
	})
	if err != nil {
		return nil, err
	}
	return FromModel(prior), nil
}
