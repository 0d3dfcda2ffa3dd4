package tenancy

import (
	"context"
	"fmt"

	"github.com/angelmondragon/shopinsights-backend/internal/repo"
	"github.com/angelmondragon/shopinsights-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/shopinsights-backend/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Guard runs the referential checks that precede tenant-scoped inserts. Bind it
// to the insert's transaction with WithTx so the check and the write see the
// same snapshot.
type Guard struct {
	base repo.Base
}

func NewGuard(db *gorm.DB) *Guard {
	return &Guard{base: repo.NewBase(db)}
}

func (g *Guard) WithTx(tx *gorm.DB) *Guard {
	return &Guard{base: g.base.WithTx(tx)}
}

// EnsureTenant fails with TENANT_NOT_FOUND when the tenant does not exist.
// kind picks the status: customers and products report 404, orders report 400.
func (g *Guard) EnsureTenant(ctx context.Context, tenantID int64, kind pkgerrors.Kind) error {
	ok, err := g.exists(ctx, &models.Tenant{}, repo.Eq("id", tenantID))
	if err != nil {
		return pkgerrors.Internal(fmt.Errorf("check tenant %d: %w", tenantID, err), "check tenant")
	}
	if !ok {
		return pkgerrors.New(kind, pkgerrors.CodeTenantNotFound, "Tenant not found")
	}
	return nil
}

// EnsureCustomerInTenant fails with CUSTOMER_NOT_FOUND when the customer is
// missing or belongs to another tenant. The two cases are indistinguishable
// to callers.
func (g *Guard) EnsureCustomerInTenant(ctx context.Context, customerID, tenantID int64) error {
	ok, err := g.exists(ctx, &models.Customer{}, repo.Eq("id", customerID), ForTenant(tenantID).Predicate())
	if err != nil {
		return pkgerrors.Internal(fmt.Errorf("check customer %d: %w", customerID, err), "check customer")
	}
	if !ok {
		return pkgerrors.Validation(pkgerrors.CodeCustomerNotFound, "Customer not found or does not belong to the specified tenant")
	}
	return nil
}

func (g *Guard) exists(ctx context.Context, model any, preds ...repo.Predicate) (bool, error) {
	var count int64
	err := g.base.DB(ctx).
		Model(model).
		Clauses(clause.Where{Exprs: preds}).
		Limit(1).
		Count(&count).Error
	return count > 0, err
}
