// Package tenancy enforces row-level tenant isolation for customers, products
// and orders: list scoping, optional fetch scoping and the referential checks
// run before inserts.
package tenancy

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/angelmondragon/shopinsights-backend/internal/repo"
	pkgerrors "github.com/angelmondragon/shopinsights-backend/pkg/errors"
)

const column = "tenant_id"

// Scope restricts a read to one tenant. The zero value is unscoped and is only
// produced for single-record fetches that omit tenantId.
type Scope struct {
	tenantID int64
	set      bool
}

func Unscoped() Scope {
	return Scope{}
}

func ForTenant(id int64) Scope {
	return Scope{tenantID: id, set: true}
}

func (s Scope) TenantID() (int64, bool) {
	return s.tenantID, s.set
}

// Predicate returns tenant_id = ? for a scoped read and nil otherwise.
func (s Scope) Predicate() repo.Predicate {
	if !s.set {
		return nil
	}
	return repo.Eq(column, s.tenantID)
}

// ParseListScope reads the tenantId query value of a list request. Lists never
// run unscoped, so an empty value is rejected.
func ParseListScope(raw, resource string) (Scope, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Scope{}, pkgerrors.Validation(pkgerrors.CodeTenantIDRequired,
			fmt.Sprintf("tenantId is required for listing %s", resource))
	}
	return parse(raw)
}

// ParseFetchScope reads the optional tenantId of a single-record fetch.
func ParseFetchScope(raw string) (Scope, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Unscoped(), nil
	}
	return parse(raw)
}

func parse(raw string) (Scope, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Scope{}, pkgerrors.Validation(pkgerrors.CodeInvalidTenantID, "Valid tenantId is required")
	}
	return ForTenant(id), nil
}
