package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/shopinsights-backend/api/validators"
	"github.com/angelmondragon/shopinsights-backend/internal/tenancy"
	pkgerrors "github.com/angelmondragon/shopinsights-backend/pkg/errors"
	"github.com/angelmondragon/shopinsights-backend/pkg/logger"
)

const (
	msgInvalidID         = "Valid ID is required"
	msgInvalidTenantID   = "Valid tenantId is required"
	msgInvalidCustomerID = "Valid customerId is required"
)

// optionalID reads ?id= for GET requests; absence selects the list path.
func optionalID(r *http.Request) (int64, bool, error) {
	return validators.QueryID(r, "id", pkgerrors.CodeInvalidID, msgInvalidID)
}

// requiredID reads ?id= for PUT and DELETE.
func requiredID(r *http.Request) (int64, error) {
	return validators.RequireQueryID(r, "id", pkgerrors.CodeInvalidID, msgInvalidID)
}

func tenantParam(r *http.Request) string {
	return r.URL.Query().Get("tenantId")
}

// withScope tags the request logger with the scoped tenant, when there is one.
func withScope(ctx context.Context, logg *logger.Logger, scope tenancy.Scope) context.Context {
	if id, ok := scope.TenantID(); ok {
		return logg.WithTenantID(ctx, id)
	}
	return ctx
}
