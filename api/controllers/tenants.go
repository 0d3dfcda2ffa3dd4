package controllers

import (
	"net/http"

	"github.com/angelmondragon/shopinsights-backend/api/responses"
	"github.com/angelmondragon/shopinsights-backend/api/validators"
	tenantsvc "github.com/angelmondragon/shopinsights-backend/internal/tenants"
	pkgerrors "github.com/angelmondragon/shopinsights-backend/pkg/errors"
	"github.com/angelmondragon/shopinsights-backend/pkg/logger"
)

var (
	tenantNameCreate = validators.Field{
		Key: "name", Missing: pkgerrors.CodeMissingName,
		MissingMessage: "Name is required and cannot be empty",
	}
	tenantDomainCreate = validators.Field{
		Key: "shopifyDomain", Missing: pkgerrors.CodeMissingShopifyDomain,
		MissingMessage: "Shopify domain is required",
	}
	tenantTokenCreate = validators.Field{
		Key: "shopifyAccessToken", Missing: pkgerrors.CodeMissingShopifyAccessToken,
		MissingMessage: "Shopify access token is required",
	}

	tenantNameUpdate = validators.Field{
		Key: "name", Invalid: pkgerrors.CodeInvalidName,
		InvalidMessage: "Name cannot be empty",
	}
	tenantDomainUpdate = validators.Field{
		Key: "shopifyDomain", Invalid: pkgerrors.CodeInvalidShopifyDomain,
		InvalidMessage: "Shopify domain cannot be empty",
	}
	tenantTokenUpdate = validators.Field{
		Key: "shopifyAccessToken", Invalid: pkgerrors.CodeInvalidShopifyAccessToken,
		InvalidMessage: "Shopify access token cannot be empty",
	}
)

// GetTenants serves GET /api/tenants: a single tenant when ?id= is given,
// otherwise a searchable page.
func GetTenants(svc tenantsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, single, err := optionalID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if single {
			tenant, err := svc.Get(ctx, id)
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			responses.WriteSuccess(w, tenant)
			return
		}

		list, err := svc.List(ctx, tenantsvc.ListFilter{
			Search: validators.QueryString(r, "search"),
			Page:   validators.QueryPage(r),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

func CreateTenant(svc tenantsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		fields, err := validators.DecodeFields(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		input, err := parseCreateTenant(fields)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		tenant, err := svc.Create(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteCreated(w, tenant)
	}
}

func parseCreateTenant(fields validators.Fields) (tenantsvc.CreateInput, error) {
	var in tenantsvc.CreateInput
	if err := fields.Require(tenantNameCreate, tenantDomainCreate, tenantTokenCreate); err != nil {
		return in, err
	}
	var err error
	if in.Name, err = fields.RequiredString(tenantNameCreate); err != nil {
		return in, err
	}
	if in.ShopifyDomain, err = fields.RequiredString(tenantDomainCreate); err != nil {
		return in, err
	}
	if in.ShopifyAccessToken, err = fields.RequiredString(tenantTokenCreate); err != nil {
		return in, err
	}
	return in, nil
}

// UpdateTenant applies a partial update. The body is only read once the
// tenant is known to exist, so an unknown id is a 404 whatever the body.
func UpdateTenant(svc tenantsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := requiredID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		tenant, err := svc.Update(ctx, id, func() (tenantsvc.UpdateInput, error) {
			fields, err := validators.DecodeFields(r)
			if err != nil {
				return tenantsvc.UpdateInput{}, err
			}
			return parseUpdateTenant(fields)
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, tenant)
	}
}

func parseUpdateTenant(fields validators.Fields) (tenantsvc.UpdateInput, error) {
	var in tenantsvc.UpdateInput
	var err error
	if in.Name, err = fields.OptionalString(tenantNameUpdate); err != nil {
		return in, err
	}
	if in.ShopifyDomain, err = fields.OptionalString(tenantDomainUpdate); err != nil {
		return in, err
	}
	if in.ShopifyAccessToken, err = fields.OptionalString(tenantTokenUpdate); err != nil {
		return in, err
	}
	return in, nil
}

func DeleteTenant(svc tenantsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := requiredID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		tenant, err := svc.Delete(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteDeleted(w, "tenant", "Tenant deleted successfully", tenant)
	}
}
