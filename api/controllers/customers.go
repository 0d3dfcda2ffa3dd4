package controllers

import (
	"net/http"

	"github.com/angelmondragon/shopinsights-backend/api/responses"
	"github.com/angelmondragon/shopinsights-backend/api/validators"
	customersvc "github.com/angelmondragon/shopinsights-backend/internal/customers"
	"github.com/angelmondragon/shopinsights-backend/internal/tenancy"
	pkgerrors "github.com/angelmondragon/shopinsights-backend/pkg/errors"
	"github.com/angelmondragon/shopinsights-backend/pkg/logger"
)

const msgInvalidEmail = "Invalid email format"

var (
	bodyTenantID = validators.Field{
		Key: "tenantId", Missing: pkgerrors.CodeMissingTenantID, Invalid: pkgerrors.CodeInvalidTenantID,
		Rule: "gt=0", InvalidMessage: msgInvalidTenantID,
	}

	customerShopifyID = validators.Field{Key: "shopifyCustomerId", Missing: pkgerrors.CodeMissingShopifyCustomerID}
	customerEmail     = validators.Field{
		Key: "email", Missing: pkgerrors.CodeMissingEmail, Invalid: pkgerrors.CodeInvalidEmailFormat,
		Rule: "shopemail", InvalidMessage: msgInvalidEmail,
	}
	customerFirstName = validators.Field{
		Key: "firstName", Missing: pkgerrors.CodeMissingFirstName, Invalid: pkgerrors.CodeInvalidFirstName,
		InvalidMessage: "firstName must be a non-empty string",
	}
	customerLastName = validators.Field{
		Key: "lastName", Missing: pkgerrors.CodeMissingLastName, Invalid: pkgerrors.CodeInvalidLastName,
		InvalidMessage: "lastName must be a non-empty string",
	}
	customerTotalSpent = validators.Field{
		Key: "totalSpent", Invalid: pkgerrors.CodeInvalidTotalSpent,
		Rule: "min=0", InvalidMessage: "totalSpent must be a non-negative number",
	}
	customerOrdersCount = validators.Field{
		Key: "ordersCount", Invalid: pkgerrors.CodeInvalidOrdersCount,
		Rule: "min=0", InvalidMessage: "ordersCount must be a non-negative integer",
	}
)

// GetCustomers serves GET /api/customers. A single fetch may be narrowed with
// ?tenantId=; a list requires it.
func GetCustomers(svc customersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, single, err := optionalID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if single {
			scope, err := tenancy.ParseFetchScope(tenantParam(r))
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			ctx = withScope(ctx, logg, scope)
			customer, err := svc.Get(ctx, id, scope)
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			responses.WriteSuccess(w, customer)
			return
		}

		scope, err := tenancy.ParseListScope(tenantParam(r), "customers")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		ctx = withScope(ctx, logg, scope)
		list, err := svc.List(ctx, customersvc.ListFilter{
			Scope:  scope,
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

func CreateCustomer(svc customersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		fields, err := validators.DecodeFields(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		input, err := parseCreateCustomer(fields)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		ctx = logg.WithTenantID(ctx, input.TenantID)
		customer, err := svc.Create(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteCreated(w, customer)
	}
}

// parseCreateCustomer checks presence of every required key before any
// format, and the email format before the tenant id.
func parseCreateCustomer(fields validators.Fields) (customersvc.CreateInput, error) {
	var in customersvc.CreateInput
	if err := fields.Require(bodyTenantID, customerShopifyID, customerEmail, customerFirstName, customerLastName); err != nil {
		return in, err
	}
	var err error
	if in.ShopifyCustomerID, err = fields.RequiredString(customerShopifyID); err != nil {
		return in, err
	}
	if in.Email, err = fields.RequiredString(customerEmail); err != nil {
		return in, err
	}
	if in.FirstName, err = fields.RequiredString(customerFirstName); err != nil {
		return in, err
	}
	if in.LastName, err = fields.RequiredString(customerLastName); err != nil {
		return in, err
	}
	if in.TenantID, err = fields.RequiredID(bodyTenantID); err != nil {
		return in, err
	}
	if !fields.IsNull(customerTotalSpent.Key) {
		if in.TotalSpent, err = fields.OptionalMoney(customerTotalSpent); err != nil {
			return in, err
		}
	}
	if !fields.IsNull(customerOrdersCount.Key) {
		if in.OrdersCount, err = fields.OptionalCount(customerOrdersCount); err != nil {
			return in, err
		}
	}
	return in, nil
}

// UpdateCustomer addresses the customer by id alone; tenantId in the query
// or body plays no part.
func UpdateCustomer(svc customersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := requiredID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		customer, err := svc.Update(ctx, id, func() (customersvc.UpdateInput, error) {
			fields, err := validators.DecodeFields(r)
			if err != nil {
				return customersvc.UpdateInput{}, err
			}
			return parseUpdateCustomer(fields)
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, customer)
	}
}

func parseUpdateCustomer(fields validators.Fields) (customersvc.UpdateInput, error) {
	var in customersvc.UpdateInput
	var err error
	if in.Email, err = fields.OptionalString(customerEmail); err != nil {
		return in, err
	}
	if in.FirstName, err = fields.OptionalString(customerFirstName); err != nil {
		return in, err
	}
	if in.LastName, err = fields.OptionalString(customerLastName); err != nil {
		return in, err
	}
	if in.TotalSpent, err = fields.OptionalMoney(customerTotalSpent); err != nil {
		return in, err
	}
	if in.OrdersCount, err = fields.OptionalCount(customerOrdersCount); err != nil {
		return in, err
	}
	return in, nil
}

func DeleteCustomer(svc customersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := requiredID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		customer, err := svc.Delete(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteDeleted(w, "customer", "Customer deleted successfully", customer)
	}
}
