package controllers

import (
	"net/http"
	"strings"

	"github.com/angelmondragon/shopinsights-backend/api/responses"
	"github.com/angelmondragon/shopinsights-backend/api/validators"
	ordersvc "github.com/angelmondragon/shopinsights-backend/internal/orders"
	"github.com/angelmondragon/shopinsights-backend/internal/tenancy"
	"github.com/angelmondragon/shopinsights-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopinsights-backend/pkg/errors"
	"github.com/angelmondragon/shopinsights-backend/pkg/logger"
)

var (
	orderShopifyID = validators.Field{Key: "shopifyOrderId", Missing: pkgerrors.CodeMissingShopifyOrderID}
	orderCustomer  = validators.Field{
		Key: "customerId", Missing: pkgerrors.CodeMissingCustomerID, Invalid: pkgerrors.CodeInvalidCustomerID,
		Rule: "gt=0", InvalidMessage: msgInvalidCustomerID,
	}
	orderTotalPrice = validators.Field{
		Key: "totalPrice", Missing: pkgerrors.CodeMissingTotalPrice, Invalid: pkgerrors.CodeInvalidTotalPrice,
		Rule: "gt=0", NullOnly: true,
		InvalidMessage: "totalPrice must be a positive number",
	}
	orderStatus = validators.Field{
		Key: "status", Missing: pkgerrors.CodeMissingStatus, Invalid: pkgerrors.CodeInvalidStatus,
		Rule:           "oneof=" + strings.ReplaceAll(enums.OrderStatusList(), ", ", " "),
		InvalidMessage: "Invalid status. Must be one of: " + enums.OrderStatusList(),
	}
	orderDate = validators.Field{Key: "orderDate", Missing: pkgerrors.CodeMissingOrderDate}
)

// GetOrders serves GET /api/orders. Lists filter on customerId, status and an
// inclusive startDate/endDate window over orderDate.
func GetOrders(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
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
			order, err := svc.Get(ctx, id, scope)
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			responses.WriteSuccess(w, order)
			return
		}

		scope, err := tenancy.ParseListScope(tenantParam(r), "orders")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		ctx = withScope(ctx, logg, scope)

		filter := ordersvc.ListFilter{
			Scope:     scope,
			StartDate: validators.QueryString(r, "startDate"),
			EndDate:   validators.QueryString(r, "endDate"),
			Page:      validators.QueryPage(r),
		}
		customerID, ok, err := validators.QueryID(r, "customerId", pkgerrors.CodeInvalidCustomerID, msgInvalidCustomerID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if ok {
			filter.CustomerID = &customerID
		}
		if raw := validators.QueryString(r, "status"); raw != "" {
			status := enums.OrderStatus(raw)
			filter.Status = &status
		}

		list, err := svc.List(ctx, filter)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

func CreateOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		fields, err := validators.DecodeFields(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		input, err := parseCreateOrder(fields)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		ctx = logg.WithTenantID(ctx, input.TenantID)
		order, err := svc.Create(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteCreated(w, order)
	}
}

// parseCreateOrder runs every presence check, then the id, price and status
// formats in that order.
func parseCreateOrder(fields validators.Fields) (ordersvc.CreateInput, error) {
	var in ordersvc.CreateInput
	if err := fields.Require(bodyTenantID, orderShopifyID, orderCustomer, orderTotalPrice, orderStatus, orderDate); err != nil {
		return in, err
	}
	var err error
	if in.ShopifyOrderID, err = fields.RequiredString(orderShopifyID); err != nil {
		return in, err
	}
	if in.OrderDate, err = fields.RequiredString(orderDate); err != nil {
		return in, err
	}
	if in.TenantID, err = fields.RequiredID(bodyTenantID); err != nil {
		return in, err
	}
	if in.CustomerID, err = fields.RequiredID(orderCustomer); err != nil {
		return in, err
	}
	if in.TotalPrice, err = fields.RequiredMoney(orderTotalPrice); err != nil {
		return in, err
	}
	status, err := fields.RequiredString(orderStatus)
	if err != nil {
		return in, err
	}
	in.Status = enums.OrderStatus(status)
	return in, nil
}

func UpdateOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := requiredID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		order, err := svc.Update(ctx, id, func() (ordersvc.UpdateInput, error) {
			fields, err := validators.DecodeFields(r)
			if err != nil {
				return ordersvc.UpdateInput{}, err
			}
			return parseUpdateOrder(fields)
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

func parseUpdateOrder(fields validators.Fields) (ordersvc.UpdateInput, error) {
	var in ordersvc.UpdateInput
	status, err := fields.OptionalString(orderStatus)
	if err != nil {
		return in, err
	}
	if status != nil {
		s := enums.OrderStatus(*status)
		in.Status = &s
	}
	if in.TotalPrice, err = fields.OptionalMoney(orderTotalPrice); err != nil {
		return in, err
	}
	return in, nil
}

func DeleteOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := requiredID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		order, err := svc.Delete(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteDeleted(w, "order", "Order deleted successfully", order)
	}
}
