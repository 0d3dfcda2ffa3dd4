package controllers

import (
	"net/http"

	"github.com/angelmondragon/shopinsights-backend/api/responses"
	"github.com/angelmondragon/shopinsights-backend/api/validators"
	productsvc "github.com/angelmondragon/shopinsights-backend/internal/products"
	"github.com/angelmondragon/shopinsights-backend/internal/tenancy"
	pkgerrors "github.com/angelmondragon/shopinsights-backend/pkg/errors"
	"github.com/angelmondragon/shopinsights-backend/pkg/logger"
)

var (
	productShopifyID = validators.Field{
		Key: "shopifyProductId", Missing: pkgerrors.CodeMissingShopifyProductID,
		MissingMessage: "shopifyProductId is required and must be a non-empty string",
	}
	productTitle = validators.Field{
		Key: "title", Missing: pkgerrors.CodeMissingTitle, Invalid: pkgerrors.CodeInvalidTitle,
		MissingMessage: "title is required and must be a non-empty string",
		InvalidMessage: "title must be a non-empty string",
	}
	productPrice = validators.Field{
		Key: "price", Missing: pkgerrors.CodeMissingPrice, Invalid: pkgerrors.CodeInvalidPrice,
		Rule: "gt=0", NullOnly: true,
		MissingMessage: "price is required",
		InvalidMessage: "price must be a positive number greater than 0",
	}
	productInventory = validators.Field{
		Key: "inventory", Invalid: pkgerrors.CodeInvalidInventory,
		Rule: "min=0", InvalidMessage: "inventory must be a non-negative integer",
	}
)

// GetProducts serves GET /api/products. Lists accept search plus an inclusive
// minPrice/maxPrice range; malformed bounds are ignored.
func GetProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
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
			product, err := svc.Get(ctx, id, scope)
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			responses.WriteSuccess(w, product)
			return
		}

		scope, err := tenancy.ParseListScope(tenantParam(r), "products")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		ctx = withScope(ctx, logg, scope)
		list, err := svc.List(ctx, productsvc.ListFilter{
			Scope:    scope,
			Search:   validators.QueryString(r, "search"),
			MinPrice: validators.QueryFloat(r, "minPrice"),
			MaxPrice: validators.QueryFloat(r, "maxPrice"),
			Page:     validators.QueryPage(r),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

func CreateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		fields, err := validators.DecodeFields(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		input, err := parseCreateProduct(fields)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		ctx = logg.WithTenantID(ctx, input.TenantID)
		product, err := svc.Create(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteCreated(w, product)
	}
}

func parseCreateProduct(fields validators.Fields) (productsvc.CreateInput, error) {
	var in productsvc.CreateInput
	if err := fields.Require(bodyTenantID, productShopifyID, productTitle, productPrice); err != nil {
		return in, err
	}
	var err error
	if in.TenantID, err = fields.RequiredID(bodyTenantID); err != nil {
		return in, err
	}
	if in.ShopifyProductID, err = fields.RequiredString(productShopifyID); err != nil {
		return in, err
	}
	if in.Title, err = fields.RequiredString(productTitle); err != nil {
		return in, err
	}
	if in.Price, err = fields.RequiredMoney(productPrice); err != nil {
		return in, err
	}
	// null inventory on create means "use the default".
	if !fields.IsNull(productInventory.Key) {
		if in.Inventory, err = fields.OptionalCount(productInventory); err != nil {
			return in, err
		}
	}
	return in, nil
}

func UpdateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := requiredID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		product, err := svc.Update(ctx, id, func() (productsvc.UpdateInput, error) {
			fields, err := validators.DecodeFields(r)
			if err != nil {
				return productsvc.UpdateInput{}, err
			}
			return parseUpdateProduct(fields)
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

func parseUpdateProduct(fields validators.Fields) (productsvc.UpdateInput, error) {
	var in productsvc.UpdateInput
	var err error
	if in.Title, err = fields.OptionalString(productTitle); err != nil {
		return in, err
	}
	if in.Price, err = fields.OptionalMoney(productPrice); err != nil {
		return in, err
	}
	if in.Inventory, err = fields.OptionalCount(productInventory); err != nil {
		return in, err
	}
	return in, nil
}

func DeleteProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := requiredID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		product, err := svc.Delete(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteDeleted(w, "product", "Product deleted successfully", product)
	}
}
