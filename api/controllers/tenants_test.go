package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/angelmondragon/shopinsights-backend/internal/tenants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTenantLowercasesAndRejectsDuplicateDomain(t *testing.T) {
	a := newAPI(t)

	rec := a.do(http.MethodPost, "/api/tenants", `{"name":"Acme","shopifyDomain":"Acme.MyShopify.com","shopifyAccessToken":"tok"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[tenants.TenantDTO](t, rec)
	assert.Equal(t, "acme.myshopify.com", created.ShopifyDomain)

	rec = a.do(http.MethodPost, "/api/tenants", `{"name":"Acme2","shopifyDomain":"acme.myshopify.com","shopifyAccessToken":"tok2"}`)
	body := expectError(t, rec, http.StatusBadRequest, "DUPLICATE_SHOPIFY_DOMAIN")
	assert.Equal(t, "Shopify domain already exists", body.Error)

	rec = a.do(http.MethodGet, fmt.Sprintf("/api/tenants?id=%d", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decode[tenants.TenantDTO](t, rec))
}

func TestCreateTenantValidation(t *testing.T) {
	a := newAPI(t)
	cases := []struct {
		body string
		code string
		msg  string
	}{
		{`{"shopifyDomain":"a","shopifyAccessToken":"b"}`, "MISSING_NAME", "Name is required and cannot be empty"},
		{`{"name":"   ","shopifyDomain":"a","shopifyAccessToken":"b"}`, "MISSING_NAME", "Name is required and cannot be empty"},
		{`{"name":"x","shopifyAccessToken":"b"}`, "MISSING_SHOPIFY_DOMAIN", "Shopify domain is required"},
		{`{"name":"x","shopifyDomain":"a","shopifyAccessToken":null}`, "MISSING_SHOPIFY_ACCESS_TOKEN", "Shopify access token is required"},
		{`[1,2]`, "INVALID_BODY", ""},
		{`{"name":`, "INVALID_BODY", ""},
	}
	for _, tc := range cases {
		rec := a.do(http.MethodPost, "/api/tenants", tc.body)
		body := expectError(t, rec, http.StatusBadRequest, tc.code)
		if tc.msg != "" {
			assert.Equal(t, tc.msg, body.Error)
		}
	}
}

func TestGetTenantsListAndIDValidation(t *testing.T) {
	a := newAPI(t)
	a.createTenant("one.myshopify.com")
	a.createTenant("two.myshopify.com")

	rec := a.do(http.MethodGet, "/api/tenants?search=two", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]tenants.TenantDTO](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "two.myshopify.com", list[0].ShopifyDomain)

	rec = a.do(http.MethodGet, "/api/tenants?search=nothing-matches", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	body := expectError(t, a.do(http.MethodGet, "/api/tenants?id=abc", ""), http.StatusBadRequest, "INVALID_ID")
	assert.Equal(t, "Valid ID is required", body.Error)

	expectError(t, a.do(http.MethodGet, "/api/tenants?id=999", ""), http.StatusNotFound, "TENANT_NOT_FOUND")
}

func TestUpdateTenant(t *testing.T) {
	a := newAPI(t)
	id := a.createTenant("one.myshopify.com")
	a.createTenant("two.myshopify.com")
	target := fmt.Sprintf("/api/tenants?id=%d", id)

	rec := a.do(http.MethodPut, target, `{"name":"  Renamed  "}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[tenants.TenantDTO](t, rec)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "one.myshopify.com", updated.ShopifyDomain)

	body := expectError(t, a.do(http.MethodPut, target, `{"name":""}`), http.StatusBadRequest, "INVALID_NAME")
	assert.Equal(t, "Name cannot be empty", body.Error)
	expectError(t, a.do(http.MethodPut, target, `{"shopifyDomain":"TWO.myshopify.com"}`), http.StatusBadRequest, "DUPLICATE_SHOPIFY_DOMAIN")
	expectError(t, a.do(http.MethodPut, target, `{"shopifyAccessToken":" "}`), http.StatusBadRequest, "INVALID_SHOPIFY_ACCESS_TOKEN")

	expectError(t, a.do(http.MethodPut, "/api/tenants", `{"name":"x"}`), http.StatusBadRequest, "INVALID_ID")
	expectError(t, a.do(http.MethodPut, "/api/tenants?id=999", `not json`), http.StatusNotFound, "TENANT_NOT_FOUND")
}

func TestDeleteTenant(t *testing.T) {
	a := newAPI(t)
	id := a.createTenant("one.myshopify.com")

	rec := a.do(http.MethodDelete, fmt.Sprintf("/api/tenants?id=%d", id), "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[struct {
		Message string            `json:"message"`
		Tenant  tenants.TenantDTO `json:"tenant"`
	}](t, rec)
	assert.Equal(t, "Tenant deleted successfully", body.Message)
	assert.Equal(t, id, body.Tenant.ID)

	expectError(t, a.do(http.MethodDelete, fmt.Sprintf("/api/tenants?id=%d", id), ""), http.StatusNotFound, "TENANT_NOT_FOUND")
	expectError(t, a.do(http.MethodDelete, "/api/tenants?id=x1", ""), http.StatusBadRequest, "INVALID_ID")
}
