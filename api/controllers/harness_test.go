package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/angelmondragon/shopinsights-backend/internal/customers"
	"github.com/angelmondragon/shopinsights-backend/internal/orders"
	"github.com/angelmondragon/shopinsights-backend/internal/products"
	"github.com/angelmondragon/shopinsights-backend/internal/tenancy"
	"github.com/angelmondragon/shopinsights-backend/internal/tenants"
	"github.com/angelmondragon/shopinsights-backend/pkg/db/dbtest"
	"github.com/angelmondragon/shopinsights-backend/pkg/logger"
	"github.com/stretchr/testify/require"
)

// api wires every controller to real services over an in-memory store.
type api struct {
	t        *testing.T
	handlers map[string]map[string]http.HandlerFunc
}

func newAPI(t *testing.T) *api {
	t.Helper()
	client := dbtest.New(t)
	logg := logger.Nop()
	guard := tenancy.NewGuard(client.DB())

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		now = now.Add(time.Second)
		return now
	}

	tenantSvc, err := tenants.NewService(tenants.NewRepository(client.DB()), client, clock)
	require.NoError(t, err)
	customerSvc, err := customers.NewService(customers.NewRepository(client.DB()), guard, client, clock)
	require.NoError(t, err)
	productSvc, err := products.NewService(products.NewRepository(client.DB()), guard, client, clock)
	require.NoError(t, err)
	orderSvc, err := orders.NewService(orders.NewRepository(client.DB()), guard, client, clock)
	require.NoError(t, err)

	return &api{t: t, handlers: map[string]map[string]http.HandlerFunc{
		"/api/tenants": {
			http.MethodGet: GetTenants(tenantSvc, logg), http.MethodPost: CreateTenant(tenantSvc, logg),
			http.MethodPut: UpdateTenant(tenantSvc, logg), http.MethodDelete: DeleteTenant(tenantSvc, logg),
		},
		"/api/customers": {
			http.MethodGet: GetCustomers(customerSvc, logg), http.MethodPost: CreateCustomer(customerSvc, logg),
			http.MethodPut: UpdateCustomer(customerSvc, logg), http.MethodDelete: DeleteCustomer(customerSvc, logg),
		},
		"/api/products": {
			http.MethodGet: GetProducts(productSvc, logg), http.MethodPost: CreateProduct(productSvc, logg),
			http.MethodPut: UpdateProduct(productSvc, logg), http.MethodDelete: DeleteProduct(productSvc, logg),
		},
		"/api/orders": {
			http.MethodGet: GetOrders(orderSvc, logg), http.MethodPost: CreateOrder(orderSvc, logg),
			http.MethodPut: UpdateOrder(orderSvc, logg), http.MethodDelete: DeleteOrder(orderSvc, logg),
		},
	}}
}

func (a *api) do(method, target, body string) *httptest.ResponseRecorder {
	a.t.Helper()
	path := target
	if i := strings.IndexByte(target, '?'); i >= 0 {
		path = target[:i]
	}
	h, ok := a.handlers[path][method]
	require.True(a.t, ok, "no handler for %s %s", method, path)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals the response body; it fails the test on malformed JSON.
func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func expectError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) errorBody {
	t.Helper()
	require.Equal(t, status, rec.Code, "body: %s", rec.Body.String())
	body := decode[errorBody](t, rec)
	require.Equal(t, code, body.Code, "message: %s", body.Error)
	return body
}

func (a *api) createTenant(domain string) int64 {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/api/tenants", `{"name":"Shop","shopifyDomain":"`+domain+`","shopifyAccessToken":"tok"}`)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[tenants.TenantDTO](a.t, rec).ID
}

func (a *api) createCustomer(tenantID int64, email string) customers.CustomerDTO {
	a.t.Helper()
	body, err := json.Marshal(map[string]any{
		"tenantId": tenantID, "shopifyCustomerId": "sc-" + email, "email": email,
		"firstName": "Ann", "lastName": "Lee",
	})
	require.NoError(a.t, err)
	rec := a.do(http.MethodPost, "/api/customers", string(body))
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[customers.CustomerDTO](a.t, rec)
}
