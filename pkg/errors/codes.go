package errors

// Code is the machine-readable failure identifier sent to clients.
type Code string

const (
	CodeInvalidBody Code = "INVALID_BODY"
	CodeInvalidID   Code = "INVALID_ID"

	CodeTenantIDRequired Code = "TENANT_ID_REQUIRED"
	CodeMissingTenantID  Code = "MISSING_TENANT_ID"
	CodeInvalidTenantID  Code = "INVALID_TENANT_ID"

	CodeMissingCustomerID Code = "MISSING_CUSTOMER_ID"
	CodeInvalidCustomerID Code = "INVALID_CUSTOMER_ID"

	CodeTenantNotFound   Code = "TENANT_NOT_FOUND"
	CodeCustomerNotFound Code = "CUSTOMER_NOT_FOUND"
	CodeProductNotFound  Code = "PRODUCT_NOT_FOUND"
	CodeOrderNotFound    Code = "ORDER_NOT_FOUND"

	CodeDuplicateShopifyDomain Code = "DUPLICATE_SHOPIFY_DOMAIN"

	CodeMissingName               Code = "MISSING_NAME"
	CodeInvalidName               Code = "INVALID_NAME"
	CodeMissingShopifyDomain      Code = "MISSING_SHOPIFY_DOMAIN"
	CodeInvalidShopifyDomain      Code = "INVALID_SHOPIFY_DOMAIN"
	CodeMissingShopifyAccessToken Code = "MISSING_SHOPIFY_ACCESS_TOKEN"
	CodeInvalidShopifyAccessToken Code = "INVALID_SHOPIFY_ACCESS_TOKEN"

	CodeMissingShopifyCustomerID Code = "MISSING_SHOPIFY_CUSTOMER_ID"
	CodeMissingEmail             Code = "MISSING_EMAIL"
	CodeInvalidEmailFormat       Code = "INVALID_EMAIL_FORMAT"
	CodeMissingFirstName         Code = "MISSING_FIRST_NAME"
	CodeInvalidFirstName         Code = "INVALID_FIRST_NAME"
	CodeMissingLastName          Code = "MISSING_LAST_NAME"
	CodeInvalidLastName          Code = "INVALID_LAST_NAME"
	CodeInvalidTotalSpent        Code = "INVALID_TOTAL_SPENT"
	CodeInvalidOrdersCount       Code = "INVALID_ORDERS_COUNT"

	CodeMissingShopifyProductID Code = "MISSING_SHOPIFY_PRODUCT_ID"
	CodeMissingTitle            Code = "MISSING_TITLE"
	CodeInvalidTitle            Code = "INVALID_TITLE"
	CodeMissingPrice            Code = "MISSING_PRICE"
	CodeInvalidPrice            Code = "INVALID_PRICE"
	CodeInvalidInventory        Code = "INVALID_INVENTORY"

	CodeMissingShopifyOrderID Code = "MISSING_SHOPIFY_ORDER_ID"
	CodeMissingTotalPrice     Code = "MISSING_TOTAL_PRICE"
	CodeInvalidTotalPrice     Code = "INVALID_TOTAL_PRICE"
	CodeMissingStatus         Code = "MISSING_STATUS"
	CodeInvalidStatus         Code = "INVALID_STATUS"
	CodeMissingOrderDate      Code = "MISSING_ORDER_DATE"

	CodeDependencyUnavailable Code = "DEPENDENCY_UNAVAILABLE"
	CodeRouteNotFound         Code = "ROUTE_NOT_FOUND"
	CodeMethodNotAllowed      Code = "METHOD_NOT_ALLOWED"
)
