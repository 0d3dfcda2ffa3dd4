package customers

import (
	"github.com/angelmondragon/shopinsights-backend/internal/tenancy"
	"github.com/angelmondragon/shopinsights-backend/pkg/db/models"
	"github.com/angelmondragon/shopinsights-backend/pkg/pagination"
	"github.com/angelmondragon/shopinsights-backend/pkg/types"
)

// CustomerDTO is the wire shape of a customer.
type CustomerDTO struct {
	ID                int64   `json:"id"`
	TenantID          int64   `json:"tenantId"`
	ShopifyCustomerID string  `json:"shopifyCustomerId"`
	Email             string  `json:"email"`
	FirstName         string  `json:"firstName"`
	LastName          string  `json:"lastName"`
	TotalSpent        float64 `json:"totalSpent"`
	OrdersCount       int     `json:"ordersCount"`
	CreatedAt         string  `json:"createdAt"`
	UpdatedAt         string  `json:"updatedAt"`
}

func FromModel(m *models.Customer) *CustomerDTO {
	if m == nil {
		return nil
	}
	return &CustomerDTO{
		ID:                m.ID,
		TenantID:          m.TenantID,
		ShopifyCustomerID: m.ShopifyCustomerID,
		Email:             m.Email,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		TotalSpent:        m.TotalSpent,
		OrdersCount:       m.OrdersCount,
		CreatedAt:         types.FormatTimestamp(m.CreatedAt),
		UpdatedAt:         types.FormatTimestamp(m.UpdatedAt),
	}
}

// CreateInput is a validated create body. Nil aggregates default to zero.
type CreateInput struct {
	TenantID          int64
	ShopifyCustomerID string
	Email             string
	FirstName         string
	LastName          string
	TotalSpent        *float64
	OrdersCount       *int
}

// UpdateInput lists the mutable fields; nil leaves a column untouched.
type UpdateInput struct {
	Email       *string
	FirstName   *string
	LastName    *string
	TotalSpent  *float64
	OrdersCount *int
}

type UpdateParser func() (UpdateInput, error)

// ListFilter always carries a tenant scope; lists never span tenants.
type ListFilter struct {
	Scope  tenancy.Scope
	Search string
	Page   pagination.Params
}
