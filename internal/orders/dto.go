package orders

import (
	"github.com/angelmondragon/shopinsights-backend/internal/tenancy"
	"github.com/angelmondragon/shopinsights-backend/pkg/db/models"
	"github.com/angelmondragon/shopinsights-backend/pkg/enums"
	"github.com/angelmondragon/shopinsights-backend/pkg/pagination"
	"github.com/angelmondragon/shopinsights-backend/pkg/types"
)

// OrderDTO is the wire shape of an order. OrderDate is echoed verbatim.
type OrderDTO struct {
	ID             int64             `json:"id"`
	TenantID       int64             `json:"tenantId"`
	ShopifyOrderID string            `json:"shopifyOrderId"`
	CustomerID     int64             `json:"customerId"`
	TotalPrice     float64           `json:"totalPrice"`
	Status         enums.OrderStatus `json:"status"`
	OrderDate      string            `json:"orderDate"`
	CreatedAt      string            `json:"createdAt"`
	UpdatedAt      string            `json:"updatedAt"`
}

func FromModel(m *models.Order) *OrderDTO {
	if m == nil {
		return nil
	}
	return &OrderDTO{
		ID:             m.ID,
		TenantID:       m.TenantID,
		ShopifyOrderID: m.ShopifyOrderID,
		CustomerID:     m.CustomerID,
		TotalPrice:     m.TotalPrice,
		Status:         m.Status,
		OrderDate:      m.OrderDate,
		CreatedAt:      types.FormatTimestamp(m.CreatedAt),
		UpdatedAt:      types.FormatTimestamp(m.UpdatedAt),
	}
}

type CreateInput struct {
	TenantID       int64
	ShopifyOrderID string
	CustomerID     int64
	TotalPrice     float64
	Status         enums.OrderStatus
	OrderDate      string
}

// UpdateInput covers the two mutable order fields. Any status may follow any
// other.
type UpdateInput struct {
	Status     *enums.OrderStatus
	TotalPrice *float64
}

type UpdateParser func() (UpdateInput, error)

// ListFilter dates are inclusive bounds compared as strings against the
// stored orderDate.
type ListFilter struct {
	Scope      tenancy.Scope
	CustomerID *int64
	Status     *enums.OrderStatus
	StartDate  string
	EndDate    string
	Page       pagination.Params
}
