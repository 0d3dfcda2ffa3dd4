package products

import (
	"github.com/angelmondragon/shopinsights-backend/internal/tenancy"
	"github.com/angelmondragon/shopinsights-backend/pkg/db/models"
	"github.com/angelmondragon/shopinsights-backend/pkg/pagination"
	"github.com/angelmondragon/shopinsights-backend/pkg/types"
)

type ProductDTO struct {
	ID               int64   `json:"id"`
	TenantID         int64   `json:"tenantId"`
	ShopifyProductID string  `json:"shopifyProductId"`
	Title            string  `json:"title"`
	Price            float64 `json:"price"`
	Inventory        int     `json:"inventory"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

func FromModel(m *models.Product) *ProductDTO {
	if m == nil {
		return nil
	}
	return &ProductDTO{
		ID:               m.ID,
		TenantID:         m.TenantID,
		ShopifyProductID: m.ShopifyProductID,
		Title:            m.Title,
		Price:            m.Price,
		Inventory:        m.Inventory,
		CreatedAt:        types.FormatTimestamp(m.CreatedAt),
		UpdatedAt:        types.FormatTimestamp(m.UpdatedAt),
	}
}

// CreateInput is a validated create body. A nil Inventory stores 0.
type CreateInput struct {
	TenantID         int64
	ShopifyProductID string
	Title            string
	Price            float64
	Inventory        *int
}

type UpdateInput struct {
	Title     *string
	Price     *float64
	Inventory *int
}

type UpdateParser func() (UpdateInput, error)

// ListFilter bounds are inclusive; nil bounds are off.
type ListFilter struct {
	Scope    tenancy.Scope
	Search   string
	MinPrice *float64
	MaxPrice *float64
	Page     pagination.Params
}
