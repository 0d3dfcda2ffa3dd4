package tenants

import (
	"github.com/angelmondragon/shopinsights-backend/pkg/db/models"
	"github.com/angelmondragon/shopinsights-backend/pkg/pagination"
	"github.com/angelmondragon/shopinsights-backend/pkg/types"
)

// TenantDTO is the wire shape of a tenant.
type TenantDTO struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	ShopifyDomain      string `json:"shopifyDomain"`
	ShopifyAccessToken string `json:"shopifyAccessToken"`
	CreatedAt          string `json:"createdAt"`
	UpdatedAt          string `json:"updatedAt"`
}

func FromModel(m *models.Tenant) *TenantDTO {
	if m == nil {
		return nil
	}
	return &TenantDTO{
		ID:                 m.ID,
		Name:               m.Name,
		ShopifyDomain:      m.ShopifyDomain,
		ShopifyAccessToken: m.ShopifyAccessToken,
		CreatedAt:          types.FormatTimestamp(m.CreatedAt),
		UpdatedAt:          types.FormatTimestamp(m.UpdatedAt),
	}
}

// CreateInput carries trimmed, non-empty values.
type CreateInput struct {
	Name               string
	ShopifyDomain      string
	ShopifyAccessToken string
}

// UpdateInput holds the fields present in a partial update; nil means untouched.
type UpdateInput struct {
	Name               *string
	ShopifyDomain      *string
	ShopifyAccessToken *string
}

// UpdateParser validates the update body. The service calls it only after the
// target tenant is known to exist.
type UpdateParser func() (UpdateInput, error)

type ListFilter struct {
	Search string
	Page   pagination.Params
}
