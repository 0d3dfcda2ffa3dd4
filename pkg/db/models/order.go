package models

import (
	"time"

	"github.com/angelmondragon/shopinsights-backend/pkg/enums"
)

// Order references a customer of the same tenant. OrderDate is stored as the
// caller supplied it and compared lexically by date filters.
type Order struct {
	ID             int64             `gorm:"column:id;primaryKey;autoIncrement"`
	TenantID       int64             `gorm:"column:tenant_id;not null"`
	ShopifyOrderID string            `gorm:"column:shopify_order_id;not null"`
	CustomerID     int64             `gorm:"column:customer_id;not null"`
	TotalPrice     float64           `gorm:"column:total_price;not null"`
	Status         enums.OrderStatus `gorm:"column:status;not null"`
	OrderDate      string            `gorm:"column:order_date;not null"`
	CreatedAt      time.Time         `gorm:"column:created_at;not null"`
	UpdatedAt      time.Time         `gorm:"column:updated_at;not null"`
}

func (Order) TableName() string { return "orders" }
