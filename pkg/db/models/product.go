package models

import "time"

type Product struct {
	ID               int64     `gorm:"column:id;primaryKey;autoIncrement"`
	TenantID         int64     `gorm:"column:tenant_id;not null"`
	ShopifyProductID string    `gorm:"column:shopify_product_id;not null"`
	Title            string    `gorm:"column:title;not null"`
	Price            float64   `gorm:"column:price;not null"`
	Inventory        int       `gorm:"column:inventory;not null;default:0"`
	CreatedAt        time.Time `gorm:"column:created_at;not null"`
	UpdatedAt        time.Time `gorm:"column:updated_at;not null"`
}

func (Product) TableName() string { return "products" }
