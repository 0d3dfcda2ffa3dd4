package models

import "time"

// Tenant is one connected Shopify store and the root of data isolation.
type Tenant struct {
	ID                 int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name               string    `gorm:"column:name;not null"`
	ShopifyDomain      string    `gorm:"column:shopify_domain;not null;uniqueIndex:idx_tenants_shopify_domain"`
	ShopifyAccessToken string    `gorm:"column:shopify_access_token;not null"`
	CreatedAt          time.Time `gorm:"column:created_at;not null"`
	UpdatedAt          time.Time `gorm:"column:updated_at;not null"`
}

func (Tenant) TableName() string { return "tenants" }
