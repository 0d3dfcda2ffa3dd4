package models

import "time"

// Customer belongs to exactly one tenant. TotalSpent and OrdersCount are
// maintained by callers and never recomputed from orders.
type Customer struct {
	ID                int64     `gorm:"column:id;primaryKey;autoIncrement"`
	TenantID          int64     `gorm:"column:tenant_id;not null"`
	ShopifyCustomerID string    `gorm:"column:shopify_customer_id;not null"`
	Email             string    `gorm:"column:email;not null"`
	FirstName         string    `gorm:"column:first_name;not null"`
	LastName          string    `gorm:"column:last_name;not null"`
	TotalSpent        float64   `gorm:"column:total_spent;not null;default:0"`
	OrdersCount       int       `gorm:"column:orders_count;not null;default:0"`
	CreatedAt         time.Time `gorm:"column:created_at;not null"`
	UpdatedAt         time.Time `gorm:"column:updated_at;not null"`
}

func (Customer) TableName() string { return "customers" }
