// Package model holds the GORM-specific table structs of the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type OrderModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Status      string          `gorm:"type:text;not null;default:'pending';index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Lines []OrderLineModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineModel mirrors the 'order_lines' table. OrderID references orders.id (UUID).
type OrderLineModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName string          `gorm:"type:text;not null"`
	Category    string          `gorm:"type:text;not null;default:''"`
	SellerID    *uuid.UUID      `gorm:"type:uuid;index"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Quantity    int             `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderLineModel) TableName() string {
	return "order_lines"
}
