package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order represents a placed order owned by a buyer account. It owns an
// append-only list of lines; lines are immutable after the order is created.
type Order struct {
	ID          uuid.UUID       `json:"id"`           // The unique identifier of the order.
	OwnerID     uuid.UUID       `json:"owner_id"`     // The account that placed the order.
	TotalAmount decimal.Decimal `json:"total_amount"` // Total monetary amount, 2 fraction digits.
	Status      OrderStatus     `json:"status"`       // Current lifecycle status.
	Lines       []OrderLine     `json:"lines"`        // The order's line items.
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// OrderLine is a single line item of an order.
type OrderLine struct {
	ID          uuid.UUID       `json:"id"`
	OrderID     uuid.UUID       `json:"order_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Category    string          `json:"category"`  // Product category tag used for rate resolution.
	SellerID    *uuid.UUID      `json:"seller_id"` // Nil means the line has no specific seller.
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
}

// LineTotal returns unit price multiplied by quantity.
func (l OrderLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// LinesTotal sums the line totals of all lines.
func (o *Order) LinesTotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.Lines {
		total = total.Add(line.LineTotal())
	}

	return total
}

// Validate checks the creation-time invariants of the aggregate: at least one
// line, positive quantities, and a total amount equal to the sum of the lines.
func (o *Order) Validate() error {
	if len(o.Lines) == 0 {
		return errors.New("order has no lines")
	}

	for _, line := range o.Lines {
		if line.Quantity <= 0 {
			return errors.New("order line quantity must be positive")
		}
	}

	if !o.TotalAmount.Equal(o.LinesTotal()) {
		return errors.New("order total does not match sum of lines")
	}

	return nil
}
