package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLine(unitPrice string, quantity int) OrderLine {
	return OrderLine{
		ID:          uuid.New(),
		ProductID:   uuid.New(),
		ProductName: "Widget",
		UnitPrice:   decimal.RequireFromString(unitPrice),
		Quantity:    quantity,
	}
}

func TestOrderLine_LineTotal(t *testing.T) {
	line := testLine("12.50", 3)

	assert.Equal(t, "37.50", line.LineTotal().StringFixed(2))
}

func TestOrder_Validate(t *testing.T) {
	order := &Order{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Lines:   []OrderLine{testLine("12.50", 3), testLine("5.00", 1)},
	}
	order.TotalAmount = order.LinesTotal()

	require.NoError(t, order.Validate())
	assert.Equal(t, "42.50", order.TotalAmount.StringFixed(2))
}

func TestOrder_Validate_NoLines(t *testing.T) {
	order := &Order{ID: uuid.New(), OwnerID: uuid.New()}

	assert.Error(t, order.Validate())
}

func TestOrder_Validate_NonPositiveQuantity(t *testing.T) {
	order := &Order{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Lines:   []OrderLine{testLine("12.50", 0)},
	}

	assert.Error(t, order.Validate())
}

func TestOrder_Validate_TotalMismatch(t *testing.T) {
	order := &Order{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Lines:       []OrderLine{testLine("12.50", 2)},
		TotalAmount: decimal.RequireFromString("20.00"),
	}

	assert.Error(t, order.Validate())
}
