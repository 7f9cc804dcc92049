package entities

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RowKey is the opaque identity of a line item within an order. Keys are
// assigned once at creation and never reused, so edits and removals always
// target the intended row even while the item sequence is shifting.
type RowKey string

// NewRowKey allocates a fresh row key
func NewRowKey() RowKey {
	return RowKey(uuid.NewString())
}

// LineItem represents one orderable row: a product reference, a quantity,
// and the derived line total, plus optional batch/serial tracking data.
type LineItem struct {
	Key           RowKey
	ProductID     ProductID
	ProductName   string
	Quantity      int64
	UnitPrice     decimal.Decimal
	LineTotal     decimal.Decimal
	BatchNumber   string
	SerialNumbers []string
}

// NewLineItem creates an empty line item with quantity 1 and a fresh row key
func NewLineItem() *LineItem {
	return &LineItem{
		Key:       NewRowKey(),
		Quantity:  1,
		UnitPrice: decimal.Zero,
		LineTotal: decimal.Zero,
	}
}

// ApplyProduct copies the selected product's name and price onto the item,
// discards any batch number or serial numbers entered for the previously
// selected product, and recomputes the line total.
func (li *LineItem) ApplyProduct(product *Product) {
	li.ProductID = product.ID
	li.ProductName = product.Name
	li.UnitPrice = product.Price
	li.BatchNumber = ""
	li.SerialNumbers = nil
	li.recomputeTotal()
}

// SetQuantity updates the quantity and recomputes the line total. Quantities
// below 1 are rejected, leaving the item unchanged. Serial numbers are not
// resized here; the serial editor resyncs them the next time it opens.
func (li *LineItem) SetQuantity(quantity int64) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", quantity)
	}
	li.Quantity = quantity
	li.recomputeTotal()
	return nil
}

// SerialComplete reports whether the item holds exactly one serial per unit.
// Drives the completion indicator only; submission does not require it.
func (li *LineItem) SerialComplete() bool {
	return len(li.SerialNumbers) > 0 && int64(len(li.SerialNumbers)) == li.Quantity
}

// Clone returns a deep copy of the line item
func (li *LineItem) Clone() *LineItem {
	dup := *li
	if li.SerialNumbers != nil {
		dup.SerialNumbers = make([]string, len(li.SerialNumbers))
		copy(dup.SerialNumbers, li.SerialNumbers)
	}
	return &dup
}

func (li *LineItem) recomputeTotal() {
	li.LineTotal = li.UnitPrice.Mul(decimal.NewFromInt(li.Quantity)).Round(2)
}
