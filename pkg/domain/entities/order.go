package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the status of a sales order
type OrderStatus int

const (
	Draft OrderStatus = iota
	Confirmed
	Shipped
)

// String method for OrderStatus enum
func (s OrderStatus) String() string {
	switch s {
	case Draft:
		return "Draft"
	case Confirmed:
		return "Confirmed"
	case Shipped:
		return "Shipped"
	default:
		return "Unknown"
	}
}

// ParseOrderStatus parses an order status from its string form
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch s {
	case "Draft":
		return Draft, nil
	case "Confirmed":
		return Confirmed, nil
	case "Shipped":
		return Shipped, nil
	default:
		return Draft, fmt.Errorf("unknown order status: %s", s)
	}
}

// Order represents a sales order: header fields plus an ordered sequence of
// line items. The grand total is always derived from the items, never stored.
type Order struct {
	ID       string
	Customer string
	Date     string
	Status   OrderStatus
	Items    []*LineItem
}

// NewOrder creates an empty draft order dated with the given ISO date
func NewOrder(date string) *Order {
	return &Order{
		Date:   date,
		Status: Draft,
	}
}

// AppendItem adds a fresh empty line item at the end of the sequence and
// returns it
func (o *Order) AppendItem() *LineItem {
	item := NewLineItem()
	o.Items = append(o.Items, item)
	return item
}

// Item returns the line item with the given row key, or nil
func (o *Order) Item(key RowKey) *LineItem {
	for _, item := range o.Items {
		if item.Key == key {
			return item
		}
	}
	return nil
}

// RemoveItem removes the line item with the given row key. Returns false if
// no item has that key; remaining items are untouched either way.
func (o *Order) RemoveItem(key RowKey) bool {
	for i, item := range o.Items {
		if item.Key == key {
			o.Items = append(o.Items[:i], o.Items[i+1:]...)
			return true
		}
	}
	return false
}

// GrandTotal computes the sum of all line totals. Recomputed on every read
// so it can never desynchronize from the item sequence.
func (o *Order) GrandTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTotal)
	}
	return total
}

// Clone returns a deep copy of the order, suitable as an immutable
// submission snapshot
func (o *Order) Clone() *Order {
	dup := *o
	dup.Items = make([]*LineItem, len(o.Items))
	for i, item := range o.Items {
		dup.Items[i] = item.Clone()
	}
	return &dup
}
