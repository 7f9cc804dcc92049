package entities

import (
	"github.com/shopspring/decimal"
)

// Quotation represents a stored quotation: the same line-item structure as a
// sales order with a validity date. Quotation workflow statuses come from the
// quoting side of the house, so they are carried as-is rather than mapped
// onto the order status enum.
type Quotation struct {
	ID         string
	Customer   string
	Date       string
	Status     string
	ValidUntil string
	Items      []*LineItem
}

// GrandTotal computes the sum of all line totals
func (q *Quotation) GrandTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range q.Items {
		total = total.Add(item.LineTotal)
	}
	return total
}
