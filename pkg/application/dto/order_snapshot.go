package dto

import (
	"github.com/shopspring/decimal"

	"github.com/asheth/orderdesk/pkg/domain/entities"
)

// LineItemSnapshot is the wire form of a line item. Prices travel as plain
// JSON numbers; the domain converts them back to decimals.
type LineItemSnapshot struct {
	ProductID     string   `json:"productId"`
	ProductName   string   `json:"productName"`
	Quantity      int64    `json:"quantity"`
	Price         float64  `json:"price"`
	Total         float64  `json:"total"`
	BatchNumber   string   `json:"batchNumber,omitempty"`
	SerialNumbers []string `json:"serialNumbers,omitempty"`
}

// OrderSnapshot is the wire form of a sales order
type OrderSnapshot struct {
	ID       string             `json:"id,omitempty"`
	Customer string             `json:"customer"`
	Date     string             `json:"date"`
	Status   string             `json:"status"`
	Total    float64            `json:"total"`
	Items    []LineItemSnapshot `json:"items"`
}

// QuotationSnapshot is the wire form of a quotation
type QuotationSnapshot struct {
	ID         string             `json:"id,omitempty"`
	Customer   string             `json:"customer"`
	Date       string             `json:"date"`
	Status     string             `json:"status"`
	ValidUntil string             `json:"validUntil,omitempty"`
	Total      float64            `json:"total"`
	Items      []LineItemSnapshot `json:"items"`
}

// ProductSnapshot is the wire form of a catalog product
type ProductSnapshot struct {
	ID             string  `json:"id"`
	SKU            string  `json:"sku"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Stock          int64   `json:"stock"`
	Price          float64 `json:"price"`
	Location       string  `json:"location"`
	Status         string  `json:"status"`
	IsBatchTracked bool    `json:"isBatchTracked"`
}

// FromOrder builds a wire snapshot of an order, with the grand total derived
// from the items at snapshot time
func FromOrder(order *entities.Order) *OrderSnapshot {
	snapshot := &OrderSnapshot{
		ID:       order.ID,
		Customer: order.Customer,
		Date:     order.Date,
		Status:   order.Status.String(),
		Total:    order.GrandTotal().InexactFloat64(),
		Items:    make([]LineItemSnapshot, len(order.Items)),
	}
	for i, item := range order.Items {
		snapshot.Items[i] = fromLineItem(item)
	}
	return snapshot
}

// ToOrder converts a wire snapshot back into an order, assigning fresh row
// keys. Fails if the status is not one of the known order statuses.
func (s *OrderSnapshot) ToOrder() (*entities.Order, error) {
	status, err := entities.ParseOrderStatus(s.Status)
	if err != nil {
		return nil, err
	}

	order := &entities.Order{
		ID:       s.ID,
		Customer: s.Customer,
		Date:     s.Date,
		Status:   status,
		Items:    make([]*entities.LineItem, len(s.Items)),
	}
	for i := range s.Items {
		order.Items[i] = s.Items[i].toLineItem()
	}
	return order, nil
}

// FromQuotation builds a wire snapshot of a quotation
func FromQuotation(quotation *entities.Quotation) *QuotationSnapshot {
	snapshot := &QuotationSnapshot{
		ID:         quotation.ID,
		Customer:   quotation.Customer,
		Date:       quotation.Date,
		Status:     quotation.Status,
		ValidUntil: quotation.ValidUntil,
		Total:      quotation.GrandTotal().InexactFloat64(),
		Items:      make([]LineItemSnapshot, len(quotation.Items)),
	}
	for i, item := range quotation.Items {
		snapshot.Items[i] = fromLineItem(item)
	}
	return snapshot
}

// ToQuotation converts a wire snapshot back into a quotation
func (s *QuotationSnapshot) ToQuotation() *entities.Quotation {
	quotation := &entities.Quotation{
		ID:         s.ID,
		Customer:   s.Customer,
		Date:       s.Date,
		Status:     s.Status,
		ValidUntil: s.ValidUntil,
		Items:      make([]*entities.LineItem, len(s.Items)),
	}
	for i := range s.Items {
		quotation.Items[i] = s.Items[i].toLineItem()
	}
	return quotation
}

// FromProduct builds a wire snapshot of a catalog product
func FromProduct(product *entities.Product) ProductSnapshot {
	return ProductSnapshot{
		ID:             string(product.ID),
		SKU:            product.SKU,
		Name:           product.Name,
		Category:       product.Category,
		Stock:          product.Stock,
		Price:          product.Price.InexactFloat64(),
		Location:       product.Location,
		Status:         product.Status.String(),
		IsBatchTracked: product.IsBatchTracked,
	}
}

func fromLineItem(item *entities.LineItem) LineItemSnapshot {
	snapshot := LineItemSnapshot{
		ProductID:   string(item.ProductID),
		ProductName: item.ProductName,
		Quantity:    item.Quantity,
		Price:       item.UnitPrice.InexactFloat64(),
		Total:       item.LineTotal.InexactFloat64(),
		BatchNumber: item.BatchNumber,
	}
	if len(item.SerialNumbers) > 0 {
		snapshot.SerialNumbers = make([]string, len(item.SerialNumbers))
		copy(snapshot.SerialNumbers, item.SerialNumbers)
	}
	return snapshot
}

func (s *LineItemSnapshot) toLineItem() *entities.LineItem {
	item := &entities.LineItem{
		Key:         entities.NewRowKey(),
		ProductID:   entities.ProductID(s.ProductID),
		ProductName: s.ProductName,
		Quantity:    s.Quantity,
		UnitPrice:   decimal.NewFromFloat(s.Price),
		LineTotal:   decimal.NewFromFloat(s.Total),
		BatchNumber: s.BatchNumber,
	}
	if len(s.SerialNumbers) > 0 {
		item.SerialNumbers = make([]string, len(s.SerialNumbers))
		copy(item.SerialNumbers, s.SerialNumbers)
	}
	return item
}
