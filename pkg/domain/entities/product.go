package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProductID represents a unique product identifier
type ProductID string

// ProductStatus represents the lifecycle status of a catalog product
type ProductStatus int

const (
	Active ProductStatus = iota
	Discontinued
)

// String method for ProductStatus enum
func (s ProductStatus) String() string {
	switch s {
	case Active:
		return "Active"
	case Discontinued:
		return "Discontinued"
	default:
		return "Unknown"
	}
}

// ParseProductStatus parses a product status from its string form
func ParseProductStatus(s string) (ProductStatus, error) {
	switch s {
	case "Active":
		return Active, nil
	case "Discontinued":
		return Discontinued, nil
	default:
		return Active, fmt.Errorf("unknown product status: %s", s)
	}
}

// Product represents a catalog product with its tracking properties.
// The catalog is a read-only snapshot from the editor's point of view:
// prices copied into line items are not re-derived when the catalog changes.
type Product struct {
	ID             ProductID
	SKU            string
	Name           string
	Category       string
	Stock          int64
	Price          decimal.Decimal
	Location       string
	Status         ProductStatus
	IsBatchTracked bool
}

// NewProduct creates a validated Product
func NewProduct(
	id ProductID,
	sku, name, category string,
	stock int64,
	price decimal.Decimal,
	location string,
	status ProductStatus,
	isBatchTracked bool,
) (*Product, error) {
	if string(id) == "" {
		return nil, fmt.Errorf("product id cannot be empty")
	}
	if sku == "" {
		return nil, fmt.Errorf("sku cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}
	if stock < 0 {
		return nil, fmt.Errorf("stock cannot be negative, got %d", stock)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("price cannot be negative, got %s", price)
	}

	return &Product{
		ID:             id,
		SKU:            sku,
		Name:           name,
		Category:       category,
		Stock:          stock,
		Price:          price,
		Location:       location,
		Status:         status,
		IsBatchTracked: isBatchTracked,
	}, nil
}
