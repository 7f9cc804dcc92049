package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/asheth/orderdesk/pkg/domain/entities"
	"github.com/asheth/orderdesk/pkg/domain/repositories"
	domainservices "github.com/asheth/orderdesk/pkg/domain/services"
)

var (
	// ErrRowNotFound is returned when an edit targets a row key that is no
	// longer part of the order
	ErrRowNotFound = errors.New("row not found")

	// ErrProductNotFound is returned when a selected product id is missing
	// from the catalog. The row keeps the id as given; denormalized name and
	// price stay stale rather than being cleared.
	ErrProductNotFound = errors.New("product not found in catalog")
)

// OrderEditor drives a single-session sales order edit: it owns the
// in-progress order, resolves product selections against a read-only catalog
// snapshot, and addresses every row edit by opaque row key.
type OrderEditor struct {
	catalog repositories.ProductRepository
	serials *domainservices.SerialGenerator
	order   *entities.Order
}

// NewOrderEditor creates an editor over the given catalog with a fresh draft
// order dated today
func NewOrderEditor(catalog repositories.ProductRepository) *OrderEditor {
	return &OrderEditor{
		catalog: catalog,
		serials: domainservices.NewSerialGenerator(time.Now().UnixNano()),
		order:   entities.NewOrder(today()),
	}
}

// Order returns the order being edited
func (e *OrderEditor) Order() *entities.Order {
	return e.order
}

// SetCustomer sets the customer header field
func (e *OrderEditor) SetCustomer(customer string) {
	e.order.Customer = customer
}

// SetDate sets the order date header field
func (e *OrderEditor) SetDate(date string) {
	e.order.Date = date
}

// SetStatus sets the order status header field
func (e *OrderEditor) SetStatus(status entities.OrderStatus) {
	e.order.Status = status
}

// AppendItem adds an empty row at the end of the order and returns its key
func (e *OrderEditor) AppendItem() entities.RowKey {
	return e.order.AppendItem().Key
}

// RemoveItem drops the row with the given key; a no-op if the key is unknown
func (e *OrderEditor) RemoveItem(key entities.RowKey) {
	e.order.RemoveItem(key)
}

// SelectProduct resolves the product in the catalog and applies its name and
// price to the row, resetting any batch number and serials entered for the
// previous selection. On a catalog miss the row records the product id as
// given and is otherwise left unchanged.
func (e *OrderEditor) SelectProduct(key entities.RowKey, id entities.ProductID) error {
	item := e.order.Item(key)
	if item == nil {
		return fmt.Errorf("select product: %w", ErrRowNotFound)
	}

	product, err := e.catalog.GetProduct(id)
	if err != nil {
		item.ProductID = id
		return fmt.Errorf("select product %s: %w", id, ErrProductNotFound)
	}

	item.ApplyProduct(product)
	return nil
}

// SetQuantity updates a row's quantity, recomputing its line total
func (e *OrderEditor) SetQuantity(key entities.RowKey, quantity int64) error {
	item := e.order.Item(key)
	if item == nil {
		return fmt.Errorf("set quantity: %w", ErrRowNotFound)
	}
	if err := item.SetQuantity(quantity); err != nil {
		return fmt.Errorf("set quantity: %w", err)
	}
	return nil
}

// SetBatchNumber records the batch/lot identifier on a row. Only meaningful
// for batch-tracked products; stored as-is either way.
func (e *OrderEditor) SetBatchNumber(key entities.RowKey, batchNumber string) error {
	item := e.order.Item(key)
	if item == nil {
		return fmt.Errorf("set batch number: %w", ErrRowNotFound)
	}
	item.BatchNumber = batchNumber
	return nil
}

// OpenSerialEditor starts a serial reconciliation session for a row
func (e *OrderEditor) OpenSerialEditor(key entities.RowKey) (*SerialSession, error) {
	item := e.order.Item(key)
	if item == nil {
		return nil, fmt.Errorf("open serial editor: %w", ErrRowNotFound)
	}
	return NewSerialSession(item, e.serials), nil
}

// GrandTotal returns the derived sum of all line totals
func (e *OrderEditor) GrandTotal() decimal.Decimal {
	return e.order.GrandTotal()
}

// Reset discards the current order and starts a fresh draft dated today
func (e *OrderEditor) Reset() {
	e.order = entities.NewOrder(today())
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}
