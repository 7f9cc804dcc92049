package services

import (
	"context"
	"fmt"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"

	"github.com/asheth/orderdesk/pkg/application/dto"
	"github.com/asheth/orderdesk/pkg/domain/entities"
	"github.com/asheth/orderdesk/pkg/domain/repositories"
)

// SubmissionService is the admission gate between in-progress editing and
// persisted orders. It validates the order structurally, forwards an
// immutable snapshot to the order repository, and reports validation
// failures as values rather than errors.
type SubmissionService struct {
	orders repositories.OrderRepository
}

// NewSubmissionService creates a submission service backed by the given
// order repository
func NewSubmissionService(orders repositories.OrderRepository) *SubmissionService {
	return &SubmissionService{orders: orders}
}

// Validate checks the header fields and the item schema. Serial counts are
// deliberately not checked against quantities; incomplete reconciliation
// does not block submission.
func (s *SubmissionService) Validate(order *entities.Order) *dto.ValidationResult {
	result := &dto.ValidationResult{}

	if utf8.RuneCountInString(order.Customer) < 2 {
		result.Add("customer", "Customer Name is required")
	}
	if order.Date == "" {
		result.Add("date", "Date is required")
	}
	if order.Status != entities.Draft && order.Status != entities.Confirmed && order.Status != entities.Shipped {
		result.Add("status", "Status must be Draft, Confirmed or Shipped")
	}
	if len(order.Items) == 0 {
		result.Add("items", "At least one item is required")
	}

	for i, item := range order.Items {
		if item.ProductID == "" {
			result.Add(fmt.Sprintf("items.%d.productId", i), "Product is required")
		}
		if item.Quantity < 1 {
			result.Add(fmt.Sprintf("items.%d.quantity", i), "Qty must be >= 1")
		}
		if item.UnitPrice.IsNegative() {
			result.Add(fmt.Sprintf("items.%d.price", i), "Price must be >= 0")
		}
	}

	return result
}

// Submit validates the order and, if admissible, hands a snapshot to the
// order repository, which assigns the identifier. A failed validation
// returns the field errors with no repository call; a persistence failure
// returns an error and leaves the caller's state intact for retry.
func (s *SubmissionService) Submit(ctx context.Context, order *entities.Order) (*entities.Order, *dto.ValidationResult, error) {
	result := s.Validate(order)
	if !result.Valid() {
		log.WithFields(log.Fields{
			"customer": order.Customer,
			"errors":   len(result.Errors),
		}).Warn("Order submission rejected by validation")
		return nil, result, nil
	}

	saved, err := s.orders.SaveOrder(ctx, order.Clone())
	if err != nil {
		log.WithFields(log.Fields{
			"customer": order.Customer,
			"items":    len(order.Items),
		}).WithError(err).Error("Order submission failed to persist")
		return nil, nil, fmt.Errorf("submit order: %w", err)
	}

	log.WithFields(log.Fields{
		"order_id": saved.ID,
		"customer": saved.Customer,
		"items":    len(saved.Items),
		"total":    saved.GrandTotal().String(),
	}).Info("Order submitted")
	return saved, nil, nil
}

// SubmitEditor submits the editor's current order and resets the editor for
// a fresh order on success. On validation or persistence failure the editor
// state is preserved so the user can correct and retry.
func (s *SubmissionService) SubmitEditor(ctx context.Context, editor *OrderEditor) (*entities.Order, *dto.ValidationResult, error) {
	saved, result, err := s.Submit(ctx, editor.Order())
	if saved != nil {
		editor.Reset()
	}
	return saved, result, err
}
