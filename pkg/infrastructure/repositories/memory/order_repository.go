package memory

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/asheth/orderdesk/pkg/domain/entities"
	"github.com/asheth/orderdesk/pkg/domain/repositories"
)

// OrderRepository provides in-memory sales order storage. Newly stored
// orders are kept newest-first, the way the list screens expect them.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []*entities.Order
	rng    *rand.Rand
}

// NewOrderRepository creates a new in-memory order repository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Verify interface compliance
var _ repositories.OrderRepository = (*OrderRepository)(nil)

// SaveOrder stores the order, assigning an SO-<year>-<nnnn> identifier when
// it does not carry one, and returns the stored record
func (r *OrderRepository) SaveOrder(ctx context.Context, order *entities.Order) (*entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := order.Clone()
	if stored.ID == "" {
		stored.ID = fmt.Sprintf("SO-%d-%04d", time.Now().Year(), r.rng.Intn(10000))
	}
	r.orders = append([]*entities.Order{stored}, r.orders...)
	return stored.Clone(), nil
}

// GetOrder returns the order with the given id
func (r *OrderRepository) GetOrder(id string) (*entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, order := range r.orders {
		if order.ID == id {
			return order.Clone(), nil
		}
	}
	return nil, fmt.Errorf("order not found: %s", id)
}

// GetAllOrders returns all orders, newest first
func (r *OrderRepository) GetAllOrders() ([]*entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*entities.Order, len(r.orders))
	for i, order := range r.orders {
		orders[i] = order.Clone()
	}
	return orders, nil
}
