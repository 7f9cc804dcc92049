package repositories

import (
	"context"

	"github.com/asheth/orderdesk/pkg/domain/entities"
)

// OrderRepository persists submitted sales orders. SaveOrder assigns the
// order its identifier and returns the stored record; it may cross a network
// boundary, so it takes a context.
type OrderRepository interface {
	SaveOrder(ctx context.Context, order *entities.Order) (*entities.Order, error)
	GetOrder(id string) (*entities.Order, error)
	GetAllOrders() ([]*entities.Order, error)
}
