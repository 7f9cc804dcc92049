package remote

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/asheth/orderdesk/pkg/application/dto"
	"github.com/asheth/orderdesk/pkg/domain/entities"
	"github.com/asheth/orderdesk/pkg/domain/repositories"
	"github.com/asheth/orderdesk/pkg/infrastructure/metrics"
)

const serviceName = "orderdesk"

// OrderRepository persists orders against a backing ERP order service over
// HTTP. Calls run through a circuit breaker so a struggling backend fails
// fast instead of stalling every submission.
type OrderRepository struct {
	client  *resty.Client
	breaker *gobreaker.CircuitBreaker
	baseURL string
}

// NewOrderRepository creates a remote order repository for the given base URL
func NewOrderRepository(baseURL string) *OrderRepository {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "Orders",
		MaxRequests: 3,
		Interval:    15 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			state := float64(0)
			switch to {
			case gobreaker.StateOpen:
				state = 1
			case gobreaker.StateHalfOpen:
				state = 2
			}
			metrics.CircuitBreakerState.WithLabelValues(serviceName, name).Set(state)

			log.WithFields(log.Fields{
				"circuit": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Info("Circuit breaker state changed")
		},
	})
	metrics.CircuitBreakerState.WithLabelValues(serviceName, "Orders").Set(0)

	return &OrderRepository{
		client: resty.New().
			SetTimeout(5 * time.Second).
			SetRetryCount(0), // Failures feed the breaker, no automatic retries
		breaker: breaker,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Verify interface compliance
var _ repositories.OrderRepository = (*OrderRepository)(nil)

// SaveOrder posts the order snapshot to the backing service and returns the
// stored record with its assigned identifier
func (r *OrderRepository) SaveOrder(ctx context.Context, order *entities.Order) (*entities.Order, error) {
	snapshot := dto.FromOrder(order)

	result, err := r.breaker.Execute(func() (interface{}, error) {
		var stored dto.OrderSnapshot
		resp, err := r.client.R().
			SetContext(ctx).
			SetBody(snapshot).
			SetResult(&stored).
			Post(r.baseURL + "/sales")
		if err != nil {
			return nil, err
		}
		if resp.StatusCode() != http.StatusCreated && resp.StatusCode() != http.StatusOK {
			return nil, fmt.Errorf("order service returned %d: %s", resp.StatusCode(), resp.String())
		}
		return &stored, nil
	})
	if err != nil {
		metrics.CircuitBreakerFailures.WithLabelValues(serviceName, "Orders").Inc()
		return nil, fmt.Errorf("save order: %w", err)
	}

	return result.(*dto.OrderSnapshot).ToOrder()
}

// GetOrder fetches a single order from the backing service
func (r *OrderRepository) GetOrder(id string) (*entities.Order, error) {
	var snapshot dto.OrderSnapshot
	resp, err := r.client.R().
		SetResult(&snapshot).
		Get(r.baseURL + "/sales/" + id)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("order not found: %s", id)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("order service returned %d: %s", resp.StatusCode(), resp.String())
	}
	return snapshot.ToOrder()
}

// GetAllOrders fetches the order list from the backing service
func (r *OrderRepository) GetAllOrders() ([]*entities.Order, error) {
	var snapshots []dto.OrderSnapshot
	resp, err := r.client.R().
		SetResult(&snapshots).
		Get(r.baseURL + "/sales")
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("order service returned %d: %s", resp.StatusCode(), resp.String())
	}

	orders := make([]*entities.Order, 0, len(snapshots))
	for i := range snapshots {
		order, err := snapshots[i].ToOrder()
		if err != nil {
			return nil, fmt.Errorf("get orders: %w", err)
		}
		orders = append(orders, order)
	}
	return orders, nil
}
