package memory

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/asheth/orderdesk/pkg/domain/entities"
)

var seedCategories = []string{"Electronics", "Office", "Industrial", "Furniture"}

// SeedProducts generates a demo product catalog: sequential PROD-1000+i ids
// with randomized stock, price, and tracking flags drawn from the seed.
func SeedProducts(count int, seed int64) []*entities.Product {
	rng := rand.New(rand.NewSource(seed))
	products := make([]*entities.Product, 0, count)

	for i := 0; i < count; i++ {
		status := entities.Active
		if rng.Float64() <= 0.2 {
			status = entities.Discontinued
		}
		price := decimal.NewFromFloat(rng.Float64()*500 + 10).Round(2)

		products = append(products, &entities.Product{
			ID:             entities.ProductID(fmt.Sprintf("PROD-%d", 1000+i)),
			SKU:            fmt.Sprintf("SKU-%d", 1000+i),
			Name:           fmt.Sprintf("Industrial Component %c-%d", 'A'+rune(i%26), i),
			Category:       seedCategories[i%4],
			Stock:          int64(rng.Intn(1000)),
			Price:          price,
			Location:       fmt.Sprintf("WH-%d-R%d", i/100+1, i%100),
			Status:         status,
			IsBatchTracked: rng.Float64() > 0.6,
		})
	}
	return products
}

// SeedOrders stores a demo order in the repository
func SeedOrders(ctx context.Context, repo *OrderRepository) error {
	order := &entities.Order{
		ID:       "SO-2024-001",
		Customer: "Acme Corp",
		Date:     "2024-03-10",
		Status:   entities.Confirmed,
		Items: []*entities.LineItem{
			{
				Key:           entities.NewRowKey(),
				ProductID:     "PROD-1001",
				ProductName:   "Industrial Component B-1",
				Quantity:      5,
				UnitPrice:     decimal.NewFromFloat(250.00),
				LineTotal:     decimal.NewFromFloat(1250.00),
				SerialNumbers: []string{"SN-1001-A", "SN-1001-B", "SN-1001-C", "SN-1001-D", "SN-1001-E"},
			},
		},
	}
	if _, err := repo.SaveOrder(ctx, order); err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}
	return nil
}

// SeedQuotations stores a demo quotation in the repository
func SeedQuotations(ctx context.Context, repo *QuotationRepository) error {
	quotation := &entities.Quotation{
		ID:         "QT-2024-882",
		Customer:   "Tesla Gigafactory",
		Date:       "2024-03-15",
		Status:     "Sent",
		ValidUntil: "2024-04-15",
		Items: []*entities.LineItem{
			{
				Key:         entities.NewRowKey(),
				ProductID:   "PROD-1022",
				ProductName: "Robotic Arm Servo",
				Quantity:    10,
				UnitPrice:   decimal.NewFromFloat(4500.00),
				LineTotal:   decimal.NewFromFloat(45000.00),
			},
		},
	}
	if _, err := repo.SaveQuotation(ctx, quotation); err != nil {
		return fmt.Errorf("seed quotations: %w", err)
	}
	return nil
}
