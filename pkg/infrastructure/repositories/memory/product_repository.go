package memory

import (
	"fmt"
	"sync"

	"github.com/asheth/orderdesk/pkg/domain/entities"
	"github.com/asheth/orderdesk/pkg/domain/repositories"
)

// ProductRepository provides in-memory product catalog storage
type ProductRepository struct {
	mu          sync.RWMutex
	products    []entities.Product
	productsMap map[entities.ProductID]int
}

// NewProductRepository creates a new in-memory product repository
func NewProductRepository(expectedProducts int) *ProductRepository {
	return &ProductRepository{
		products:    make([]entities.Product, 0, expectedProducts),
		productsMap: make(map[entities.ProductID]int, expectedProducts),
	}
}

// Verify interface compliance
var _ repositories.ProductRepository = (*ProductRepository)(nil)

// LoadProducts loads products into the repository
func (r *ProductRepository) LoadProducts(products []*entities.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, product := range products {
		r.add(*product)
	}
	return nil
}

// SaveProduct saves a product to the repository
func (r *ProductRepository) SaveProduct(product *entities.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.add(*product)
	return nil
}

// GetProduct returns the catalog product for an id
func (r *ProductRepository) GetProduct(id entities.ProductID) (*entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	index, exists := r.productsMap[id]
	if !exists {
		return nil, fmt.Errorf("product not found: %s", id)
	}
	product := r.products[index]
	return &product, nil
}

// GetAllProducts returns all products in load order
func (r *ProductRepository) GetAllProducts() ([]*entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*entities.Product, len(r.products))
	for i := range r.products {
		product := r.products[i]
		products[i] = &product
	}
	return products, nil
}

func (r *ProductRepository) add(product entities.Product) {
	if index, exists := r.productsMap[product.ID]; exists {
		r.products[index] = product
		return
	}
	r.productsMap[product.ID] = len(r.products)
	r.products = append(r.products, product)
}
