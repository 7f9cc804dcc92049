package repositories

import "github.com/asheth/orderdesk/pkg/domain/entities"

// ProductRepository provides access to the product catalog
type ProductRepository interface {
	GetProduct(id entities.ProductID) (*entities.Product, error)
	GetAllProducts() ([]*entities.Product, error)
	SaveProduct(product *entities.Product) error
	LoadProducts(products []*entities.Product) error
}
