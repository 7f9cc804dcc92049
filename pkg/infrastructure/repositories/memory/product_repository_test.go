package memory

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/asheth/orderdesk/pkg/domain/entities"
)

func TestProductRepository_SaveProduct(t *testing.T) {
	repo := NewProductRepository(10)

	product := &entities.Product{
		ID:             "PROD-1001",
		SKU:            "SKU-1001",
		Name:           "Industrial Component B-1",
		Category:       "Industrial",
		Stock:          40,
		Price:          decimal.NewFromFloat(250.00),
		Location:       "WH-1-R1",
		Status:         entities.Active,
		IsBatchTracked: true,
	}

	err := repo.SaveProduct(product)
	if err != nil {
		t.Fatalf("Failed to save product: %v", err)
	}

	retrieved, err := repo.GetProduct("PROD-1001")
	if err != nil {
		t.Fatalf("Failed to get product: %v", err)
	}

	if retrieved.SKU != product.SKU {
		t.Errorf("Expected sku %s, got %s", product.SKU, retrieved.SKU)
	}
	if !retrieved.Price.Equal(product.Price) {
		t.Errorf("Expected price %s, got %s", product.Price, retrieved.Price)
	}
	if !retrieved.IsBatchTracked {
		t.Error("Expected batch tracking flag to round trip")
	}
}

func TestProductRepository_SaveProduct_Duplicate(t *testing.T) {
	repo := NewProductRepository(10)

	first := &entities.Product{ID: "PROD-1001", SKU: "SKU-1001", Name: "First", Price: decimal.NewFromInt(10)}
	second := &entities.Product{ID: "PROD-1001", SKU: "SKU-1001", Name: "Second", Price: decimal.NewFromInt(20)}

	if err := repo.SaveProduct(first); err != nil {
		t.Fatalf("Failed to save first product: %v", err)
	}
	if err := repo.SaveProduct(second); err != nil {
		t.Fatalf("Failed to save second product: %v", err)
	}

	retrieved, err := repo.GetProduct("PROD-1001")
	if err != nil {
		t.Fatalf("Failed to get product: %v", err)
	}
	if retrieved.Name != "Second" {
		t.Errorf("Expected duplicate save to overwrite, got %s", retrieved.Name)
	}

	all, err := repo.GetAllProducts()
	if err != nil {
		t.Fatalf("Failed to get all products: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("Expected 1 product after overwrite, got %d", len(all))
	}
}

func TestProductRepository_GetProduct_NotFound(t *testing.T) {
	repo := NewProductRepository(10)

	_, err := repo.GetProduct("PROD-9999")
	if err == nil {
		t.Fatal("Expected error for missing product, got none")
	}
	if !strings.Contains(err.Error(), "product not found") {
		t.Errorf("Expected not-found error, got %v", err)
	}
}

func TestProductRepository_LoadProducts(t *testing.T) {
	repo := NewProductRepository(100)

	products := SeedProducts(50, 42)
	if err := repo.LoadProducts(products); err != nil {
		t.Fatalf("Failed to load products: %v", err)
	}

	all, err := repo.GetAllProducts()
	if err != nil {
		t.Fatalf("Failed to get all products: %v", err)
	}
	if len(all) != 50 {
		t.Fatalf("Expected 50 products, got %d", len(all))
	}
	if all[0].ID != "PROD-1000" {
		t.Errorf("Expected load order preserved, got %s first", all[0].ID)
	}
}

func TestSeedProducts_Deterministic(t *testing.T) {
	first := SeedProducts(10, 7)
	second := SeedProducts(10, 7)

	for i := range first {
		if !first[i].Price.Equal(second[i].Price) || first[i].Stock != second[i].Stock {
			t.Fatalf("Expected identical seeds for identical seed value, diverged at %d", i)
		}
	}
}
