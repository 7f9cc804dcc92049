package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestProduct_Validation(t *testing.T) {
	price := decimal.NewFromFloat(250.00)
	validProduct, err := NewProduct("PROD-1001", "SKU-1001", "Industrial Component B-1", "Industrial", 40, price, "WH-1-R1", Active, false)
	if err != nil {
		t.Fatalf("Expected valid product creation to succeed: %v", err)
	}
	if validProduct.ID != "PROD-1001" {
		t.Errorf("Expected product id PROD-1001, got %s", validProduct.ID)
	}
	if !validProduct.Price.Equal(price) {
		t.Errorf("Expected price %s, got %s", price, validProduct.Price)
	}

	testCases := []struct {
		name        string
		id          ProductID
		sku         string
		prodName    string
		stock       int64
		price       decimal.Decimal
		expectError string
	}{
		{"empty id", "", "SKU-1", "Widget", 0, decimal.Zero, "product id cannot be empty"},
		{"empty sku", "PROD-1", "", "Widget", 0, decimal.Zero, "sku cannot be empty"},
		{"empty name", "PROD-1", "SKU-1", "", 0, decimal.Zero, "name cannot be empty"},
		{"negative stock", "PROD-1", "SKU-1", "Widget", -3, decimal.Zero, "stock cannot be negative, got -3"},
		{"negative price", "PROD-1", "SKU-1", "Widget", 0, decimal.NewFromFloat(-0.01), "price cannot be negative, got -0.01"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewProduct(tc.id, tc.sku, tc.prodName, "Industrial", tc.stock, tc.price, "WH-1", Active, false)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}

func TestParseProductStatus(t *testing.T) {
	status, err := ParseProductStatus("Discontinued")
	if err != nil {
		t.Fatalf("Failed to parse status: %v", err)
	}
	if status != Discontinued {
		t.Errorf("Expected Discontinued, got %v", status)
	}

	if _, err := ParseProductStatus("Retired"); err == nil {
		t.Error("Expected error for unknown status, got none")
	}
}
