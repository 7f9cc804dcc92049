package csv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

const validCatalog = `id,sku,name,category,stock,price,location,status,is_batch_tracked
PROD-1001,SKU-1001,Industrial Component B-1,Industrial,40,250.00,WH-1-R1,Active,false
PROD-1002,SKU-1002,Robotic Arm Servo,Electronics,12,4500.00,WH-1-R2,Active,true
`

func writeCatalog(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.csv")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("Failed to write catalog file: %v", err)
	}
	return path
}

func TestLoader_LoadProducts(t *testing.T) {
	loader := NewLoader()

	products, err := loader.LoadProducts(writeCatalog(t, validCatalog))
	if err != nil {
		t.Fatalf("Failed to load products: %v", err)
	}

	if len(products) != 2 {
		t.Fatalf("Expected 2 products, got %d", len(products))
	}
	if products[0].ID != "PROD-1001" {
		t.Errorf("Expected PROD-1001 first, got %s", products[0].ID)
	}
	if !products[1].Price.Equal(decimal.NewFromInt(4500)) {
		t.Errorf("Expected price 4500, got %s", products[1].Price)
	}
	if !products[1].IsBatchTracked {
		t.Error("Expected second product batch tracked")
	}
}

func TestLoader_LoadProducts_MissingFile(t *testing.T) {
	loader := NewLoader()

	_, err := loader.LoadProducts(filepath.Join(t.TempDir(), "absent.csv"))
	if err == nil {
		t.Fatal("Expected error for missing file, got none")
	}
}

func TestLoader_ParseProducts_HeaderMismatch(t *testing.T) {
	loader := NewLoader()

	contents := "sku,name\nSKU-1,Widget\n"
	_, err := loader.ParseProducts(strings.NewReader(contents))
	if err == nil {
		t.Fatal("Expected header mismatch error, got none")
	}
	if !strings.Contains(err.Error(), "header mismatch") {
		t.Errorf("Expected header mismatch error, got %v", err)
	}
}

func TestLoader_ParseProducts_BadRows(t *testing.T) {
	loader := NewLoader()

	testCases := []struct {
		name string
		row  string
	}{
		{"bad stock", "PROD-1,SKU-1,Widget,Industrial,many,10.00,WH-1,Active,false"},
		{"bad price", "PROD-1,SKU-1,Widget,Industrial,5,cheap,WH-1,Active,false"},
		{"bad status", "PROD-1,SKU-1,Widget,Industrial,5,10.00,WH-1,Retired,false"},
		{"bad batch flag", "PROD-1,SKU-1,Widget,Industrial,5,10.00,WH-1,Active,maybe"},
		{"negative price", "PROD-1,SKU-1,Widget,Industrial,5,-10.00,WH-1,Active,false"},
	}

	header := "id,sku,name,category,stock,price,location,status,is_batch_tracked\n"
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loader.ParseProducts(strings.NewReader(header + tc.row + "\n"))
			if err == nil {
				t.Fatalf("Expected error for %s, got none", tc.name)
			}
			if !strings.Contains(err.Error(), "row 2") && !strings.Contains(err.Error(), "cannot be negative") {
				t.Errorf("Expected row-level error, got %v", err)
			}
		})
	}
}

func TestLoader_ParseProducts_HeaderOnly(t *testing.T) {
	loader := NewLoader()

	_, err := loader.ParseProducts(strings.NewReader("id,sku,name,category,stock,price,location,status,is_batch_tracked\n"))
	if err == nil {
		t.Fatal("Expected error for header-only file, got none")
	}
}
