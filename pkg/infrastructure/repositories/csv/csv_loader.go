package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/asheth/orderdesk/pkg/domain/entities"
)

// Loader handles bulk-importing the product catalog from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

var productHeader = []string{
	"id", "sku", "name", "category", "stock", "price", "location", "status", "is_batch_tracked",
}

// LoadProducts loads catalog products from a CSV file
func (l *Loader) LoadProducts(filename string) ([]*entities.Product, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open products file %s: %w", filename, err)
	}
	defer file.Close()

	return l.ParseProducts(file)
}

// ParseProducts parses catalog products from CSV data
func (l *Loader) ParseProducts(r io.Reader) ([]*entities.Product, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read products CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("products CSV must have header and at least one data row")
	}

	header := records[0]
	if !validateHeader(header, productHeader) {
		return nil, fmt.Errorf("products CSV header mismatch. Expected: %v, Got: %v", productHeader, header)
	}

	var products []*entities.Product
	for i, record := range records[1:] {
		if len(record) != len(productHeader) {
			return nil, fmt.Errorf("products CSV row %d: expected %d columns, got %d", i+2, len(productHeader), len(record))
		}

		product, err := parseProduct(record)
		if err != nil {
			return nil, fmt.Errorf("products CSV row %d: %w", i+2, err)
		}

		products = append(products, product)
	}

	return products, nil
}

func parseProduct(record []string) (*entities.Product, error) {
	stock, err := strconv.ParseInt(strings.TrimSpace(record[4]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid stock %q: %w", record[4], err)
	}

	price, err := decimal.NewFromString(strings.TrimSpace(record[5]))
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", record[5], err)
	}

	status, err := entities.ParseProductStatus(strings.TrimSpace(record[7]))
	if err != nil {
		return nil, err
	}

	batchTracked, err := strconv.ParseBool(strings.TrimSpace(record[8]))
	if err != nil {
		return nil, fmt.Errorf("invalid is_batch_tracked %q: %w", record[8], err)
	}

	return entities.NewProduct(
		entities.ProductID(strings.TrimSpace(record[0])),
		strings.TrimSpace(record[1]),
		strings.TrimSpace(record[2]),
		strings.TrimSpace(record[3]),
		stock,
		price,
		strings.TrimSpace(record[6]),
		status,
		batchTracked,
	)
}

func validateHeader(header, expected []string) bool {
	if len(header) != len(expected) {
		return false
	}
	for i, column := range expected {
		if strings.TrimSpace(strings.ToLower(header[i])) != column {
			return false
		}
	}
	return true
}
