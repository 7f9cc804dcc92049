package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/asheth/orderdesk/pkg/application/services"
	"github.com/asheth/orderdesk/pkg/domain/entities"
	"github.com/asheth/orderdesk/pkg/infrastructure/repositories/memory"
)

func main() {
	ctx := context.Background()

	// Build a small catalog
	catalog := memory.NewProductRepository(3)
	if err := catalog.LoadProducts([]*entities.Product{
		{ID: "PROD-1001", SKU: "SKU-1001", Name: "Industrial Component B-1", Category: "Industrial", Stock: 40, Price: decimal.NewFromFloat(250.00)},
		{ID: "PROD-1002", SKU: "SKU-1002", Name: "Robotic Arm Servo", Category: "Electronics", Stock: 12, Price: decimal.NewFromFloat(4500.00)},
		{ID: "PROD-1003", SKU: "SKU-1003", Name: "Hydraulic Seal Kit", Category: "Industrial", Stock: 90, Price: decimal.NewFromFloat(19.99), IsBatchTracked: true},
	}); err != nil {
		panic(err)
	}

	orders := memory.NewOrderRepository()
	gate := services.NewSubmissionService(orders)

	// Edit a fresh order
	editor := services.NewOrderEditor(catalog)
	editor.SetCustomer("Acme Corp")

	first := editor.AppendItem()
	must(editor.SelectProduct(first, "PROD-1001"))
	must(editor.SetQuantity(first, 3))

	second := editor.AppendItem()
	must(editor.SelectProduct(second, "PROD-1003"))
	must(editor.SetBatchNumber(second, "BATCH-2024-11"))

	fmt.Printf("Editing order for %s, grand total %s\n", editor.Order().Customer, editor.GrandTotal())

	// Reconcile serials for the first row
	session, err := editor.OpenSerialEditor(first)
	must(err)
	session.AutoGenerate()
	fmt.Printf("Generated serials: %v\n", session.Values())
	must(session.Save())

	// Submit through the gate
	saved, result, err := gate.SubmitEditor(ctx, editor)
	must(err)
	if result != nil {
		fmt.Printf("Rejected: %v\n", result.Errors)
		return
	}

	fmt.Printf("Order %s saved: %d items, total %s\n", saved.ID, len(saved.Items), saved.GrandTotal())
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
