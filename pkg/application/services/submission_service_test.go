package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asheth/orderdesk/pkg/domain/entities"
)

// captureOrderRepository records the snapshot handed to SaveOrder
type captureOrderRepository struct {
	saved   *entities.Order
	saveErr error
}

func (r *captureOrderRepository) SaveOrder(ctx context.Context, order *entities.Order) (*entities.Order, error) {
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	r.saved = order
	stored := order.Clone()
	stored.ID = "SO-2024-0042"
	return stored, nil
}

func (r *captureOrderRepository) GetOrder(id string) (*entities.Order, error) {
	return nil, errors.New("not implemented")
}

func (r *captureOrderRepository) GetAllOrders() ([]*entities.Order, error) {
	return nil, errors.New("not implemented")
}

func validOrder() *entities.Order {
	order := entities.NewOrder("2024-03-10")
	order.Customer = "Acme Corp"
	item := order.AppendItem()
	item.ProductID = "PROD-1001"
	item.ProductName = "Industrial Component B-1"
	item.UnitPrice = decimal.NewFromFloat(250.00)
	if err := item.SetQuantity(5); err != nil {
		panic(err)
	}
	item.SerialNumbers = []string{"SN-1-100", "SN-1-101"} // incomplete on purpose
	return order
}

func TestSubmissionService_Validate_Rejections(t *testing.T) {
	gate := NewSubmissionService(&captureOrderRepository{})

	testCases := []struct {
		name    string
		mutate  func(*entities.Order)
		field   string
		message string
	}{
		{
			"zero items",
			func(o *entities.Order) { o.Items = nil },
			"items", "At least one item is required",
		},
		{
			"blank customer",
			func(o *entities.Order) { o.Customer = "" },
			"customer", "Customer Name is required",
		},
		{
			"one-character customer",
			func(o *entities.Order) { o.Customer = "A" },
			"customer", "Customer Name is required",
		},
		{
			"one-rune multibyte customer",
			func(o *entities.Order) { o.Customer = "é" },
			"customer", "Customer Name is required",
		},
		{
			"blank date",
			func(o *entities.Order) { o.Date = "" },
			"date", "Date is required",
		},
		{
			"unselected product",
			func(o *entities.Order) { o.Items[0].ProductID = "" },
			"items.0.productId", "Product is required",
		},
		{
			"zero quantity",
			func(o *entities.Order) { o.Items[0].Quantity = 0 },
			"items.0.quantity", "Qty must be >= 1",
		},
		{
			"negative price",
			func(o *entities.Order) { o.Items[0].UnitPrice = decimal.NewFromInt(-1) },
			"items.0.price", "Price must be >= 0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			order := validOrder()
			tc.mutate(order)

			result := gate.Validate(order)
			require.False(t, result.Valid())
			assert.Equal(t, tc.message, result.Message(tc.field))
		})
	}
}

func TestSubmissionService_Submit_RejectedWithoutPersistence(t *testing.T) {
	repo := &captureOrderRepository{}
	gate := NewSubmissionService(repo)

	order := validOrder()
	order.Customer = ""

	saved, result, err := gate.Submit(context.Background(), order)
	require.NoError(t, err)
	assert.Nil(t, saved)
	require.NotNil(t, result)
	assert.False(t, result.Valid())
	assert.Nil(t, repo.saved, "validation failure must not reach the repository")
}

func TestSubmissionService_Submit_ForwardsSnapshot(t *testing.T) {
	repo := &captureOrderRepository{}
	gate := NewSubmissionService(repo)

	order := validOrder()
	saved, result, err := gate.Submit(context.Background(), order)
	require.NoError(t, err)
	assert.Nil(t, result)
	require.NotNil(t, saved)
	assert.Equal(t, "SO-2024-0042", saved.ID)

	// The forwarded snapshot carries the items as-is, incomplete serials
	// included, and is isolated from later edits
	require.NotNil(t, repo.saved)
	assert.Equal(t, []string{"SN-1-100", "SN-1-101"}, repo.saved.Items[0].SerialNumbers)
	assert.True(t, repo.saved.GrandTotal().Equal(decimal.NewFromInt(1250)))

	require.NoError(t, order.Items[0].SetQuantity(1))
	assert.Equal(t, int64(5), repo.saved.Items[0].Quantity)
}

func TestSubmissionService_Submit_PersistenceFailure(t *testing.T) {
	repo := &captureOrderRepository{saveErr: errors.New("backend unavailable")}
	gate := NewSubmissionService(repo)

	order := validOrder()
	saved, result, err := gate.Submit(context.Background(), order)
	require.Error(t, err)
	assert.Nil(t, saved)
	assert.Nil(t, result)

	// The order is untouched so the user can retry without re-entering data
	assert.Equal(t, "Acme Corp", order.Customer)
	assert.Len(t, order.Items, 1)
}

func TestSubmissionService_SubmitEditor_ResetsOnSuccess(t *testing.T) {
	repo := &captureOrderRepository{}
	gate := NewSubmissionService(repo)
	editor := NewOrderEditor(newTestCatalog(t))

	editor.SetCustomer("Acme Corp")
	key := editor.AppendItem()
	require.NoError(t, editor.SelectProduct(key, "PROD-1001"))

	saved, result, err := gate.SubmitEditor(context.Background(), editor)
	require.NoError(t, err)
	assert.Nil(t, result)
	require.NotNil(t, saved)

	assert.Empty(t, editor.Order().Items, "editor resets for a fresh order")
	assert.Empty(t, editor.Order().Customer)
}

func TestSubmissionService_SubmitEditor_PreservesStateOnFailure(t *testing.T) {
	repo := &captureOrderRepository{saveErr: errors.New("backend unavailable")}
	gate := NewSubmissionService(repo)
	editor := NewOrderEditor(newTestCatalog(t))

	editor.SetCustomer("Acme Corp")
	key := editor.AppendItem()
	require.NoError(t, editor.SelectProduct(key, "PROD-1001"))

	_, _, err := gate.SubmitEditor(context.Background(), editor)
	require.Error(t, err)

	assert.Equal(t, "Acme Corp", editor.Order().Customer)
	assert.Len(t, editor.Order().Items, 1)
}
