package memory

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/asheth/orderdesk/pkg/domain/entities"
	"github.com/asheth/orderdesk/pkg/domain/repositories"
)

// QuotationRepository provides in-memory quotation storage
type QuotationRepository struct {
	mu         sync.RWMutex
	quotations []*entities.Quotation
	rng        *rand.Rand
}

// NewQuotationRepository creates a new in-memory quotation repository
func NewQuotationRepository() *QuotationRepository {
	return &QuotationRepository{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Verify interface compliance
var _ repositories.QuotationRepository = (*QuotationRepository)(nil)

// SaveQuotation stores the quotation, assigning a QT-<year>-<nnnn>
// identifier when it does not carry one
func (r *QuotationRepository) SaveQuotation(ctx context.Context, quotation *entities.Quotation) (*entities.Quotation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneQuotation(quotation)
	if stored.ID == "" {
		stored.ID = fmt.Sprintf("QT-%d-%04d", time.Now().Year(), r.rng.Intn(10000))
	}
	r.quotations = append([]*entities.Quotation{stored}, r.quotations...)
	return cloneQuotation(stored), nil
}

// GetQuotation returns the quotation with the given id
func (r *QuotationRepository) GetQuotation(id string) (*entities.Quotation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, quotation := range r.quotations {
		if quotation.ID == id {
			return cloneQuotation(quotation), nil
		}
	}
	return nil, fmt.Errorf("quotation not found: %s", id)
}

// GetAllQuotations returns all quotations, newest first
func (r *QuotationRepository) GetAllQuotations() ([]*entities.Quotation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	quotations := make([]*entities.Quotation, len(r.quotations))
	for i, quotation := range r.quotations {
		quotations[i] = cloneQuotation(quotation)
	}
	return quotations, nil
}

func cloneQuotation(quotation *entities.Quotation) *entities.Quotation {
	dup := *quotation
	dup.Items = make([]*entities.LineItem, len(quotation.Items))
	for i, item := range quotation.Items {
		dup.Items[i] = item.Clone()
	}
	return &dup
}
