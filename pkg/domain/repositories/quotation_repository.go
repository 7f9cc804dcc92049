package repositories

import (
	"context"

	"github.com/asheth/orderdesk/pkg/domain/entities"
)

// QuotationRepository persists quotations
type QuotationRepository interface {
	SaveQuotation(ctx context.Context, quotation *entities.Quotation) (*entities.Quotation, error)
	GetQuotation(id string) (*entities.Quotation, error)
	GetAllQuotations() ([]*entities.Quotation, error)
}
