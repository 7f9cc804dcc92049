package rest

import (
	"fmt"
	"math/rand"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/asheth/orderdesk/pkg/application/dto"
	"github.com/asheth/orderdesk/pkg/domain/entities"
	"github.com/asheth/orderdesk/pkg/infrastructure/metrics"
)

func (s *Server) listProducts(c *gin.Context) {
	products, err := s.catalog.GetAllProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	snapshots := make([]dto.ProductSnapshot, len(products))
	for i, product := range products {
		snapshots[i] = dto.FromProduct(product)
	}
	c.JSON(http.StatusOK, snapshots)
}

func (s *Server) getProduct(c *gin.Context) {
	product, err := s.catalog.GetProduct(entities.ProductID(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, dto.FromProduct(product))
}

func (s *Server) createProduct(c *gin.Context) {
	var snapshot dto.ProductSnapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	product, err := s.productFromSnapshot(snapshot)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := s.catalog.SaveProduct(product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.FromProduct(product))
}

func (s *Server) bulkImportProducts(c *gin.Context) {
	var snapshots []dto.ProductSnapshot
	if err := c.ShouldBindJSON(&snapshots); err != nil {
		metrics.CatalogImportsTotal.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	imported := make([]*entities.Product, 0, len(snapshots))
	for i, snapshot := range snapshots {
		// Imported rows may omit the bookkeeping fields
		if snapshot.Category == "" {
			snapshot.Category = "Industrial"
		}
		if snapshot.Status == "" {
			snapshot.Status = "Active"
		}
		product, err := s.productFromSnapshot(snapshot)
		if err != nil {
			metrics.CatalogImportsTotal.WithLabelValues("rejected").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("row %d: %s", i+1, err)})
			return
		}
		imported = append(imported, product)
	}

	if err := s.catalog.LoadProducts(imported); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	metrics.CatalogImportsTotal.WithLabelValues("accepted").Inc()
	log.WithField("imported", len(imported)).Info("Catalog bulk import")
	c.JSON(http.StatusOK, gin.H{"imported": len(imported)})
}

func (s *Server) listOrders(c *gin.Context) {
	orders, err := s.orders.GetAllOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	snapshots := make([]*dto.OrderSnapshot, len(orders))
	for i, order := range orders {
		snapshots[i] = dto.FromOrder(order)
	}
	c.JSON(http.StatusOK, snapshots)
}

func (s *Server) getOrder(c *gin.Context) {
	order, err := s.orders.GetOrder(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, dto.FromOrder(order))
}

func (s *Server) createOrder(c *gin.Context) {
	var snapshot dto.OrderSnapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		metrics.OrdersTotal.WithLabelValues("validation_failed").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	order, err := snapshot.ToOrder()
	if err != nil {
		metrics.OrdersTotal.WithLabelValues("validation_failed").Inc()
		result := &dto.ValidationResult{}
		result.Add("status", "Status must be Draft, Confirmed or Shipped")
		c.JSON(http.StatusBadRequest, result)
		return
	}

	saved, result, err := s.gate.Submit(c.Request.Context(), order)
	if err != nil {
		metrics.OrdersTotal.WithLabelValues("persistence_failed").Inc()
		c.JSON(http.StatusBadGateway, gin.H{"message": "Order could not be saved"})
		return
	}
	if result != nil {
		metrics.OrdersTotal.WithLabelValues("validation_failed").Inc()
		c.JSON(http.StatusBadRequest, result)
		return
	}

	metrics.OrdersTotal.WithLabelValues("accepted").Inc()
	c.JSON(http.StatusCreated, dto.FromOrder(saved))
}

func (s *Server) listQuotations(c *gin.Context) {
	quotations, err := s.quotations.GetAllQuotations()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	snapshots := make([]*dto.QuotationSnapshot, len(quotations))
	for i, quotation := range quotations {
		snapshots[i] = dto.FromQuotation(quotation)
	}
	c.JSON(http.StatusOK, snapshots)
}

func (s *Server) getQuotation(c *gin.Context) {
	quotation, err := s.quotations.GetQuotation(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Quotation not found"})
		return
	}
	c.JSON(http.StatusOK, dto.FromQuotation(quotation))
}

func (s *Server) createQuotation(c *gin.Context) {
	var snapshot dto.QuotationSnapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		metrics.QuotationsTotal.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	saved, err := s.quotations.SaveQuotation(c.Request.Context(), snapshot.ToQuotation())
	if err != nil {
		metrics.QuotationsTotal.WithLabelValues("failed").Inc()
		c.JSON(http.StatusBadGateway, gin.H{"message": "Quotation could not be saved"})
		return
	}

	metrics.QuotationsTotal.WithLabelValues("accepted").Inc()
	c.JSON(http.StatusCreated, dto.FromQuotation(saved))
}

func (s *Server) productFromSnapshot(snapshot dto.ProductSnapshot) (*entities.Product, error) {
	id := snapshot.ID
	if id == "" {
		// Handlers run concurrently; the package generator is internally locked.
		id = fmt.Sprintf("PROD-%d", rand.Intn(100000))
	}

	status := entities.Active
	if snapshot.Status != "" {
		parsed, err := entities.ParseProductStatus(snapshot.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	return entities.NewProduct(
		entities.ProductID(id),
		snapshot.SKU,
		snapshot.Name,
		snapshot.Category,
		snapshot.Stock,
		decimal.NewFromFloat(snapshot.Price),
		snapshot.Location,
		status,
		snapshot.IsBatchTracked,
	)
}
