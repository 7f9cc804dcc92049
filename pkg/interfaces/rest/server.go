package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/asheth/orderdesk/pkg/application/services"
	"github.com/asheth/orderdesk/pkg/domain/repositories"
	"github.com/asheth/orderdesk/pkg/infrastructure/metrics"
)

// Server exposes the order desk over HTTP: the product catalog, sales order
// submission through the gate, and quotations
type Server struct {
	catalog    repositories.ProductRepository
	orders     repositories.OrderRepository
	quotations repositories.QuotationRepository
	gate       *services.SubmissionService
	router     *gin.Engine
}

// NewServer creates the HTTP server and registers its routes
func NewServer(
	catalog repositories.ProductRepository,
	orders repositories.OrderRepository,
	quotations repositories.QuotationRepository,
	gate *services.SubmissionService,
) *Server {
	s := &Server{
		catalog:    catalog,
		orders:     orders,
		quotations: quotations,
		gate:       gate,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(metrics.PrometheusMiddleware("orderdesk"))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	router.GET("/products", s.listProducts)
	router.GET("/products/:id", s.getProduct)
	router.POST("/products", s.createProduct)
	router.POST("/products/bulk", s.bulkImportProducts)

	router.GET("/sales", s.listOrders)
	router.GET("/sales/:id", s.getOrder)
	router.POST("/sales", s.createOrder)

	router.GET("/quotations", s.listQuotations)
	router.GET("/quotations/:id", s.getQuotation)
	router.POST("/quotations", s.createQuotation)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router = router
	return s
}

// Handler returns the underlying HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until the context is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	log.WithField("addr", addr).Info("Order desk listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
