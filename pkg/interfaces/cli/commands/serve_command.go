package commands

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/asheth/orderdesk/pkg/application/services"
	"github.com/asheth/orderdesk/pkg/domain/repositories"
	"github.com/asheth/orderdesk/pkg/infrastructure/config"
	csvrepo "github.com/asheth/orderdesk/pkg/infrastructure/repositories/csv"
	"github.com/asheth/orderdesk/pkg/infrastructure/repositories/memory"
	"github.com/asheth/orderdesk/pkg/infrastructure/repositories/remote"
	"github.com/asheth/orderdesk/pkg/interfaces/rest"
)

// Config holds configuration for the serve command
type Config struct {
	ConfigFile  string
	Listen      string
	CatalogFile string
	BackendURL  string
	Verbose     bool
	Help        bool
}

// ServeCommand wires the repositories, submission gate, and HTTP server
type ServeCommand struct {
	config Config
}

// NewServeCommand creates a new serve command with the given configuration
func NewServeCommand(config Config) *ServeCommand {
	return &ServeCommand{
		config: config,
	}
}

// Execute runs the serve command
func (c *ServeCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	cfg, err := c.resolveConfig()
	if err != nil {
		return err
	}

	if err := c.setupLogging(cfg); err != nil {
		return err
	}

	catalog, err := c.buildCatalog(cfg)
	if err != nil {
		return err
	}

	orders := c.buildOrderRepository(ctx, cfg)

	quotations := memory.NewQuotationRepository()
	if err := memory.SeedQuotations(ctx, quotations); err != nil {
		return err
	}

	gate := services.NewSubmissionService(orders)
	server := rest.NewServer(catalog, orders, quotations, gate)
	return server.Run(ctx, cfg.Listen)
}

// resolveConfig loads the config file if given and applies flag overrides
func (c *ServeCommand) resolveConfig() (*config.Config, error) {
	cfg := config.Default()
	if c.config.ConfigFile != "" {
		loaded, err := config.Load(c.config.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if c.config.Listen != "" {
		cfg.Listen = c.config.Listen
	}
	if c.config.CatalogFile != "" {
		cfg.CatalogFile = c.config.CatalogFile
	}
	if c.config.BackendURL != "" {
		cfg.BackendURL = c.config.BackendURL
	}
	return cfg, nil
}

func (c *ServeCommand) setupLogging(cfg *config.Config) error {
	log.SetFormatter(&log.JSONFormatter{})

	levelName := cfg.LogLevel
	if c.config.Verbose {
		levelName = "debug"
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", levelName, err)
	}
	log.SetLevel(level)
	return nil
}

// buildCatalog loads the catalog from CSV when a file is configured,
// otherwise seeds the demo catalog
func (c *ServeCommand) buildCatalog(cfg *config.Config) (*memory.ProductRepository, error) {
	if cfg.CatalogFile != "" {
		loader := csvrepo.NewLoader()
		products, err := loader.LoadProducts(cfg.CatalogFile)
		if err != nil {
			return nil, err
		}
		repo := memory.NewProductRepository(len(products))
		if err := repo.LoadProducts(products); err != nil {
			return nil, err
		}
		log.WithField("products", len(products)).Info("Catalog loaded from CSV")
		return repo, nil
	}

	products := memory.SeedProducts(cfg.CatalogSeed, 1)
	repo := memory.NewProductRepository(len(products))
	if err := repo.LoadProducts(products); err != nil {
		return nil, err
	}
	log.WithField("products", len(products)).Info("Catalog seeded")
	return repo, nil
}

func (c *ServeCommand) buildOrderRepository(ctx context.Context, cfg *config.Config) repositories.OrderRepository {
	if cfg.BackendURL != "" {
		log.WithField("backend_url", cfg.BackendURL).Info("Persisting orders to backing ERP service")
		return remote.NewOrderRepository(cfg.BackendURL)
	}

	repo := memory.NewOrderRepository()
	if err := memory.SeedOrders(ctx, repo); err != nil {
		log.WithError(err).Warn("Failed to seed demo orders")
	}
	return repo
}

func (c *ServeCommand) showHelp() {
	fmt.Println(`orderdesk - sales order and quotation editing service

Usage:
  orderdesk [flags]

Flags:
  -config string    Path to YAML config file
  -listen string    HTTP listen address (default ":8080")
  -catalog string   Path to product catalog CSV (default: seeded demo catalog)
  -backend string   Base URL of a backing ERP order service (default: in-memory)
  -verbose          Enable debug logging
  -help             Show this help message`)
}
