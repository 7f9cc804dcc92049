package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/asheth/orderdesk/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		configFile  = flag.String("config", "", "Path to YAML config file")
		listen      = flag.String("listen", "", "HTTP listen address")
		catalogFile = flag.String("catalog", "", "Path to product catalog CSV file")
		backendURL  = flag.String("backend", "", "Base URL of a backing ERP order service")
		verbose     = flag.Bool("verbose", false, "Enable debug logging")
		help        = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		ConfigFile:  *configFile,
		Listen:      *listen,
		CatalogFile: *catalogFile,
		BackendURL:  *backendURL,
		Verbose:     *verbose,
		Help:        *help,
	}

	// Create and execute command
	cmd := commands.NewServeCommand(config)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
