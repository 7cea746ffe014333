// cmd/server/main.go
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/ozcomp/compintake/internal/browser"
	"github.com/ozcomp/compintake/internal/config"
	"github.com/ozcomp/compintake/internal/extract"
	"github.com/ozcomp/compintake/internal/fetch"
	"github.com/ozcomp/compintake/internal/monitoring"
	"github.com/ozcomp/compintake/internal/output"
	"github.com/ozcomp/compintake/internal/utils"
	"github.com/ozcomp/compintake/pkg/api"
)

// Version information (set by build flags)
var (
	version = "dev"
)

func main() {
	configFile := flag.String("config", "", "path to YAML configuration file")
	flag.Parse()

	logger := utils.NewComponentLogger("server")

	cfg, err := loadConfig(*configFile)
	if err != nil {
		logger.Errorf("configuration error: %v", err)
		os.Exit(1)
	}

	fetcher := buildFetcher(cfg)
	importer := extract.NewImporter(fetcher, utils.NewComponentLogger("importer"))

	persister, err := output.NewManager(&cfg.Output)
	if err != nil {
		logger.Errorf("output configuration error: %v", err)
		os.Exit(1)
	}

	server := api.NewServer(api.ServerOptions{
		Importer:  importer,
		Persister: persister,
		Metrics:   monitoring.NewMetrics(""),
		Logger:    utils.NewComponentLogger("api"),
		Version:   version,
		Format:    cfg.Output.Format,
	})

	httpServer := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      server.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	logger.Infof("listening on %s (output format %s)", cfg.Server.Address, cfg.Output.Format)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Errorf("server error: %v", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return cfg, nil
}

// buildFetcher selects the fetch strategy from configuration.
func buildFetcher(cfg *config.Config) extract.Fetcher {
	if cfg.Fetch.Mode == config.FetchModeBrowser {
		return browser.NewRenderer(browser.RendererConfig{
			Timeout:   cfg.Fetch.Timeout,
			WaitDelay: cfg.Fetch.WaitDelay,
		})
	}
	return fetch.NewClient(fetch.ClientConfig{
		Timeout:       cfg.Fetch.Timeout,
		RetryAttempts: cfg.Fetch.RetryAttempts,
		RateLimit:     cfg.Fetch.RateLimit,
		RateBurst:     cfg.Fetch.RateBurst,
		UserAgents:    cfg.Fetch.UserAgents,
	})
}
