// cmd/compintake/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"

	"gopkg.in/yaml.v3"

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
	version   = "dev"
	buildTime = "unknown"
)

const usage = `compintake - heuristic competition page importer

Usage:
  compintake import <url> [-config file] [-o file] [-format name]
                                   import one page and print/save the draft record
  compintake serve [-config file]  run the HTTP API server
  compintake validate <config>     validate a configuration file
  compintake template              print a starting-point configuration
  compintake version               print version information
  compintake help                  show this help
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	switch os.Args[1] {
	case "import":
		runImport(os.Args[2:])
	case "serve":
		runServe(os.Args[2:])
	case "validate":
		runValidate(os.Args[2:])
	case "template":
		runTemplate()
	case "version":
		fmt.Printf("compintake %s (built %s)\n", version, buildTime)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}
}

// runImport fetches one competition page and assembles the draft record. The
// record is printed as JSON, or appended to the configured output when -o is
// given.
func runImport(args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	configFile := fs.String("config", "", "path to YAML configuration file")
	outFile := fs.String("o", "", "write the record via the configured output instead of stdout")
	format := fs.String("format", "", "override the configured output format")
	verbose := fs.Bool("v", false, "verbose logging")
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "import requires exactly one URL argument")
		os.Exit(2)
	}
	sourceURL := fs.Arg(0)

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fail("configuration error: %v", err)
	}

	level := utils.ParseLogLevel(cfg.Logging.Level)
	if *verbose {
		level = utils.DebugLevel
	}
	logger := utils.NewLoggerWithLevel(level).WithField("component", "cli")

	importer := extract.NewImporter(buildFetcher(cfg), logger)

	record, err := importer.Import(context.Background(), sourceURL)
	if err != nil {
		if fe, ok := fetch.AsError(err); ok && fe.StatusCode != 0 {
			fail("fetch failed with HTTP %d: %s", fe.StatusCode, fe.Status)
		}
		fail("import failed: %v", err)
	}

	if *outFile != "" {
		cfg.Output.File = *outFile
		if *format != "" {
			cfg.Output.Format = *format
		}
		manager, err := output.NewManager(&cfg.Output)
		if err != nil {
			fail("output error: %v", err)
		}
		if err := manager.Write([]extract.Competition{*record}); err != nil {
			fail("failed to write record: %v", err)
		}
		fmt.Printf("draft %q written to %s (%s)\n", record.Title, *outFile, cfg.Output.Format)
		return
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(record); err != nil {
		fail("failed to encode record: %v", err)
	}
}

// runServe starts the HTTP API with the same wiring as the standalone server
// binary.
func runServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configFile := fs.String("config", "", "path to YAML configuration file")
	fs.Parse(args)

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fail("configuration error: %v", err)
	}

	logger := utils.NewComponentLogger("server")
	importer := extract.NewImporter(buildFetcher(cfg), utils.NewComponentLogger("importer"))

	persister, err := output.NewManager(&cfg.Output)
	if err != nil {
		fail("output error: %v", err)
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
		fail("server error: %v", err)
	}
}

func runValidate(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "validate requires exactly one configuration file argument")
		os.Exit(2)
	}
	if _, err := config.LoadFromFile(args[0]); err != nil {
		fail("%v", err)
	}
	fmt.Printf("configuration file %q is valid\n", args[0])
}

func runTemplate() {
	data, err := yaml.Marshal(config.GenerateTemplate())
	if err != nil {
		fail("failed to marshal template: %v", err)
	}
	os.Stdout.Write(data)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(path)
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

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
