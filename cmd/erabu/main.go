// Package main is the erabu CLI entry point.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/stylekart/erabu/internal/catalog"
	"github.com/stylekart/erabu/internal/cli"
	"github.com/stylekart/erabu/internal/config"
	"github.com/stylekart/erabu/internal/models"
	"github.com/stylekart/erabu/internal/recommend"
	"github.com/stylekart/erabu/internal/server"
	"github.com/stylekart/erabu/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/erabu/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists
// it is used, so that "erabu server" from the project dir uses the project's
// config. Returns the config and the path that was actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "search":
		runSearch()
	case "recommend":
		runRecommend()
	case "trending":
		runTrending()
	case "status":
		runStatus()
	case "version", "--version", "-v":
		fmt.Printf("erabu version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	store := catalog.NewStore(cfg.Catalog.Path, logger)
	if err := store.Reload(); err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Catalog.Watch {
		watch, err := catalog.NewWatcher(store, cfg.Catalog.Path, logger)
		if err != nil {
			logger.Fatal("Failed to watch catalog", zap.Error(err))
		}
		defer watch.Close()
		go watch.Run(ctx)
		logger.Info("watching catalog for changes", zap.String("path", cfg.Catalog.Path))
	}

	engine := recommend.New(store, cfg, logger)
	srv := server.NewServer(engine, store, &cfg.Server, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Fatal("Server failed", zap.Error(err))
	case sig := <-sigCh:
		logger.Info("Shutting down", zap.String("signal", sig.String()))
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			logger.Warn("Shutdown error", zap.Error(err))
		}
	}
}

// loadEngine builds an in-process engine for the one-shot commands.
func loadEngine(configPath string) (*recommend.Engine, *catalog.Store, *config.Config) {
	cfg, _, err := loadConfig(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	store := catalog.NewStore(cfg.Catalog.Path, zap.NewNop())
	if err := store.Reload(); err != nil {
		fmt.Printf("Failed to load catalog: %v\n", err)
		os.Exit(1)
	}
	return recommend.New(store, cfg, zap.NewNop()), store, cfg
}

func outputFormat(name string) cli.OutputFormat {
	switch name {
	case "json":
		return cli.OutputJSON
	case "text":
		return cli.OutputText
	default:
		fmt.Printf("Unknown output format %q; use text or json\n", name)
		os.Exit(1)
		return cli.OutputText
	}
}

// queryArgsReorder moves any flags (and their values) that appear after the
// query to the front of the slice so that flag.Parse() sees them. Go's flag
// package stops at the first non-flag argument, so
// `erabu search "black jeans" --budget 1500` would otherwise fold the flag
// into the keyword string and leave budget unset.
func queryArgsReorder(args []string) []string {
	for i, a := range args {
		if len(a) > 0 && a[0] == '-' {
			if i == 0 {
				return args
			}
			reordered := make([]string, 0, len(args))
			reordered = append(reordered, args[i:]...)
			reordered = append(reordered, args[:i]...)
			return reordered
		}
	}
	return args
}

func runSearch() {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	budget := fs.Float64("budget", 0, "maximum price (0 = no budget)")
	region := fs.String("region", "", "region boost")
	color := fs.String("color", "", "color filter")
	fit := fs.String("fit", "", "fit filter")
	style := fs.String("style", "", "style filter")
	limit := fs.Int("limit", 0, "number of results (0 = config default)")
	output := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(queryArgsReorder(os.Args[2:]))

	if fs.NArg() < 1 {
		fmt.Println("Usage: erabu search [flags] <keywords>")
		os.Exit(1)
	}

	engine, _, cfg := loadEngine(*configPath)
	req := &models.SearchRequest{
		Keywords: strings.Join(fs.Args(), " "),
		Region:   *region,
		Color:    *color,
		Fit:      *fit,
		Style:    *style,
		Limit:    *limit,
	}
	if req.Limit == 0 {
		req.Limit = cfg.Search.DefaultLimit
	}
	if *budget > 0 {
		req.Budget = budget
	}

	if err := cli.WriteResults(os.Stdout, engine.Search(req), outputFormat(*output)); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runRecommend() {
	fs := flag.NewFlagSet("recommend", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	output := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(queryArgsReorder(os.Args[2:]))

	if fs.NArg() < 1 {
		fmt.Println("Usage: erabu recommend [flags] <query>")
		os.Exit(1)
	}

	engine, _, _ := loadEngine(*configPath)
	resp := engine.Recommend(strings.Join(fs.Args(), " "), nil)

	if err := cli.WriteResults(os.Stdout, resp, outputFormat(*output)); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runTrending() {
	fs := flag.NewFlagSet("trending", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	region := fs.String("region", "", "region label")
	event := fs.String("event", "", "event label")
	topK := fs.Int("top-k", 0, "number of results (0 = config default)")
	output := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	engine, _, cfg := loadEngine(*configPath)
	req := &models.TrendRequest{Region: *region, Event: *event, TopK: *topK}
	if req.TopK == 0 {
		req.TopK = cfg.Search.DefaultTopK
	}

	if err := cli.WriteResults(os.Stdout, engine.Trending(req), outputFormat(*output)); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	_ = fs.Parse(os.Args[2:])

	_, store, cfg := loadEngine(*configPath)
	snap := store.Snapshot()
	fmt.Printf("Catalog: %s\n", cfg.Catalog.Path)
	fmt.Printf("Products: %d\n", len(snap.Products))
	fmt.Printf("Version: %d\n", snap.Version)
	fmt.Printf("Loaded: %s\n", snap.LoadedAt.Format(time.RFC3339))
}

func printUsage() {
	fmt.Println(`erabu - catalog recommendation engine

Usage:
  erabu server [flags]              Start the HTTP server
  erabu search [flags] <keywords>   Search the catalog with hard filters
  erabu recommend [flags] <query>   Free-text recommendation (routed)
  erabu trending [flags]            Show trending items
  erabu status [flags]              Show catalog status
  erabu version                     Show version
  erabu help                        Show this help

Server Flags:
  --config string    Config file path (default: /usr/local/etc/erabu/config.yaml)
  --debug            Enable debug logging

Search Flags:
  --config string    Config file path
  --budget float     Maximum price (0 = no budget)
  --region string    Region boost
  --color string     Color filter
  --fit string       Fit filter
  --style string     Style filter
  --limit int        Number of results (0 = config default)
  --output string    Output format: text or json (default: text)

Trending Flags:
  --config string    Config file path
  --region string    Region label (north, south, metro, ...)
  --event string     Event label (wedding, party, ...)
  --top-k int        Number of results (0 = config default)
  --output string    Output format: text or json (default: text)

Examples:
  erabu server
  erabu search "black slim fit jeans" --budget 1500
  erabu recommend "wedding outfit under 3k"
  erabu trending --region metro --top-k 5
  erabu status`)
}
