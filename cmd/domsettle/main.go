// Command domsettle waits for page elements to stop animating before
// test code interacts with them.
//
// Usage:
//
//	domsettle -url https://example.com -selector "#submit"   # single wait
//	domsettle -config domsettle.yaml                         # targets from YAML
//	domsettle -db targets.db                                 # targets from SQLite
//	domsettle -fixtures                                      # serve demo pages
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hazyhaar/domsettle"
	"github.com/hazyhaar/domsettle/internal/fixtures"
)

func main() {
	configPath := flag.String("config", "", "path to domsettle.yaml config file")
	dbPath := flag.String("db", "", "path to a SQLite database with a settle_targets table")
	singleURL := flag.String("url", "", "wait on a single URL")
	selector := flag.String("selector", "", "CSS selector for -url mode")
	timeout := flag.Duration("timeout", 30*time.Second, "overall wait timeout for -url mode")
	debug := flag.Bool("debug", false, "emit per-iteration debug logs")
	serveFixtures := flag.Bool("fixtures", false, "serve the animated demo pages and block")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	var level slog.Level
	switch *logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, options{
		configPath: *configPath,
		dbPath:     *dbPath,
		singleURL:  *singleURL,
		selector:   *selector,
		timeout:    *timeout,
		debug:      *debug,
		fixtures:   *serveFixtures,
	}); err != nil {
		logger.Error("domsettle: fatal", "error", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	dbPath     string
	singleURL  string
	selector   string
	timeout    time.Duration
	debug      bool
	fixtures   bool
}

func run(ctx context.Context, logger *slog.Logger, opts options) error {
	if opts.fixtures {
		return runFixtures(ctx, logger)
	}

	if opts.singleURL != "" {
		if opts.selector == "" {
			return fmt.Errorf("-url requires -selector")
		}
		cfg := &domsettle.Config{}
		cfg.ApplyDefaults()
		targets := []domsettle.TargetConfig{{
			ID:       "cli",
			URL:      opts.singleURL,
			Selector: opts.selector,
			Timeout:  opts.timeout,
			Debug:    opts.debug,
		}}
		return runTargets(ctx, logger, cfg, targets)
	}

	if opts.configPath != "" {
		cfg, err := domsettle.LoadConfigFile(opts.configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return runTargets(ctx, logger, cfg, cfg.Targets)
	}

	if opts.dbPath != "" {
		db, err := sql.Open("sqlite", opts.dbPath)
		if err != nil {
			return fmt.Errorf("open db: %w", err)
		}
		defer db.Close()

		targets, err := domsettle.LoadTargetsDB(ctx, db)
		if err != nil {
			return fmt.Errorf("load targets: %w", err)
		}
		cfg := &domsettle.Config{}
		cfg.ApplyDefaults()
		return runTargets(ctx, logger, cfg, targets)
	}

	fmt.Fprintln(os.Stderr, "usage: domsettle -url <url> -selector <sel> | -config <file> | -db <file> | -fixtures")
	os.Exit(1)
	return nil
}

func runTargets(ctx context.Context, logger *slog.Logger, cfg *domsettle.Config, targets []domsettle.TargetConfig) error {
	if len(targets) == 0 {
		return fmt.Errorf("no targets to wait on")
	}

	svc := domsettle.NewService(cfg, logger)
	if err := svc.Start(ctx); err != nil {
		return err
	}
	defer svc.Stop()

	enc := json.NewEncoder(os.Stdout)
	unstable := 0

	for _, t := range targets {
		rep, err := svc.WaitTarget(ctx, t)
		if err != nil {
			return fmt.Errorf("target %s: %w", t.ID, err)
		}
		if !rep.Stable {
			unstable++
		}
		if err := enc.Encode(rep); err != nil {
			return err
		}
	}

	if unstable > 0 {
		return fmt.Errorf("%d of %d targets never settled", unstable, len(targets))
	}
	return nil
}

func runFixtures(ctx context.Context, logger *slog.Logger) error {
	srv, err := fixtures.Start()
	if err != nil {
		return err
	}
	defer srv.Close()

	logger.Info("domsettle: serving fixture pages",
		"url", srv.URL,
		"pages", []string{"/static", "/animated", "/paused", "/transition", "/delayed"})

	<-ctx.Done()
	return nil
}
