package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"portfolio_sync/internal/client"
	"portfolio_sync/internal/config"
	"portfolio_sync/internal/domain"
	"portfolio_sync/internal/poller"
	"portfolio_sync/internal/publisher"
	"portfolio_sync/internal/scheduler"
	"portfolio_sync/internal/server"
	"portfolio_sync/internal/service"
	"portfolio_sync/internal/source/github"
	"portfolio_sync/internal/source/leetcode"
	"portfolio_sync/internal/static"
	"portfolio_sync/internal/status"
	"portfolio_sync/internal/storage/postgres"
)

const usage = `Usage: syncer [-config path] <command>

Commands:
  sync                        run a full database-to-fallback sync
  crawl [all|github|leetcode] refresh profile statistics, then sync
  status                      print the last recorded sync summary
  serve                       run the HTTP server with the resync scheduler
  poll                        poll a running server and keep its data fresh
  help                        show this message
`

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "sync"
	}
	if command == "help" {
		fmt.Print(usage)
		return
	}

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	// The poll loop only talks to a running server, no database needed.
	if command == "poll" {
		runPoll(cfg, logger)
		return
	}

	app, err := newApp(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer app.close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	switch command {
	case "sync":
		app.runSync(ctx)
	case "crawl":
		app.runCrawl(ctx, flag.Arg(1))
	case "status":
		app.printStatus()
	case "serve":
		app.serve(ctx)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", command, usage)
		os.Exit(2)
	}
}

type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	db       *sqlx.DB
	rabbitMQ *publisher.RabbitMQ

	syncService  *service.SyncService
	crawlService *service.CrawlService
	statusStore  *status.FileStore
	startup      *service.StartupChecker
}

func newApp(cfg *config.Config, logger *slog.Logger) (*app, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("connected to database")

	var rabbitMQ *publisher.RabbitMQ
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err = publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("connect to rabbitmq: %w", err)
		}
	}

	contentStore := postgres.NewContentStore(db)
	statsStore := postgres.NewStatsStore(db)
	txManager := postgres.NewTransactionManager(db)
	writer := static.NewWriter(cfg.Sync.OutputDir)
	statusStore := status.NewFileStore(cfg.Sync.StatusFile)

	githubSource := github.New(github.Config{
		Username:       cfg.GitHub.Username,
		BaseURL:        cfg.GitHub.BaseURL,
		Timeout:        cfg.GitHub.Timeout,
		MaxAttempts:    cfg.GitHub.Retry.MaxAttempts,
		InitialBackoff: cfg.GitHub.Retry.InitialBackoff,
		MaxBackoff:     cfg.GitHub.Retry.MaxBackoff,
	}, logger)

	leetcodeSource := leetcode.New(leetcode.Config{
		Username:       cfg.LeetCode.Username,
		BaseURL:        cfg.LeetCode.BaseURL,
		Timeout:        cfg.LeetCode.Timeout,
		MaxAttempts:    cfg.LeetCode.Retry.MaxAttempts,
		InitialBackoff: cfg.LeetCode.Retry.InitialBackoff,
		MaxBackoff:     cfg.LeetCode.Retry.MaxBackoff,
	}, logger)

	// A nil interface must stay nil inside the service, hence the indirection.
	var pub service.Publisher
	if rabbitMQ != nil {
		pub = rabbitMQ
	}

	syncService := service.NewSyncService(contentStore, writer, statusStore, pub, logger)
	crawlService := service.NewCrawlService(githubSource, leetcodeSource, statsStore, txManager, logger)
	startup := service.NewStartupChecker(
		contentStore,
		statusStore,
		syncService,
		cfg.Sync.ResyncThreshold,
		cfg.Sync.RunTimeout,
		logger,
	)

	return &app{
		cfg:          cfg,
		logger:       logger,
		db:           db,
		rabbitMQ:     rabbitMQ,
		syncService:  syncService,
		crawlService: crawlService,
		statusStore:  statusStore,
		startup:      startup,
	}, nil
}

func (a *app) close() {
	if a.rabbitMQ != nil {
		a.rabbitMQ.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
}

func (a *app) runSync(ctx context.Context) {
	syncCtx, cancel := context.WithTimeout(ctx, a.cfg.Sync.RunTimeout)
	defer cancel()

	summary, err := a.syncService.Sync(syncCtx)
	if err != nil {
		a.logger.Error("sync failed", "error", err)
	} else if !summary.Success {
		a.logger.Warn("sync completed with errors", "errors", summary.Errors)
	}
	if code := syncExitCode(summary, err); code != 0 {
		os.Exit(code)
	}
}

// syncExitCode maps a run outcome to the process exit code: any failure,
// whole-run or per-domain, is non-zero.
func syncExitCode(summary *domain.RunSummary, err error) int {
	if err != nil || summary == nil || !summary.Success {
		return 1
	}
	return 0
}

// runCrawl refreshes stats first so the following sync picks up the new
// counters.
func (a *app) runCrawl(ctx context.Context, target string) {
	crawlCtx, cancel := context.WithTimeout(ctx, a.cfg.Sync.RunTimeout)
	defer cancel()

	if err := a.crawlService.Crawl(crawlCtx, target); err != nil {
		a.logger.Error("crawl failed", "error", err)
		os.Exit(1)
	}

	a.runSync(ctx)
}

func (a *app) printStatus() {
	last, err := a.statusStore.Read()
	if err != nil {
		a.logger.Error("failed to read sync status", "error", err)
		os.Exit(1)
	}
	if last == nil {
		fmt.Println("no sync has run yet")
		return
	}

	out, err := json.MarshalIndent(last, "", "  ")
	if err != nil {
		a.logger.Error("failed to render sync status", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func (a *app) serve(ctx context.Context) {
	srv := server.New(
		a.syncService,
		a.statusStore,
		a.startup,
		a.cfg.Server.SyncSecret,
		a.cfg.IsDevelopment(),
		a.logger,
	)

	httpServer := &http.Server{
		Addr:              a.cfg.Server.Addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	sched := scheduler.New(
		a.syncService,
		a.statusStore,
		a.cfg.Sync.ResyncThreshold,
		a.cfg.Sync.RunTimeout,
		a.logger,
	)
	go func() {
		if err := sched.Start(ctx); err != nil && err != context.Canceled {
			a.logger.Error("scheduler error", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown error", "error", err)
		}
	}()

	a.logger.Info("starting http server", "addr", a.cfg.Server.Addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		a.logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func runPoll(cfg *config.Config, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	api := client.New(client.Config{
		BaseURL: cfg.Server.BaseURL,
		Secret:  cfg.Server.SyncSecret,
		Timeout: cfg.Sync.RunTimeout,
	})

	p := poller.New(api, poller.Config{
		Interval:       cfg.Poll.Interval,
		MaxTick:        cfg.Poll.MaxTick,
		MaxRetries:     cfg.Poll.MaxRetries,
		InitialBackoff: cfg.Poll.InitialBackoff,
	}, logger)

	logger.Info("starting poll loop",
		"base_url", cfg.Server.BaseURL,
		"interval", cfg.Poll.Interval,
	)
	if err := p.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("poller error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
