// Tarsy orchestrator server — serves the event stream and health endpoints,
// manages queue workers, and orchestrates session processing.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tarsy-project/tarsy/pkg/api"
	"github.com/tarsy-project/tarsy/pkg/cleanup"
	"github.com/tarsy-project/tarsy/pkg/config"
	"github.com/tarsy-project/tarsy/pkg/database"
	"github.com/tarsy-project/tarsy/pkg/events"
	"github.com/tarsy-project/tarsy/pkg/llm"
	"github.com/tarsy-project/tarsy/pkg/masking"
	"github.com/tarsy-project/tarsy/pkg/mcp"
	"github.com/tarsy-project/tarsy/pkg/queue"
	"github.com/tarsy-project/tarsy/pkg/runbook"
	"github.com/tarsy-project/tarsy/pkg/services"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting tarsy",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Initialize masking service and domain services
	maskingService := masking.NewMaskingService(
		cfg.MCPServerRegistry,
		masking.AlertMaskingConfig{
			Enabled:      cfg.Defaults.AlertMasking.Enabled,
			PatternGroup: cfg.Defaults.AlertMasking.PatternGroup,
		},
	)

	alertService := services.NewAlertService(dbClient.Client, cfg.ChainRegistry, cfg.Defaults, maskingService)
	sessionService := services.NewSessionService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. Initialize streaming infrastructure
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier, 10*time.Second)

	// Start NotifyListener (dedicated pgx connection for LISTEN)
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	// Wire listener ↔ manager bidirectional link
	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 5. One-time startup orphan cleanup: sessions this pod owned before a
	// restart are failed so their fingerprints release and clients learn.
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, sessionService, eventPublisher, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 6. LLM router: per-provider SDK adapters created lazily on first use.
	llmClient := llm.NewRouter(slog.Default())
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()

	// 7. Initialize MCP infrastructure
	warningsService := services.NewSystemWarningsService()
	mcpFactory := mcp.NewClientFactory(cfg.MCPServerRegistry, maskingService)

	// Eager MCP validation: verify all configured servers can connect.
	// If any server fails, the process exits — prevents silent broken configs.
	mcpServerIDs := cfg.AllMCPServerIDs()
	if len(mcpServerIDs) > 0 {
		validationClient, mcpErr := mcpFactory.CreateClient(ctx, mcpServerIDs)
		if mcpErr != nil {
			slog.Error("MCP startup validation failed", "error", mcpErr)
			os.Exit(1)
		}
		failed := validationClient.FailedServers()
		if len(failed) > 0 {
			slog.Error("MCP servers failed startup validation", "failed_servers", failed)
			_ = validationClient.Close()
			os.Exit(1)
		}
		_ = validationClient.Close()
		slog.Info("MCP servers validated", "count", len(mcpServerIDs))
	}

	// Start HealthMonitor (background goroutine)
	var healthMonitor *mcp.HealthMonitor
	if len(mcpServerIDs) > 0 {
		healthMonitor = mcp.NewHealthMonitor(mcpFactory, cfg.MCPServerRegistry, warningsService)
		healthMonitor.Start(ctx)
		defer healthMonitor.Stop()
		slog.Info("MCP health monitor started")
	}

	// 8. Session executor and worker pool
	runbooks := runbook.NewStaticProvider(cfg.Defaults.Runbook)
	executor := queue.NewRealSessionExecutor(cfg, dbClient.Client, llmClient, eventPublisher, mcpFactory, runbooks)

	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor, queue.WorkerDeps{
		SessionService: sessionService,
		AlertService:   alertService,
		EventService:   eventService,
		EventPublisher: eventPublisher,
	})
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// Cancellation fan-in: every pod subscribes; the pod running the
	// session cancels its context.
	notifyListener.OnNotification(events.CancellationsChannel, func(_ string, payload []byte) {
		var p events.CancellationPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			slog.Warn("Ignoring malformed cancellation payload", "error", err)
			return
		}
		if workerPool.CancelSession(p.SessionID) {
			slog.Info("Cancellation request routed to local session",
				"session_id", p.SessionID, "requested_by", p.RequestedBy)
		}
	})
	if err := notifyListener.Subscribe(ctx, events.CancellationsChannel); err != nil {
		slog.Error("Failed to subscribe to cancellations channel", "error", err)
		os.Exit(1)
	}

	// 9. Retention sweeps (session soft-delete + event TTL)
	cleanupService := cleanup.NewService(cfg.Retention, sessionService, eventService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 10. Create HTTP server
	httpServer := api.NewServer(cfg, dbClient, workerPool, connManager)

	// 11. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Tarsy started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 12. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 13. Graceful shutdown: stop claiming, drain active sessions, then cut
	// the stragglers loose so the terminal writes still land.
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — cancelling active sessions")
		workerPool.CancelActiveSessions()
		<-done
	}

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
