// Praxis agent runtime server — serves the HTTP API, manages queue
// workers, and executes agent sessions inside the safety envelope.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/praxislabs/praxis/pkg/api"
	"github.com/praxislabs/praxis/pkg/approval"
	"github.com/praxislabs/praxis/pkg/autonomy"
	"github.com/praxislabs/praxis/pkg/cleanup"
	"github.com/praxislabs/praxis/pkg/config"
	"github.com/praxislabs/praxis/pkg/database"
	"github.com/praxislabs/praxis/pkg/events"
	"github.com/praxislabs/praxis/pkg/executor"
	"github.com/praxislabs/praxis/pkg/killswitch"
	"github.com/praxislabs/praxis/pkg/llm"
	"github.com/praxislabs/praxis/pkg/masking"
	"github.com/praxislabs/praxis/pkg/mcp"
	"github.com/praxislabs/praxis/pkg/models"
	"github.com/praxislabs/praxis/pkg/planner"
	"github.com/praxislabs/praxis/pkg/queue"
	"github.com/praxislabs/praxis/pkg/safety"
	"github.com/praxislabs/praxis/pkg/sandbox"
	"github.com/praxislabs/praxis/pkg/services"
	"github.com/praxislabs/praxis/pkg/tools"
	"github.com/praxislabs/praxis/pkg/tools/builtin"
	"github.com/praxislabs/praxis/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the worker identity recorded on session claims.
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
	configPath := flag.String("config",
		getEnv("PRAXIS_CONFIG", "praxis.yaml"),
		"Path to the praxis.yaml configuration file")
	flag.Parse()

	// Load .env from the configuration file's directory
	envPath := filepath.Join(filepath.Dir(*configPath), ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()

	slog.Info("Starting praxis",
		"version", version.GitCommit,
		"pod_id", podID,
		"config_file", *configPath)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configPath)
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
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Database ready", "path", dbConfig.Path)

	// 3. One-time startup cleanup: sessions this pod abandoned in a crash
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal; startup continues
	}

	// 4. Domain services
	sessionService := services.NewSessionService(dbClient.Client)
	stepService := services.NewStepService(dbClient.Client)
	auditService := services.NewAuditService(dbClient.Client)
	serverService := services.NewServerService(dbClient.Client)
	autonomyStore := services.NewAutonomyStore(dbClient.Client)
	slog.Info("Services initialized")

	// 5. Event hub feeding websocket subscribers
	hub := events.NewHub(events.DefaultQueueSize)
	defer hub.Close()
	publisher := events.NewPublisher(hub)

	// 6. Tool registry with the built-in tool set; servers attach later
	toolRegistry := tools.NewRegistry()
	pathValidator, err := builtin.NewPathValidator(cfg.Tools.WorkspaceRoots)
	if err != nil {
		slog.Error("Failed to build path validator", "error", err)
		os.Exit(1)
	}
	if err := builtin.RegisterAll(toolRegistry, builtin.Options{
		Validator:       pathValidator,
		WeaviateURL:     cfg.Tools.WeaviateURL,
		BrowserHeadless: cfg.Tools.Headless(),
	}); err != nil {
		slog.Error("Failed to register built-in tools", "error", err)
		os.Exit(1)
	}
	slog.Info("Built-in tools registered", "count", len(toolRegistry.Definitions()))

	// 7. Safety envelope: autonomy authority, classifier, approvals, kill
	// switch. The level fallback was validated with the configuration.
	defaultLevel, _ := models.ParseAutonomyLevel(cfg.Agent.DefaultAutonomyLevel)
	autonomyService := autonomy.NewService(autonomyStore, defaultLevel)
	classifier := safety.NewClassifier(autonomyService, toolRegistry)
	approvals := approval.NewManager(toolRegistry, publisher)
	kill := killswitch.New()

	// 8. Container sandbox for user-added stdio servers
	var sandboxLauncher mcp.Sandbox
	if cfg.Sandbox.Disabled {
		slog.Warn("Container sandbox disabled; stdio tool servers run directly on the host")
	} else {
		launcher := sandbox.NewLauncher(ctx, cfg.Sandbox.Image)
		defer func() {
			if err := launcher.Close(); err != nil {
				slog.Error("Error closing sandbox launcher", "error", err)
			}
		}()
		launcher.Cleanup(ctx)
		sandboxLauncher = launcher
	}

	// 9. Connect enabled tool servers. A failed dial marks the row and
	// schedules reconnects; a broken external server must not block startup.
	mcpManager := mcp.NewManager(toolRegistry, publisher, sandboxLauncher, serverService)
	defer func() {
		if err := mcpManager.Close(); err != nil {
			slog.Error("Error closing tool server manager", "error", err)
		}
	}()

	enabledServers, err := serverService.ListServers(ctx, true)
	if err != nil {
		slog.Error("Failed to list tool servers", "error", err)
		os.Exit(1)
	}
	if len(enabledServers) > 0 {
		serverConfigs := make([]models.ExternalServerConfig, 0, len(enabledServers))
		for _, srv := range enabledServers {
			serverConfigs = append(serverConfigs, services.ToConfig(srv))
		}
		connected := mcpManager.ConnectAll(ctx, serverConfigs)
		slog.Info("Tool servers connected",
			"connected", connected,
			"configured", len(serverConfigs))
	}

	// 10. Chat model shared by the planner and the executor
	apiKey := ""
	if cfg.LLM.APIKeyEnv != "" {
		apiKey = os.Getenv(cfg.LLM.APIKeyEnv)
	}
	chatModel, err := llm.New(llm.Config{
		Provider:    cfg.LLM.Provider,
		Model:       cfg.LLM.Model,
		APIKey:      apiKey,
		BaseURL:     cfg.LLM.BaseURL,
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: cfg.LLM.Temperature,
	})
	if err != nil {
		slog.Error("Failed to initialize chat model",
			"provider", cfg.LLM.Provider, "error", err)
		os.Exit(1)
	}

	// 11. Session executor and worker pool (workers start before HTTP so a
	// queued session never waits on a listener)
	sessionExecutor := executor.New(executor.Options{
		Model:      chatModel,
		Planner:    planner.New(chatModel),
		Tools:      toolRegistry,
		Classifier: classifier,
		Approvals:  approvals,
		Autonomy:   autonomyService,
		Kill:       kill,
		Publisher:  publisher,
		Sessions:   sessionService,
		Steps:      stepService,
		Audit:      auditService,
		Config:     cfg.Agent,
		Redactor:   masking.New(),
	})

	workerPool := queue.NewWorkerPool(podID, dbClient.Client, sessionService, kill, cfg.Queue, sessionExecutor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 12. Retention cleanup loop
	cleanupService := cleanup.NewService(cfg.Retention, sessionService, auditService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 13. HTTP server (non-blocking)
	httpServer := api.NewServer(api.Options{
		Config:    cfg.Server,
		DB:        dbClient,
		Sessions:  sessionService,
		Steps:     stepService,
		Audit:     auditService,
		Servers:   serverService,
		Approvals: approvals,
		Autonomy:  autonomyService,
		Kill:      kill,
		Pool:      workerPool,
		MCP:       mcpManager,
		Hub:       hub,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Praxis started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount,
		"default_autonomy", cfg.Agent.DefaultAutonomyLevel)

	// 14. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 15. Graceful shutdown: drain workers first so running sessions reach
	// a step boundary, then stop the HTTP server on its own budget
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout.Duration())
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
		slog.Warn("Shutdown timeout exceeded, incomplete sessions will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
