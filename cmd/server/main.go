// Package main is the entry point for the monday-mcp server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/boardkit/monday-mcp/internal/account"
	"github.com/boardkit/monday-mcp/internal/activitylog"
	"github.com/boardkit/monday-mcp/internal/auth"
	"github.com/boardkit/monday-mcp/internal/board"
	"github.com/boardkit/monday-mcp/internal/column"
	"github.com/boardkit/monday-mcp/internal/config"
	"github.com/boardkit/monday-mcp/internal/file"
	"github.com/boardkit/monday-mcp/internal/group"
	"github.com/boardkit/monday-mcp/internal/item"
	"github.com/boardkit/monday-mcp/internal/safety"
	"github.com/boardkit/monday-mcp/internal/subitem"
	"github.com/boardkit/monday-mcp/internal/tools"
	"github.com/boardkit/monday-mcp/internal/update"
	"github.com/boardkit/monday-mcp/internal/workspace"
	"github.com/boardkit/monday-mcp/monday"
	"github.com/mark3labs/mcp-go/server"
)

const defaultConfigPath = "/config/config.yaml"

func main() {
	cfg := loadConfig()
	config.ApplyEnvOverrides(cfg)

	if cfg.API.Token == "" {
		log.Printf("warning: no monday.com API token configured (set MONDAY_TOKEN) — API calls will fail")
	}

	tokenBefore := cfg.Server.AuthToken
	token, err := config.EnsureAuthToken(cfg)
	if err != nil {
		log.Printf("warning: could not generate auth token: %v — running without authentication", err)
	} else if tokenBefore == "" {
		log.Printf("generated auth token (set MONDAY_MCP_AUTH_TOKEN to persist): %s", token)
	}

	// Open audit log writer if enabled.
	var auditLogger *safety.AuditLogger
	if cfg.Audit.Enabled {
		f, err := os.OpenFile(cfg.Audit.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			log.Printf("warning: could not open audit log %q: %v — audit logging disabled", cfg.Audit.LogPath, err)
		} else {
			auditLogger = safety.NewAuditLogger(f)
			defer f.Close()
		}
	}

	// Build safety components.
	boardFilter := safety.NewFilter(
		cfg.Safety.Boards.Allowlist,
		cfg.Safety.Boards.Denylist,
	)
	workspaceFilter := safety.NewFilter(
		cfg.Safety.Workspaces.Allowlist,
		cfg.Safety.Workspaces.Denylist,
	)

	boardConfirm := safety.NewConfirmationTracker(board.DestructiveTools)
	columnConfirm := safety.NewConfirmationTracker(column.DestructiveTools)
	groupConfirm := safety.NewConfirmationTracker(group.DestructiveTools)
	itemConfirm := safety.NewConfirmationTracker(item.DestructiveTools)
	updateConfirm := safety.NewConfirmationTracker(update.DestructiveTools)
	workspaceConfirm := safety.NewConfirmationTracker(workspace.DestructiveTools)

	// One client shared by every resource manager.
	client, err := monday.NewClient(cfg.API.ClientConfig())
	if err != nil {
		log.Fatalf("failed to create monday.com client: %v", err)
	}

	// Build MCP server.
	mcpServer := server.NewMCPServer(
		"monday-mcp",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	// Register all tools.
	var registrations []tools.Registration
	registrations = append(registrations, account.AccountTools(account.NewGraphQLManager(client), auditLogger)...)
	registrations = append(registrations, activitylog.ActivityLogTools(activitylog.NewGraphQLManager(client), auditLogger)...)
	registrations = append(registrations, board.BoardTools(board.NewGraphQLManager(client), boardFilter, boardConfirm, auditLogger)...)
	registrations = append(registrations, column.ColumnTools(column.NewGraphQLManager(client), columnConfirm, auditLogger)...)
	registrations = append(registrations, file.FileTools(file.NewGraphQLManager(client), auditLogger)...)
	registrations = append(registrations, group.GroupTools(group.NewGraphQLManager(client), groupConfirm, auditLogger)...)
	registrations = append(registrations, item.ItemTools(item.NewGraphQLManager(client), itemConfirm, auditLogger)...)
	registrations = append(registrations, subitem.SubitemTools(subitem.NewGraphQLManager(client), auditLogger)...)
	registrations = append(registrations, update.UpdateTools(update.NewGraphQLManager(client), updateConfirm, auditLogger)...)
	registrations = append(registrations, workspace.WorkspaceTools(workspace.NewGraphQLManager(client), workspaceFilter, workspaceConfirm, auditLogger)...)

	tools.RegisterAll(mcpServer, registrations)

	// Build Streamable HTTP server and wrap with auth middleware.
	httpHandler := server.NewStreamableHTTPServer(mcpServer)
	authMiddleware := auth.NewAuthMiddleware(cfg.Server.AuthToken)
	wrappedHandler := authMiddleware(httpHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           wrappedHandler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("monday-mcp listening on %s", addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	<-stop
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
	log.Println("server stopped")
}

// loadConfig attempts to read the config file from the path specified by
// MONDAY_MCP_CONFIG_PATH or the default /config/config.yaml. If the file
// cannot be read, DefaultConfig is returned.
func loadConfig() *config.Config {
	path := os.Getenv("MONDAY_MCP_CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Printf("could not load config from %q (%v), using defaults", path, err)
		return config.DefaultConfig()
	}

	log.Printf("loaded config from %q", path)
	return cfg
}
