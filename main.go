// Smithsonian MCP Server - A Model Context Protocol server for the
// Smithsonian Open Access API. Provides tools for searching the collection,
// retrieving item metadata, and listing facet terms.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AlexLin1234/smithsonian-mcp-server/internal/openaccess"
	"github.com/AlexLin1234/smithsonian-mcp-server/tools"
	"github.com/AlexLin1234/smithsonian-mcp-server/tracing"
)

const (
	ServerName    = "smithsonian-mcp-server"
	ServerVersion = "1.0.0"
)

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	}))

	// Load configuration from environment
	config, err := openaccess.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Initialize tracing (no-op unless OTEL_ENABLED or an OTLP endpoint is set)
	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	// Optional Prometheus endpoint; stdio transport leaves no HTTP surface
	// otherwise, so metrics need their own listener.
	if addr := os.Getenv("METRICS_ADDR"); addr != "" {
		go serveMetrics(addr, logger)
	}

	// Create Open Access client
	client := openaccess.NewClient(config, openaccess.WithLogger(logger))

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger: logger,
		Instructions: `Smithsonian MCP Server provides tools for exploring the Smithsonian Open Access collection.

Available tools:
- search_collection: Search museum objects, artworks, and specimens by keyword
- get_item: Get full metadata for one item by its EDAN record ID
- get_category_terms: List controlled-vocabulary terms for a facet category

Typical flow: search_collection to find items, then get_item with an ID from
the results. Use get_category_terms to discover exact facet values for fielded
queries like "topic:Aeronautics" or "unit_code:NASM".

Configure via environment variables:
- SMITHSONIAN_API_KEY: api.data.gov API key (required, free at https://api.data.gov/signup/)
- SMITHSONIAN_TIMEOUT: Per-request timeout (default 30s)`,
	})

	// Register all tools
	registry := tools.NewHandlerRegistry(client, logger)
	registry.RegisterAll(server)

	// Run server on stdio transport
	logger.Info("Starting Smithsonian MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"base_url", config.BaseURL,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// serveMetrics exposes Prometheus metrics on a dedicated listener.
func serveMetrics(addr string, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logger.Info("Serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("Metrics server failed", "error", err)
	}
}

// logLevel reads LOG_LEVEL from the environment, defaulting to info.
func logLevel() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
