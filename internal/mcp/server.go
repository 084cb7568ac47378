// Package mcp exposes the assessment engine as an MCP tool server over
// stdio. It owns one catalog and one session; a mutex serializes tool calls
// so every engine operation runs to completion before the next event.
package mcp

import (
	"context"
	"fmt"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/boardgov/govscore/internal/catalog"
	"github.com/boardgov/govscore/internal/session"
)

// Config holds MCP server configuration.
type Config struct {
	CatalogPath string
	AdminMode   bool
}

// Server wraps the MCP SDK server around one assessment session.
type Server struct {
	mcpServer *mcpsdk.Server

	mu          sync.Mutex
	cat         *catalog.Catalog
	sess        *session.Session
	admin       bool
	catalogPath string
}

// New creates an MCP server with a loaded catalog and an empty session.
func New(cfg Config) (*Server, error) {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	s := &Server{
		cat:         cat,
		sess:        session.New(cat),
		admin:       cfg.AdminMode,
		catalogPath: cfg.CatalogPath,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    "govscore",
			Version: "1.0.0",
		},
		nil,
	)

	s.registerTools()
	return s, nil
}

// Run starts the MCP server on stdio transport. Blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// ReloadCatalog re-reads the catalog file and rebinds the session, pruning
// ratings and locks whose action codes no longer resolve. Returns the number
// of pruned ratings.
func (s *Server) ReloadCatalog() (int, error) {
	cat, err := catalog.Load(s.catalogPath)
	if err != nil {
		return 0, fmt.Errorf("failed to reload catalog: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cat = cat
	return s.sess.Rebind(cat), nil
}

// registerTools adds all govscore tools to the MCP server.
func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "govscore_rate",
		Description: "Rate a governance action at a maturity level (0-4). Locked actions are rejected unless admin mode is on.",
	}, s.handleRate)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "govscore_clear",
		Description: "Remove the rating for a governance action. No-op when unrated.",
	}, s.handleClear)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "govscore_lock",
		Description: "Lock a rated action against further changes. Fails when the action has no rating.",
	}, s.handleLock)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "govscore_unlock",
		Description: "Remove an action from the lock set. Idempotent.",
	}, s.handleUnlock)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "govscore_reset",
		Description: "Clear every rating and every lock, starting the assessment over.",
	}, s.handleReset)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "govscore_prefill",
		Description: "Rate every unlocked action at a baseline level (default 1). Locked actions keep their value.",
	}, s.handlePrefill)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "govscore_metadata",
		Description: "Set assessment metadata: organisation, board/committee, date, sector. Empty fields are left unchanged.",
	}, s.handleMetadata)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "govscore_admin",
		Description: "Toggle administrative mode, which permits rating locked actions.",
	}, s.handleAdmin)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "govscore_summary",
		Description: "Compute overall and per-domain maturity statistics, bands, completion, and the recommendation.",
	}, s.handleSummary)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "govscore_report",
		Description: "Build the board report: chosen levels and follow-on actions grouped by domain.",
	}, s.handleReport)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "govscore_export",
		Description: "Export the assessment as CSV, with a suggested filename.",
	}, s.handleExport)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "govscore_import",
		Description: "Import an assessment CSV, replacing all current ratings, locks, and metadata.",
	}, s.handleImport)
}
