package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	govmcp "github.com/boardgov/govscore/internal/mcp"
)

var (
	mcpCatalog string
	mcpWatch   bool
	mcpAdmin   bool
)

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().StringVar(&mcpCatalog, "catalog", "", "Path to catalog YAML/JSON (built-in model when omitted)")
	mcpCmd.Flags().BoolVar(&mcpWatch, "watch", false, "Hot-reload the catalog when the file changes")
	mcpCmd.Flags().BoolVar(&mcpAdmin, "admin", false, "Start with administrative mode enabled")
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP tool server for UI integration",
	Long: "Runs govscore as an MCP (Model Context Protocol) server over stdio.\n" +
		"Exposes the assessment engine as tools: rate, clear, lock, unlock, reset,\n" +
		"prefill, metadata, admin, summary, report, export, import.",
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	srv, err := govmcp.New(govmcp.Config{
		CatalogPath: mcpCatalog,
		AdminMode:   mcpAdmin,
	})
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nShutting down MCP server...")
		cancel()
	}()

	if mcpWatch {
		reloader, err := govmcp.NewReloader(srv, mcpCatalog)
		if err != nil {
			return fmt.Errorf("failed to watch catalog: %w", err)
		}
		go func() {
			if err := reloader.Run(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "catalog watcher stopped: %v\n", err)
			}
		}()
	}

	fmt.Fprintln(os.Stderr, "govscore MCP server running on stdio")
	if mcpAdmin {
		fmt.Fprintln(os.Stderr, "Administrative mode: ON")
	}

	return srv.Run(ctx)
}
