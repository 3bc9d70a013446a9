package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/aretw0/htmlpp/pkg/adapters/mcp"
)

// MCP runs the MCP server over the given transport ("stdio" or "sse").
func (e *Env) MCP(ctx context.Context, transport string, port int) error {
	srv := mcp.NewServer(e.Logger)

	switch transport {
	case "stdio":
		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)
		e.Logger.Info("Starting htmlpp MCP Server (Stdio)...")
		return srv.ServeStdio()
	case "sse":
		e.Logger.Info("Starting htmlpp MCP Server (SSE)", "port", port)
		if err := srv.ServeSSE(ctx, port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		e.Logger.Info("MCP Server stopped gracefully", "cause", shutdownCause(ctx))
		return nil
	default:
		return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", transport)
	}
}
