package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/aretw0/htmlpp"
	"github.com/aretw0/htmlpp/pkg/strip"
	"github.com/aretw0/htmlpp/pkg/tail"
	"github.com/aretw0/htmlpp/pkg/trim"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

// TrimsURI is the resource holding the active trim catalog.
const TrimsURI = "htmlpp://trims"

// TailResult is the structured output of the common_tail tool.
type TailResult struct {
	W     int64  `json:"w" jsonschema_description:"First operand"`
	H     int64  `json:"h" jsonschema_description:"Second operand"`
	Tail  string `json:"tail" jsonschema_description:"Largest power of two both operands agree modulo, in decimal (may exceed 64 bits)"`
	Shift uint   `json:"shift" jsonschema_description:"Number of shared low bits"`
}

// Server exposes the htmlpp utilities as MCP tools.
type Server struct {
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		logger:    logger,
		mcpServer: server.NewMCPServer("htmlpp-mcp", htmlpp.Version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("strip_debug",
		mcp.WithDescription("Remove @@DEBUG ... @@END regions and their marker lines from a text document."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Document to filter")),
	), s.handleStrip)

	s.mcpServer.AddTool(mcp.NewTool("render_trim",
		mcp.WithDescription("Render a trim pattern as alternating space/asterisk runs, repeated until it reaches the minimum length."),
		mcp.WithArray("pattern", mcp.Required(),
			mcp.Description("Run lengths, e.g. [1,2,1]. A comma separated string is accepted too."),
			mcp.Items(map[string]any{"type": "integer", "minimum": 1}),
		),
		mcp.WithNumber("length", mcp.Description("Minimum length (default 64)")),
	), s.handleRenderTrim)

	s.mcpServer.AddTool(mcp.NewTool("common_tail",
		mcp.WithDescription("Largest power of two such that both integers agree on all lower bits."),
		mcp.WithNumber("w", mcp.Required(), mcp.Description("Non-negative integer")),
		mcp.WithNumber("h", mcp.Required(), mcp.Description("Non-negative integer")),
		mcp.WithOutputSchema[TailResult](),
	), s.handleCommonTail)

	s.mcpServer.AddTool(mcp.NewTool("list_trims",
		mcp.WithDescription("List the patterns of a trim catalog."),
		mcp.WithString("catalog", mcp.Enum(trim.CatalogActive, trim.CatalogBasic), mcp.Description("Catalog name (default active)")),
	), s.handleListTrims)
}

type stripArgs struct {
	Text string `mapstructure:"text"`
}

func (s *Server) handleStrip(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args stripArgs
	if err := decodeArgs(request.GetArguments(), &args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var out strings.Builder
	_, err := strip.New(strip.WithLogger(s.logger)).Run(ctx, strings.NewReader(args.Text), &out)

	var me *strip.MarkerError
	if errors.As(err, &me) {
		s.logger.Warn("MCP strip_debug: Malformed marker", "line_no", me.LineNo)
		return mcp.NewToolResultError(me.Error()), nil
	}
	if err != nil {
		return nil, fmt.Errorf("strip failed: %w", err)
	}
	return mcp.NewToolResultText(out.String()), nil
}

type renderTrimArgs struct {
	Pattern trim.Pattern `mapstructure:"pattern"`
	Length  *int         `mapstructure:"length"`
}

func (s *Server) handleRenderTrim(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args renderTrimArgs
	if err := decodeArgs(request.GetArguments(), &args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := args.Pattern.Validate(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	length := trim.DefaultLength
	if args.Length != nil {
		if err := trim.CheckLength(*args.Length); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		length = *args.Length
	}
	return mcp.NewToolResultText(trim.Render(args.Pattern, length)), nil
}

type commonTailArgs struct {
	W int64 `mapstructure:"w"`
	H int64 `mapstructure:"h"`
}

func (s *Server) handleCommonTail(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args commonTailArgs
	if err := decodeArgs(request.GetArguments(), &args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if args.W < 0 || args.H < 0 {
		return mcp.NewToolResultError("w and h must be non-negative"), nil
	}

	w, h := uint64(args.W), uint64(args.H)
	res := TailResult{W: args.W, H: args.H, Tail: tail.CommonTail(w, h).String(), Shift: tail.Shift(w, h)}
	return mcp.NewToolResultStructured(res, fmt.Sprintf("%d %d %s", res.W, res.H, res.Tail)), nil
}

type listTrimsArgs struct {
	Catalog string `mapstructure:"catalog"`
}

func (s *Server) handleListTrims(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args listTrimsArgs
	if err := decodeArgs(request.GetArguments(), &args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	patterns, err := trim.Lookup(args.Catalog)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	jsonBytes, _ := json.Marshal(patterns)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(TrimsURI, "Active Trim Catalog",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(trim.Catalog())
		if err != nil {
			return nil, fmt.Errorf("failed to encode catalog: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      TrimsURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}

var patternType = reflect.TypeOf(trim.Pattern{})

// decodeArgs maps loosely typed JSON arguments onto a struct. JSON numbers arrive as
// float64 and patterns may be sent as "1,2,1".
func decodeArgs(args map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       stringToPatternHook,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func stringToPatternHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != patternType {
		return data, nil
	}
	return trim.ParsePattern(data.(string))
}
