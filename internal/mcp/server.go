package mcp

import (
	"context"
	"fmt"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/frametile/frametile/internal/config"
	"github.com/frametile/frametile/internal/layout"
	"github.com/frametile/frametile/internal/ui"
)

const (
	ServerName    = "frametile"
	ServerVersion = "0.1.0"
)

// Server exposes the layout engine over MCP so headless clients can
// drive a layout without a terminal. All tools run against one shared
// engine seeded from the configured canvas size.
type Server struct {
	mcpServer *mcpsdk.Server

	mu     sync.Mutex
	engine *layout.Engine
}

// NewServer creates an MCP server with a fresh single-frame layout.
func NewServer(cfg *config.Config) *Server {
	s := &Server{
		engine: layout.New(cfg.Canvas.Width, cfg.Canvas.Height, layout.Options{
			MinFrameSize: cfg.MinFrameSize,
			GuardSplits:  cfg.GuardMinSplit,
		}),
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "split_frame",
		Description: "Split the active frame in half. A horizontal split stacks the halves top/bottom; a vertical split places them side by side. Selection stays on the shrinking half; the new frame is appended at the end of the sequence.",
	}, s.handleSplitFrame)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "close_frame",
		Description: "Close the active frame and let its neighbors absorb the freed area. The last remaining frame cannot be closed.",
	}, s.handleCloseFrame)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "keep_active_only",
		Description: "Discard every frame except the active one and expand it to fill the whole canvas.",
	}, s.handleKeepActiveOnly)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "resize_frame",
		Description: "Resize the active frame by dx/dy canvas units, pushing its right and bottom neighbors. Deltas that would violate the minimum frame size are dropped per axis.",
	}, s.handleResizeFrame)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "select_frame",
		Description: "Move the active selection to the nearest frame in the given direction.",
	}, s.handleSelectFrame)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "resize_canvas",
		Description: "Resize the canvas and rescale every frame proportionally.",
	}, s.handleResizeCanvas)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_frames",
		Description: "Return the current frames, the active index and an ASCII snapshot of the layout.",
	}, s.handleListFrames)
}

func (s *Server) handleSplitFrame(_ context.Context, _ *mcpsdk.CallToolRequest, args SplitFrameInput) (*mcpsdk.CallToolResult, LayoutOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch args.Orientation {
	case "horizontal":
		s.engine.Apply(layout.SplitHorizontalCmd{})
	case "vertical":
		s.engine.Apply(layout.SplitVerticalCmd{})
	default:
		return nil, LayoutOutput{}, fmt.Errorf("unknown orientation %q; want horizontal or vertical", args.Orientation)
	}
	return nil, s.layoutOutput(false), nil
}

func (s *Server) handleCloseFrame(_ context.Context, _ *mcpsdk.CallToolRequest, _ CloseFrameInput) (*mcpsdk.CallToolResult, LayoutOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.engine.Apply(layout.CloseActiveCmd{})
	return nil, s.layoutOutput(false), nil
}

func (s *Server) handleKeepActiveOnly(_ context.Context, _ *mcpsdk.CallToolRequest, _ KeepActiveOnlyInput) (*mcpsdk.CallToolResult, LayoutOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.engine.Apply(layout.KeepActiveOnlyCmd{})
	return nil, s.layoutOutput(false), nil
}

func (s *Server) handleResizeFrame(_ context.Context, _ *mcpsdk.CallToolRequest, args ResizeFrameInput) (*mcpsdk.CallToolResult, LayoutOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.engine.Apply(layout.ResizeActiveByCmd{DX: args.DX, DY: args.DY})
	return nil, s.layoutOutput(false), nil
}

func (s *Server) handleSelectFrame(_ context.Context, _ *mcpsdk.CallToolRequest, args SelectFrameInput) (*mcpsdk.CallToolResult, LayoutOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir, err := parseDirection(args.Direction)
	if err != nil {
		return nil, LayoutOutput{}, err
	}
	s.engine.Apply(layout.SelectDirectionCmd{Dir: dir})
	return nil, s.layoutOutput(false), nil
}

func (s *Server) handleResizeCanvas(_ context.Context, _ *mcpsdk.CallToolRequest, args ResizeCanvasInput) (*mcpsdk.CallToolResult, LayoutOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if args.Width < 1 || args.Height < 1 {
		return nil, LayoutOutput{}, fmt.Errorf("canvas size %dx%d must be positive", args.Width, args.Height)
	}
	s.engine.Apply(layout.CanvasResizedCmd{Width: args.Width, Height: args.Height})
	return nil, s.layoutOutput(false), nil
}

func (s *Server) handleListFrames(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListFramesInput) (*mcpsdk.CallToolResult, LayoutOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return nil, s.layoutOutput(true), nil
}

// layoutOutput builds the shared tool response. Callers hold s.mu.
func (s *Server) layoutOutput(withSnapshot bool) LayoutOutput {
	frames := s.engine.Frames()
	active := s.engine.ActiveIndex()
	canvasW, canvasH := s.engine.CanvasSize()

	out := LayoutOutput{
		Frames:       make([]FrameInfo, len(frames)),
		ActiveIndex:  active,
		CanvasWidth:  canvasW,
		CanvasHeight: canvasH,
	}
	for i, f := range frames {
		out.Frames[i] = FrameInfo{
			Index:  i,
			X:      f.X,
			Y:      f.Y,
			Width:  f.Width,
			Height: f.Height,
			Active: i == active,
		}
	}
	if withSnapshot {
		out.Snapshot = ui.Snapshot(frames, active, canvasW, canvasH)
	}
	return out
}

func parseDirection(s string) (layout.Direction, error) {
	switch s {
	case "up":
		return layout.DirUp, nil
	case "down":
		return layout.DirDown, nil
	case "left":
		return layout.DirLeft, nil
	case "right":
		return layout.DirRight, nil
	}
	return 0, fmt.Errorf("unknown direction %q; want up, down, left or right", s)
}
