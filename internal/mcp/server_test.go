package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/frametile/frametile/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(config.DefaultConfig())
}

func TestSplitFrame_BothOrientations(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleSplitFrame(context.Background(), nil, SplitFrameInput{Orientation: "horizontal"})
	if err != nil {
		t.Fatalf("split horizontal: %v", err)
	}
	if len(out.Frames) != 2 {
		t.Fatalf("frame count = %d, want 2", len(out.Frames))
	}
	// Default canvas is 800x600; a horizontal split stacks 300-high halves.
	if out.Frames[0].Height != 300 || out.Frames[1].Height != 300 {
		t.Errorf("heights = %d/%d, want 300/300", out.Frames[0].Height, out.Frames[1].Height)
	}
	// Selection stays on the shrinking half; the new frame is appended.
	if out.ActiveIndex != 0 || !out.Frames[0].Active {
		t.Errorf("active index = %d, want 0", out.ActiveIndex)
	}
	if out.Frames[1].Active {
		t.Error("appended frame marked active, want selection on the original half")
	}

	_, out, err = s.handleSplitFrame(context.Background(), nil, SplitFrameInput{Orientation: "vertical"})
	if err != nil {
		t.Fatalf("split vertical: %v", err)
	}
	if len(out.Frames) != 3 {
		t.Fatalf("frame count = %d, want 3", len(out.Frames))
	}
	if out.Frames[2].Width != 400 {
		t.Errorf("new frame width = %d, want 400", out.Frames[2].Width)
	}
}

func TestSplitFrame_RejectsUnknownOrientation(t *testing.T) {
	s := newTestServer(t)
	_, _, err := s.handleSplitFrame(context.Background(), nil, SplitFrameInput{Orientation: "diagonal"})
	if err == nil {
		t.Fatal("expected error for unknown orientation")
	}
	if !strings.Contains(err.Error(), "diagonal") {
		t.Errorf("error %q does not name the bad orientation", err)
	}
}

func TestCloseFrame_NeighborAbsorbsArea(t *testing.T) {
	s := newTestServer(t)
	if _, _, err := s.handleSplitFrame(context.Background(), nil, SplitFrameInput{Orientation: "vertical"}); err != nil {
		t.Fatalf("split: %v", err)
	}

	_, out, err := s.handleCloseFrame(context.Background(), nil, CloseFrameInput{})
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if len(out.Frames) != 1 {
		t.Fatalf("frame count = %d, want 1", len(out.Frames))
	}
	f := out.Frames[0]
	if f.X != 0 || f.Y != 0 || f.Width != 800 || f.Height != 600 {
		t.Errorf("surviving frame = %+v, want full canvas", f)
	}
}

func TestCloseFrame_LastFrameSurvives(t *testing.T) {
	s := newTestServer(t)
	_, out, err := s.handleCloseFrame(context.Background(), nil, CloseFrameInput{})
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if len(out.Frames) != 1 {
		t.Errorf("frame count = %d, want 1", len(out.Frames))
	}
}

func TestKeepActiveOnly_CollapsesLayout(t *testing.T) {
	s := newTestServer(t)
	for i := 0; i < 3; i++ {
		if _, _, err := s.handleSplitFrame(context.Background(), nil, SplitFrameInput{Orientation: "vertical"}); err != nil {
			t.Fatalf("split %d: %v", i, err)
		}
	}

	_, out, err := s.handleKeepActiveOnly(context.Background(), nil, KeepActiveOnlyInput{})
	if err != nil {
		t.Fatalf("keep_active_only: %v", err)
	}
	if len(out.Frames) != 1 || out.ActiveIndex != 0 {
		t.Fatalf("frames = %d active = %d, want 1/0", len(out.Frames), out.ActiveIndex)
	}
	if out.Frames[0].Width != 800 || out.Frames[0].Height != 600 {
		t.Errorf("frame = %+v, want full canvas", out.Frames[0])
	}
}

func TestResizeFrame_PushesNeighbor(t *testing.T) {
	s := newTestServer(t)
	if _, _, err := s.handleSplitFrame(context.Background(), nil, SplitFrameInput{Orientation: "vertical"}); err != nil {
		t.Fatalf("split: %v", err)
	}

	// The left half is still selected after the split.
	_, out, err := s.handleResizeFrame(context.Background(), nil, ResizeFrameInput{DX: 50})
	if err != nil {
		t.Fatalf("resize: %v", err)
	}
	if out.Frames[0].Width != 450 || out.Frames[1].Width != 350 {
		t.Errorf("widths = %d/%d, want 450/350", out.Frames[0].Width, out.Frames[1].Width)
	}
	if out.Frames[1].X != 450 {
		t.Errorf("neighbor X = %d, want 450", out.Frames[1].X)
	}
}

func TestSelectFrame_ValidatesDirection(t *testing.T) {
	s := newTestServer(t)
	_, _, err := s.handleSelectFrame(context.Background(), nil, SelectFrameInput{Direction: "sideways"})
	if err == nil {
		t.Fatal("expected error for unknown direction")
	}
}

func TestSelectFrame_MovesActive(t *testing.T) {
	s := newTestServer(t)
	if _, _, err := s.handleSplitFrame(context.Background(), nil, SplitFrameInput{Orientation: "vertical"}); err != nil {
		t.Fatalf("split: %v", err)
	}

	_, out, err := s.handleSelectFrame(context.Background(), nil, SelectFrameInput{Direction: "right"})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if out.ActiveIndex != 1 {
		t.Errorf("active index = %d, want 1", out.ActiveIndex)
	}
}

func TestResizeCanvas_RescalesAndValidates(t *testing.T) {
	s := newTestServer(t)
	if _, _, err := s.handleSplitFrame(context.Background(), nil, SplitFrameInput{Orientation: "vertical"}); err != nil {
		t.Fatalf("split: %v", err)
	}

	_, out, err := s.handleResizeCanvas(context.Background(), nil, ResizeCanvasInput{Width: 1600, Height: 1200})
	if err != nil {
		t.Fatalf("resize_canvas: %v", err)
	}
	if out.CanvasWidth != 1600 || out.CanvasHeight != 1200 {
		t.Errorf("canvas = %dx%d, want 1600x1200", out.CanvasWidth, out.CanvasHeight)
	}
	if out.Frames[0].Width != 800 || out.Frames[1].Width != 800 {
		t.Errorf("widths = %d/%d, want 800/800", out.Frames[0].Width, out.Frames[1].Width)
	}

	if _, _, err := s.handleResizeCanvas(context.Background(), nil, ResizeCanvasInput{Width: 0, Height: 600}); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestListFrames_IncludesSnapshot(t *testing.T) {
	s := newTestServer(t)
	if _, _, err := s.handleSplitFrame(context.Background(), nil, SplitFrameInput{Orientation: "horizontal"}); err != nil {
		t.Fatalf("split: %v", err)
	}

	_, out, err := s.handleListFrames(context.Background(), nil, ListFramesInput{})
	if err != nil {
		t.Fatalf("list_frames: %v", err)
	}
	if len(out.Frames) != 2 {
		t.Fatalf("frame count = %d, want 2", len(out.Frames))
	}
	if out.Snapshot == "" {
		t.Fatal("snapshot is empty")
	}
	if !strings.Contains(out.Snapshot, "┌") {
		t.Errorf("snapshot missing borders:\n%s", out.Snapshot)
	}
}
