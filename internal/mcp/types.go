package mcp

// FrameInfo describes one frame in tool output.
type FrameInfo struct {
	Index  int  `json:"index"`
	X      int  `json:"x"`
	Y      int  `json:"y"`
	Width  int  `json:"width"`
	Height int  `json:"height"`
	Active bool `json:"active"`
}

// LayoutOutput is returned by every tool so the client always sees the
// resulting geometry.
type LayoutOutput struct {
	Frames       []FrameInfo `json:"frames"`
	ActiveIndex  int         `json:"active_index"`
	CanvasWidth  int         `json:"canvas_width"`
	CanvasHeight int         `json:"canvas_height"`
	Snapshot     string      `json:"snapshot,omitempty"`
}

// SplitFrameInput is the input for the split_frame tool.
type SplitFrameInput struct {
	Orientation string `json:"orientation" jsonschema:"required,Split orientation: horizontal stacks the halves top/bottom, vertical places them side by side"`
}

// CloseFrameInput is the input for the close_frame tool.
type CloseFrameInput struct{}

// KeepActiveOnlyInput is the input for the keep_active_only tool.
type KeepActiveOnlyInput struct{}

// ResizeFrameInput is the input for the resize_frame tool.
type ResizeFrameInput struct {
	DX int `json:"dx,omitempty" jsonschema:"Width change in canvas units; positive grows the active frame rightward"`
	DY int `json:"dy,omitempty" jsonschema:"Height change in canvas units; positive grows the active frame downward"`
}

// SelectFrameInput is the input for the select_frame tool.
type SelectFrameInput struct {
	Direction string `json:"direction" jsonschema:"required,Direction to move the active selection: up, down, left or right"`
}

// ResizeCanvasInput is the input for the resize_canvas tool.
type ResizeCanvasInput struct {
	Width  int `json:"width" jsonschema:"required,New canvas width in units"`
	Height int `json:"height" jsonschema:"required,New canvas height in units"`
}

// ListFramesInput is the input for the list_frames tool.
type ListFramesInput struct{}
