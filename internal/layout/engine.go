package layout

// DefaultMinFrameSize is the smallest width or height a frame may be
// resized to, in canvas units.
const DefaultMinFrameSize = 50

// Options configures engine behavior.
type Options struct {
	// MinFrameSize is the minimum frame width/height enforced by resize
	// operations. Zero selects DefaultMinFrameSize.
	MinFrameSize int

	// GuardSplits rejects splits that would produce a half smaller than
	// MinFrameSize. Off by default: unguarded splits allow arbitrarily
	// small tiles.
	GuardSplits bool
}

// Engine partitions a rectangular canvas into non-overlapping frames and
// re-solves the partition after every mutation. After every operation the
// union of all frames exactly covers the canvas with no interior overlap,
// and the active index is valid.
type Engine struct {
	frames       []Frame
	active       int
	canvasWidth  int
	canvasHeight int
	minFrameSize int
	guardSplits  bool
}

// New creates an engine with a single frame covering the whole canvas.
func New(canvasWidth, canvasHeight int, opts Options) *Engine {
	minSize := opts.MinFrameSize
	if minSize <= 0 {
		minSize = DefaultMinFrameSize
	}
	return &Engine{
		frames: []Frame{{
			X:      0,
			Y:      0,
			Width:  canvasWidth,
			Height: canvasHeight,
		}},
		active:       0,
		canvasWidth:  canvasWidth,
		canvasHeight: canvasHeight,
		minFrameSize: minSize,
		guardSplits:  opts.GuardSplits,
	}
}

// Frames returns a copy of the current frame sequence in stable order.
func (e *Engine) Frames() []Frame {
	return append([]Frame(nil), e.frames...)
}

// ActiveIndex returns the index of the active frame.
func (e *Engine) ActiveIndex() int { return e.active }

// ActiveFrame returns the active frame's rectangle.
func (e *Engine) ActiveFrame() Frame { return e.frames[e.active] }

// CanvasSize returns the current canvas dimensions.
func (e *Engine) CanvasSize() (width, height int) {
	return e.canvasWidth, e.canvasHeight
}

// MinFrameSize returns the configured minimum frame dimension.
func (e *Engine) MinFrameSize() int { return e.minFrameSize }

// FrameCount returns the number of frames.
func (e *Engine) FrameCount() int { return len(e.frames) }
