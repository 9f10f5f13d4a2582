package layout

// Command is a fully resolved engine mutation. Input adapters translate
// device events into commands; every adapter feeds the engine through
// Apply so each operation is a single state transition.
type Command interface {
	isCommand()
}

// SplitHorizontalCmd splits the active frame along its height.
type SplitHorizontalCmd struct{}

// SplitVerticalCmd splits the active frame along its width.
type SplitVerticalCmd struct{}

// CloseActiveCmd closes the active frame and reflows its neighbors.
type CloseActiveCmd struct{}

// KeepActiveOnlyCmd discards all frames but one full-canvas frame.
type KeepActiveOnlyCmd struct{}

// ResizeActiveByCmd resizes the active frame by accumulated deltas.
type ResizeActiveByCmd struct {
	DX int
	DY int
}

// SelectDirectionCmd moves the selection toward a direction.
type SelectDirectionCmd struct {
	Dir Direction
}

// CanvasResizedCmd rescales the layout to new canvas dimensions.
type CanvasResizedCmd struct {
	Width  int
	Height int
}

func (SplitHorizontalCmd) isCommand() {}
func (SplitVerticalCmd) isCommand()   {}
func (CloseActiveCmd) isCommand()     {}
func (KeepActiveOnlyCmd) isCommand()  {}
func (ResizeActiveByCmd) isCommand()  {}
func (SelectDirectionCmd) isCommand() {}
func (CanvasResizedCmd) isCommand()   {}

// Apply executes one command against the engine.
func (e *Engine) Apply(cmd Command) {
	switch c := cmd.(type) {
	case SplitHorizontalCmd:
		e.SplitHorizontal()
	case SplitVerticalCmd:
		e.SplitVertical()
	case CloseActiveCmd:
		e.CloseActive()
	case KeepActiveOnlyCmd:
		e.KeepActiveOnly()
	case ResizeActiveByCmd:
		e.ResizeActiveBy(c.DX, c.DY)
	case SelectDirectionCmd:
		e.SelectDirection(c.Dir)
	case CanvasResizedCmd:
		e.ResizeCanvas(c.Width, c.Height)
	}
}
