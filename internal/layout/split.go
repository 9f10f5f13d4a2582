package layout

// SplitHorizontal halves the active frame along its height. The active
// frame keeps the top half; a new frame for the bottom half is appended
// at the end of the sequence. Selection stays on the shrinking half.
func (e *Engine) SplitHorizontal() {
	frame := e.frames[e.active]
	newHeight := frame.Height / 2
	if e.guardSplits && newHeight < e.minFrameSize {
		return
	}
	e.frames[e.active].Height = newHeight
	e.frames = append(e.frames, Frame{
		X:      frame.X,
		Y:      frame.Y + newHeight,
		Width:  frame.Width,
		Height: frame.Height - newHeight,
	})
}

// SplitVertical halves the active frame along its width. The active frame
// keeps the left half; a new frame for the right half is appended at the
// end of the sequence.
func (e *Engine) SplitVertical() {
	frame := e.frames[e.active]
	newWidth := frame.Width / 2
	if e.guardSplits && newWidth < e.minFrameSize {
		return
	}
	e.frames[e.active].Width = newWidth
	e.frames = append(e.frames, Frame{
		X:      frame.X + newWidth,
		Y:      frame.Y,
		Width:  frame.Width - newWidth,
		Height: frame.Height,
	})
}

// CloseActive removes the active frame and reflows its neighbors into the
// vacated rectangle. Closing the last frame is a no-op.
func (e *Engine) CloseActive() {
	if len(e.frames) <= 1 {
		return
	}

	closed := e.frames[e.active]
	e.frames = append(e.frames[:e.active], e.frames[e.active+1:]...)

	// Scan for frames sharing a full edge with the closed rectangle.
	var horizontal, vertical []int
	for idx, frame := range e.frames {
		horizontallyAdjacent := frame.Y == closed.Y &&
			frame.Height == closed.Height &&
			(frame.Right() == closed.X || closed.Right() == frame.X)

		verticallyAdjacent := frame.X == closed.X &&
			frame.Width == closed.Width &&
			(frame.Bottom() == closed.Y || closed.Bottom() == frame.Y)

		if horizontallyAdjacent {
			horizontal = append(horizontal, idx)
		} else if verticallyAdjacent {
			vertical = append(vertical, idx)
		}
	}

	switch {
	case len(horizontal) > 0:
		// Horizontal neighbors win the tie: distribute the freed width
		// evenly, remainder to the first frame in sequence order.
		share := closed.Width / len(horizontal)
		remainder := closed.Width % len(horizontal)

		for i, idx := range horizontal {
			frame := &e.frames[idx]
			extra := 0
			if i == 0 {
				extra = remainder
			}
			if frame.X > closed.X {
				frame.X -= share
				if i == 0 {
					frame.X -= remainder
				}
			}
			frame.Width += share + extra
		}

	case len(vertical) > 0:
		share := closed.Height / len(vertical)
		remainder := closed.Height % len(vertical)

		for i, idx := range vertical {
			frame := &e.frames[idx]
			extra := 0
			if i == 0 {
				extra = remainder
			}
			if frame.Y > closed.Y {
				frame.Y -= share
				if i == 0 {
					frame.Y -= remainder
				}
			}
			frame.Height += share + extra
		}

	default:
		// No edge-adjacent frame remains (earlier reflows can fragment
		// adjacency). Grow the frame whose center is nearest to the
		// closed frame's center to the union of the two rectangles.
		nearest := 0
		minDistance := -1
		for idx, frame := range e.frames {
			dx := frame.CenterX() - closed.CenterX()
			dy := frame.CenterY() - closed.CenterY()
			distance := dx*dx + dy*dy
			if minDistance < 0 || distance < minDistance {
				minDistance = distance
				nearest = idx
			}
		}

		own := e.frames[nearest]
		grown := own.Union(closed)
		e.frames[nearest] = e.trimUnionOverlap(grown, own, closed, nearest)
	}

	e.adjustFramesToCanvas(e.canvasWidth, e.canvasHeight)

	if e.active > len(e.frames)-1 {
		e.active = len(e.frames) - 1
	}
}

// trimUnionOverlap shrinks a union-grown rectangle back toward its
// contributing rectangles when the bounding box slack would overlap
// another frame. A trim is accepted only if the shrunk rectangle still
// covers both contributing rectangles; when no such trim exists the
// overlap is left for the repair pass to paper over.
func (e *Engine) trimUnionOverlap(grown, own, closed Frame, skip int) Frame {
	for idx, other := range e.frames {
		if idx == skip || !grown.Intersects(other) {
			continue
		}

		candidates := []Frame{
			// Pull the left edge right, past the intruder.
			{X: other.Right(), Y: grown.Y, Width: grown.Right() - other.Right(), Height: grown.Height},
			// Pull the right edge left.
			{X: grown.X, Y: grown.Y, Width: other.X - grown.X, Height: grown.Height},
			// Pull the top edge down.
			{X: grown.X, Y: other.Bottom(), Width: grown.Width, Height: grown.Bottom() - other.Bottom()},
			// Pull the bottom edge up.
			{X: grown.X, Y: grown.Y, Width: grown.Width, Height: other.Y - grown.Y},
		}
		for _, c := range candidates {
			if c.Width > 0 && c.Height > 0 && c.covers(own) && c.covers(closed) {
				grown = c
				break
			}
		}
	}
	return grown
}

// KeepActiveOnly replaces the whole sequence with a single frame covering
// the entire canvas and resets the selection.
func (e *Engine) KeepActiveOnly() {
	e.frames = []Frame{{
		X:      0,
		Y:      0,
		Width:  e.canvasWidth,
		Height: e.canvasHeight,
	}}
	e.active = 0
}
