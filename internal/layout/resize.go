package layout

// ResizeActiveBy grows or shrinks the active frame by the given deltas,
// propagating the change to the frames touching its right and bottom
// edges. Each axis is guarded independently: a delta that would push the
// active frame or any affected neighbor below the minimum size is
// silently dropped. A no-op with a single frame or zero deltas.
func (e *Engine) ResizeActiveBy(dx, dy int) {
	if len(e.frames) <= 1 || (dx == 0 && dy == 0) {
		return
	}

	active := e.frames[e.active]

	// Frames touching the active frame's right/bottom edge with nonzero
	// overlap along the perpendicular axis absorb the resize.
	var rightNeighbors, bottomNeighbors []int
	for idx, frame := range e.frames {
		if idx == e.active {
			continue
		}
		if frame.X == active.Right() && frame.overlapY(active) > 0 {
			rightNeighbors = append(rightNeighbors, idx)
		}
		if frame.Y == active.Bottom() && frame.overlapX(active) > 0 {
			bottomNeighbors = append(bottomNeighbors, idx)
		}
	}

	// A delta on an axis with no neighbor has nothing to absorb it and
	// would push the frame past the canvas edge, so it is dropped.
	if dx != 0 && len(rightNeighbors) > 0 && active.Width+dx >= e.minFrameSize && e.allWiderThan(rightNeighbors, dx) {
		e.frames[e.active].Width = active.Width + dx
		for _, idx := range rightNeighbors {
			e.frames[idx].X += dx
			e.frames[idx].Width -= dx
		}
	}

	if dy != 0 && len(bottomNeighbors) > 0 && active.Height+dy >= e.minFrameSize && e.allTallerThan(bottomNeighbors, dy) {
		e.frames[e.active].Height = active.Height + dy
		for _, idx := range bottomNeighbors {
			e.frames[idx].Y += dy
			e.frames[idx].Height -= dy
		}
	}

	// Safety net: correctly adjacent resize should not leave gaps, but
	// full coverage is re-established unconditionally.
	e.adjustFramesToCanvas(e.canvasWidth, e.canvasHeight)
}

func (e *Engine) allWiderThan(indices []int, dx int) bool {
	for _, idx := range indices {
		if e.frames[idx].Width-dx < e.minFrameSize {
			return false
		}
	}
	return true
}

func (e *Engine) allTallerThan(indices []int, dy int) bool {
	for _, idx := range indices {
		if e.frames[idx].Height-dy < e.minFrameSize {
			return false
		}
	}
	return true
}

// ResizeCanvas rescales every frame proportionally to the new canvas
// dimensions. Truncation error is resolved in favor of exact coverage
// over proportional accuracy by the repair pass.
func (e *Engine) ResizeCanvas(newWidth, newHeight int) {
	if newWidth <= 0 || newHeight <= 0 {
		return
	}

	widthRatio := float64(newWidth) / float64(e.canvasWidth)
	heightRatio := float64(newHeight) / float64(e.canvasHeight)

	for i := range e.frames {
		frame := &e.frames[i]
		frame.X = int(float64(frame.X) * widthRatio)
		frame.Y = int(float64(frame.Y) * heightRatio)
		frame.Width = int(float64(frame.Width) * widthRatio)
		frame.Height = int(float64(frame.Height) * heightRatio)

		// A frame truncated to zero extent covers nothing yet still
		// satisfies the neighbor checks in the repair pass, leaving the
		// strip it vacated permanently uncovered. Every frame keeps at
		// least one unit per axis; a shrink below the frame count may
		// stack frames, but the canvas stays covered.
		if frame.Width < 1 {
			frame.Width = 1
		}
		if frame.Height < 1 {
			frame.Height = 1
		}
	}

	e.adjustFramesToCanvas(newWidth, newHeight)

	e.canvasWidth = newWidth
	e.canvasHeight = newHeight
}

// adjustFramesToCanvas restores full canvas coverage by growing frames,
// never shrinking or repositioning them. It first extends the rightmost
// and bottommost frames to the canvas edges, then iterates to a fixed
// point: any frame short of a canvas edge with no neighbor starting at
// that edge is extended up to the nearest frame beyond it, or to the
// canvas edge when nothing lies beyond.
func (e *Engine) adjustFramesToCanvas(width, height int) {
	if len(e.frames) == 0 {
		return
	}

	maxRight := 0
	maxBottom := 0
	for _, frame := range e.frames {
		if frame.Right() > maxRight {
			maxRight = frame.Right()
		}
		if frame.Bottom() > maxBottom {
			maxBottom = frame.Bottom()
		}
	}

	for i := range e.frames {
		if e.frames[i].Right() == maxRight && maxRight < width {
			e.frames[i].Width = width - e.frames[i].X
		}
	}
	for i := range e.frames {
		if e.frames[i].Bottom() == maxBottom && maxBottom < height {
			e.frames[i].Height = height - e.frames[i].Y
		}
	}

	for changed := true; changed; {
		changed = false

		for i := range e.frames {
			frame := e.frames[i]
			if frame.Right() >= width {
				continue
			}
			if e.hasRightNeighbor(i) {
				continue
			}
			e.frames[i].Width = e.nextEdgeRight(i, width) - frame.X
			changed = true
			break
		}

		for i := range e.frames {
			frame := e.frames[i]
			if frame.Bottom() >= height {
				continue
			}
			if e.hasBottomNeighbor(i) {
				continue
			}
			e.frames[i].Height = e.nextEdgeBelow(i, height) - frame.Y
			changed = true
			break
		}
	}
}

// hasRightNeighbor reports whether some frame starts exactly at frame i's
// right edge with overlapping vertical extent.
func (e *Engine) hasRightNeighbor(i int) bool {
	frame := e.frames[i]
	for j, other := range e.frames {
		if i == j {
			continue
		}
		if other.X == frame.Right() &&
			((other.Y <= frame.Y && other.Bottom() > frame.Y) ||
				(frame.Y <= other.Y && frame.Bottom() > other.Y)) {
			return true
		}
	}
	return false
}

func (e *Engine) hasBottomNeighbor(i int) bool {
	frame := e.frames[i]
	for j, other := range e.frames {
		if i == j {
			continue
		}
		if other.Y == frame.Bottom() &&
			((other.X <= frame.X && other.Right() > frame.X) ||
				(frame.X <= other.X && frame.Right() > other.X)) {
			return true
		}
	}
	return false
}

// nextEdgeRight returns the x coordinate frame i may extend to: the left
// edge of the nearest frame beyond its right edge with overlapping
// vertical extent, or the canvas right edge when the strip is clear.
func (e *Engine) nextEdgeRight(i, width int) int {
	frame := e.frames[i]
	edge := width
	for j, other := range e.frames {
		if i == j {
			continue
		}
		if other.X > frame.Right() && other.overlapY(frame) > 0 && other.X < edge {
			edge = other.X
		}
	}
	return edge
}

func (e *Engine) nextEdgeBelow(i, height int) int {
	frame := e.frames[i]
	edge := height
	for j, other := range e.frames {
		if i == j {
			continue
		}
		if other.Y > frame.Bottom() && other.overlapX(frame) > 0 && other.Y < edge {
			edge = other.Y
		}
	}
	return edge
}
